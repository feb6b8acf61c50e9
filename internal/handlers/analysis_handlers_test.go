package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/feescope/feescope-api/internal/handlers"
	"github.com/feescope/feescope-api/internal/logger"
	"github.com/feescope/feescope-api/internal/mocks"
	"github.com/feescope/feescope-api/internal/services"
	"github.com/feescope/feescope-api/internal/types/business"
)

func init() {
	logger.InitLogger("test")
	gin.SetMode(gin.TestMode)
}

func newAnalyzeRouter(runner *mocks.MockAnalysisRunner) *gin.Engine {
	router := gin.New()
	handler := handlers.NewAnalysisHandler(runner)
	router.POST("/analyze", handler.Analyze)
	return router
}

func postAnalyze(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAnalyzeHandler_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockAnalysisRunner(ctrl)
	router := newAnalyzeRouter(runner)

	tests := []struct {
		name string
		body map[string]string
	}{
		{name: "empty body", body: map[string]string{}},
		{name: "missing address", body: map[string]string{"startDate": "2023-01-20", "endDate": "2023-02-20"}},
		{name: "missing start date", body: map[string]string{"address": "0xabc", "endDate": "2023-02-20"}},
		{name: "missing end date", body: map[string]string{"address": "0xabc", "startDate": "2023-01-20"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postAnalyze(t, router, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Contains(t, resp, "invalid_request")
		})
	}
}

func TestAnalyzeHandler_UnparseableDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockAnalysisRunner(ctrl)
	router := newAnalyzeRouter(runner)

	w := postAnalyze(t, router, map[string]string{
		"address":   "0xabc",
		"startDate": "soon",
		"endDate":   "2023-02-20",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "startDate")
}

func TestAnalyzeHandler_DateFormats(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockAnalysisRunner(ctrl)
	router := newAnalyzeRouter(runner)

	wantStart := time.Date(2023, 1, 20, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2023, 2, 20, 15, 4, 5, 0, time.UTC)
	runner.EXPECT().Analyze(gomock.Any(), "0xabc", wantStart, wantEnd).
		Return(&business.AggregateResult{Address: "0xabc", NativePair: "ETH/USDT", TargetPair: "BONK/USDT"}, nil)

	w := postAnalyze(t, router, map[string]string{
		"address":   "0xabc",
		"startDate": "2023-01-20",
		"endDate":   "2023-02-20T15:04:05Z",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAnalyzeHandler_InvalidRangeRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockAnalysisRunner(ctrl)
	runner.EXPECT().Analyze(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &services.InvalidRangeError{Reason: "start date must be before end date"})
	router := newAnalyzeRouter(runner)

	w := postAnalyze(t, router, map[string]string{
		"address":   "0xabc",
		"startDate": "2023-02-20",
		"endDate":   "2023-01-20",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "start date must be before end date", resp["invalid_request"])
}

func TestAnalyzeHandler_UpstreamFailureIsGeneric500(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockAnalysisRunner(ctrl)
	runner.EXPECT().Analyze(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &services.UpstreamError{Upstream: "explorer", Err: errors.New("secret internal detail")})
	router := newAnalyzeRouter(runner)

	w := postAnalyze(t, router, map[string]string{
		"address":   "0xabc",
		"startDate": "2023-01-20",
		"endDate":   "2023-02-20",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret internal detail")

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp["error"])
}

func TestAnalyzeHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockAnalysisRunner(ctrl)
	runner.EXPECT().Analyze(gomock.Any(), "0xabc", gomock.Any(), gomock.Any()).
		Return(&business.AggregateResult{
			Address:                  "0xabc",
			BlockRange:               business.BlockRange{StartBlock: 100, EndBlock: 200},
			FetchedTransactionCount:  3,
			ValuatedTransactionCount: 2,
			TotalNativeFee:           0.00084,
			TotalFiatFee:             1.68,
			TotalTargetAmount:        67200,
			CurrentTargetValue:       2.02,
			CurrentPriceAvailable:    true,
			NativePair:               "ETH/USDT",
			TargetPair:               "BONK/USDT",
		}, nil)
	router := newAnalyzeRouter(runner)

	w := postAnalyze(t, router, map[string]string{
		"address":   "0xabc",
		"startDate": "2023-01-20",
		"endDate":   "2023-02-20",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "0xabc", resp["address"])
	assert.Equal(t, float64(100), resp["start_block"])
	assert.Equal(t, float64(200), resp["end_block"])
	assert.Equal(t, float64(3), resp["fetched_transaction_count"])
	assert.Equal(t, float64(2), resp["valuated_transaction_count"])
	assert.Equal(t, 1.68, resp["total_fee_usd"])
	assert.Equal(t, float64(67200), resp["target_asset_amount"])
	assert.Equal(t, 2.02, resp["target_asset_value_usd"])
	assert.Equal(t, true, resp["current_price_available"])
	assert.Contains(t, resp["summary"], "BONK")
}
