package bybit_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feescope/feescope-api/internal/client/bybit"
	"github.com/feescope/feescope-api/internal/logger"
)

func init() {
	logger.InitLogger("test")
}

func TestGetKlines(t *testing.T) {
	t.Run("returns candles in chronological order", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v5/market/kline", r.URL.Path)
			assert.Equal(t, "spot", r.URL.Query().Get("category"))
			assert.Equal(t, "ETHUSDT", r.URL.Query().Get("symbol"))
			assert.Equal(t, "1", r.URL.Query().Get("interval"))
			assert.Equal(t, "1674172800000", r.URL.Query().Get("start"))
			assert.Equal(t, "50", r.URL.Query().Get("limit"))
			w.Header().Set("Content-Type", "application/json")
			// The v5 API lists candles newest first.
			_, _ = w.Write([]byte(`{"retCode":0,"retMsg":"OK","result":{"category":"spot","symbol":"ETHUSDT","list":[
				["1674172920000","1551.0","1552.0","1550.0","1551.5","120.5","186972.5"],
				["1674172860000","1550.5","1551.5","1549.5","1551.0","98.2","152261.1"],
				["1674172800000","1550.0","1551.0","1549.0","1550.5","110.0","170555.0"]
			]},"time":1674172999999}`))
		}))
		defer server.Close()

		client := bybit.NewClient(bybit.WithBaseURL(server.URL))
		klines, err := client.GetKlines(context.Background(), "ETHUSDT", "1", 1674172800000, 50)

		require.NoError(t, err)
		require.Len(t, klines, 3)
		assert.Equal(t, int64(1674172800000), klines[0].StartTimeMs)
		assert.Equal(t, 1550.0, klines[0].Open)
		assert.Equal(t, int64(1674172920000), klines[2].StartTimeMs)
	})

	t.Run("API-level errors are surfaced", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"retCode":10001,"retMsg":"params error: symbol invalid","result":{}}`))
		}))
		defer server.Close()

		client := bybit.NewClient(bybit.WithBaseURL(server.URL))
		_, err := client.GetKlines(context.Background(), "NOPEUSDT", "1", 1674172800000, 50)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "10001")
	})

	t.Run("malformed candle entries are an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"retCode":0,"retMsg":"OK","result":{"category":"spot","symbol":"ETHUSDT","list":[
				["1674172800000","not-a-price","1551.0","1549.0","1550.5","110.0","170555.0"]
			]}}`))
		}))
		defer server.Close()

		client := bybit.NewClient(bybit.WithBaseURL(server.URL))
		_, err := client.GetKlines(context.Background(), "ETHUSDT", "1", 1674172800000, 50)

		require.Error(t, err)
	})

	t.Run("an empty window is not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"retCode":0,"retMsg":"OK","result":{"category":"spot","symbol":"ETHUSDT","list":[]}}`))
		}))
		defer server.Close()

		client := bybit.NewClient(bybit.WithBaseURL(server.URL))
		klines, err := client.GetKlines(context.Background(), "ETHUSDT", "1", 1674172800000, 50)

		require.NoError(t, err)
		assert.Empty(t, klines)
	})
}

func TestGetLatestTicker(t *testing.T) {
	t.Run("returns the last traded price", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v5/market/tickers", r.URL.Path)
			assert.Equal(t, "spot", r.URL.Query().Get("category"))
			assert.Equal(t, "BONKUSDT", r.URL.Query().Get("symbol"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"retCode":0,"retMsg":"OK","result":{"category":"spot","list":[
				{"symbol":"BONKUSDT","lastPrice":"0.00003","bid1Price":"0.0000299","ask1Price":"0.0000301"}
			]}}`))
		}))
		defer server.Close()

		client := bybit.NewClient(bybit.WithBaseURL(server.URL))
		ticker, err := client.GetLatestTicker(context.Background(), "BONKUSDT")

		require.NoError(t, err)
		assert.Equal(t, "BONKUSDT", ticker.Symbol)
		assert.Equal(t, 0.00003, ticker.LastPrice)
	})

	t.Run("an empty ticker list is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"retCode":0,"retMsg":"OK","result":{"category":"spot","list":[]}}`))
		}))
		defer server.Close()

		client := bybit.NewClient(bybit.WithBaseURL(server.URL))
		_, err := client.GetLatestTicker(context.Background(), "BONKUSDT")

		require.Error(t, err)
	})
}
