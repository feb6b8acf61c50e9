package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feescope/feescope-api/internal/interfaces"
	"github.com/feescope/feescope-api/internal/logger"
	"github.com/feescope/feescope-api/internal/services"
	"github.com/feescope/feescope-api/internal/types/api/requests"
	"github.com/feescope/feescope-api/internal/types/api/responses"
)

// AnalysisHandler serves the fee opportunity-cost analysis endpoint.
type AnalysisHandler struct {
	analysis interfaces.AnalysisRunner
	logger   *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(analysis interfaces.AnalysisRunner) *AnalysisHandler {
	return &AnalysisHandler{
		analysis: analysis,
		logger:   logger.Log,
	}
}

// Analyze handles POST /analyze: it validates the payload, runs the
// pipeline, and maps pipeline errors onto the HTTP surface. Invalid input
// yields a structured 400; everything else that fails yields a generic 500
// with full detail kept in the operator log.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req requests.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		rejectRequest(c, "address, startDate and endDate are required")
		return
	}

	start, ok := parseDate(req.StartDate)
	if !ok {
		rejectRequest(c, "startDate is not a valid date")
		return
	}
	end, ok := parseDate(req.EndDate)
	if !ok {
		rejectRequest(c, "endDate is not a valid date")
		return
	}

	result, err := h.analysis.Analyze(c.Request.Context(), req.Address, start, end)
	if err != nil {
		var invalidRange *services.InvalidRangeError
		if errors.As(err, &invalidRange) {
			rejectRequest(c, invalidRange.Reason)
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.AnalysisResponse{
		Address:                  result.Address,
		StartBlock:               result.BlockRange.StartBlock,
		EndBlock:                 result.BlockRange.EndBlock,
		FetchedTransactionCount:  result.FetchedTransactionCount,
		ValuatedTransactionCount: result.ValuatedTransactionCount,
		TotalFeeNative:           result.TotalNativeFee,
		TotalFeeFiat:             result.TotalFiatFee,
		TargetPair:               result.TargetPair,
		TargetAssetAmount:        result.TotalTargetAmount,
		TargetAssetValueFiat:     result.CurrentTargetValue,
		CurrentPriceAvailable:    result.CurrentPriceAvailable,
		Summary:                  services.Summarize(result),
	})
}
