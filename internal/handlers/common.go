package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feescope/feescope-api/internal/logger"
	"github.com/feescope/feescope-api/internal/types/api/responses"
)

// Accepted date layouts for inbound requests, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// parseDate parses an inbound date string as RFC 3339 or a plain date.
func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// rejectRequest sends the structured 400 rejection used for invalid input.
func rejectRequest(c *gin.Context, reason string) {
	c.JSON(http.StatusBadRequest, responses.InvalidRequestResponse{InvalidRequest: reason})
}

// serverError logs the full failure for operators and sends a generic 500
// without leaking internal detail to the caller.
func serverError(c *gin.Context, err error) {
	logger.Error("Request failed",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, responses.ErrorResponse{Error: "internal server error"})
}
