package interfaces

import (
	"context"
	"time"

	"github.com/feescope/feescope-api/internal/types/business"
)

//go:generate mockgen -source=services.go -destination=../mocks/mock_services.go -package=mocks

// PriceLookup resolves prices for BASE/QUOTE asset pairs. A false ok means
// "price unknown at this point in time" - callers must not treat it as zero.
type PriceLookup interface {
	// HistoricalPrice returns the best-known price at or shortly after the
	// given unix-millisecond timestamp.
	HistoricalPrice(ctx context.Context, timestampMs int64, pair string) (float64, bool)
	// CurrentPrice returns the latest traded price for the pair.
	CurrentPrice(ctx context.Context, pair string) (float64, bool)
}

// AnalysisRunner drives the fee-to-opportunity-cost pipeline for one request.
type AnalysisRunner interface {
	Analyze(ctx context.Context, address string, start, end time.Time) (*business.AggregateResult, error)
}
