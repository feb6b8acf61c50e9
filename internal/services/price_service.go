package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/feescope/feescope-api/internal/interfaces"
	"github.com/feescope/feescope-api/internal/logger"
)

const (
	// candleInterval is the kline resolution used for historical lookups.
	candleInterval = "1"
	// candleWindow is how many candles are requested per historical lookup.
	// Only the earliest one is used; the window tolerates sparse trading.
	candleWindow = 50
)

// PriceService resolves historical and current prices for BASE/QUOTE pairs
// through a single shared exchange client. Lookup failures are reported as
// "price unknown" (ok == false), never as errors: one bad price must only
// cost its own transaction, not the whole request.
type PriceService struct {
	exchange interfaces.ExchangeClient
	logger   *zap.Logger
}

// NewPriceService creates a new price service around the exchange client.
func NewPriceService(exchange interfaces.ExchangeClient) *PriceService {
	return &PriceService{
		exchange: exchange,
		logger:   logger.Log,
	}
}

// HistoricalPrice returns the opening price of the first minute candle at
// or after timestampMs. ok is false when the upstream call fails or the
// window comes back empty.
func (s *PriceService) HistoricalPrice(ctx context.Context, timestampMs int64, pair string) (float64, bool) {
	symbol := pairToSymbol(pair)

	klines, err := s.exchange.GetKlines(ctx, symbol, candleInterval, timestampMs, candleWindow)
	if err != nil {
		s.logger.Warn("Historical price lookup failed",
			zap.String("pair", pair),
			zap.Int64("timestamp_ms", timestampMs),
			zap.Error(err))
		return 0, false
	}
	if len(klines) == 0 {
		s.logger.Warn("No price available",
			zap.String("pair", pair),
			zap.Int64("timestamp_ms", timestampMs))
		return 0, false
	}

	return klines[0].Open, true
}

// CurrentPrice returns the latest traded price for the pair. ok is false
// when the upstream call fails.
func (s *PriceService) CurrentPrice(ctx context.Context, pair string) (float64, bool) {
	symbol := pairToSymbol(pair)

	ticker, err := s.exchange.GetLatestTicker(ctx, symbol)
	if err != nil {
		s.logger.Warn("Current price lookup failed",
			zap.String("pair", pair),
			zap.Error(err))
		return 0, false
	}

	return ticker.LastPrice, true
}

// pairToSymbol converts a "BASE/QUOTE" pair to the exchange's concatenated
// symbol form (e.g. "ETH/USDT" -> "ETHUSDT").
func pairToSymbol(pair string) string {
	return strings.ToUpper(strings.ReplaceAll(pair, "/", ""))
}
