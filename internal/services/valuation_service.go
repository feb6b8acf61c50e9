package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/feescope/feescope-api/internal/interfaces"
	"github.com/feescope/feescope-api/internal/logger"
	"github.com/feescope/feescope-api/internal/types/business"
)

// weiPerGwei scales between the chain's smallest fee subunit and whole
// native-currency units: gasPrice arrives in wei, and wei -> gwei -> ETH is
// two successive divisions by 1e9.
const weiPerGwei = 1e9

// ValuationService converts a single transaction's gas consumption into
// native-currency cost, fiat cost at the transaction's own timestamp, and
// the equivalent quantity of a target asset at that same timestamp.
type ValuationService struct {
	prices     interfaces.PriceLookup
	nativePair string
	logger     *zap.Logger
}

// NewValuationService creates a valuation service. nativePair prices the
// chain's fee currency in fiat (e.g. "ETH/USDT").
func NewValuationService(prices interfaces.PriceLookup, nativePair string) *ValuationService {
	return &ValuationService{
		prices:     prices,
		nativePair: nativePair,
		logger:     logger.Log,
	}
}

// Valuate prices one transaction. A nil result means "valuation unknown":
// one of the historical price lookups failed, and the transaction must be
// excluded from aggregation rather than counted as zero.
func (s *ValuationService) Valuate(ctx context.Context, tx business.Transaction, targetPair string) *business.PricedTransaction {
	nativeFee := tx.GasPriceWei / weiPerGwei * tx.GasUsed / weiPerGwei
	timestampMs := tx.Timestamp.UnixMilli()

	nativePrice, ok := s.prices.HistoricalPrice(ctx, timestampMs, s.nativePair)
	if !ok {
		s.logger.Warn("Skipping transaction: native price unknown",
			zap.String("tx_hash", tx.Hash),
			zap.Time("timestamp", tx.Timestamp))
		return nil
	}

	fiatFee := roundFiat(nativeFee * nativePrice)

	targetPrice, ok := s.prices.HistoricalPrice(ctx, timestampMs, targetPair)
	if !ok || targetPrice <= 0 {
		s.logger.Warn("Skipping transaction: target asset price unknown",
			zap.String("tx_hash", tx.Hash),
			zap.String("pair", targetPair),
			zap.Time("timestamp", tx.Timestamp))
		return nil
	}

	return &business.PricedTransaction{
		Hash:              tx.Hash,
		NativeFeeAmount:   nativeFee,
		FiatFeeAmount:     fiatFee,
		TargetAssetAmount: fiatFee / targetPrice,
	}
}
