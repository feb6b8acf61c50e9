package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/feescope/feescope-api/internal/interfaces"
	"github.com/feescope/feescope-api/internal/logger"
	"github.com/feescope/feescope-api/internal/types/business"
)

// AnalysisConfig carries the tunables of the analysis pipeline.
type AnalysisConfig struct {
	// NativePair prices the chain's fee currency in fiat (e.g. "ETH/USDT").
	NativePair string
	// TargetPair is the opportunity-cost asset (e.g. "BONK/USDT").
	TargetPair string
	// MaxConcurrentValuations bounds the valuation fan-out toward the
	// exchange API.
	MaxConcurrentValuations int
}

// AnalysisService orchestrates one request through the pipeline: validate
// the range, resolve it to blocks, fetch the transactions, valuate them
// concurrently, and aggregate into the final comparison.
type AnalysisService struct {
	explorer interfaces.ExplorerClient
	prices   interfaces.PriceLookup
	valuator *ValuationService
	config   AnalysisConfig
	logger   *zap.Logger

	// now is injectable so range clamping is testable.
	now func() time.Time
}

// NewAnalysisService creates the orchestrator for the analysis pipeline.
func NewAnalysisService(explorer interfaces.ExplorerClient, prices interfaces.PriceLookup, config AnalysisConfig) *AnalysisService {
	if config.MaxConcurrentValuations <= 0 {
		config.MaxConcurrentValuations = 8
	}
	return &AnalysisService{
		explorer: explorer,
		prices:   prices,
		valuator: NewValuationService(prices, config.NativePair),
		config:   config,
		logger:   logger.Log,
		now:      time.Now,
	}
}

// Analyze runs the full pipeline for one address and date range.
//
// An end at or after the current instant is clamped to now before
// validation; start >= end (after clamping) is rejected without any
// upstream call. Block resolution and transaction fetching failures abort
// the request; individual price failures only drop their own transaction.
func (s *AnalysisService) Analyze(ctx context.Context, address string, start, end time.Time) (*business.AggregateResult, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, &InvalidRangeError{Reason: "address is required"}
	}

	now := s.now()
	if !end.Before(now) {
		end = now
	}
	if !start.Before(end) {
		return nil, &InvalidRangeError{Reason: "start date must be before end date"}
	}
	dateRange := business.DateRange{Start: start, End: end}

	blockRange, err := s.resolveBlockRange(ctx, dateRange)
	if err != nil {
		return nil, err
	}

	transactions, err := s.explorer.GetNormalTransactions(ctx, address, blockRange.StartBlock, blockRange.EndBlock)
	if err != nil {
		return nil, &UpstreamError{Upstream: "explorer", Err: err}
	}

	s.logger.Info("Valuating transactions",
		zap.String("address", address),
		zap.Int64("start_block", blockRange.StartBlock),
		zap.Int64("end_block", blockRange.EndBlock),
		zap.Int("count", len(transactions)))

	priced := s.valuateAll(ctx, transactions)

	result := &business.AggregateResult{
		Address:                 address,
		DateRange:               dateRange,
		BlockRange:              blockRange,
		FetchedTransactionCount: len(transactions),
		NativePair:              s.config.NativePair,
		TargetPair:              s.config.TargetPair,
	}

	var totalFiat, totalTarget float64
	for _, p := range priced {
		result.ValuatedTransactionCount++
		result.TotalNativeFee += p.NativeFeeAmount
		totalFiat += p.FiatFeeAmount
		totalTarget += p.TargetAssetAmount
	}
	result.TotalFiatFee = roundFiat(totalFiat)
	result.TotalTargetAmount = roundFiat(totalTarget)

	if currentPrice, ok := s.prices.CurrentPrice(ctx, s.config.TargetPair); ok {
		result.CurrentPriceAvailable = true
		result.CurrentTargetValue = roundFiat(currentPrice * result.TotalTargetAmount)
	} else {
		s.logger.Warn("Current target price unavailable, reporting aggregate without present-day value",
			zap.String("pair", s.config.TargetPair))
	}

	return result, nil
}

// resolveBlockRange resolves both ends of the date range to block numbers.
// The two lookups are independent and run concurrently; either failure is
// fatal for the request.
func (s *AnalysisService) resolveBlockRange(ctx context.Context, dateRange business.DateRange) (business.BlockRange, error) {
	var blockRange business.BlockRange

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		block, err := s.explorer.GetBlockNumberByTime(gctx, dateRange.Start)
		if err != nil {
			return fmt.Errorf("resolving start block: %w", err)
		}
		blockRange.StartBlock = block
		return nil
	})
	g.Go(func() error {
		block, err := s.explorer.GetBlockNumberByTime(gctx, dateRange.End)
		if err != nil {
			return fmt.Errorf("resolving end block: %w", err)
		}
		blockRange.EndBlock = block
		return nil
	})

	if err := g.Wait(); err != nil {
		return business.BlockRange{}, &UpstreamError{Upstream: "explorer", Err: err}
	}
	return blockRange, nil
}

// valuateAll fans the valuator out over the transactions with a bounded
// concurrency limit and waits for every valuation. Unknown valuations are
// dropped; summation downstream is order-independent.
func (s *AnalysisService) valuateAll(ctx context.Context, transactions []business.Transaction) []business.PricedTransaction {
	slots := make([]*business.PricedTransaction, len(transactions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.MaxConcurrentValuations)
	for i, tx := range transactions {
		i, tx := i, tx
		g.Go(func() error {
			slots[i] = s.valuator.Valuate(gctx, tx, s.config.TargetPair)
			return nil
		})
	}
	// Valuations never return errors; Wait is a pure barrier here.
	_ = g.Wait()

	priced := make([]business.PricedTransaction, 0, len(slots))
	for _, p := range slots {
		if p != nil {
			priced = append(priced, *p)
		}
	}
	return priced
}

// Summarize renders the human-readable comparison line for a result.
func Summarize(result *business.AggregateResult) string {
	nativeSymbol := baseSymbol(result.NativePair)
	targetSymbol := baseSymbol(result.TargetPair)

	if !result.CurrentPriceAvailable {
		return fmt.Sprintf(
			"You spent %v %s or $%.2f USD on %d transactions. Meanwhile, you could have bought %.2f %s (current value unavailable).",
			result.TotalNativeFee, nativeSymbol, result.TotalFiatFee, result.ValuatedTransactionCount,
			result.TotalTargetAmount, targetSymbol)
	}

	return fmt.Sprintf(
		"You spent %v %s or $%.2f USD on %d transactions. Meanwhile, you could have bought %.2f %s, which today would be worth $%.2f USD.",
		result.TotalNativeFee, nativeSymbol, result.TotalFiatFee, result.ValuatedTransactionCount,
		result.TotalTargetAmount, targetSymbol, result.CurrentTargetValue)
}

func baseSymbol(pair string) string {
	if base, _, found := strings.Cut(pair, "/"); found {
		return base
	}
	return pair
}
