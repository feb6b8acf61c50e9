package business

import "time"

// DateRange is a validated wall-clock interval. End is already clamped to
// "now" by the time a DateRange is constructed; Start strictly precedes End.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// BlockRange is the contiguous set of chain blocks corresponding to a
// DateRange. Immutable once resolved.
type BlockRange struct {
	StartBlock int64
	EndBlock   int64
}

// Transaction is a single on-chain transfer as reported by the explorer.
// GasPriceWei is the per-unit fee rate in wei; GasUsed the units consumed.
type Transaction struct {
	Hash        string
	From        string
	To          string
	BlockNumber int64
	Timestamp   time.Time
	GasPriceWei float64
	GasUsed     float64
}

// PricedTransaction is the fee valuation of exactly one Transaction at its
// own timestamp: the fee in native currency, in fiat (2dp), and the
// quantity of the target asset that fiat amount could have bought.
type PricedTransaction struct {
	Hash              string
	NativeFeeAmount   float64
	FiatFeeAmount     float64
	TargetAssetAmount float64
}

// AggregateResult is the per-request outcome of the analysis pipeline.
// Built once, never mutated, never persisted.
type AggregateResult struct {
	Address    string
	DateRange  DateRange
	BlockRange BlockRange

	// FetchedTransactionCount is the raw number of transactions returned by
	// the explorer; ValuatedTransactionCount counts only those with a
	// successful price valuation. The two differ when price lookups fail.
	FetchedTransactionCount  int
	ValuatedTransactionCount int

	TotalNativeFee        float64
	TotalFiatFee          float64
	TotalTargetAmount     float64
	CurrentTargetValue    float64
	CurrentPriceAvailable bool

	NativePair string
	TargetPair string
}
