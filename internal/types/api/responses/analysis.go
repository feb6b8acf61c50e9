package responses

// AnalysisResponse is the outbound payload for a completed analysis.
// Fiat-denominated totals and the target-asset totals are rounded to two
// decimal places; the native fee total keeps full precision.
type AnalysisResponse struct {
	Address    string `json:"address"`
	StartBlock int64  `json:"start_block"`
	EndBlock   int64  `json:"end_block"`

	FetchedTransactionCount  int `json:"fetched_transaction_count"`
	ValuatedTransactionCount int `json:"valuated_transaction_count"`

	TotalFeeNative float64 `json:"total_fee_eth"`
	TotalFeeFiat   float64 `json:"total_fee_usd"`

	TargetPair            string  `json:"target_pair"`
	TargetAssetAmount     float64 `json:"target_asset_amount"`
	TargetAssetValueFiat  float64 `json:"target_asset_value_usd"`
	CurrentPriceAvailable bool    `json:"current_price_available"`

	Summary string `json:"summary"`
}
