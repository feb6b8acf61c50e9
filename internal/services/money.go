package services

import "github.com/shopspring/decimal"

// roundFiat rounds a fiat-denominated amount to exactly two decimal places
// using decimal arithmetic, avoiding float drift at the cent boundary.
func roundFiat(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}
