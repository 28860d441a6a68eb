package utils

import (
	"github.com/shopspring/decimal"
)

// Round2 rounds a monetary amount to 2 decimal places. All monetary
// arithmetic in the system is rounded at the point of computation so
// repeated reads never accumulate floating-point drift.
func Round2(amount float64) float64 {
	v, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return v
}

// MulRound2 multiplies a unit price by a quantity and rounds to 2dp.
func MulRound2(unitPrice float64, quantity int) float64 {
	v, _ := decimal.NewFromFloat(unitPrice).
		Mul(decimal.NewFromInt(int64(quantity))).
		Round(2).
		Float64()
	return v
}

// SubRound2 subtracts b from a and rounds to 2dp.
func SubRound2(a, b float64) float64 {
	v, _ := decimal.NewFromFloat(a).
		Sub(decimal.NewFromFloat(b)).
		Round(2).
		Float64()
	return v
}

// Round2String renders an amount with exactly 2 decimal places.
func Round2String(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

// FormatCedis renders an amount in Ghana Cedis with 2 decimal places.
func FormatCedis(amount float64) string {
	return "GH₵ " + decimal.NewFromFloat(amount).StringFixed(2)
}
