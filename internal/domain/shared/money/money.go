// Package money provides precision-safe decimal helpers for monetary and
// percentage values. All amounts, rates, and allocations in the domain are
// arbitrary-precision decimals, never native floats.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// Zero is the decimal zero value.
	Zero = decimal.Zero

	// Hundred is the full allocation percentage.
	Hundred = decimal.NewFromInt(100)

	// MinAllocation is the smallest allocation slice a system can hold.
	MinAllocation = decimal.RequireFromString("0.000001")
)

// Parse converts a decimal string into a decimal value.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid decimal value %q: %w", s, err)
	}
	return d, nil
}

// FitsPrecision reports whether d fits a DECIMAL(precision, scale) column:
// at most `scale` decimal places and at most `precision - scale` integer digits.
func FitsPrecision(d decimal.Decimal, precision, scale int32) bool {
	if !d.Round(scale).Equal(d) {
		return false
	}
	limit := decimal.New(1, precision-scale) // 10^(precision-scale)
	return d.Abs().LessThan(limit)
}

// IsAmount reports whether d is a valid monetary amount: non-negative and
// within DECIMAL(12,2).
func IsAmount(d decimal.Decimal) bool {
	return !d.IsNegative() && FitsPrecision(d, 12, 2)
}

// IsRate reports whether d is a valid exchange rate: strictly positive and
// within DECIMAL(8,4).
func IsRate(d decimal.Decimal) bool {
	return d.IsPositive() && FitsPrecision(d, 8, 4)
}

// IsAllocation reports whether d is a valid allocation percentage: within
// DECIMAL(9,6) and in the range [0.000001, 100].
func IsAllocation(d decimal.Decimal) bool {
	if !FitsPrecision(d, 9, 6) {
		return false
	}
	return d.GreaterThanOrEqual(MinAllocation) && d.LessThanOrEqual(Hundred)
}

// Share returns the 2-decimal-place share of total for the given allocation
// percentage: total * allocation / 100, rounded half up.
func Share(total, allocation decimal.Decimal) decimal.Decimal {
	return total.Mul(allocation).Div(Hundred).Round(2)
}
