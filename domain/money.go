package domain

import "github.com/shopspring/decimal"

// Currency values carry exactly two fractional digits. Two rounding policies
// coexist and must stay distinct: Dollar rounds toward positive infinity and
// is used for the principal, the payment and reported balances, so the lender
// never under-collects; DollarHalfUp rounds half away from zero and is used
// only for each period's interest charge in the schedule.

// Dollar quantizes a value to cents, rounding toward positive infinity.
func Dollar(d decimal.Decimal) decimal.Decimal {
	return d.RoundCeil(2)
}

// DollarHalfUp quantizes a value to cents, rounding half away from zero.
func DollarHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FromFloat converts a float64 into a decimal through its shortest decimal
// representation, so 0.1 arrives as 0.1 rather than the underlying binary
// fraction.
func FromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}
