package domain

import "github.com/shopspring/decimal"

// Summary is the full reporting figure set for one mortgage. AdjustedPayout
// and AdjustedCost are only populated when Inflation is non-zero.
type Summary struct {
	Rate           float64
	MonthGrowth    float64
	APY            float64
	PayoffYears    float64
	PayoffMonths   int
	Amount         decimal.Decimal
	MonthlyPayment decimal.Decimal
	AnnualPayment  decimal.Decimal
	TotalPayout    decimal.Decimal
	TotalCost      decimal.Decimal
	Inflation      float64
	AdjustedPayout decimal.Decimal
	AdjustedCost   decimal.Decimal
}

// YearRow is one line of the year-by-year repayment table.
type YearRow struct {
	Year    int
	Balance decimal.Decimal
	Paid    decimal.Decimal
	NetCost decimal.Decimal
}
