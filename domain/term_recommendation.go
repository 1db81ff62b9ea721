package domain

import "github.com/shopspring/decimal"

// Term recommendation preferences.
const (
	PreferMinimizeInterest = "minimize_interest"
	PreferMinimizePayment  = "minimize_payment"
	PreferBalanced         = "balanced"
)

type TermRecommendationInput struct {
	InterestRate      float64 // annual rate as a fraction
	Amount            decimal.Decimal
	MinTermMonths     int
	MaxTermMonths     int
	MaxMonthlyPayment decimal.Decimal
	Preference        string
}

type TermRecommendation struct {
	TermMonths     int
	MonthlyPayment decimal.Decimal
	TotalInterest  decimal.Decimal
	Score          float64
	Reason         string
}

type TermRecommendationResult struct {
	RecommendedTerm int
	Recommendations []TermRecommendation
}
