package service

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"mortgage-calc/domain"
)

type TermRecommendationService struct {
	mortgages *MortgageService
}

func NewTermRecommendationService(mortgages *MortgageService) *TermRecommendationService {
	return &TermRecommendationService{mortgages: mortgages}
}

// RecommendTerm evaluates every term in the requested range, keeps the ones
// whose monthly payment fits under the cap, and ranks them by the caller's
// preference.
func (s *TermRecommendationService) RecommendTerm(
	in domain.TermRecommendationInput,
) (domain.TermRecommendationResult, error) {

	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return domain.TermRecommendationResult{}, errors.New("invalid amount")
	}
	if in.InterestRate < 0 {
		return domain.TermRecommendationResult{}, errors.New("invalid rate")
	}
	if in.MinTermMonths <= 0 || in.MaxTermMonths <= 0 {
		return domain.TermRecommendationResult{}, errors.New("invalid term range")
	}
	if in.MinTermMonths > in.MaxTermMonths {
		return domain.TermRecommendationResult{}, errors.New("minimum term greater than maximum")
	}
	if in.MaxTermMonths > MaxTermMonths {
		return domain.TermRecommendationResult{}, fmt.Errorf("maximum term exceeds the limit of %d months", MaxTermMonths)
	}
	// Keep the scan bounded.
	if in.MaxTermMonths-in.MinTermMonths > MaxTermRangeMonths {
		return domain.TermRecommendationResult{}, fmt.Errorf("term range exceeds the maximum of %d months", MaxTermRangeMonths)
	}
	if in.MaxMonthlyPayment.LessThanOrEqual(decimal.Zero) {
		return domain.TermRecommendationResult{}, errors.New("invalid maximum monthly payment")
	}
	switch in.Preference {
	case domain.PreferMinimizeInterest, domain.PreferMinimizePayment, domain.PreferBalanced:
	default:
		return domain.TermRecommendationResult{}, errors.New("invalid preference")
	}

	recommendations := []domain.TermRecommendation{}

	for term := in.MinTermMonths; term <= in.MaxTermMonths; term++ {
		sum, err := s.mortgages.Summarize(domain.MortgageInput{
			InterestRate: in.InterestRate,
			Months:       float64(term),
			Amount:       in.Amount,
		}, 0)
		if err != nil {
			log.Printf("Warning: failed to evaluate term %d: %v", term, err)
			continue
		}

		if sum.MonthlyPayment.GreaterThan(in.MaxMonthlyPayment) {
			continue
		}

		recommendations = append(recommendations, domain.TermRecommendation{
			TermMonths:     term,
			MonthlyPayment: sum.MonthlyPayment,
			TotalInterest:  sum.TotalCost,
			Score:          s.calculateScore(sum, in, term),
			Reason:         reasonFor(in.Preference),
		})
	}

	sort.Slice(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	if len(recommendations) == 0 {
		return domain.TermRecommendationResult{}, errors.New("no terms fit the maximum monthly payment")
	}

	return domain.TermRecommendationResult{
		RecommendedTerm: recommendations[0].TermMonths,
		Recommendations: recommendations,
	}, nil
}

func (s *TermRecommendationService) calculateScore(
	sum domain.Summary,
	in domain.TermRecommendationInput,
	term int,
) float64 {
	amount, _ := in.Amount.Float64()
	maxPayment, _ := in.MaxMonthlyPayment.Float64()
	totalInterest, _ := sum.TotalCost.Float64()
	payment, _ := sum.MonthlyPayment.Float64()

	// Rough normalization of each criterion onto a 0-10 scale.
	maxInterest := amount * in.InterestRate * float64(in.MaxTermMonths) / domain.MonthsInYear
	minInterest := amount * in.InterestRate * float64(in.MinTermMonths) / domain.MonthsInYear
	interestRange := maxInterest - minInterest
	paymentFloor := amount / float64(in.MaxTermMonths)
	paymentRange := maxPayment - paymentFloor

	var interestScore, paymentScore, termScore float64
	if interestRange > 0 {
		interestScore = 10 * (1 - (totalInterest-minInterest)/interestRange)
	}
	if paymentRange > 0 {
		paymentScore = 10 * (1 - (payment-paymentFloor)/paymentRange)
	}
	if in.MaxTermMonths > in.MinTermMonths {
		termScore = 10 * (1 - float64(term-in.MinTermMonths)/float64(in.MaxTermMonths-in.MinTermMonths))
	}

	var score float64
	switch in.Preference {
	case domain.PreferMinimizeInterest:
		score = 0.6*interestScore + 0.2*paymentScore + 0.2*termScore
	case domain.PreferMinimizePayment:
		score = 0.2*interestScore + 0.6*paymentScore + 0.2*termScore
	case domain.PreferBalanced:
		score = 0.4*interestScore + 0.4*paymentScore + 0.2*termScore
	}

	return math.Round(score*100) / 100
}

func reasonFor(preference string) string {
	switch preference {
	case domain.PreferMinimizeInterest:
		return "term optimized to minimize total interest cost"
	case domain.PreferMinimizePayment:
		return "term optimized to minimize the monthly payment"
	case domain.PreferBalanced:
		return "best balance between monthly payment and total cost"
	}
	return "recommendation based on the provided parameters"
}
