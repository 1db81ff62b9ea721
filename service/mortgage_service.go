package service

import (
	"log"

	"github.com/shopspring/decimal"

	"mortgage-calc/domain"
	"mortgage-calc/repository"
)

// MortgageService wraps the domain calculations for callers such as the CLI
// and records every summary it produces in the session history.
type MortgageService struct {
	history repository.HistoryRepository
}

// NewMortgageService creates a new MortgageService with the given history
// repository.
func NewMortgageService(history repository.HistoryRepository) *MortgageService {
	return &MortgageService{history: history}
}

// Summarize computes the full reporting figure set for one mortgage. The
// inflation-adjusted payout and cost are filled in only when inflation is
// non-zero.
func (s *MortgageService) Summarize(
	in domain.MortgageInput,
	inflation float64,
) (domain.Summary, error) {
	m, err := domain.NewMortgage(in)
	if err != nil {
		return domain.Summary{}, err
	}

	n := m.LoanMonths()
	sum := domain.Summary{
		Rate:           m.Rate(),
		MonthGrowth:    m.MonthGrowth(),
		APY:            m.APY(),
		PayoffYears:    m.LoanYears(),
		PayoffMonths:   n,
		Amount:         m.Amount(),
		MonthlyPayment: m.MonthlyPayment(),
		AnnualPayment:  m.AnnualPayment(),
		TotalPayout:    m.TotalPayout(n, 0),
		TotalCost:      m.TotalCost(n, 0),
		Inflation:      inflation,
	}
	if inflation != 0 {
		sum.AdjustedPayout = m.TotalPayout(n, inflation)
		sum.AdjustedCost = m.TotalCost(n, inflation)
	}

	// Recording the result is not critical.
	if err := s.history.Save(in, sum); err != nil {
		log.Printf("Warning: failed to save mortgage summary: %v", err)
	}

	return sum, nil
}

// ScheduleSummary produces the year-by-year repayment table from year 0 to
// the final loan year, using the analytic balance.
func (s *MortgageService) ScheduleSummary(
	in domain.MortgageInput,
	inflation float64,
) ([]domain.YearRow, error) {
	m, err := domain.NewMortgage(in)
	if err != nil {
		return nil, err
	}

	years := int(m.LoanYears())
	rows := make([]domain.YearRow, 0, years+1)
	for y := 0; y <= years; y++ {
		months := y * domain.MonthsInYear
		balance := m.Balance(months, inflation)
		paid := m.TotalPayout(months, inflation)
		rows = append(rows, domain.YearRow{
			Year:    y,
			Balance: balance,
			Paid:    paid,
			NetCost: balance.Add(paid).Sub(m.Amount()),
		})
	}
	return rows, nil
}

// Amortize drains the payment schedule into a slice, one entry per period.
func (s *MortgageService) Amortize(
	in domain.MortgageInput,
) ([]domain.ScheduleEntry, error) {
	m, err := domain.NewMortgage(in)
	if err != nil {
		return nil, err
	}

	sched := m.Schedule()
	entries := make([]domain.ScheduleEntry, 0, m.LoanMonths())
	for {
		entry, ok := sched.Next()
		if !ok {
			return entries, nil
		}
		entries = append(entries, entry)
	}
}

// BorrowingCapacity answers "how much could I borrow for this monthly
// payment" at the loan's rate and term.
func (s *MortgageService) BorrowingCapacity(
	in domain.MortgageInput,
	monthlyPayment decimal.Decimal,
) (decimal.Decimal, error) {
	m, err := domain.NewMortgage(in)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return m.TotalValue(monthlyPayment), nil
}
