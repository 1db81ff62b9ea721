package domain

import "github.com/shopspring/decimal"

// ScheduleEntry is one period's split of the monthly payment.
type ScheduleEntry struct {
	Principal decimal.Decimal
	Interest  decimal.Decimal
}

// Schedule walks the amortization of a Mortgage one period at a time. Unlike
// the analytic Balance, it applies cent-level rounding every step, so the sum
// of its principal portions equals the loan amount exactly and the final
// balance is exactly zero. A Schedule is finite and not restartable.
type Schedule struct {
	payment decimal.Decimal
	balance decimal.Decimal
	rate    decimal.Decimal
	done    bool
}

// Schedule returns a fresh iterator over the monthly payment schedule,
// starting at period 1. The monthly rate is fixed at six decimal places here
// and never re-rounded.
func (m *Mortgage) Schedule() *Schedule {
	monthly := FromFloat(m.rate).Div(decimal.NewFromInt(MonthsInYear)).Round(6)
	return &Schedule{
		payment: m.MonthlyPayment(),
		balance: m.amount,
		rate:    monthly,
	}
}

// Next produces the next (principal, interest) pair, or ok=false once the
// loan is paid off. In the final period the principal portion is capped at
// the remaining balance, so the last payment may be smaller than the rest.
func (s *Schedule) Next() (ScheduleEntry, bool) {
	if s.done {
		return ScheduleEntry{}, false
	}
	interest := DollarHalfUp(s.balance.Mul(s.rate))
	if s.payment.GreaterThanOrEqual(s.balance.Add(interest)) {
		s.done = true
		return ScheduleEntry{Principal: s.balance, Interest: interest}, true
	}
	principal := s.payment.Sub(interest)
	s.balance = s.balance.Sub(principal)
	return ScheduleEntry{Principal: principal, Interest: interest}, true
}
