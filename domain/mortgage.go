package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// MonthsInYear is the number of payment periods in a year.
const MonthsInYear = 12

// DefaultAmount is the principal used when the input leaves it unset.
var DefaultAmount = decimal.NewFromInt(100000)

// MortgageInput carries the raw loan parameters. Exactly one of Months or
// Years must be non-zero; a zero Amount selects DefaultAmount. The rate is a
// fraction (0.06 for 6%), not a percentage.
type MortgageInput struct {
	InterestRate float64
	Months       float64
	Years        float64
	Amount       decimal.Decimal
}

// Mortgage is an immutable fixed-rate loan. Every derived quantity is a pure
// function of the rate, term and principal fixed at construction.
type Mortgage struct {
	rate   float64
	months int
	amount decimal.Decimal
}

// NewMortgage validates the term specification and fixes the loan
// parameters. The principal is rounded to cents immediately; the rate and
// amount are otherwise accepted as given, without range checks.
func NewMortgage(in MortgageInput) (*Mortgage, error) {
	months, err := resolveMonths(in.Months, in.Years)
	if err != nil {
		return nil, err
	}
	amount := in.Amount
	if amount.IsZero() {
		amount = DefaultAmount
	}
	return &Mortgage{
		rate:   in.InterestRate,
		months: months,
		amount: Dollar(amount),
	}, nil
}

func resolveMonths(months, years float64) (int, error) {
	switch {
	case months != 0 && years != 0:
		return 0, &InputError{Msg: "years cannot be specified together with months"}
	case months != 0:
		return int(months), nil
	case years != 0:
		return int(years * MonthsInYear), nil
	default:
		return 0, &InputError{Msg: "months or years must be specified"}
	}
}

// Rate returns the nominal annual interest rate as a fraction.
func (m *Mortgage) Rate() float64 { return m.rate }

// MonthGrowth is the per-period growth factor 1 + rate/12.
func (m *Mortgage) MonthGrowth() float64 { return 1 + m.rate/MonthsInYear }

// APY is the effective annual yield of the monthly-compounded nominal rate.
func (m *Mortgage) APY() float64 {
	return math.Pow(m.MonthGrowth(), MonthsInYear) - 1
}

// LoanMonths returns the number of payment periods.
func (m *Mortgage) LoanMonths() int { return m.months }

// LoanYears returns the term expressed in years.
func (m *Mortgage) LoanYears() float64 { return float64(m.months) / MonthsInYear }

// Amount returns the principal, rounded to cents.
func (m *Mortgage) Amount() decimal.Decimal { return m.amount }

// MonthlyPayment solves the fixed-payment annuity equation and rounds up to
// the next cent. Rounding up leaves a small margin over the exact annuity
// payment, which guarantees the loan fully amortizes within the term.
func (m *Mortgage) MonthlyPayment() decimal.Decimal {
	pre := m.amountFloat() * m.rate /
		(MonthsInYear * (1 - math.Pow(1/m.MonthGrowth(), float64(m.months))))
	return Dollar(FromFloat(pre))
}

// TotalValue inverts the payment formula: the principal a given level monthly
// payment could amortize over this loan's term and rate.
func (m *Mortgage) TotalValue(monthlyPayment decimal.Decimal) decimal.Decimal {
	pay, _ := monthlyPayment.Float64()
	val := pay / m.rate *
		(MonthsInYear * (1 - math.Pow(1/m.MonthGrowth(), float64(m.months))))
	return Dollar(FromFloat(val))
}

// AnnualPayment is the payment total over one year.
func (m *Mortgage) AnnualPayment() decimal.Decimal {
	return m.MonthlyPayment().Mul(decimal.NewFromInt(MonthsInYear))
}

// TotalPayout is the sum of payments made through the first months periods.
// A non-zero annual inflation rate discounts each payment to present value
// with the monthly factor (1+inflation)^(-1/12); the discounted sum is the
// closed form of the resulting geometric series.
func (m *Mortgage) TotalPayout(months int, inflation float64) decimal.Decimal {
	if inflation == 0 {
		return m.MonthlyPayment().Mul(decimal.NewFromInt(int64(months)))
	}
	d := math.Pow(1+inflation, -1.0/MonthsInYear)
	pay, _ := m.MonthlyPayment().Float64()
	pv := pay * d * (1 - math.Pow(d, float64(months))) / (1 - d)
	return DollarHalfUp(FromFloat(pv))
}

// Balance is the outstanding principal after the given number of monthly
// payments, computed analytically. It does not account for the cent-level
// rounding the iterative schedule applies each period, so near maturity it
// can differ from the schedule by a few cents. A non-zero inflation rate
// expresses the balance in present-value terms.
func (m *Mortgage) Balance(months int, inflation float64) decimal.Decimal {
	g := m.MonthGrowth()
	pay, _ := m.MonthlyPayment().Float64()

	// Total owed had nothing been paid, minus the paid-in amounts grown by
	// the same factor for each month since their payment.
	totalAtDate := m.amountFloat() * math.Pow(g, float64(months))
	totalPaid := pay * (1 - math.Pow(g, float64(months))) / (1 - g)

	bal := totalAtDate - totalPaid
	if inflation != 0 {
		bal *= math.Pow(1+inflation, -float64(months)/MonthsInYear)
	}
	return Dollar(FromFloat(bal))
}

// TotalCost is the payout through the given horizon minus the principal
// retired by then: the interest (and, under inflation, purchasing-power)
// cost of the loan, isolated from principal repayment.
func (m *Mortgage) TotalCost(months int, inflation float64) decimal.Decimal {
	retired := m.amount.Sub(m.Balance(months, inflation))
	return m.TotalPayout(months, inflation).Sub(retired)
}

func (m *Mortgage) amountFloat() float64 {
	f, _ := m.amount.Float64()
	return f
}
