package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func thirtyYear(t *testing.T) *Mortgage {
	t.Helper()
	m, err := NewMortgage(MortgageInput{
		InterestRate: 0.06,
		Months:       360,
		Amount:       decimal.NewFromInt(100000),
	})
	require.NoError(t, err)
	return m
}

func TestNewMortgage_ConflictingTerm(t *testing.T) {
	_, err := NewMortgage(MortgageInput{InterestRate: 0.06, Months: 12, Years: 1})
	require.Error(t, err)

	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Contains(t, inputErr.Msg, "years cannot be specified together with months")
}

func TestNewMortgage_MissingTerm(t *testing.T) {
	_, err := NewMortgage(MortgageInput{InterestRate: 0.06})
	require.Error(t, err)

	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Contains(t, inputErr.Msg, "months or years must be specified")
}

func TestNewMortgage_MonthsAndYearsAgree(t *testing.T) {
	byMonths, err := NewMortgage(MortgageInput{InterestRate: 0.06, Months: 360})
	require.NoError(t, err)
	byYears, err := NewMortgage(MortgageInput{InterestRate: 0.06, Years: 30})
	require.NoError(t, err)

	assert.Equal(t, byMonths.LoanMonths(), byYears.LoanMonths())

	// Fractional years truncate toward zero after the month conversion.
	m, err := NewMortgage(MortgageInput{InterestRate: 0.06, Years: 2.5})
	require.NoError(t, err)
	assert.Equal(t, 30, m.LoanMonths())
}

func TestNewMortgage_DefaultAmount(t *testing.T) {
	m, err := NewMortgage(MortgageInput{InterestRate: 0.06, Years: 30})
	require.NoError(t, err)
	assert.Equal(t, "100000.00", m.Amount().StringFixed(2))
}

func TestNewMortgage_AmountRoundedUpToCents(t *testing.T) {
	m, err := NewMortgage(MortgageInput{
		InterestRate: 0.06,
		Years:        30,
		Amount:       decimal.RequireFromString("999.991"),
	})
	require.NoError(t, err)
	assert.Equal(t, "1000.00", m.Amount().StringFixed(2))
}

func TestMonthlyPayment_ThirtyYearReference(t *testing.T) {
	m := thirtyYear(t)

	assert.Equal(t, "599.56", m.MonthlyPayment().StringFixed(2))
	assert.Equal(t, "7194.72", m.AnnualPayment().StringFixed(2))
	assert.InDelta(t, 1.005, m.MonthGrowth(), 1e-12)
	assert.InDelta(t, 0.0616778, m.APY(), 1e-6)
	assert.Equal(t, 360, m.LoanMonths())
	assert.InDelta(t, 30.0, m.LoanYears(), 1e-12)
}

func TestMonthlyPayment_CoversPrincipal(t *testing.T) {
	cases := []struct {
		rate   float64
		months float64
		amount string
	}{
		{0.01, 12, "1200"},
		{0.06, 360, "100000"},
		{0.06, 12, "1200"},
		{0.12, 120, "350000.55"},
	}
	for _, tc := range cases {
		m, err := NewMortgage(MortgageInput{
			InterestRate: tc.rate,
			Months:       tc.months,
			Amount:       decimal.RequireFromString(tc.amount),
		})
		require.NoError(t, err)

		paid := m.MonthlyPayment().Mul(decimal.NewFromInt(int64(m.LoanMonths())))
		assert.True(t, paid.GreaterThanOrEqual(m.Amount()),
			"rate=%v months=%v: %s paid < %s principal", tc.rate, tc.months, paid, m.Amount())
	}
}

func TestAPY_AtLeastNominalRate(t *testing.T) {
	for _, rate := range []float64{0.001, 0.03, 0.06, 0.12, 0.25} {
		m, err := NewMortgage(MortgageInput{InterestRate: rate, Years: 30})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, m.APY(), rate, "rate=%v", rate)
	}
}

func TestBalance_StartsAtPrincipal(t *testing.T) {
	m := thirtyYear(t)
	assert.Equal(t, "100000.00", m.Balance(0, 0).StringFixed(2))
}

func TestBalance_NearZeroAtMaturity(t *testing.T) {
	// Short loan: the margin from rounding the payment up stays tiny, so the
	// closed form lands within a cent or two of zero.
	m, err := NewMortgage(MortgageInput{
		InterestRate: 0.06,
		Months:       12,
		Amount:       decimal.NewFromInt(1200),
	})
	require.NoError(t, err)
	assert.InDelta(t, 0, m.Balance(12, 0).InexactFloat64(), 0.02)

	// Long loan: the per-payment margin compounds over 360 periods; the
	// closed form goes a few dollars negative while the iterative schedule
	// stops at exactly zero. Still far under one payment.
	long := thirtyYear(t)
	assert.InDelta(t, 0, long.Balance(360, 0).InexactFloat64(), 599.56)
	assert.True(t, long.Balance(360, 0).LessThanOrEqual(decimal.Zero))
}

func TestTotalPayout_FullTerm(t *testing.T) {
	m := thirtyYear(t)
	assert.Equal(t, "215841.60", m.TotalPayout(360, 0).StringFixed(2))
}

func TestTotalPayout_InflationDiscountsToPresentValue(t *testing.T) {
	m := thirtyYear(t)

	nominal := m.TotalPayout(360, 0)
	adjusted := m.TotalPayout(360, 0.02)

	assert.True(t, adjusted.LessThan(nominal),
		"present value %s should be below nominal %s", adjusted, nominal)
	assert.True(t, adjusted.GreaterThan(decimal.Zero))
}

func TestTotalCost_ConsistentWithPayoutAndBalance(t *testing.T) {
	m := thirtyYear(t)
	n := m.LoanMonths()

	want := m.TotalPayout(n, 0).Sub(m.Amount()).Add(m.Balance(n, 0))
	assert.True(t, m.TotalCost(n, 0).Equal(want),
		"TotalCost %s != payout-principal+balance %s", m.TotalCost(n, 0), want)
}

func TestTotalValue_InvertsMonthlyPayment(t *testing.T) {
	m := thirtyYear(t)

	// The payment was rounded up, so the borrowable principal for that
	// payment sits slightly above the actual amount.
	val := m.TotalValue(m.MonthlyPayment())
	assert.True(t, val.GreaterThanOrEqual(m.Amount()))
	assert.InDelta(t, 100000, val.InexactFloat64(), 5)
}
