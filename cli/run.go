package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"mortgage-calc/domain"
	"mortgage-calc/repository"
	"mortgage-calc/service"
)

// Run parses argv, performs the requested calculations and renders them to
// stdout. It returns the process exit code: 0 on success, 2 on usage errors,
// 1 on calculation errors.
func Run(argv []string, stdout, stderr io.Writer) int {
	fs := NewFlagSet("mortgage")
	fs.SetOutput(stderr)

	opt, err := ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}

	in := domain.MortgageInput{
		InterestRate: opt.Interest / 100,
		Amount:       decimal.NewFromFloat(opt.Amount),
	}
	// Months, when given, win over the years default.
	if opt.Months != 0 {
		in.Months = opt.Months
	} else {
		in.Years = opt.Years
	}
	inflation := opt.Inflation / 100

	mortgages := service.NewMortgageService(repository.NewHistoryMemory())

	sum, err := mortgages.Summarize(in, inflation)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	printSummary(stdout, sum)

	if opt.ScheduleSummary {
		rows, err := mortgages.ScheduleSummary(in, inflation)
		if err != nil {
			fmt.Fprintln(stderr, "error:", err)
			return 1
		}
		printScheduleSummary(stdout, rows)
	}

	if opt.MaxPayment > 0 {
		terms := service.NewTermRecommendationService(mortgages)
		res, err := terms.RecommendTerm(termScanInput(sum, opt))
		if err != nil {
			fmt.Fprintln(stderr, "error:", err)
			return 1
		}
		printTermRecommendations(stdout, res)
	}

	return 0
}

// termScanInput centers the term scan on the loan's own term, clamped to the
// service limits.
func termScanInput(sum domain.Summary, opt Options) domain.TermRecommendationInput {
	minTerm := sum.PayoffMonths - MaxScanRadius
	if minTerm < service.MinTermMonths {
		minTerm = service.MinTermMonths
	}
	maxTerm := minTerm + service.MaxTermRangeMonths
	if maxTerm > service.MaxTermMonths {
		maxTerm = service.MaxTermMonths
	}
	return domain.TermRecommendationInput{
		InterestRate:      opt.Interest / 100,
		Amount:            sum.Amount,
		MinTermMonths:     minTerm,
		MaxTermMonths:     maxTerm,
		MaxMonthlyPayment: decimal.NewFromFloat(opt.MaxPayment),
		Preference:        domain.PreferBalanced,
	}
}

// MaxScanRadius is how far below the requested term the recommendation scan
// starts.
const MaxScanRadius = service.MaxTermRangeMonths / 2
