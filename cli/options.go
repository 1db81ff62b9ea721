package cli

import (
	"errors"
	"flag"
	"fmt"
)

// Options holds all CLI flags. Rates arrive in percent and are converted to
// fractions when the mortgage input is built.
type Options struct {
	Interest        float64
	Years           float64
	Months          float64
	Amount          float64
	ScheduleSummary bool
	Inflation       float64
	MaxPayment      float64 // 0 disables the term recommendation scan
}

// NewFlagSet returns a configured FlagSet with custom usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), `%s: mortgage amortization tools

Usage of %s:
`, name, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options

	fs.Float64Var(&opt.Interest, "i", 6, "annual interest rate, percent (shorthand) [6]")
	fs.Float64Var(&opt.Interest, "interest", 6, "annual interest rate, percent [6]")
	fs.Float64Var(&opt.Years, "y", 30, "loan term in years (shorthand) [30]")
	fs.Float64Var(&opt.Years, "loan-years", 30, "loan term in years [30]")
	fs.Float64Var(&opt.Months, "m", 0, "loan term in months, overrides years (shorthand) [none]")
	fs.Float64Var(&opt.Months, "loan-months", 0, "loan term in months, overrides years [none]")
	fs.Float64Var(&opt.Amount, "a", 100000, "loan amount (shorthand) [100000]")
	fs.Float64Var(&opt.Amount, "amount", 100000, "loan amount [100000]")
	fs.BoolVar(&opt.ScheduleSummary, "s", false, "print year-by-year repayment table (shorthand) [false]")
	fs.BoolVar(&opt.ScheduleSummary, "schedule-summary", false, "print year-by-year repayment table [false]")
	fs.Float64Var(&opt.Inflation, "f", 0, "annual inflation rate, percent (shorthand) [0]")
	fs.Float64Var(&opt.Inflation, "inflation", 0, "annual inflation rate, percent [0]")
	fs.Float64Var(&opt.MaxPayment, "p", 0, "affordable monthly payment, prints term recommendations (shorthand) [0]")
	fs.Float64Var(&opt.MaxPayment, "max-payment", 0, "affordable monthly payment, prints term recommendations [0]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}

	// Validation
	if args := fs.Args(); len(args) > 0 {
		return opt, fmt.Errorf("unexpected arguments: %v", args)
	}
	if opt.Months < 0 {
		return opt, errors.New("--loan-months must be ≥ 0")
	}
	if opt.Years < 0 {
		return opt, errors.New("--loan-years must be ≥ 0")
	}
	return opt, nil
}
