package cli

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"mortgage-calc/domain"
)

func printSummary(w io.Writer, sum domain.Summary) {
	printRatio(w, "Rate", sum.Rate)
	printRatio(w, "Month Growth", sum.MonthGrowth)
	printRatio(w, "APY", sum.APY)
	fmt.Fprintf(w, "%25s:  %12.0f\n", "Payoff Years", sum.PayoffYears)
	fmt.Fprintf(w, "%25s:  %12d\n", "Payoff Months", sum.PayoffMonths)
	printMoney(w, "Amount", sum.Amount)
	printMoney(w, "Monthly Payment", sum.MonthlyPayment)
	printMoney(w, "Annual Payment", sum.AnnualPayment)
	printMoney(w, "Total Payout", sum.TotalPayout)
	printMoney(w, "Total Cost", sum.TotalCost)
	if sum.Inflation != 0 {
		printRatio(w, "Inflation", sum.Inflation)
		printMoney(w, "Adjusted Payout", sum.AdjustedPayout)
		printMoney(w, "Adjusted Cost", sum.AdjustedCost)
	}
}

func printScheduleSummary(w io.Writer, rows []domain.YearRow) {
	fmt.Fprintf(w, "\n\nSummary of repayment schedule\n")
	fmt.Fprintf(w, "%5s %12s %12s %12s\n", "year", "balance", "paid", "net cost")
	for _, row := range rows {
		fmt.Fprintf(w, "%5d %12s %12s %12s\n",
			row.Year,
			row.Balance.StringFixed(2),
			row.Paid.StringFixed(2),
			row.NetCost.StringFixed(2))
	}
}

func printTermRecommendations(w io.Writer, res domain.TermRecommendationResult) {
	fmt.Fprintf(w, "\n\nRecommended term: %d months\n", res.RecommendedTerm)
	fmt.Fprintf(w, "%8s %12s %14s %7s\n", "months", "payment", "interest", "score")
	for _, rec := range res.Recommendations {
		fmt.Fprintf(w, "%8d %12s %14s %7.2f\n",
			rec.TermMonths,
			rec.MonthlyPayment.StringFixed(2),
			rec.TotalInterest.StringFixed(2),
			rec.Score)
	}
}

func printRatio(w io.Writer, label string, v float64) {
	fmt.Fprintf(w, "%25s:  %12.6f\n", label, v)
}

func printMoney(w io.Writer, label string, v decimal.Decimal) {
	fmt.Fprintf(w, "%25s:  %12s\n", label, v.StringFixed(2))
}
