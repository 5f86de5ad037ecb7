// Package ui renders a report for one-shot terminal runs.
package ui

import (
	"fmt"

	"github.com/fatih/color"

	"TollSentinel/internal/model"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow, color.Bold)
	red    = color.New(color.FgRed)
	bold   = color.New(color.Bold)
)

// PrintReport writes the full report to stdout.
func PrintReport(r *model.Report) {
	bold.Printf("TollSentinel | %s\n\n", r.Period)

	fmt.Printf("Tolls: %d total, %d eligible, $%.2f eligible amount\n",
		r.Tally.TotalCount, r.Tally.EligibleCount, r.Tally.EligibleAmountSum)
	tierLine(r.ActualTier, "Current tier")

	if r.Estimate != nil {
		e := r.Estimate
		fmt.Printf("\nDay %d of %d: daily average %.2f, projected %.1f eligible tolls\n",
			e.CurrentDay, e.DaysInMonth, e.DailyAverage, e.ProjectedTotal)
		tierLine(r.ProjectedTier, "Projected tier")
	}

	if len(r.Discounted) > 0 {
		fmt.Printf("\n%-12s %-22s %8s %10s %8s\n", "Date", "Facility", "Toll", "Discounted", "Saved")
		for _, d := range r.Discounted {
			fmt.Printf("%-12s %-22s %8s %10.2f %8.2f\n",
				d.Transaction.TransactionDate, d.Transaction.Facility,
				d.Transaction.AmountRaw, d.Discounted, d.Savings)
		}
	}

	if v := r.Verification; v != nil {
		fmt.Printf("\nVerification: expected $%.2f, stated $%.2f\n", v.ExpectedDiscount, v.StatedDiscount)
		if v.Matched {
			green.Println("Discount matches the statement")
		} else {
			red.Printf("Mismatch: %+.2f (%s)\n", v.Difference, v.Direction)
		}
	}
}

// PrintError writes a failed run to stderr-style colored output.
func PrintError(err error) {
	red.Printf("Error: %v\n", err)
}

func tierLine(t model.Tier, label string) {
	switch t {
	case model.TierGold:
		yellow.Printf("%s: Gold (40%%)\n", label)
	case model.TierBronze:
		green.Printf("%s: Bronze (20%%)\n", label)
	default:
		fmt.Printf("%s: None (0%%)\n", label)
	}
}
