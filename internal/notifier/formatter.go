package notifier

import (
	"fmt"
	"strings"

	"TollSentinel/internal/model"
)

// FormatReport formats a pipeline report into a Telegram message.
func FormatReport(r *model.Report) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("🛣 <b>TollSentinel</b> | %s\n\n", r.Period))

	b.WriteString(fmt.Sprintf("Tolls this period: %d (%d eligible)\n", r.Tally.TotalCount, r.Tally.EligibleCount))
	b.WriteString(fmt.Sprintf("Eligible amount: $%.2f\n", r.Tally.EligibleAmountSum))
	b.WriteString(fmt.Sprintf("Current tier: <b>%s</b> (%.0f%%)\n", r.ActualTier.Label(), r.ActualTier.Percent()))

	if r.Estimate != nil {
		e := r.Estimate
		b.WriteString(fmt.Sprintf("\n📈 <b>Month-end projection</b> (day %d of %d)\n", e.CurrentDay, e.DaysInMonth))
		b.WriteString(fmt.Sprintf("Daily average: %.2f eligible tolls\n", e.DailyAverage))
		b.WriteString(fmt.Sprintf("Projected total: %.1f → tracking toward <b>%s</b> (%.0f%%)\n",
			e.ProjectedTotal, r.ProjectedTier.Label(), r.ProjectedTier.Percent()))
	}

	if r.Verification != nil {
		v := r.Verification
		b.WriteString("\n🧾 <b>Statement verification</b>\n")
		b.WriteString(fmt.Sprintf("Expected discount: $%.2f | Stated: $%.2f\n", v.ExpectedDiscount, v.StatedDiscount))
		if v.Matched {
			b.WriteString("Matched ✅\n")
		} else {
			b.WriteString(fmt.Sprintf("Mismatch ❌ (%+.2f, %s)\n", v.Difference, v.Direction))
		}
	}

	var savings float64
	for _, d := range r.Discounted {
		savings += d.Savings
	}
	if savings > 0 {
		b.WriteString(fmt.Sprintf("\nSavings at %.0f%%: $%.2f\n", r.EffectiveTier.Percent(), savings))
	}

	return b.String()
}

// FormatError formats a failed run into a Telegram message.
func FormatError(period model.MonthPeriod, err error) string {
	return fmt.Sprintf("❌ <b>TollSentinel</b> | %s\n\ncheck failed: %v", period, err)
}
