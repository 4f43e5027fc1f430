package cli

import (
	"fmt"

	"github.com/theirongolddev/goalpace/internal/model"
)

// Metric label sets. The full-target and remaining-balance views share the
// same period suffixes but read differently.
var (
	targetLabels    = [4]string{"Daily Send Target", "Weekly Send Target", "Monthly Send Target", "Yearly Total"}
	remainingLabels = [4]string{"Daily Goal", "Weekly Goal", "Monthly Goal", "Yearly Goal"}
	customLabels    = [4]string{"Daily", "Weekly", "Monthly", "Yearly"}
)

// TargetMetrics lists the full-amount pacing of a summary.
func TargetMetrics(s model.Summary) []model.Metric {
	return pacingMetrics(targetLabels, s.Target, s.Buckets)
}

// RemainingMetrics lists the pacing needed to clear the remaining balance.
func RemainingMetrics(s model.Summary) []model.Metric {
	return pacingMetrics(remainingLabels, s.Remaining, s.Buckets)
}

// ProjectionMetrics lists a custom target projection. The period suffixes
// still show the goal's own duration buckets.
func ProjectionMetrics(p model.Projection, b model.Buckets) []model.Metric {
	m := pacingMetrics(customLabels, p.Pacing, b)
	if p.ETA != nil {
		m = append(m, model.Metric{Label: "Time to Goal", Value: FormatETA(*p.ETA)})
	}
	return m
}

// ProgressMetrics lists paid, remaining and percent complete.
func ProgressMetrics(s model.Summary) []model.Metric {
	p := s.Progress
	return []model.Metric{
		{Label: "Paid", Value: fmt.Sprintf("%s / %s (%s)", FormatINR(p.TotalPaidINR), FormatINR(s.Goal.Amount), FormatPercent(p.Percent))},
		{Label: "Sent", Value: fmt.Sprintf("%s in %d payments", FormatUSD(p.TotalSentUSD), p.Payments)},
		{Label: "Remaining", Value: FormatINR(p.RemainingINR)},
	}
}

// FormatETA renders a time-to-goal estimate.
func FormatETA(t model.TimeToGoal) string {
	if t.Days == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.0f days (%.1f weeks, %.1f months, %.2f years)", t.Days, t.Weeks, t.Months, t.Years)
}

// CaptionFor returns the encouragement line shown under remaining pacing.
func CaptionFor(p model.Progress) string {
	if p.RemainingINR <= 0 && p.Payments > 0 {
		return "Goal reached"
	}
	return "Keep going — every ₹ counts!"
}

func pacingMetrics(labels [4]string, p model.Pacing, b model.Buckets) []model.Metric {
	periods := [4]string{
		fmt.Sprintf("%d days", b.Days),
		fmt.Sprintf("%d weeks", b.Weeks),
		fmt.Sprintf("%d months", b.Months),
		FormatYears(b.Years),
	}
	out := make([]model.Metric, 0, len(model.Cadences))
	for i, c := range model.Cadences {
		out = append(out, model.Metric{
			Label: labels[i],
			Value: fmt.Sprintf("%s (%s)", FormatPair(p.For(c)), periods[i]),
		})
	}
	return out
}

// PaymentTable builds the payment history table with a running INR total.
func PaymentTable(title string, payments []model.Payment) Table {
	rows := make([][]string, 0, len(payments)+2)
	var usd, inr float64
	for _, p := range payments {
		usd += p.USDSent
		inr += p.INREquiv
		rows = append(rows, []string{
			p.Date.Format(model.DateLayout),
			FormatUSD(p.USDSent),
			FormatINR(p.INREquiv),
			FormatINR(inr),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", FormatUSD(usd), FormatINR(inr), ""})

	return Table{
		Title:   "Payments  " + title,
		Headers: []string{"Date", "USD Sent", "INR Equiv", "Running Total"},
		Rows:    rows,
	}
}
