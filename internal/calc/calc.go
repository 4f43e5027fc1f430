// Package calc computes pacing targets and progress for a goal.
//
// All divisions go through div: a zero denominator yields 0 instead of an
// error or Inf, so degenerate goals (years or amount of 0) render as zeros.
package calc

import (
	"math"

	"github.com/theirongolddev/goalpace/internal/model"
)

// Period lengths used to split a goal's duration. These are independent
// approximations of a year, not a consistent calendar.
const (
	DaysPerYear   = 365
	WeeksPerYear  = 52
	MonthsPerYear = 12
)

// BucketsFor floors years into day, week and month counts.
func BucketsFor(years float64) model.Buckets {
	if years <= 0 || math.IsNaN(years) {
		return model.Buckets{}
	}
	return model.Buckets{
		Days:   int(math.Floor(years * DaysPerYear)),
		Weeks:  int(math.Floor(years * WeeksPerYear)),
		Months: int(math.Floor(years * MonthsPerYear)),
		Years:  years,
	}
}

// PacingFor spreads an INR total over the buckets and converts each period
// to USD at rate.
func PacingFor(totalINR float64, b model.Buckets, rate float64) model.Pacing {
	return model.Pacing{
		Daily:   both(div(totalINR, float64(b.Days)), rate),
		Weekly:  both(div(totalINR, float64(b.Weeks)), rate),
		Monthly: both(div(totalINR, float64(b.Months)), rate),
		Yearly:  both(div(totalINR, b.Years), rate),
	}
}

// ProgressFor sums payments against the goal amount.
func ProgressFor(amountINR float64, payments []model.Payment) model.Progress {
	p := model.Progress{Payments: len(payments)}
	for _, pay := range payments {
		p.TotalPaidINR += pay.INREquiv
		p.TotalSentUSD += pay.USDSent
	}
	p.RemainingINR = amountINR - p.TotalPaidINR
	if amountINR > 0 {
		p.Percent = p.TotalPaidINR / amountINR * 100
	}
	return p
}

// Summarize derives buckets, both pacing modes and progress for a goal.
func Summarize(g model.Goal, payments []model.Payment, rate float64) model.Summary {
	b := BucketsFor(g.Years)
	prog := ProgressFor(g.Amount, payments)

	target := model.Pacing{}
	if g.Amount > 0 {
		target = PacingFor(g.Amount, b, rate)
	}

	return model.Summary{
		Goal:      g,
		Rate:      rate,
		Buckets:   b,
		Target:    target,
		Remaining: PacingFor(prog.RemainingINR, b, rate),
		Progress:  prog,
	}
}

// ToUSD converts INR to USD, returning 0 for a non-positive rate.
func ToUSD(inr, rate float64) float64 {
	if rate <= 0 {
		return 0
	}
	return inr / rate
}

func both(inr, rate float64) model.Amount {
	return model.Amount{INR: inr, USD: ToUSD(inr, rate)}
}

func div(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
