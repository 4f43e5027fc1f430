// Package projector derives the other three cadences when the user fixes one
// manually.
//
// Two conventions exist. Both scale through a daily figure with the fixed
// ratios 7, 30 and 365, so a 30-day month is used here even though the goal
// calculator uses years*12 months (about 30.42 days each):
//
//   - USD (default): the entered value is USD; INR = USD * rate.
//   - INR: the entered value is INR; USD = INR / rate. It also estimates the
//     time needed to reach the goal amount at the derived daily INR.
package projector

import (
	"fmt"

	"github.com/theirongolddev/goalpace/internal/model"
)

// Days per cadence used for custom targets.
const (
	DaysPerWeek  = 7
	DaysPerMonth = 30
	DaysPerYear  = 365
)

// Convention selects which currency the custom entry is denominated in.
type Convention string

const (
	ConventionUSD Convention = "usd"
	ConventionINR Convention = "inr"
)

// ParseConvention maps a config value to a Convention. Empty means USD.
func ParseConvention(s string) (Convention, error) {
	switch Convention(s) {
	case "", ConventionUSD:
		return ConventionUSD, nil
	case ConventionINR:
		return ConventionINR, nil
	}
	return "", fmt.Errorf("unknown target convention %q (want usd or inr)", s)
}

// daysIn returns the day count of one period of c.
func daysIn(c model.Cadence) float64 {
	switch c {
	case model.Weekly:
		return DaysPerWeek
	case model.Monthly:
		return DaysPerMonth
	case model.Yearly:
		return DaysPerYear
	default:
		return 1
	}
}

// scale returns per-cadence values from a single daily figure. Each cadence
// is computed directly from daily so nothing is re-derived through another
// cadence. Results are exact multiples of the daily entry only; entering a
// weekly or monthly value divides back to a daily figure first, so chaining
// derived values through another entry can be off in the last bits.
func scale(daily float64) (d, w, m, y float64) {
	return daily, daily * DaysPerWeek, daily * DaysPerMonth, daily * DaysPerYear
}

// spread builds the four values with the entry cadence kept exactly as given.
func spread(entry model.Cadence, value float64) (d, w, m, y float64) {
	d, w, m, y = scale(value / daysIn(entry))
	switch entry {
	case model.Daily:
		d = value
	case model.Weekly:
		w = value
	case model.Monthly:
		m = value
	case model.Yearly:
		y = value
	}
	return d, w, m, y
}

// ProjectUSD applies the USD convention: value is a USD amount for entry.
func ProjectUSD(entry model.Cadence, value, rate float64) model.Projection {
	d, w, m, y := spread(entry, value)
	return model.Projection{
		Entry: entry,
		Pacing: model.Pacing{
			Daily:   model.Amount{USD: d, INR: d * rate},
			Weekly:  model.Amount{USD: w, INR: w * rate},
			Monthly: model.Amount{USD: m, INR: m * rate},
			Yearly:  model.Amount{USD: y, INR: y * rate},
		},
	}
}

// ProjectINR applies the INR convention: value is an INR amount for entry.
// amountINR is the goal amount used for the time-to-goal estimate.
func ProjectINR(entry model.Cadence, value, rate, amountINR float64) model.Projection {
	d, w, m, y := spread(entry, value)
	eta := EstimateTime(amountINR, d)
	return model.Projection{
		Entry: entry,
		Pacing: model.Pacing{
			Daily:   model.Amount{INR: d, USD: usd(d, rate)},
			Weekly:  model.Amount{INR: w, USD: usd(w, rate)},
			Monthly: model.Amount{INR: m, USD: usd(m, rate)},
			Yearly:  model.Amount{INR: y, USD: usd(y, rate)},
		},
		ETA: &eta,
	}
}

// Project dispatches on the convention.
func Project(conv Convention, entry model.Cadence, value, rate, amountINR float64) model.Projection {
	if conv == ConventionINR {
		return ProjectINR(entry, value, rate, amountINR)
	}
	return ProjectUSD(entry, value, rate)
}

// EstimateTime returns how long amountINR takes at dailyINR per day.
// A zero daily rate yields a zero estimate.
func EstimateTime(amountINR, dailyINR float64) model.TimeToGoal {
	if dailyINR == 0 {
		return model.TimeToGoal{}
	}
	days := amountINR / dailyINR
	return model.TimeToGoal{
		Days:   days,
		Weeks:  days / DaysPerWeek,
		Months: days / DaysPerMonth,
		Years:  days / DaysPerYear,
	}
}

func usd(inr, rate float64) float64 {
	if rate <= 0 {
		return 0
	}
	return inr / rate
}
