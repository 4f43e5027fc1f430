package model

// Cadence is one of the four pacing periods.
type Cadence string

const (
	Daily   Cadence = "daily"
	Weekly  Cadence = "weekly"
	Monthly Cadence = "monthly"
	Yearly  Cadence = "yearly"
)

// Cadences lists the periods in display order.
var Cadences = []Cadence{Daily, Weekly, Monthly, Yearly}

// Amount is a value expressed in both currencies.
type Amount struct {
	INR float64
	USD float64
}

// Buckets are the period counts for a goal's duration. Days, weeks and months
// are independent floors of years*365, years*52 and years*12, so days/7 need
// not equal weeks.
type Buckets struct {
	Days   int
	Weeks  int
	Months int
	Years  float64
}

// Pacing is a per-period amount for each cadence.
type Pacing struct {
	Daily   Amount
	Weekly  Amount
	Monthly Amount
	Yearly  Amount
}

// For returns the amount for a cadence.
func (p Pacing) For(c Cadence) Amount {
	switch c {
	case Daily:
		return p.Daily
	case Weekly:
		return p.Weekly
	case Monthly:
		return p.Monthly
	default:
		return p.Yearly
	}
}

// Progress summarizes payments against a goal.
type Progress struct {
	Payments     int
	TotalSentUSD float64
	TotalPaidINR float64
	RemainingINR float64 // negative when overpaid
	Percent      float64 // raw, not clamped
}

// Fraction returns progress as 0..1 for bars and gauges.
func (p Progress) Fraction() float64 {
	f := p.Percent / 100
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Summary is everything the calculator derives for one goal.
type Summary struct {
	Goal      Goal
	Rate      float64
	Buckets   Buckets
	Target    Pacing // full amount spread over the duration
	Remaining Pacing // remaining balance spread over the duration
	Progress  Progress
}

// TimeToGoal estimates how long a goal takes at a given daily INR rate.
type TimeToGoal struct {
	Days   float64
	Weeks  float64
	Months float64
	Years  float64
}

// Projection is a custom target derived from one manually fixed cadence.
type Projection struct {
	Entry  Cadence
	Pacing Pacing
	// ETA is set only by the INR-first convention.
	ETA *TimeToGoal
}

// Metric is a labelled, pre-formatted value for display.
type Metric struct {
	Label string
	Value string
}
