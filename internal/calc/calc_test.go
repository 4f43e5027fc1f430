package calc

import (
	"math"
	"testing"

	"github.com/theirongolddev/goalpace/internal/model"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestBucketsFor(t *testing.T) {
	tests := []struct {
		years                float64
		days, weeks, months int
	}{
		{2, 730, 104, 24},
		{1, 365, 52, 12},
		{0.5, 182, 26, 6},
		{0.1, 36, 5, 1},
		{0, 0, 0, 0},
		{-1, 0, 0, 0},
	}
	for _, tt := range tests {
		b := BucketsFor(tt.years)
		if b.Days != tt.days || b.Weeks != tt.weeks || b.Months != tt.months {
			t.Errorf("BucketsFor(%v) = %d/%d/%d, want %d/%d/%d",
				tt.years, b.Days, b.Weeks, b.Months, tt.days, tt.weeks, tt.months)
		}
	}
}

func TestSummarize_CarGoal(t *testing.T) {
	g := model.Goal{ID: 1, Title: "Car", Amount: 120000, Currency: "INR", Years: 2}
	s := Summarize(g, nil, 83.0)

	if s.Buckets.Days != 730 || s.Buckets.Weeks != 104 || s.Buckets.Months != 24 {
		t.Fatalf("buckets = %+v, want 730/104/24", s.Buckets)
	}
	if !almost(s.Target.Daily.INR, 120000.0/730) {
		t.Errorf("daily INR = %.4f, want %.4f", s.Target.Daily.INR, 120000.0/730)
	}
	if math.Round(s.Target.Daily.INR*100)/100 != 164.38 {
		t.Errorf("daily INR rounds to %.2f, want 164.38", s.Target.Daily.INR)
	}
	if !almost(s.Target.Daily.USD, 120000.0/730/83.0) {
		t.Errorf("daily USD = %.4f", s.Target.Daily.USD)
	}
	if !almost(s.Target.Weekly.INR, 120000.0/104) {
		t.Errorf("weekly INR = %.4f", s.Target.Weekly.INR)
	}
	if s.Target.Monthly.INR != 5000 {
		t.Errorf("monthly INR = %.4f, want 5000", s.Target.Monthly.INR)
	}
	if s.Target.Yearly.INR != 60000 {
		t.Errorf("yearly INR = %.4f, want 60000", s.Target.Yearly.INR)
	}
	// With no payments the remaining pacing equals the full target.
	if s.Remaining != s.Target {
		t.Errorf("remaining pacing %+v != target %+v", s.Remaining, s.Target)
	}
}

func TestProgressFor(t *testing.T) {
	rate := 83.0
	var payments []model.Payment
	for _, usd := range []float64{10, 20, 30} {
		payments = append(payments, model.Payment{USDSent: usd, INREquiv: usd * rate})
	}

	p := ProgressFor(8300, payments)
	if p.TotalPaidINR != 4980 {
		t.Errorf("TotalPaidINR = %.2f, want 4980", p.TotalPaidINR)
	}
	if p.RemainingINR != 3320 {
		t.Errorf("RemainingINR = %.2f, want 3320", p.RemainingINR)
	}
	if !almost(p.Percent, 60) {
		t.Errorf("Percent = %.4f, want 60", p.Percent)
	}
	if p.TotalSentUSD != 60 || p.Payments != 3 {
		t.Errorf("TotalSentUSD=%.2f Payments=%d, want 60/3", p.TotalSentUSD, p.Payments)
	}
}

func TestProgressFor_Overpaid(t *testing.T) {
	p := ProgressFor(1000, []model.Payment{{USDSent: 20, INREquiv: 1660}})
	if p.RemainingINR != -660 {
		t.Errorf("RemainingINR = %.2f, want -660", p.RemainingINR)
	}
	if !almost(p.Percent, 166) {
		t.Errorf("raw Percent = %.2f, want 166 (unclamped)", p.Percent)
	}
	if p.Fraction() != 1 {
		t.Errorf("Fraction = %.2f, want 1 (clamped)", p.Fraction())
	}
}

func TestProgressFor_Monotonic(t *testing.T) {
	var payments []model.Payment
	last := -1.0
	for _, usd := range []float64{0, 5, 0, 12.5, 100, 3} {
		payments = append(payments, model.Payment{USDSent: usd, INREquiv: usd * 83})
		p := ProgressFor(50000, payments)
		if p.Percent < last {
			t.Fatalf("percent decreased from %.4f to %.4f after appending %.2f", last, p.Percent, usd)
		}
		last = p.Percent
	}
}

func TestDivisionGuard(t *testing.T) {
	cases := []model.Goal{
		{Title: "zero years", Amount: 10000, Years: 0},
		{Title: "zero amount", Amount: 0, Years: 2},
		{Title: "both zero"},
	}
	for _, g := range cases {
		s := Summarize(g, nil, 83)
		for _, c := range model.Cadences {
			if a := s.Target.For(c); a.INR != 0 || a.USD != 0 {
				t.Errorf("%s: target %s = %+v, want zero", g.Title, c, a)
			}
			if a := s.Remaining.For(c); a.INR != 0 || a.USD != 0 {
				t.Errorf("%s: remaining %s = %+v, want zero", g.Title, c, a)
			}
		}
		if s.Progress.Percent != 0 {
			t.Errorf("%s: percent = %.2f, want 0", g.Title, s.Progress.Percent)
		}
	}
}

func TestToUSD_ZeroRate(t *testing.T) {
	if got := ToUSD(830, 0); got != 0 {
		t.Errorf("ToUSD(830, 0) = %v, want 0", got)
	}
	if got := ToUSD(830, 83); got != 10 {
		t.Errorf("ToUSD(830, 83) = %v, want 10", got)
	}
}
