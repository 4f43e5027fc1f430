package cli

import (
	"strings"
	"testing"

	"github.com/theirongolddev/goalpace/internal/calc"
	"github.com/theirongolddev/goalpace/internal/model"
	"github.com/theirongolddev/goalpace/internal/projector"
)

func TestTargetMetrics_Car(t *testing.T) {
	g := model.Goal{ID: 1, Title: "Car", Amount: 120000, Currency: "INR", Years: 2}
	s := calc.Summarize(g, nil, 83)

	m := TargetMetrics(s)
	if len(m) != 4 {
		t.Fatalf("got %d metrics, want 4", len(m))
	}
	wantLabels := []string{"Daily Send Target", "Weekly Send Target", "Monthly Send Target", "Yearly Total"}
	for i, l := range wantLabels {
		if m[i].Label != l {
			t.Errorf("metric %d label = %q, want %q", i, m[i].Label, l)
		}
	}
	if m[0].Value != "$1.98 → ₹164 (730 days)" {
		t.Errorf("daily = %q", m[0].Value)
	}
	if !strings.HasSuffix(m[1].Value, "(104 weeks)") || !strings.HasSuffix(m[2].Value, "(24 months)") {
		t.Errorf("period suffixes wrong: %q, %q", m[1].Value, m[2].Value)
	}
	if !strings.HasSuffix(m[3].Value, "(2.0 years)") {
		t.Errorf("yearly = %q", m[3].Value)
	}
}

func TestRemainingMetrics_ZeroYears(t *testing.T) {
	g := model.Goal{ID: 1, Title: "Now", Amount: 1000, Years: 0}
	for _, m := range RemainingMetrics(calc.Summarize(g, nil, 83)) {
		if !strings.HasPrefix(m.Value, "$0.00 → ₹0 ") {
			t.Errorf("%s = %q, want zeros", m.Label, m.Value)
		}
	}
}

func TestProjectionMetrics_ETAOnlyForINR(t *testing.T) {
	b := calc.BucketsFor(1)

	usd := ProjectionMetrics(projector.ProjectUSD(model.Daily, 10, 83), b)
	if len(usd) != 4 {
		t.Errorf("usd projection has %d metrics, want 4", len(usd))
	}

	inr := ProjectionMetrics(projector.ProjectINR(model.Daily, 100, 83, 36500), b)
	if len(inr) != 5 || inr[4].Label != "Time to Goal" {
		t.Fatalf("inr projection metrics = %+v", inr)
	}
	if !strings.HasPrefix(inr[4].Value, "365 days") {
		t.Errorf("eta = %q", inr[4].Value)
	}
}

func TestCaptionFor(t *testing.T) {
	if got := CaptionFor(model.Progress{Payments: 1, RemainingINR: 10}); got != "Keep going — every ₹ counts!" {
		t.Errorf("caption = %q", got)
	}
	if got := CaptionFor(model.Progress{Payments: 2, RemainingINR: -5}); got != "Goal reached" {
		t.Errorf("caption = %q", got)
	}
}

func TestPaymentTable_RunningTotal(t *testing.T) {
	pays := []model.Payment{
		{USDSent: 10, INREquiv: 830},
		{USDSent: 20, INREquiv: 1660},
		{USDSent: 30, INREquiv: 2490},
	}
	tbl := PaymentTable("Fees", pays)
	if len(tbl.Rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(tbl.Rows))
	}
	if got := tbl.Rows[2][3]; strings.ReplaceAll(got, ",", "") != "₹4980" {
		t.Errorf("running total = %q, want ₹4980", got)
	}
	if got := tbl.Rows[4][1]; got != "$60.00" {
		t.Errorf("usd total = %q", got)
	}
}
