package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/goalpace/internal/tui/theme"
)

func TestColorForFraction(t *testing.T) {
	theme.SetActive("terminal")
	defer theme.SetActive("flexoki-dark")

	if got := ColorForFraction(0.1); got != theme.Active.Cyan {
		t.Errorf("0.1 -> %v, want cyan", got)
	}
	if got := ColorForFraction(0.6); got != theme.Active.Accent {
		t.Errorf("0.6 -> %v, want accent", got)
	}
	if got := ColorForFraction(1); got != theme.Active.Green {
		t.Errorf("1 -> %v, want green", got)
	}
}

func TestGoalBarShowsRawPercent(t *testing.T) {
	out := GoalBar(1.5, 150, 20)
	if !strings.Contains(out, "150.00%") {
		t.Errorf("overpaid bar should print raw percent: %q", out)
	}
	out = GoalBar(-1, 0, 20)
	if !strings.Contains(out, "0.00%") {
		t.Errorf("empty bar: %q", out)
	}
}
