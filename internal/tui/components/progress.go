package components

import (
	"fmt"

	"github.com/theirongolddev/goalpace/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForFraction returns the bar color for a 0-1 progress fraction:
// cyan while early, accent past half way, green once the goal is reached.
func ColorForFraction(f float64) lipgloss.Color {
	t := theme.Active
	switch {
	case f >= 1:
		return t.Green
	case f >= 0.5:
		return t.Accent
	default:
		return t.Cyan
	}
}

// GoalBar renders a goal progress bar followed by the raw percentage.
// The bar is clamped to 0-1 but percent is printed as given, so an overpaid
// goal shows a full bar and a value above 100%.
func GoalBar(fraction, percent float64, width int) string {
	t := theme.Active

	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	if width < 4 {
		width = 4
	}

	color := ColorForFraction(fraction)
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return bar.ViewAs(fraction) + spaceStyle.Render(" ") + pctStyle.Render(fmt.Sprintf("%.2f%%", percent))
}
