package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/goalpace/internal/cli"
	"github.com/theirongolddev/goalpace/internal/model"
	"github.com/theirongolddev/goalpace/internal/tui/components"
	"github.com/theirongolddev/goalpace/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	d := a.dash
	s := d.Summary
	p := s.Progress
	var b strings.Builder

	// Row 1: headline cards
	cards := []model.Metric{
		{Label: "Target", Value: cli.FormatINR(s.Goal.Amount)},
		{Label: "Paid", Value: cli.FormatINR(p.TotalPaidINR)},
		{Label: "Remaining", Value: cli.FormatINR(p.RemainingINR)},
		{Label: "Duration", Value: cli.FormatYears(s.Goal.Years)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: progress
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	barW := components.CardInnerWidth(cw) - 10
	progress := components.GoalBar(p.Fraction(), p.Percent, barW) + "\n" +
		mutedStyle.Render(fmt.Sprintf("%s (%s)", cli.FormatINR(s.Goal.Amount), d.Words))
	b.WriteString(components.ContentCard(s.Goal.Title, progress, cw))
	b.WriteString("\n")

	// Row 3: full-target and remaining pacing
	captionStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface).Italic(true)
	remaining := metricLines(d.Remaining) + "\n" + captionStyle.Render(d.Caption)

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Send Targets", metricLines(d.Targets), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Remaining Pace", remaining, cw))
	} else {
		halves := components.LayoutRow(cw, 2)
		b.WriteString(components.CardRow([]string{
			components.ContentCard("Send Targets", metricLines(d.Targets), halves[0]),
			components.ContentCard("Remaining Pace", remaining, halves[1]),
		}))
	}
	b.WriteString("\n")

	return b.String()
}
