package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/goalpace/internal/cli"
	"github.com/theirongolddev/goalpace/internal/projector"
	"github.com/theirongolddev/goalpace/internal/tui/components"
	"github.com/theirongolddev/goalpace/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderTargetsTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	key := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	ratios := fmt.Sprintf("Week = %d days, month = %d days, year = %d days.",
		projector.DaysPerWeek, projector.DaysPerMonth, projector.DaysPerYear)
	conv := "Values are entered in " + a.targetUnit()
	if a.sess.Convention() == projector.ConventionINR {
		conv += " and include a time-to-goal estimate"
	}

	if a.target == nil {
		body := muted.Render(conv+". "+ratios) + "\n\n" +
			muted.Render("Press ") + key.Render("t") + muted.Render(" to fix one cadence, ") +
			key.Render("c") + muted.Render(" to switch currency.")
		b.WriteString(components.ContentCard("Custom Targets", body, cw))
		b.WriteString("\n")

		// Show the computed pace for comparison.
		b.WriteString(components.ContentCard("Current Remaining Pace", metricLines(a.dash.Remaining), cw))
		b.WriteString("\n")
		return b.String()
	}

	title := fmt.Sprintf("Custom Targets (%s fixed at %s)", a.target.Cadence, a.formatTargetValue())
	body := metricLines(a.targetMetrics) + "\n\n" + muted.Render(conv+". "+ratios)
	b.WriteString(components.ContentCard(title, body, cw))
	b.WriteString("\n")
	return b.String()
}

func (a App) formatTargetValue() string {
	if a.sess.Convention() == projector.ConventionINR {
		return cli.FormatINR(a.target.Value)
	}
	return cli.FormatUSD(a.target.Value)
}
