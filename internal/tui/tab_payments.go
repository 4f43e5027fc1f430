package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/goalpace/internal/cli"
	"github.com/theirongolddev/goalpace/internal/tui/components"
	"github.com/theirongolddev/goalpace/internal/tui/theme"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

func (a App) renderPaymentsTab(cw, h int) string {
	t := theme.Active
	d := a.dash
	var b strings.Builder

	if len(d.Payments) == 0 {
		muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		b.WriteString(components.ContentCard("Payments",
			muted.Render(fmt.Sprintf("No payments logged for %q yet. Press p to log one.", d.Summary.Goal.Title)), cw))
		return b.String()
	}

	// Cumulative INR paid, newest on the right
	inner := components.CardInnerWidth(cw)
	inr := make([]float64, len(d.Payments))
	for i, p := range d.Payments {
		inr[i] = p.INREquiv
	}
	spark := components.Sparkline(components.Tail(components.Cumulative(inr), inner), t.Accent)
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Paid So Far (%s)", cli.FormatINR(d.Summary.Progress.TotalPaidINR)), spark, cw))
	b.WriteString("\n")

	tblH := max(h-lipgloss.Height(b.String())-4, 3)
	b.WriteString(components.ContentCard("History", paymentTable(cli.PaymentTable(d.Summary.Goal.Title, d.Payments), inner, tblH), cw))
	b.WriteString("\n")
	return b.String()
}

// paymentTable renders a history table as a bubbles table sized to width.
// Separator rows are dropped; the total row stays last.
func paymentTable(src cli.Table, width, height int) string {
	t := theme.Active

	colW := components.LayoutRow(width-2*len(src.Headers), len(src.Headers))
	cols := make([]table.Column, len(src.Headers))
	for i, h := range src.Headers {
		cols[i] = table.Column{Title: h, Width: colW[i]}
	}

	rows := make([]table.Row, 0, len(src.Rows))
	for _, r := range src.Rows {
		if len(r) == 1 && r[0] == "---" {
			continue
		}
		rows = append(rows, table.Row(r))
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Foreground(t.Accent).
		Background(t.Surface).
		BorderForeground(t.Border).
		BorderBottom(true).
		Bold(true)
	styles.Cell = styles.Cell.Foreground(t.TextPrimary).Background(t.Surface)
	styles.Selected = styles.Cell

	tbl := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(min(height, len(rows)+1)),
		table.WithFocused(false),
		table.WithStyles(styles),
	)
	// Show the newest payments when the history is taller than the card.
	tbl.GotoBottom()
	return tbl.View()
}
