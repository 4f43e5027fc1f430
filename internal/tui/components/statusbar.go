package components

import (
	"github.com/theirongolddev/goalpace/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// the session rate on the right. A non-empty status replaces the hints.
func RenderStatusBar(width int, rate, status string, isErr bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " [n]ew goal  [p]ay  [t]arget  [?]help  [q]uit"
	if status != "" {
		fg := t.Green
		if isErr {
			fg = t.Red
		}
		left = lipgloss.NewStyle().Foreground(fg).Background(t.Surface).Render(" " + status)
	}
	right := rate + " "

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}
	gap := lipgloss.NewStyle().Background(t.Surface).Width(padding).Render("")

	return style.Render(left + gap + right)
}
