package cmd

import (
	"fmt"

	"github.com/theirongolddev/goalpace/internal/config"
	"github.com/theirongolddev/goalpace/internal/tui"
	"github.com/theirongolddev/goalpace/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	needSetup := !config.Exists()

	// The TUI owns the terminal, so logs only go to the file/Sentry.
	a, err := openApp(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer a.close()

	theme.SetActive(a.cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(cmd.Context(), a.sess, flagGoal, needSetup)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
