package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/theirongolddev/goalpace/internal/config"
	"github.com/theirongolddev/goalpace/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers collected by the setup form.
type SetupValues struct {
	DBPath     string
	Fallback   string
	Convention string
	Theme      string
}

// SetupValuesFrom pre-fills the form from an existing config.
func SetupValuesFrom(cfg config.Config) SetupValues {
	return SetupValues{
		DBPath:     cfg.LedgerDSN(),
		Fallback:   strconv.FormatFloat(cfg.Rates.Fallback, 'f', -1, 64),
		Convention: cfg.Targets.Convention,
		Theme:      cfg.Appearance.Theme,
	}
}

// Apply copies the answers into cfg.
func (v SetupValues) Apply(cfg *config.Config) {
	if cfg.General.DBDriver != "pgx" {
		cfg.General.DBPath = strings.TrimSpace(v.DBPath)
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(v.Fallback), 64); err == nil && f > 0 {
		cfg.Rates.Fallback = f
	}
	cfg.Targets.Convention = v.Convention
	cfg.Appearance.Theme = v.Theme
}

// NewSetupForm builds the setup wizard bound to vals.
func NewSetupForm(vals *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to goalpace").
				Description("Plan a goal in rupees and track the dollars you send toward it."),
			huh.NewInput().
				Title("Ledger database file").
				Value(&vals.DBPath),
			huh.NewInput().
				Title("Fallback USD to INR rate").
				Description("Used when the live rate lookup fails.").
				Value(&vals.Fallback).
				Validate(validatePositive),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Custom targets are entered in").
				Options(
					huh.NewOption("USD (rupees derived at today's rate)", "usd"),
					huh.NewOption("INR (with time-to-goal estimate)", "inr"),
				).
				Value(&vals.Convention),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
		),
	).WithShowHelp(false)
}

func validatePositive(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f <= 0 {
		return errors.New("enter a positive number")
	}
	return nil
}

// loadConfigOrDefault loads config, returning defaults on error.
// This ensures the TUI can always start even if config is corrupted.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// saveSetupConfig applies the completed form and persists it. The theme
// takes effect immediately.
func saveSetupConfig(vals SetupValues) error {
	cfg := loadConfigOrDefault()
	vals.Apply(&cfg)
	theme.SetActive(cfg.Appearance.Theme)
	return config.Save(cfg)
}
