package tui

import (
	"testing"

	"github.com/theirongolddev/goalpace/internal/config"

	"github.com/stretchr/testify/require"
)

func TestSetupValuesRoundTrip(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.General.DBPath = "/tmp/goals.db"

	vals := SetupValuesFrom(cfg)
	require.Equal(t, "/tmp/goals.db", vals.DBPath)
	require.Equal(t, "83", vals.Fallback)
	require.Equal(t, "usd", vals.Convention)

	vals.Fallback = "84.5"
	vals.Convention = "inr"
	vals.Theme = "tokyo-night"
	vals.Apply(&cfg)

	require.Equal(t, 84.5, cfg.Rates.Fallback)
	require.Equal(t, "inr", cfg.Targets.Convention)
	require.Equal(t, "tokyo-night", cfg.Appearance.Theme)
	require.NoError(t, cfg.Validate())
}

func TestSetupValuesIgnoresBadFallback(t *testing.T) {
	cfg := config.DefaultConfig()
	vals := SetupValuesFrom(cfg)
	vals.Fallback = "-3"
	vals.Apply(&cfg)
	require.Equal(t, 83.0, cfg.Rates.Fallback)
	require.Error(t, validatePositive("-3"))
}
