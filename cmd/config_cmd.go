// Package cmd implements the goalpace CLI commands.
package cmd

import (
	"fmt"

	"github.com/theirongolddev/goalpace/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Database driver: %s\n", cfg.General.DBDriver)
	if cfg.General.DBDriver == "pgx" {
		fmt.Printf("    Database DSN:    %s\n", maskSecret(cfg.General.DBDSN))
	} else {
		fmt.Printf("    Database file:   %s\n", cfg.LedgerDSN())
	}
	fmt.Println()

	fmt.Println("  [Rates]")
	if cfg.Rates.Fixed != nil {
		fmt.Printf("    Fixed rate: %.4f\n", *cfg.Rates.Fixed)
	} else {
		fmt.Printf("    Lookup URL: %s (timeout %ds)\n", cfg.Rates.URL, cfg.Rates.TimeoutSec)
	}
	fmt.Printf("    Fallback:   %.2f\n", cfg.Rates.Fallback)
	fmt.Println()

	fmt.Println("  [Targets]")
	fmt.Printf("    Convention: %s\n", cfg.Targets.Convention)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Logging]")
	fmt.Printf("    Level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		fmt.Printf("    File:  %s\n", cfg.Logging.File)
	}
	if cfg.Logging.SentryDSN != "" {
		fmt.Printf("    Sentry: %s\n", maskSecret(cfg.Logging.SentryDSN))
	}
	fmt.Println()

	if err := cfg.Validate(); err != nil {
		fmt.Printf("  Problem: %v\n\n", err)
	}
	fmt.Println("  Run `goalpace setup` to reconfigure.")
	return nil
}

func maskSecret(s string) string {
	if len(s) > 16 {
		return s[:8] + "..." + s[len(s)-4:]
	}
	if len(s) > 4 {
		return s[:4] + "..."
	}
	return "****"
}
