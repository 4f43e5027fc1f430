package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/theirongolddev/goalpace/internal/cli"
	"github.com/theirongolddev/goalpace/internal/config"
	"github.com/theirongolddev/goalpace/internal/logger"
	"github.com/theirongolddev/goalpace/internal/projector"
	"github.com/theirongolddev/goalpace/internal/rates"
	"github.com/theirongolddev/goalpace/internal/session"
	"github.com/theirongolddev/goalpace/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDB    string
	flagRate  float64
	flagQuiet bool
	flagGoal  int64
)

var rootCmd = &cobra.Command{
	Use:   "goalpace",
	Short: "Track savings goals funded in USD and paid in INR",
	Long:  "Plan a goal in rupees, log the dollars you send, and see how much to send each day, week, month and year.",
	RunE:  runShow,

	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Ledger database file (sqlite)")
	rootCmd.PersistentFlags().Float64Var(&flagRate, "rate", 0, "Use a fixed USD to INR rate instead of the live lookup")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().Int64VarP(&flagGoal, "goal", "g", 0, "Goal ID (default: first goal)")
}

// app is what a command needs for one run.
type app struct {
	cfg    config.Config
	ledger *store.Ledger
	sess   *session.Session
	close  func()
}

// openApp loads config, sets up logging, resolves the session rate and opens
// the ledger. console is where text logs go; the TUI passes nil.
func openApp(ctx context.Context, console io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagDB != "" {
		cfg.General.DBDriver = store.DriverSQLite
		cfg.General.DBPath = flagDB
	}
	if flagRate != 0 {
		cfg.Rates.Fixed = &flagRate
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", config.ConfigPath(), err)
	}

	if flagQuiet {
		console = nil
	}
	_, flush, err := logger.Init(logger.Options{
		Level:     cfg.Logging.Level,
		Console:   console,
		File:      cfg.Logging.File,
		SentryDSN: cfg.Logging.SentryDSN,
	})
	if err != nil {
		return nil, err
	}

	conv, err := projector.ParseConvention(cfg.Targets.Convention)
	if err != nil {
		flush()
		return nil, err
	}

	quote := rates.Resolve(ctx, rateProvider(cfg), cfg.Rates.Fallback)

	ledger, err := store.Open(ctx, cfg.General.DBDriver, cfg.LedgerDSN())
	if err != nil {
		flush()
		return nil, err
	}

	return &app{
		cfg:    cfg,
		ledger: ledger,
		sess:   session.New(ledger, quote, conv),
		close: func() {
			_ = ledger.Close()
			flush()
		},
	}, nil
}

func rateProvider(cfg config.Config) rates.Provider {
	if cfg.Rates.Fixed != nil {
		return rates.Fixed(*cfg.Rates.Fixed)
	}
	return rates.NewClient(cfg.Rates.URL, time.Duration(cfg.Rates.TimeoutSec)*time.Second)
}

// selectGoal selects id (or the first goal) and prints the no-goal notice
// when there is nothing to select. It reports whether a goal is selected.
func (a *app) selectGoal(ctx context.Context, id int64) (bool, error) {
	_, err := a.sess.Select(ctx, id)
	if errors.Is(err, session.ErrNoGoalSelected) {
		fmt.Println()
		fmt.Println(cli.RenderWarning("No goal selected. Create one with `goalpace goal create`."))
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func note(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
