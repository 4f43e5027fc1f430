// Package logger configures the process-wide slog logger.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
)

const sentryFlushTimeout = 2 * time.Second

// Options selects log destinations.
type Options struct {
	Level     string    // debug, info, warn, error
	Console   io.Writer // text output; nil disables it (the TUI owns the terminal)
	File      string    // optional JSON log file
	SentryDSN string    // optional; errors only
}

// ParseLevel maps a level name to a slog.Level. Unknown names mean warn.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Init installs the default logger and returns a cleanup func that closes
// the log file and flushes Sentry.
func Init(opts Options) (*slog.Logger, func(), error) {
	level := ParseLevel(opts.Level)
	var handlers []slog.Handler
	cleanup := func() {}

	if opts.Console != nil {
		handlers = append(handlers, slog.NewTextHandler(opts.Console, &slog.HandlerOptions{
			Level: level,
		}))
	}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o750); err != nil {
			return nil, cleanup, fmt.Errorf("creating log dir: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
		if err != nil {
			return nil, cleanup, fmt.Errorf("opening log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
		prev := cleanup
		cleanup = func() { prev(); _ = f.Close() }
	}

	var sentryErr error
	if opts.SentryDSN != "" {
		sentryErr = sentry.Init(sentry.ClientOptions{Dsn: opts.SentryDSN})
		if sentryErr == nil {
			handlers = append(handlers, slogsentry.Option{
				Level: slog.LevelError,
			}.NewSentryHandler())
			prev := cleanup
			cleanup = func() { prev(); sentry.Flush(sentryFlushTimeout) }
		}
	}

	var handler slog.Handler
	switch len(handlers) {
	case 0:
		handler = slog.NewTextHandler(io.Discard, nil)
	case 1:
		handler = handlers[0]
	default:
		handler = slogmulti.Fanout(handlers...)
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	if sentryErr != nil {
		log.Warn("sentry disabled", "error", sentryErr)
	}
	return log, cleanup, nil
}
