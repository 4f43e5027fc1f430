package rates

import (
	"context"
	"fmt"
	"log/slog"
)

// Fallback is the rate used whenever the live lookup fails.
const Fallback = 83.0

// Provider returns the USD to INR rate or an error.
type Provider interface {
	USDToINR(ctx context.Context) (float64, error)
}

// Fixed is a Provider that always returns the same rate.
type Fixed float64

// USDToINR implements Provider.
func (f Fixed) USDToINR(context.Context) (float64, error) {
	if f <= 0 {
		return 0, fmt.Errorf("%w: fixed rate %v is not positive", ErrRateUnavailable, float64(f))
	}
	return float64(f), nil
}

// Source records where a session's rate came from.
type Source string

const (
	SourceLive     Source = "live"
	SourceFixed    Source = "fixed"
	SourceFallback Source = "fallback"
)

// Quote is the rate chosen for a session.
type Quote struct {
	Rate   float64
	Source Source
	Err    error // lookup failure that caused a fallback, if any
}

// Resolve asks p for the rate once. On any failure it logs a warning and
// returns fallback instead; it never returns an error. A non-positive
// fallback is replaced by Fallback.
func Resolve(ctx context.Context, p Provider, fallback float64) Quote {
	if fallback <= 0 {
		fallback = Fallback
	}
	if p == nil {
		return Quote{Rate: fallback, Source: SourceFallback}
	}

	rate, err := p.USDToINR(ctx)
	if err != nil {
		slog.Warn("exchange rate lookup failed, using fallback",
			"fallback", fallback, "error", err)
		return Quote{Rate: fallback, Source: SourceFallback, Err: err}
	}

	src := SourceLive
	if _, ok := p.(Fixed); ok {
		src = SourceFixed
	}
	slog.Debug("exchange rate resolved", "rate", rate, "source", src)
	return Quote{Rate: rate, Source: src}
}
