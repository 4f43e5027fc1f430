// Package rates supplies the USD to INR conversion rate for a session.
package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultURL returns USD-based rates as {"result":"success","rates":{"INR":...}}.
	DefaultURL     = "https://open.er-api.com/v6/latest/USD"
	defaultTimeout = 5 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

// ErrRateUnavailable wraps every failure of a live rate lookup.
var ErrRateUnavailable = errors.New("rates: USD/INR rate unavailable")

// latestResponse accepts both the open.er-api.com ("rates") and the
// exchangerate-api.com v6 ("conversion_rates") payloads.
type latestResponse struct {
	Result          string             `json:"result"`
	ErrorType       string             `json:"error-type"`
	Rates           map[string]float64 `json:"rates"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// Client looks up the live rate over HTTP.
type Client struct {
	url     string
	timeout time.Duration
	http    *http.Client
}

// NewClient creates a client for a USD-based latest-rates endpoint.
// An empty url uses DefaultURL; a non-positive timeout uses 5s.
func NewClient(url string, timeout time.Duration) *Client {
	url = strings.TrimSpace(url)
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		url:     url,
		timeout: timeout,
		http:    &http.Client{},
	}
}

// USDToINR fetches the current rate. Any failure is wrapped in
// ErrRateUnavailable.
func (c *Client) USDToINR(ctx context.Context) (float64, error) {
	body, err := c.get(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRateUnavailable, err)
	}

	var resp latestResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("%w: parsing response: %w", ErrRateUnavailable, err)
	}
	if resp.Result != "" && resp.Result != "success" {
		return 0, fmt.Errorf("%w: provider error %q", ErrRateUnavailable, resp.ErrorType)
	}

	rate, ok := resp.Rates["INR"]
	if !ok {
		rate, ok = resp.ConversionRates["INR"]
	}
	if !ok {
		return 0, fmt.Errorf("%w: no INR rate in response", ErrRateUnavailable)
	}
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, fmt.Errorf("%w: invalid INR rate %v", ErrRateUnavailable, rate)
	}
	return rate, nil
}

func (c *Client) get(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "github.com/theirongolddev/goalpace/1.0")

	//nolint:gosec // URL comes from user config
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return body, nil
}
