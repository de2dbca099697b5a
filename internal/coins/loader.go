// Package coins fetches the master list of coin symbols.
package coins

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"time"
)

// DefaultEndpoint serves a JSON array of coin symbols.
const DefaultEndpoint = "https://api-eu.okotoki.com/coins"

// DefaultTimeout bounds a single fetch.
const DefaultTimeout = 10 * time.Second

// StatusError is returned by Fetch when the endpoint answers with a
// non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %s for %s", e.Status, e.URL)
}

// Loader fetches coin symbols from a fixed endpoint.
type Loader struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		if c != nil {
			l.httpClient = c
		}
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		if d > 0 {
			l.httpClient = &http.Client{Timeout: d}
		}
	}
}

// WithLogger sets the logger used to report failed loads.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader returns a Loader for endpoint. An empty endpoint selects
// DefaultEndpoint.
func NewLoader(endpoint string, opts ...Option) *Loader {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	l := &Loader{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Endpoint returns the URL the loader fetches from.
func (l *Loader) Endpoint() string { return l.endpoint }

// Fetch performs one GET request and returns the normalized symbols.
func (l *Loader) Fetch(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching coins: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: l.endpoint, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var raw []string
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding coins: %w", err)
	}
	return Normalize(raw), nil
}

// Load fetches the symbols and degrades to an empty list on any failure.
// Failures are logged, never returned.
func (l *Loader) Load(ctx context.Context) []string {
	start := time.Now()
	items, err := l.Fetch(ctx)
	if err != nil {
		l.logger.WarnContext(ctx, "Coin list unavailable",
			slog.String("endpoint", l.endpoint),
			slog.Any("error", err))
		return []string{}
	}
	l.logger.InfoContext(ctx, "Coin list loaded",
		slog.Int("count", len(items)),
		slog.Duration("elapsed", time.Since(start)))
	return items
}

// Normalize drops empty symbols and duplicates and sorts the rest.
func Normalize(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it != "" {
			out = append(out, it)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
