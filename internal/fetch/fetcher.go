package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/webboost/webboost/internal/config"
	"github.com/webboost/webboost/internal/model"
)

// Fetcher retrieves pages over plain HTTP and turns them into snapshots.
// It performs no JavaScript execution; pages that require rendering are
// analyzed from their served markup.
type Fetcher struct {
	// client performs the HTTP requests.
	client *http.Client

	// userAgent is the User-Agent header to send.
	userAgent string

	// maxBodySize limits how many bytes of the response body are read.
	maxBodySize int64

	// logger receives fetch progress at debug level.
	logger *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the total request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.client.Timeout = d
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize sets the maximum response body size in bytes.
func WithMaxBodySize(size int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = size
	}
}

// WithHTTPClient replaces the underlying HTTP client.
// Useful for tests and callers that need custom transports.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// WithLogger sets the logger. nil disables fetch logging.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher creates a Fetcher with default settings.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:      &http.Client{Timeout: config.DefaultTimeout},
		userAgent:   config.DefaultUserAgent,
		maxBodySize: config.DefaultMaxBodySize,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch retrieves the page at rawURL and returns its snapshot.
// The snapshot's LoadTime covers the request plus the body read, which
// approximates what a plain HTTP client experiences for the page.
//
// Fetch-level failures are surfaced as errors wrapping ErrInvalidURL or
// ErrUnreachable; analysis is never run against a page that could not
// be retrieved.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*model.PageSnapshot, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidURL, rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: missing host in %q", ErrInvalidURL, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	if f.logger != nil {
		f.logger.DebugContext(ctx, "fetching page", "url", u.String())
	}

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: status %s", ErrUnreachable, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrUnreachable, err)
	}
	loadTime := time.Since(start).Seconds()

	if len(body) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyBody, u.String())
	}

	if f.logger != nil {
		f.logger.DebugContext(ctx, "page fetched",
			"url", u.String(),
			"bytes", len(body),
			"load_time", loadTime,
		)
	}

	snapshot := ParseSnapshot(u.String(), string(body))
	snapshot.LoadTime = loadTime
	return snapshot, nil
}
