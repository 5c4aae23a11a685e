package collect

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/webboost/webboost/internal/config"
	"github.com/webboost/webboost/internal/model"
)

// defaultSearchBaseURL is the search endpoint used for the site: probe.
const defaultSearchBaseURL = "https://www.google.com/search"

// noDocumentsMarker appears in result pages for unindexed domains.
const noDocumentsMarker = "did not match any documents"

// approxResultsPattern extracts the approximate result count.
var approxResultsPattern = regexp.MustCompile(`About ([0-9,]+) results`)

// SEOCollector probes the search index for the audited domain with a
// site: query. A failed or blocked probe degrades to indexed=false.
type SEOCollector struct {
	// client performs the probe request.
	client *http.Client

	// baseURL is the search endpoint. Replaceable in tests.
	baseURL string

	// userAgent is sent with the probe. Search engines serve an
	// interstitial to obviously non-browser agents, so a browser UA is
	// used rather than the audit UA.
	userAgent string
}

// SEOOption configures an SEOCollector.
type SEOOption func(*SEOCollector)

// WithSearchBaseURL overrides the search endpoint.
func WithSearchBaseURL(baseURL string) SEOOption {
	return func(s *SEOCollector) {
		s.baseURL = baseURL
	}
}

// WithSearchClient overrides the HTTP client used for the probe.
func WithSearchClient(client *http.Client) SEOOption {
	return func(s *SEOCollector) {
		s.client = client
	}
}

// NewSEOCollector creates a search index probe collector.
func NewSEOCollector(opts ...SEOOption) *SEOCollector {
	s := &SEOCollector{
		client:    &http.Client{Timeout: config.DefaultIndexProbeTimeout},
		baseURL:   defaultSearchBaseURL,
		userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name implements Collector.
func (s *SEOCollector) Name() string {
	return "seo"
}

// Collect implements Collector.
func (s *SEOCollector) Collect(ctx context.Context, snapshot *model.PageSnapshot, bundle *model.SignalBundle) error {
	if snapshot.Domain == "" {
		return nil
	}

	probeURL := s.baseURL + "?q=" + url.QueryEscape("site:"+snapshot.Domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, probeURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIndexProbeFailed, err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIndexProbeFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrIndexProbeFailed, err)
	}

	content := string(body)
	if strings.Contains(content, noDocumentsMarker) {
		bundle.SEO.Indexed = false
		return nil
	}

	bundle.SEO.Indexed = true
	if match := approxResultsPattern.FindStringSubmatch(content); match != nil {
		count, err := strconv.Atoi(strings.ReplaceAll(match[1], ",", ""))
		if err == nil {
			bundle.SEO.ApproxResults = count
		}
	}
	return nil
}
