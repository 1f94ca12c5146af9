// Package duckduckgo implements webdocx.SearchProvider against the
// DuckDuckGo HTML endpoint, which needs no API key. Requests are rate
// limited to avoid getting blocked.
package duckduckgo

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"github.com/webdocx/webdocx"
)

// DefaultEndpoint is the DuckDuckGo HTML search endpoint.
const DefaultEndpoint = "https://html.duckduckgo.com/html/"

// defaultRateLimit allows one search per second, matching what the
// endpoint tolerates without blocking.
const defaultRateLimit = rate.Limit(1)

const userAgent = "webdocx/1.0 (documentation fetcher)"

// Ensure Search implements webdocx.SearchProvider at compile time.
var _ webdocx.SearchProvider = (*Search)(nil)

// Search queries DuckDuckGo by scraping its HTML results page.
// Safe for concurrent use; the rate limiter serializes bursts.
type Search struct {
	client   *http.Client
	limiter  *rate.Limiter
	endpoint string
}

// Option configures a Search.
type Option func(*Search)

// WithEndpoint overrides the search endpoint. Used by tests to point
// at a local server.
func WithEndpoint(endpoint string) Option {
	return func(s *Search) {
		s.endpoint = endpoint
	}
}

// WithRateLimit overrides the requests-per-second limit.
func WithRateLimit(rps float64) Option {
	return func(s *Search) {
		s.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewSearch creates a DuckDuckGo search provider sharing the given
// HTTP client. A nil client uses a default with a 15s timeout.
func NewSearch(client *http.Client, opts ...Option) *Search {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	s := &Search{
		client:   client,
		limiter:  rate.NewLimiter(defaultRateLimit, 1),
		endpoint: DefaultEndpoint,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search returns up to limit results for the query. Failures carry the
// ESEARCH code with the query and reason.
func (s *Search) Search(ctx context.Context, query string, limit int) ([]webdocx.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, webdocx.Errorf(webdocx.ESEARCH, "query cannot be empty")
	}
	if limit < 1 {
		limit = 1
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, webdocx.Errorf(webdocx.ESEARCH, "search for %q failed: %s", query, err)
	}
	q := req.URL.Query()
	q.Set("q", query)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, webdocx.Errorf(webdocx.ESEARCH, "search for %q failed: %s", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, webdocx.Errorf(webdocx.ESEARCH, "search for %q failed: HTTP %d", query, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, webdocx.Errorf(webdocx.ESEARCH, "parsing results for %q: %s", query, err)
	}

	var results []webdocx.SearchResult
	doc.Find(".result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		anchor := sel.Find(".result__title a").First()
		href, ok := anchor.Attr("href")
		if !ok || href == "" {
			return true
		}
		results = append(results, webdocx.SearchResult{
			Title:   strings.TrimSpace(anchor.Text()),
			URL:     resolveRedirect(href),
			Snippet: strings.TrimSpace(sel.Find(".result__snippet").Text()),
		})
		return len(results) < limit
	})

	return results, nil
}

// resolveRedirect unwraps DuckDuckGo's /l/?uddg= redirect links to the
// target URL. Links in any other shape pass through unchanged.
func resolveRedirect(href string) string {
	parsed, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := parsed.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}
