// Package http implements the static fetch path: a plain HTTP
// webdocx.Fetcher for sites that render server-side, and sitemap-based
// URL discovery for pre-seeding a crawl frontier.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/webdocx/webdocx"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 15 * time.Second

// DefaultUserAgent identifies the client on outgoing requests.
const DefaultUserAgent = "webdocx/1.0 (documentation fetcher)"

// Ensure Fetcher implements webdocx.Fetcher at compile time.
var _ webdocx.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content over plain HTTP. It does not execute
// JavaScript; pair it with a renderer strategy for dynamic sites.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithClient supplies a shared http.Client. The client's own timeout is
// preserved; WithTimeout is ignored when a client is supplied.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = &http.Client{Timeout: f.timeout}
	}
	return f
}

// Fetch retrieves the HTML content from the given URL. Timeouts map to
// ETIMEOUT, a 404 to ENOTFOUND and any other non-200 status to ESCRAPE,
// so callers can decide what is worth retrying.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", webdocx.Errorf(webdocx.EINVALID, "invalid request for %s: %s", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", webdocx.Errorf(webdocx.ETIMEOUT, "request to %s timed out", url)
		}
		return "", webdocx.Errorf(webdocx.ESCRAPE, "request to %s failed: %s", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", webdocx.Errorf(webdocx.ENOTFOUND, "HTTP 404 for %s", url)
	case resp.StatusCode != http.StatusOK:
		return "", webdocx.Errorf(webdocx.ESCRAPE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", webdocx.Errorf(webdocx.ESCRAPE, "reading body of %s: %s", url, err)
	}

	return string(body), nil
}

// Close releases resources. A no-op for the HTTP fetcher since
// http.Client needs no explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
