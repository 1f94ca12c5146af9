// Package scrape provides the resilient fetch pipeline: it retrieves a
// single URL into a normalized page by trying an ordered list of
// extraction strategies with exponential backoff retry between attempts.
package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/webdocx/webdocx"
)

// DefaultBaseDelay is the backoff unit between retry attempts.
// The wait before attempt n+1 is BaseDelay << n (1s, 2s, 4s, ...).
const DefaultBaseDelay = time.Second

// Result is the outcome of a successful fetch.
type Result struct {
	Page *webdocx.Page

	// HTML is the raw page HTML produced by the winning strategy,
	// kept so callers can run link discovery over it.
	HTML string

	// Attempts is the number of attempts made, including the
	// successful one.
	Attempts int
}

// Pipeline fetches one URL into a normalized Page, trying each strategy
// in order on every attempt. If all strategies fail the pipeline waits
// BaseDelay<<attempt and retries, up to maxRetries+1 total attempts.
type Pipeline struct {
	Strategies []Strategy
	BaseDelay  time.Duration // defaults to DefaultBaseDelay
	Logger     *slog.Logger
	Now        func() time.Time // defaults to time.Now

	// Sleep waits between attempts. The default honors context
	// cancellation; tests inject their own to observe the delays
	// without waiting for them.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Fetch retrieves the URL. The returned Page's content carries a
// source-attribution header; callers that reassemble multi-page
// documents strip it themselves with StripAttribution.
//
// Invalid URLs (missing scheme or host) fail immediately without
// retry. All other failures are retried with exponential backoff.
func (p *Pipeline) Fetch(ctx context.Context, rawURL string, maxRetries int) (*Result, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, webdocx.Errorf(webdocx.EINVALID, "URL cannot be empty")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, webdocx.Errorf(webdocx.EINVALID, "invalid URL format: %q", rawURL)
	}

	if len(p.Strategies) == 0 {
		return nil, webdocx.Errorf(webdocx.EUNAVAILABLE, "no fetch strategies configured for %q", rawURL)
	}

	if maxRetries < 0 {
		maxRetries = 0
	}
	maxAttempts := maxRetries + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		for _, strategy := range p.Strategies {
			res, err := strategy.Fetch(ctx, rawURL)
			if err != nil {
				lastErr = err
				if p.Logger != nil {
					p.Logger.Debug("strategy failed",
						"strategy", strategy.Name(),
						"url", rawURL,
						"attempt", attempt+1,
						"err", err)
				}
				continue
			}

			return &Result{
				Page: &webdocx.Page{
					URL:       rawURL,
					Title:     res.Title,
					Content:   Attribution(res.Title, rawURL) + res.Markdown,
					FetchedAt: p.now(),
				},
				HTML:     res.HTML,
				Attempts: attempt + 1,
			}, nil
		}

		// Don't sleep after the last attempt.
		if attempt >= maxAttempts-1 {
			break
		}

		if err := p.sleep(ctx, p.baseDelay()<<attempt); err != nil {
			return nil, err
		}
	}

	return nil, fetchError(rawURL, maxAttempts, lastErr)
}

func (p *Pipeline) baseDelay() time.Duration {
	if p.BaseDelay > 0 {
		return p.BaseDelay
	}
	return DefaultBaseDelay
}

func (p *Pipeline) sleep(ctx context.Context, d time.Duration) error {
	if p.Sleep != nil {
		return p.Sleep(ctx, d)
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

func (p *Pipeline) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// fetchError wraps the last strategy error with the attempt count,
// preserving its code so callers can still distinguish timeouts,
// HTTP status errors and parse failures.
func fetchError(url string, attempts int, lastErr error) error {
	code := webdocx.ErrorCode(lastErr)
	if code == "" || code == webdocx.EINTERNAL {
		code = webdocx.ESCRAPE
	}
	return webdocx.Errorf(code, "failed to scrape %q after %d attempts: %s", url, attempts, reason(lastErr))
}

func reason(err error) string {
	if err == nil {
		return "unknown error"
	}
	if msg := webdocx.ErrorMessage(err); msg != "" && msg != "Internal error." {
		return msg
	}
	return err.Error()
}

// Attribution returns the source-attribution header prepended to every
// fetched page's content: the title line plus a "Source: URL" line.
func Attribution(title, url string) string {
	return fmt.Sprintf("# %s\n\n> Source: %s\n\n", title, url)
}

// StripAttribution removes the attribution header from page content.
// Callers that reassemble multi-page documents use it to avoid
// duplicated headers. Content without a header is returned unchanged.
func StripAttribution(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "> Source:") {
			rest := strings.Join(lines[i+1:], "\n")
			return strings.TrimLeft(rest, "\n")
		}
	}
	return content
}
