package crawl

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/google/uuid"
	"github.com/webdocx/webdocx"
	"github.com/webdocx/webdocx/scrape"
)

// Page budget bounds for a single crawl.
const (
	MinPages = 1
	MaxPages = 20
)

// DefaultCrawlRetries is the per-page retry budget in crawl mode.
// It is lower than a standalone single-page fetch would use, trading
// per-page resilience for throughput across many pages.
const DefaultCrawlRetries = 1

// PageFetcher fetches one URL into a page plus its raw HTML.
// *scrape.Pipeline satisfies this interface.
type PageFetcher interface {
	Fetch(ctx context.Context, url string, maxRetries int) (*scrape.Result, error)
}

// Crawler drives a sequential breadth-first crawl: one URL is fetched,
// processed and its links enqueued before the next is dequeued. This
// bounds outstanding connections to one and keeps frontier state
// mutation trivially safe.
type Crawler struct {
	Fetcher PageFetcher
	Links   webdocx.LinkExtractor
	Limiter webdocx.DomainLimiter // optional
	Retries int                   // defaults to DefaultCrawlRetries
	Logger  *slog.Logger

	// Seeds are extra URLs pushed into the frontier after the root,
	// typically from sitemap discovery. They go through the same
	// dedup and domain policy as discovered links.
	Seeds []string
}

// Result holds the outcome of a crawl.
type Result struct {
	RootURL string
	Pages   []*webdocx.Page // fetch order
	Failed  int
	Budget  int

	// Exhausted is true when the frontier emptied before the page
	// budget was reached.
	Exhausted bool
}

// Crawl fetches up to maxPages pages starting from rootURL, following
// same-domain links (all links when followExternal is true). maxPages
// is clamped to [MinPages, MaxPages].
//
// Individual page failures never abort the crawl; the failing URL is
// dropped and the loop continues. Crawl returns an ECRAWL error only
// when zero pages were ever fetched.
func (c *Crawler) Crawl(ctx context.Context, rootURL string, maxPages int, followExternal bool) (*Result, error) {
	if maxPages < MinPages {
		maxPages = MinPages
	}
	if maxPages > MaxPages {
		maxPages = MaxPages
	}

	frontier, err := NewFrontier(rootURL, followExternal)
	if err != nil {
		return nil, err
	}
	frontier.Push(rootURL)
	for _, seed := range c.Seeds {
		frontier.Push(seed)
	}

	logger := c.logger().With("crawl_id", uuid.NewString(), "root", rootURL)

	result := &Result{
		RootURL: rootURL,
		Budget:  maxPages,
	}

	for len(result.Pages) < maxPages {
		entry, ok := frontier.Pop()
		if !ok {
			result.Exhausted = true
			break
		}

		if ctx.Err() != nil {
			break
		}

		// Forward progress: a permanently failing URL is never retried
		// by the crawl loop.
		frontier.MarkVisited(entry.URL)

		if c.Limiter != nil {
			host := ""
			if parsed, err := url.Parse(entry.URL); err == nil {
				host = parsed.Host
			}
			if err := c.Limiter.Wait(ctx, host); err != nil {
				break // context canceled
			}
		}

		fetched, err := c.Fetcher.Fetch(ctx, entry.URL, c.retries())
		if err != nil {
			result.Failed++
			logger.Warn("page fetch failed", "url", entry.URL, "err", err)
			continue
		}

		result.Pages = append(result.Pages, fetched.Page)
		logger.Debug("page fetched", "url", entry.URL, "fetched", len(result.Pages), "budget", maxPages)

		// Link extraction failures downgrade to an empty link set.
		links, err := c.Links.ExtractLinks(fetched.HTML, entry.URL)
		if err != nil {
			logger.Debug("link extraction failed", "url", entry.URL, "err", err)
			continue
		}
		for _, link := range links {
			frontier.Push(link.AbsoluteURL)
		}
	}

	if len(result.Pages) == 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, webdocx.Errorf(webdocx.ECRAWL, "failed to crawl %q: no pages could be crawled", rootURL)
	}

	return result, nil
}

func (c *Crawler) retries() int {
	if c.Retries > 0 {
		return c.Retries
	}
	return DefaultCrawlRetries
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}
