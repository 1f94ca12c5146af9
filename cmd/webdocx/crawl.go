package main

import (
	"fmt"

	"github.com/webdocx/webdocx"
	"github.com/webdocx/webdocx/crawl"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	crawler := &crawl.Crawler{
		Fetcher: deps.Pipeline,
		Links:   deps.Links,
		Limiter: deps.Limiter,
		Logger:  deps.Logger,
	}

	if c.SeedSitemap {
		seeds, err := deps.Sitemap.DiscoverURLs(deps.Ctx, c.URL)
		if err != nil {
			// Seeding is best-effort; the crawl still runs from the root.
			fmt.Fprintf(deps.Stderr, "sitemap discovery failed: %s\n", webdocx.ErrorMessage(err))
		}
		crawler.Seeds = seeds
	}

	result, err := crawler.Crawl(deps.Ctx, c.URL, c.MaxPages, c.FollowExternal)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webdocx.ErrorMessage(err))
		return err
	}

	if result.Failed > 0 {
		fmt.Fprintf(deps.Stderr, "skipped %d pages that failed to fetch\n", result.Failed)
	}

	fmt.Fprintln(deps.Stdout, result.Markdown())
	return nil
}
