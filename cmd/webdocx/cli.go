package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/webdocx/webdocx"
	webhttp "github.com/webdocx/webdocx/http"
	"github.com/webdocx/webdocx/monitor"
	"github.com/webdocx/webdocx/research"
	"github.com/webdocx/webdocx/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Pipeline *scrape.Pipeline
	Links    webdocx.LinkExtractor
	Limiter  webdocx.DomainLimiter
	Search   webdocx.SearchProvider
	Sitemap  *webhttp.Sitemap
	Research *research.Service
	Detector *monitor.Detector
	Digests  webdocx.DigestStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose   bool          `short:"v" help:"Enable debug logging"`
	Render    bool          `help:"Render pages in a headless browser before extraction"`
	Timeout   time.Duration `short:"t" default:"15s" help:"HTTP timeout per request"`
	RateLimit float64       `default:"1" help:"Max requests per second per domain during crawls"`

	Scrape   ScrapeCmd   `cmd:"" help:"Fetch a single page as markdown"`
	Crawl    CrawlCmd    `cmd:"" help:"Crawl a documentation site into one markdown document"`
	Links    LinksCmd    `cmd:"" help:"List the links on a page"`
	Watch    WatchCmd    `cmd:"" help:"Check a page for content changes since the last run"`
	Search   SearchCmd   `cmd:"" help:"Search the web"`
	Research ResearchCmd `cmd:"" help:"Research a topic across multiple sources"`
	Compare  CompareCmd  `cmd:"" help:"Compare information across sources"`
	Related  RelatedCmd  `cmd:"" help:"Find pages related to a URL"`

	Summarize SummarizeCmd `cmd:"" help:"Show a page's heading outline"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL     string `arg:"" help:"Page URL"`
	Retries int    `short:"r" default:"2" help:"Retry attempts after the first failure"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL            string `arg:"" help:"Root URL to crawl"`
	MaxPages       int    `short:"n" default:"5" help:"Maximum pages to fetch (1-20)"`
	FollowExternal bool   `help:"Follow links to other domains"`
	SeedSitemap    bool   `help:"Pre-seed the crawl from the site's sitemap"`
}

// LinksCmd is the "links" subcommand.
type LinksCmd struct {
	URL      string `arg:"" help:"Page URL"`
	External bool   `short:"e" help:"Include links to other domains"`
}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct {
	URL string `arg:"" help:"Page URL to monitor"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search query"`
	Limit int    `short:"l" default:"5" help:"Maximum results"`
}

// ResearchCmd is the "research" subcommand.
type ResearchCmd struct {
	Topic string `arg:"" help:"Topic to research"`
	Depth int    `short:"d" default:"3" help:"Number of sources to gather (1-10)"`
}

// CompareCmd is the "compare" subcommand.
type CompareCmd struct {
	Topic   string   `arg:"" help:"Topic being compared"`
	Sources []string `arg:"" help:"Two to five source URLs"`
}

// RelatedCmd is the "related" subcommand.
type RelatedCmd struct {
	URL   string `arg:"" help:"Base URL"`
	Limit int    `short:"l" default:"5" help:"Maximum related pages (1-10)"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	URL string `arg:"" help:"Page URL"`
}
