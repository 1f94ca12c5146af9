// Package research implements multi-source operations layered on the
// fetch pipeline: topic deep dives, source comparison, related-page
// discovery, page summaries and link inventories. Multi-URL operations
// fetch with bounded concurrency; a per-page failure is reported inline
// and never aborts the whole report.
package research

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/webdocx/webdocx"
	"github.com/webdocx/webdocx/scrape"
)

// Depth and source limits for research operations.
const (
	MaxDepth   = 10
	MaxSources = 5
)

// DefaultConcurrency bounds how many sources are fetched at once.
const DefaultConcurrency = 3

// excerptLen caps per-source content in aggregated reports.
const excerptLen = 3000

// PageFetcher fetches one URL into a page. *scrape.Pipeline satisfies
// this interface.
type PageFetcher interface {
	Fetch(ctx context.Context, url string, maxRetries int) (*scrape.Result, error)
}

// Service runs research operations against a search provider and the
// fetch pipeline.
type Service struct {
	Search      webdocx.SearchProvider
	Fetcher     PageFetcher
	Links       webdocx.LinkExtractor
	Outliner    webdocx.Outliner
	Concurrency int // defaults to DefaultConcurrency
	Logger      *slog.Logger
}

// sourceDoc is one fetched source within an aggregated report.
type sourceDoc struct {
	URL     string
	Title   string
	Content string
	Err     error
}

// DeepDive researches a topic: it searches for up to depth sources,
// fetches them concurrently and aggregates the content into a single
// markdown report. Sources that fail to fetch are noted inline.
func (s *Service) DeepDive(ctx context.Context, topic string, depth int) (string, error) {
	if strings.TrimSpace(topic) == "" {
		return "", webdocx.Errorf(webdocx.EINVALID, "topic must not be empty")
	}
	depth = clamp(depth, 1, MaxDepth)

	results, err := s.Search.Search(ctx, topic, depth)
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return fmt.Sprintf("# Research: %s\n\nNo results found for this topic.\n", topic), nil
	}

	docs := s.fetchAll(ctx, results)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Research: %s\n\n", topic))
	sb.WriteString("## Sources\n\n")
	for i, d := range docs {
		sb.WriteString(fmt.Sprintf("%d. [%s](%s)\n", i+1, d.Title, d.URL))
	}
	sb.WriteString("\n## Content\n")

	for i, d := range docs {
		sb.WriteString(fmt.Sprintf("\n### From Source %d: %s\n\n", i+1, d.Title))
		sb.WriteString(fmt.Sprintf("> %s\n\n", d.URL))
		if d.Err != nil {
			sb.WriteString(fmt.Sprintf("*Failed to fetch: %s*\n", webdocx.ErrorMessage(d.Err)))
			continue
		}
		content := strings.TrimSpace(d.Content)
		if len(content) > excerptLen {
			content = truncate(content, excerptLen) + "\n\n*[Content truncated...]*"
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// SummarizePage fetches a page and returns its heading outline without
// the full content.
func (s *Service) SummarizePage(ctx context.Context, url string) (*webdocx.PageSummary, error) {
	fetched, err := s.Fetcher.Fetch(ctx, url, 1)
	if err != nil {
		return nil, err
	}

	sections, err := s.Outliner.Outline(fetched.HTML)
	if err != nil {
		return nil, err
	}

	return &webdocx.PageSummary{
		URL:      url,
		Title:    fetched.Page.Title,
		Sections: sections,
	}, nil
}

// SummaryMarkdown renders a page summary as a markdown section list.
func SummaryMarkdown(summary *webdocx.PageSummary) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Summary: %s\n\n", summary.Title))
	sb.WriteString(fmt.Sprintf("> Source: %s\n\n", summary.URL))
	sb.WriteString("## Key Sections\n\n")

	if len(summary.Sections) == 0 {
		sb.WriteString("*No sections found*\n")
		return sb.String()
	}
	for _, sec := range summary.Sections {
		if sec.Summary != "" {
			sb.WriteString(fmt.Sprintf("- **%s**: %s\n", sec.Heading, sec.Summary))
		} else {
			sb.WriteString(fmt.Sprintf("- **%s**\n", sec.Heading))
		}
	}
	return sb.String()
}

// fetchAll retrieves every search result with bounded concurrency,
// preserving result order. Failures are captured per source.
func (s *Service) fetchAll(ctx context.Context, results []webdocx.SearchResult) []sourceDoc {
	docs := make([]sourceDoc, len(results))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency())
	for i, r := range results {
		docs[i] = sourceDoc{URL: r.URL, Title: r.Title}
		g.Go(func() error {
			fetched, err := s.Fetcher.Fetch(gctx, r.URL, 1)
			if err != nil {
				s.logger().Warn("source fetch failed", "url", r.URL, "error", err)
				docs[i].Err = err
				return nil
			}
			if fetched.Page.Title != "" {
				docs[i].Title = fetched.Page.Title
			}
			docs[i].Content = scrape.StripAttribution(fetched.Page.Content)
			return nil
		})
	}
	g.Wait() //nolint:errcheck // goroutines never return errors

	return docs
}

func (s *Service) concurrency() int {
	if s.Concurrency > 0 {
		return s.Concurrency
	}
	return DefaultConcurrency
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// truncate cuts s to at most n bytes, backing up so a multi-byte
// rune is never split at the cut point.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
