package scrape

import (
	"context"

	"github.com/webdocx/webdocx"
)

// Strategy produces readable content for a URL in one particular way.
// The pipeline tries strategies in order; the first success wins.
type Strategy interface {
	// Name identifies the strategy (e.g. "render", "static").
	Name() string

	// Fetch retrieves the URL and returns its title, raw HTML and
	// markdown content.
	Fetch(ctx context.Context, url string) (*StrategyResult, error)
}

// StrategyResult is the output of a single strategy attempt.
type StrategyResult struct {
	Title    string
	HTML     string
	Markdown string
}

// RenderStrategy fetches pages through a JavaScript-capable renderer.
type RenderStrategy struct {
	Renderer  webdocx.Renderer
	Converter webdocx.Converter
}

// Name returns the strategy's identifier.
func (s *RenderStrategy) Name() string { return "render" }

// Fetch renders the URL and converts the result to markdown.
func (s *RenderStrategy) Fetch(ctx context.Context, url string) (*StrategyResult, error) {
	if s.Renderer == nil {
		return nil, webdocx.Errorf(webdocx.EUNAVAILABLE, "no renderer configured for %q", url)
	}

	res, err := s.Renderer.Render(ctx, url)
	if err != nil {
		return nil, err
	}

	markdown, err := s.Converter.Convert(res.HTML)
	if err != nil {
		return nil, err
	}

	return &StrategyResult{
		Title:    res.Title,
		HTML:     res.HTML,
		Markdown: markdown,
	}, nil
}

// StaticStrategy fetches static HTML and extracts readable content.
// It is the fallback when no renderer is available or rendering fails.
type StaticStrategy struct {
	Fetcher   webdocx.Fetcher
	Extractor webdocx.Extractor
	Converter webdocx.Converter
}

// Name returns the strategy's identifier.
func (s *StaticStrategy) Name() string { return "static" }

// Fetch retrieves the URL over plain HTTP, strips boilerplate and
// converts the main content to markdown.
func (s *StaticStrategy) Fetch(ctx context.Context, url string) (*StrategyResult, error) {
	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	extracted, err := s.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	markdown, err := s.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, err
	}

	return &StrategyResult{
		Title:    extracted.Title,
		HTML:     html,
		Markdown: markdown,
	}, nil
}
