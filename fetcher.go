package webdocx

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the HTML content of the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the Fetcher.
	Close() error
}

// RenderResult holds the output of a JavaScript-capable renderer.
type RenderResult struct {
	Title string
	HTML  string
}

// Renderer retrieves fully rendered pages, executing JavaScript.
// A Renderer is optional: when none is configured only static
// fetch strategies run.
type Renderer interface {
	// Render navigates to the URL, waits for the page to render,
	// and returns the title and rendered HTML.
	Render(ctx context.Context, url string) (*RenderResult, error)

	// Close releases renderer resources.
	Close() error
}
