package webdocx

import "context"

// SearchResult is a single ranked result from a search provider.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// SearchProvider returns ranked URLs for a query. It seeds higher-level
// research operations; the crawler itself never searches.
type SearchProvider interface {
	// Search returns up to limit results ranked by relevance.
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
}
