package mock

import (
	"context"

	"github.com/webdocx/webdocx"
)

var _ webdocx.SearchProvider = (*SearchProvider)(nil)

// SearchProvider is a mock implementation of webdocx.SearchProvider.
type SearchProvider struct {
	SearchFn func(ctx context.Context, query string, limit int) ([]webdocx.SearchResult, error)
}

func (s *SearchProvider) Search(ctx context.Context, query string, limit int) ([]webdocx.SearchResult, error) {
	return s.SearchFn(ctx, query, limit)
}
