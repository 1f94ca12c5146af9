package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/webdocx/webdocx"
)

// Ensure LoggingSearch implements webdocx.SearchProvider.
var _ webdocx.SearchProvider = (*LoggingSearch)(nil)

// LoggingSearch wraps a SearchProvider with logging.
type LoggingSearch struct {
	next   webdocx.SearchProvider
	logger *slog.Logger
}

// NewLoggingSearch creates a new LoggingSearch.
func NewLoggingSearch(next webdocx.SearchProvider, logger *slog.Logger) *LoggingSearch {
	return &LoggingSearch{next: next, logger: logger}
}

// Search logs the query and result count, delegating to the wrapped provider.
func (s *LoggingSearch) Search(ctx context.Context, query string, limit int) (results []webdocx.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", query,
			"limit", limit,
			"results", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query, limit)
}
