package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webdocx/webdocx"
	"github.com/webdocx/webdocx/mock"
	webslog "github.com/webdocx/webdocx/slog"
)

func TestLoggingSearch_Search(t *testing.T) {
	t.Parallel()

	t.Run("logs query and result count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SearchProvider{
			SearchFn: func(ctx context.Context, query string, limit int) ([]webdocx.SearchResult, error) {
				return []webdocx.SearchResult{
					{Title: "A", URL: "https://a.example/"},
					{Title: "B", URL: "https://b.example/"},
				}, nil
			},
		}

		search := webslog.NewLoggingSearch(inner, logger)
		results, err := search.Search(context.Background(), "go testing", 5)

		require.NoError(t, err)
		assert.Len(t, results, 2)
		output := buf.String()
		assert.Contains(t, output, "search")
		assert.Contains(t, output, "query=\"go testing\"")
		assert.Contains(t, output, "limit=5")
		assert.Contains(t, output, "results=2")
	})

	t.Run("logs search failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SearchProvider{
			SearchFn: func(ctx context.Context, query string, limit int) ([]webdocx.SearchResult, error) {
				return nil, webdocx.Errorf(webdocx.ESEARCH, "rate limited")
			},
		}

		search := webslog.NewLoggingSearch(inner, logger)
		_, err := search.Search(context.Background(), "query", 5)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "results=0")
		assert.Contains(t, output, "rate limited")
	})
}
