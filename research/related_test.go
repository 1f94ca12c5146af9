package research_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webdocx/webdocx"
	"github.com/webdocx/webdocx/mock"
	"github.com/webdocx/webdocx/research"
)

func TestService_FindRelated(t *testing.T) {
	t.Parallel()

	t.Run("query derived from page title", func(t *testing.T) {
		t.Parallel()
		f := &fakeFetcher{pages: map[string]string{"https://docs.example/asyncio": "body"}}
		var gotQuery string
		s := &research.Service{
			Fetcher: f,
			Search: &mock.SearchProvider{SearchFn: func(_ context.Context, query string, _ int) ([]webdocx.SearchResult, error) {
				gotQuery = query
				return []webdocx.SearchResult{result(1), result(2)}, nil
			}},
		}

		report, err := s.FindRelated(context.Background(), "https://docs.example/asyncio", 5)
		require.NoError(t, err)
		assert.Equal(t, "Title of https://docs.example/asyncio related documentation", gotQuery)
		assert.Contains(t, report, "# Related Pages")
		assert.Contains(t, report, "> Based on: https://docs.example/asyncio")
		assert.Contains(t, report, "**URL**: "+result(1).URL)
		assert.Contains(t, report, "snippet 2")
	})

	t.Run("query falls back to url path when fetch fails", func(t *testing.T) {
		t.Parallel()
		var gotQuery string
		s := &research.Service{
			Fetcher: &fakeFetcher{},
			Search: &mock.SearchProvider{SearchFn: func(_ context.Context, query string, _ int) ([]webdocx.SearchResult, error) {
				gotQuery = query
				return []webdocx.SearchResult{result(1)}, nil
			}},
		}

		_, err := s.FindRelated(context.Background(), "https://docs.example/3/library/asyncio", 5)
		require.NoError(t, err)
		assert.Equal(t, "library asyncio", gotQuery)
	})

	t.Run("original url excluded and limit applied", func(t *testing.T) {
		t.Parallel()
		self := webdocx.SearchResult{Title: "Self", URL: "https://docs.example/p"}
		s := &research.Service{
			Fetcher: &fakeFetcher{pages: map[string]string{"https://docs.example/p": "body"}},
			Search: &mock.SearchProvider{SearchFn: func(_ context.Context, _ string, _ int) ([]webdocx.SearchResult, error) {
				return []webdocx.SearchResult{self, result(1), result(2), result(3)}, nil
			}},
		}

		report, err := s.FindRelated(context.Background(), "https://docs.example/p", 2)
		require.NoError(t, err)
		assert.NotContains(t, report, "### 1. Self")
		assert.Contains(t, report, result(1).URL)
		assert.Contains(t, report, result(2).URL)
		assert.NotContains(t, report, result(3).URL)
	})

	t.Run("search failure yields fallback report", func(t *testing.T) {
		t.Parallel()
		s := &research.Service{
			Fetcher: &fakeFetcher{pages: map[string]string{"https://docs.example/p": "body"}},
			Search: &mock.SearchProvider{SearchFn: func(_ context.Context, _ string, _ int) ([]webdocx.SearchResult, error) {
				return nil, webdocx.Errorf(webdocx.ESEARCH, "rate limited")
			}},
		}

		report, err := s.FindRelated(context.Background(), "https://docs.example/p", 5)
		require.NoError(t, err)
		assert.Contains(t, report, "Failed to find related content")
	})

	t.Run("no related pages", func(t *testing.T) {
		t.Parallel()
		self := webdocx.SearchResult{Title: "Self", URL: "https://docs.example/p"}
		s := &research.Service{
			Fetcher: &fakeFetcher{pages: map[string]string{"https://docs.example/p": "body"}},
			Search: &mock.SearchProvider{SearchFn: func(_ context.Context, _ string, _ int) ([]webdocx.SearchResult, error) {
				return []webdocx.SearchResult{self}, nil
			}},
		}

		report, err := s.FindRelated(context.Background(), "https://docs.example/p", 5)
		require.NoError(t, err)
		assert.Contains(t, report, "No related pages found")
	})
}
