package scrape_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webdocx/webdocx"
	"github.com/webdocx/webdocx/mock"
	"github.com/webdocx/webdocx/scrape"
)

func TestRenderStrategy_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("renders and converts to markdown", func(t *testing.T) {
		t.Parallel()

		renderer := &mock.Renderer{
			RenderFn: func(ctx context.Context, url string) (*webdocx.RenderResult, error) {
				return &webdocx.RenderResult{Title: "Docs", HTML: "<main>hi</main>"}, nil
			},
		}
		converter := &mock.Converter{
			ConvertFn: func(html string) (string, error) { return "hi", nil },
		}
		s := &scrape.RenderStrategy{Renderer: renderer, Converter: converter}

		res, err := s.Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "Docs", res.Title)
		assert.Equal(t, "<main>hi</main>", res.HTML)
		assert.Equal(t, "hi", res.Markdown)
	})

	t.Run("unavailable without renderer", func(t *testing.T) {
		t.Parallel()

		s := &scrape.RenderStrategy{}

		_, err := s.Fetch(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Equal(t, webdocx.EUNAVAILABLE, webdocx.ErrorCode(err))
	})
}

func TestStaticStrategy_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("fetches extracts and converts", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html><body><nav>menu</nav><main>content</main></body></html>", nil
			},
		}
		extractor := &mock.Extractor{
			ExtractFn: func(html string) (*webdocx.ExtractResult, error) {
				return &webdocx.ExtractResult{Title: "Page", ContentHTML: "<main>content</main>"}, nil
			},
		}
		converter := &mock.Converter{
			ConvertFn: func(html string) (string, error) { return "content", nil },
		}
		s := &scrape.StaticStrategy{Fetcher: fetcher, Extractor: extractor, Converter: converter}

		res, err := s.Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "Page", res.Title)
		assert.Contains(t, res.HTML, "<nav>menu</nav>", "strategy returns raw HTML for link discovery")
		assert.Equal(t, "content", res.Markdown)
	})

	t.Run("propagates fetch error", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", webdocx.Errorf(webdocx.ESCRAPE, "HTTP 404 for %s", url)
			},
		}
		s := &scrape.StaticStrategy{Fetcher: fetcher}

		_, err := s.Fetch(context.Background(), "https://example.com/missing")

		require.Error(t, err)
		assert.Equal(t, webdocx.ESCRAPE, webdocx.ErrorCode(err))
	})
}
