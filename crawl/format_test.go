package crawl_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/webdocx/webdocx"
	"github.com/webdocx/webdocx/crawl"
	"github.com/webdocx/webdocx/scrape"
)

func TestResult_Markdown(t *testing.T) {
	t.Parallel()

	result := &crawl.Result{
		RootURL: "https://a.example/docs",
		Budget:  5,
		Pages: []*webdocx.Page{
			{
				URL:     "https://a.example/docs",
				Title:   "Getting Started",
				Content: scrape.Attribution("Getting Started", "https://a.example/docs") + "welcome text",
			},
			{
				URL:     "https://a.example/docs/api",
				Title:   "API Reference",
				Content: scrape.Attribution("API Reference", "https://a.example/docs/api") + "api text",
			},
		},
	}

	md := result.Markdown()

	assert.Contains(t, md, "> Crawled from: https://a.example/docs")
	assert.Contains(t, md, "> Fetched 2 of up to 5 pages")
	assert.Contains(t, md, "1. [Getting Started](#getting-started)")
	assert.Contains(t, md, "2. [API Reference](#api-reference)")
	assert.Contains(t, md, "## <a id=\"getting-started\"></a>1. Getting Started")
	assert.Contains(t, md, "> Source: https://a.example/docs/api")
	assert.Contains(t, md, "welcome text")

	// The per-page attribution header is re-synthesized, not duplicated.
	assert.Equal(t, 1, strings.Count(md, "# Getting Started"), "original attribution header must be stripped")
}

func TestResult_Markdown_deduplicates_anchors(t *testing.T) {
	t.Parallel()

	result := &crawl.Result{
		RootURL: "https://a.example",
		Budget:  3,
		Pages: []*webdocx.Page{
			{URL: "https://a.example/1", Title: "Setup", Content: "one"},
			{URL: "https://a.example/2", Title: "Setup", Content: "two"},
		},
	}

	md := result.Markdown()

	assert.Contains(t, md, "(#setup)")
	assert.Contains(t, md, "(#setup-2)")
}

func TestResult_Markdown_falls_back_to_URL_for_untitled_pages(t *testing.T) {
	t.Parallel()

	result := &crawl.Result{
		RootURL: "https://a.example",
		Budget:  1,
		Pages: []*webdocx.Page{
			{URL: "https://a.example/raw", Title: "", Content: "body"},
		},
	}

	md := result.Markdown()

	assert.Contains(t, md, "[https://a.example/raw](#https-a-example-raw)")
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  string
	}{
		{"Getting Started", "getting-started"},
		{"API Reference (v2)", "api-reference-v2"},
		{"  spaces   everywhere  ", "spaces-everywhere"},
		{"Ünicode Títles", "ünicode-títles"},
		{strings.Repeat("a", 80), strings.Repeat("a", 50)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, crawl.Slugify(tt.title), tt.title)
	}
}

func TestTruncateURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", crawl.TruncateURL("https://example.com", 0))
	assert.Equal(t, "https://a.co", crawl.TruncateURL("https://a.co", 50))
	assert.Equal(t, "...le.com/docs/intro", crawl.TruncateURL("https://example.com/docs/intro", 20))
}
