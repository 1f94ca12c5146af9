package goquery_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webdocx/webdocx"
	wdgoquery "github.com/webdocx/webdocx/goquery"
)

func TestExtractor_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("resolves relative links against base URL", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="/docs/intro">Introduction</a>
			<a href="guide">Guide</a>
			<a href="https://b.example/other">Other Site</a>
		</body></html>`

		e := wdgoquery.NewExtractor()
		records, err := e.ExtractLinks(html, "https://a.example/docs/")

		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, webdocx.LinkRecord{
			AbsoluteURL: "https://a.example/docs/intro",
			AnchorText:  "Introduction",
			Domain:      "a.example",
		}, records[0])
		assert.Equal(t, "https://a.example/docs/guide", records[1].AbsoluteURL)
		assert.Equal(t, "b.example", records[2].Domain)
	})

	t.Run("deduplicates by absolute URL preserving first appearance", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="/one">First</a>
			<a href="/two">Second</a>
			<a href="https://a.example/one">First Again</a>
		</body></html>`

		e := wdgoquery.NewExtractor()
		records, err := e.ExtractLinks(html, "https://a.example/")

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "First", records[0].AnchorText, "first occurrence wins")
		assert.Equal(t, "https://a.example/two", records[1].AbsoluteURL)
	})

	t.Run("skips non-http schemes and empty paths", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="javascript:void(0)">JS</a>
			<a href="mailto:hi@a.example">Mail</a>
			<a href="ftp://a.example/file">FTP</a>
			<a href="https://a.example">No Path</a>
			<a href="/kept">Kept</a>
		</body></html>`

		e := wdgoquery.NewExtractor()
		records, err := e.ExtractLinks(html, "https://a.example/")

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "https://a.example/kept", records[0].AbsoluteURL)
	})

	t.Run("uses URL as anchor text fallback", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/img-link"><img src="x.png"></a>`

		e := wdgoquery.NewExtractor()
		records, err := e.ExtractLinks(html, "https://a.example/")

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "https://a.example/img-link", records[0].AnchorText)
	})

	t.Run("rejects invalid base URL", func(t *testing.T) {
		t.Parallel()

		e := wdgoquery.NewExtractor()
		_, err := e.ExtractLinks("<a href='/x'>x</a>", "://bad")

		require.Error(t, err)
		assert.Equal(t, webdocx.EINVALID, webdocx.ErrorCode(err))
	})

	t.Run("returns empty set for HTML without links", func(t *testing.T) {
		t.Parallel()

		e := wdgoquery.NewExtractor()
		records, err := e.ExtractLinks("<p>no links here</p>", "https://a.example/")

		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestOutliner_Outline(t *testing.T) {
	t.Parallel()

	t.Run("extracts headings with following summaries", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<h1>Title</h1>
			<p>Opening paragraph.</p>
			<h2>Install</h2>
			<p>Run the installer.</p>
			<h3>Windows</h3>
			<h4>Ignored Level</h4>
		</body></html>`

		o := wdgoquery.NewOutliner()
		sections, err := o.Outline(html)

		require.NoError(t, err)
		require.Len(t, sections, 3)
		assert.Equal(t, webdocx.Section{Heading: "Title", Summary: "Opening paragraph."}, sections[0])
		assert.Equal(t, webdocx.Section{Heading: "Install", Summary: "Run the installer."}, sections[1])
		assert.Equal(t, webdocx.Section{Heading: "Windows", Summary: ""}, sections[2])
	})

	t.Run("skips empty headings", func(t *testing.T) {
		t.Parallel()

		o := wdgoquery.NewOutliner()
		sections, err := o.Outline("<h1>  </h1><h2>Real</h2>")

		require.NoError(t, err)
		require.Len(t, sections, 1)
		assert.Equal(t, "Real", sections[0].Heading)
	})

	t.Run("summary cap never splits a rune", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("世", 100) // 3 bytes each, 300 total
		o := wdgoquery.NewOutliner()
		sections, err := o.Outline("<h1>Title</h1><p>" + long + "</p>")

		require.NoError(t, err)
		require.Len(t, sections, 1)
		assert.True(t, utf8.ValidString(sections[0].Summary))
		assert.Len(t, sections[0].Summary, 198, "backs up to the last rune boundary under 200")
	})
}
