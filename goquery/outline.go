package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/webdocx/webdocx"
)

// maxSectionSummaryLen caps the summary taken from the paragraph
// following a heading.
const maxSectionSummaryLen = 200

// Ensure Outliner implements webdocx.Outliner at compile time.
var _ webdocx.Outliner = (*Outliner)(nil)

// Outliner extracts a structural heading outline from HTML.
type Outliner struct{}

// NewOutliner creates a new Outliner.
func NewOutliner() *Outliner {
	return &Outliner{}
}

// Outline returns the page's h1-h3 headings in document order, each
// with a summary taken from the first following paragraph or div.
func (o *Outliner) Outline(html string) ([]webdocx.Section, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, webdocx.Errorf(webdocx.ESCRAPE, "failed to parse HTML: %v", err)
	}

	var sections []webdocx.Section
	doc.Find("h1, h2, h3").Each(func(_ int, sel *goquery.Selection) {
		heading := strings.TrimSpace(sel.Text())
		if heading == "" {
			return
		}

		summary := ""
		next := sel.NextFiltered("p, div")
		if next.Length() > 0 {
			summary = truncate(strings.TrimSpace(next.First().Text()), maxSectionSummaryLen)
		}

		sections = append(sections, webdocx.Section{
			Heading: heading,
			Summary: summary,
		})
	})

	return sections, nil
}

// truncate cuts s to at most n bytes, backing up so a multi-byte
// rune is never split at the cut point.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
