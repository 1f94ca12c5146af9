// Package goquery provides HTML parsing implementations of the domain
// interfaces: link extraction and page outlining.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/webdocx/webdocx"
)

// Ensure Extractor implements webdocx.LinkExtractor at compile time.
var _ webdocx.LinkExtractor = (*Extractor)(nil)

// Extractor extracts links from HTML pages.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractLinks parses HTML and returns all http/https anchors with a
// non-empty path, resolved against baseURL. Records are deduplicated by
// absolute URL with first-appearance order preserved.
func (e *Extractor) ExtractLinks(html string, baseURL string) ([]webdocx.LinkRecord, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, webdocx.Errorf(webdocx.EINVALID, "invalid base URL: %q", baseURL)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, webdocx.Errorf(webdocx.ESCRAPE, "failed to parse HTML from %q: %v", baseURL, err)
	}

	seen := make(map[string]struct{})
	var records []webdocx.LinkRecord

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" || isNonHTTPLink(href) {
			return
		}

		resolved, err := base.Parse(href)
		if err != nil {
			return
		}
		if resolved.Scheme != "http" && resolved.Scheme != "https" {
			return
		}
		if resolved.Path == "" {
			return
		}

		absolute := resolved.String()
		if _, ok := seen[absolute]; ok {
			return
		}
		seen[absolute] = struct{}{}

		text := strings.TrimSpace(sel.Text())
		if text == "" {
			text = absolute
		}

		records = append(records, webdocx.LinkRecord{
			AbsoluteURL: absolute,
			AnchorText:  text,
			Domain:      resolved.Host,
		})
	})

	return records, nil
}

// isNonHTTPLink reports whether href uses a scheme that can never
// resolve to a crawlable page (javascript:, mailto:, tel:, data:).
func isNonHTTPLink(href string) bool {
	lowered := strings.ToLower(href)
	for _, prefix := range []string{"javascript:", "mailto:", "tel:", "data:"} {
		if strings.HasPrefix(lowered, prefix) {
			return true
		}
	}
	return false
}
