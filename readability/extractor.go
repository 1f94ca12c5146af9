// Package readability extracts main content from HTML using the
// go-readability port of Mozilla's Readability. It serves as the
// fallback extractor when trafilatura finds nothing usable.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/webdocx/webdocx"
)

// Ensure Extractor implements webdocx.Extractor at compile time.
var _ webdocx.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*webdocx.ExtractResult, error) {
	if rawHTML == "" {
		return nil, webdocx.Errorf(webdocx.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, webdocx.Errorf(webdocx.ESCRAPE, "readability extraction failed: %s", err)
	}

	return &webdocx.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
