// Package trafilatura extracts main content from HTML using
// go-trafilatura. It is the primary extractor on the static fetch
// path; documentation-heavy pages tend to survive its boilerplate
// removal better than generic readability heuristics.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"

	"github.com/webdocx/webdocx"
)

// Ensure Extractor implements webdocx.Extractor at compile time.
var _ webdocx.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, webdocx.Errorf(webdocx.ESCRAPE, "trafilatura extraction failed: %s", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, webdocx.Errorf(webdocx.ESCRAPE, "rendering extracted content: %s", err)
		}
	}

	return &webdocx.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
