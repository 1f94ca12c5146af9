// Package htmltomarkdown converts HTML to Markdown for LLM-friendly
// output. Chrome elements (script, style, nav, header, footer) are
// stripped before conversion so rendered pages that bypass content
// extraction still come out clean.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"

	"github.com/webdocx/webdocx"
)

// strippedTags are removed from the document before conversion.
const strippedTags = "script, style, nav, header, footer"

// Ensure Converter implements webdocx.Converter at compile time.
var _ webdocx.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", webdocx.Errorf(webdocx.EINVALID, "empty HTML input")
	}

	cleaned, err := stripChrome(html)
	if err != nil {
		return "", webdocx.Errorf(webdocx.ESCRAPE, "parsing HTML: %s", err)
	}

	result, err := c.conv.ConvertString(cleaned)
	if err != nil {
		return "", webdocx.Errorf(webdocx.ESCRAPE, "converting HTML to markdown: %s", err)
	}

	return strings.TrimSpace(result), nil
}

// stripChrome removes non-content elements from the document.
func stripChrome(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}
	doc.Find(strippedTags).Remove()
	return doc.Html()
}
