package mock

import "github.com/webdocx/webdocx"

var _ webdocx.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of webdocx.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]webdocx.LinkRecord, error)
}

func (l *LinkExtractor) ExtractLinks(html string, baseURL string) ([]webdocx.LinkRecord, error) {
	return l.ExtractLinksFn(html, baseURL)
}

var _ webdocx.Outliner = (*Outliner)(nil)

// Outliner is a mock implementation of webdocx.Outliner.
type Outliner struct {
	OutlineFn func(html string) ([]webdocx.Section, error)
}

func (o *Outliner) Outline(html string) ([]webdocx.Section, error) {
	return o.OutlineFn(html)
}
