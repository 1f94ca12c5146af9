package mock

import "github.com/webdocx/webdocx"

var _ webdocx.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of webdocx.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*webdocx.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*webdocx.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ webdocx.Converter = (*Converter)(nil)

// Converter is a mock implementation of webdocx.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
