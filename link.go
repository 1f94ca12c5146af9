package webdocx

// LinkRecord represents a hyperlink discovered on a page.
// Records are derived per extraction call and not persisted.
type LinkRecord struct {
	AbsoluteURL string
	AnchorText  string
	Domain      string
}

// LinkExtractor parses HTML and returns the links it contains.
type LinkExtractor interface {
	// ExtractLinks resolves anchors against baseURL and returns http/https
	// links with a non-empty path, deduplicated by absolute URL with
	// first-appearance order preserved. A parse failure downgrades to an
	// empty result rather than an error where possible.
	ExtractLinks(html string, baseURL string) ([]LinkRecord, error)
}
