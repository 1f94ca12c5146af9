package webdocx

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown. Script, style,
	// nav, footer and header elements are stripped; headings, links,
	// emphasis and lists become markdown markup; redundant whitespace
	// is collapsed.
	Convert(html string) (string, error)
}
