package webdocx

import "time"

// Page represents a fetched web page normalized to readable markdown.
// A Page is produced once per successful fetch and is immutable after
// creation; it is owned by whichever component requested the fetch.
type Page struct {
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Content   string    `json:"content"` // Markdown with attribution header
	FetchedAt time.Time `json:"fetchedAt"`
}

// Section represents a heading extracted from a page.
type Section struct {
	Heading string `json:"heading"`
	Summary string `json:"summary"`
}

// PageSummary is a structural outline of a page without full content.
type PageSummary struct {
	URL      string    `json:"url"`
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// Outliner extracts a heading outline from raw HTML.
type Outliner interface {
	// Outline returns the page's h1-h3 headings in document order,
	// each with a short summary taken from the following paragraph.
	Outline(html string) ([]Section, error)
}
