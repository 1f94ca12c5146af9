package crawl

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/webdocx/webdocx/scrape"
)

// maxSlugLen caps anchor IDs derived from page titles.
const maxSlugLen = 50

// Markdown assembles the crawl result into a combined document: a table
// of contents with one entry per fetched page in fetch order, followed
// by the page bodies with attribution headers re-synthesized per page.
func (r *Result) Markdown() string {
	var toc strings.Builder
	var body strings.Builder

	toc.WriteString("# Documentation\n\n")
	toc.WriteString(fmt.Sprintf("> Crawled from: %s\n", r.RootURL))
	toc.WriteString(fmt.Sprintf("> Fetched %d of up to %d pages\n\n", len(r.Pages), r.Budget))
	toc.WriteString("## Table of Contents\n\n")

	anchorCounts := make(map[string]int)

	for i, page := range r.Pages {
		title := page.Title
		if title == "" {
			title = page.URL
		}

		anchor := Slugify(title)
		if count, exists := anchorCounts[anchor]; exists {
			anchorCounts[anchor] = count + 1
			anchor = anchor + "-" + strconv.Itoa(count+1)
		} else {
			anchorCounts[anchor] = 1
		}

		toc.WriteString(fmt.Sprintf("%d. [%s](#%s)\n", i+1, title, anchor))

		body.WriteString("\n---\n\n")
		body.WriteString(fmt.Sprintf("## <a id=%q></a>%d. %s\n\n", anchor, i+1, title))
		body.WriteString(fmt.Sprintf("> Source: %s\n\n", page.URL))
		body.WriteString(scrape.StripAttribution(page.Content))
		body.WriteString("\n")
	}

	return toc.String() + body.String()
}

// Slugify converts a title into a URL-safe anchor ID: lowercase letters
// and digits with hyphens for separators, truncated to 50 characters.
func Slugify(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if sb.Len() >= maxSlugLen {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' || r == '.' || r == '/' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}

// TruncateURL shortens a URL for display, keeping the end which is more
// informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}
