package research

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/webdocx/webdocx"
)

// MaxRelated caps how many related pages FindRelated returns.
const MaxRelated = 10

// FindRelated searches for pages related to the given URL. The search
// query is derived from the page title when the page can be fetched,
// otherwise from the trailing segments of the URL path. The original
// URL is excluded from the results.
func (s *Service) FindRelated(ctx context.Context, pageURL string, limit int) (string, error) {
	limit = clamp(limit, 1, MaxRelated)

	query := s.relatedQuery(ctx, pageURL)

	// Over-fetch so filtering out the original URL still leaves
	// enough results.
	results, err := s.Search.Search(ctx, query, limit+5)
	if err != nil {
		return fmt.Sprintf("# Related Pages\n\nFailed to find related content for: %s\n", pageURL), nil
	}

	related := make([]webdocx.SearchResult, 0, limit)
	for _, r := range results {
		if r.URL == pageURL {
			continue
		}
		related = append(related, r)
		if len(related) == limit {
			break
		}
	}
	if len(related) == 0 {
		return fmt.Sprintf("# Related Pages\n\nNo related pages found for: %s\n", pageURL), nil
	}

	var sb strings.Builder
	sb.WriteString("# Related Pages\n\n")
	sb.WriteString(fmt.Sprintf("> Based on: %s\n\n", pageURL))
	sb.WriteString("## Recommendations\n")
	for i, r := range related {
		sb.WriteString(fmt.Sprintf("\n### %d. %s\n\n", i+1, r.Title))
		sb.WriteString(fmt.Sprintf("**URL**: %s\n\n", r.URL))
		sb.WriteString(r.Snippet)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// relatedQuery derives a search query for pageURL, preferring the
// fetched page title and falling back to the URL path.
func (s *Service) relatedQuery(ctx context.Context, pageURL string) string {
	fetched, err := s.Fetcher.Fetch(ctx, pageURL, 1)
	if err == nil && fetched.Page.Title != "" {
		return fetched.Page.Title + " related documentation"
	}

	parsed, err := url.Parse(pageURL)
	if err != nil {
		return pageURL
	}
	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(parts) > 2 {
		parts = parts[len(parts)-2:]
	}
	return strings.Join(parts, " ")
}
