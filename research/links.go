package research

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/webdocx/webdocx"
)

// Report caps for link inventories.
const (
	MaxInternalLinks = 50
	MaxExternalLinks = 30
)

// LinkReport fetches a page and builds a markdown inventory of its
// links, split into same-domain and external groups and sorted
// case-insensitively by anchor text. Internal links are capped at
// MaxInternalLinks and external links at MaxExternalLinks. With
// filterExternal set, external links are omitted from the report.
func (s *Service) LinkReport(ctx context.Context, pageURL string, filterExternal bool) (string, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Host == "" {
		return "", webdocx.Errorf(webdocx.EINVALID, "invalid url %q", pageURL)
	}

	fetched, err := s.Fetcher.Fetch(ctx, pageURL, 1)
	if err != nil {
		return "", err
	}

	links, err := s.Links.ExtractLinks(fetched.HTML, pageURL)
	if err != nil {
		return "", err
	}

	var internal, external []webdocx.LinkRecord
	for _, l := range links {
		if l.Domain == parsed.Host {
			internal = append(internal, l)
		} else {
			external = append(external, l)
		}
	}
	sortByAnchor(internal)
	sortByAnchor(external)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Links from %s\n\n", pageURL))
	sb.WriteString(fmt.Sprintf("## Internal Links (%d)\n\n", len(internal)))
	for _, l := range capLinks(internal, MaxInternalLinks) {
		sb.WriteString(fmt.Sprintf("- [%s](%s)\n", l.AnchorText, l.AbsoluteURL))
	}

	if !filterExternal && len(external) > 0 {
		sb.WriteString(fmt.Sprintf("\n## External Links (%d)\n\n", len(external)))
		for _, l := range capLinks(external, MaxExternalLinks) {
			sb.WriteString(fmt.Sprintf("- [%s](%s)\n", l.AnchorText, l.AbsoluteURL))
		}
	}

	return sb.String(), nil
}

func sortByAnchor(links []webdocx.LinkRecord) {
	sort.SliceStable(links, func(i, j int) bool {
		return strings.ToLower(links[i].AnchorText) < strings.ToLower(links[j].AnchorText)
	})
}

func capLinks(links []webdocx.LinkRecord, max int) []webdocx.LinkRecord {
	if len(links) > max {
		return links[:max]
	}
	return links
}
