// Package crawl provides the bounded-frontier documentation crawler:
// a FIFO frontier with doc-hint prioritization and a sequential BFS
// orchestrator that assembles fetched pages into a combined document.
package crawl

import (
	"net/url"
	"strings"

	"github.com/webdocx/webdocx"
	"github.com/webdocx/webdocx/bloom"
)

// Compile-time interface verification.
var _ webdocx.URLFrontier = (*Frontier)(nil)

// Frontier sizing for Bloom filter deduplication.
const (
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01
)

// docHintTokens mark documentation-like URLs that jump the queue.
var docHintTokens = []string{"doc", "guide", "tutorial", "reference"}

// skipTokens reject URLs that are never worth crawling.
var skipTokens = []string{"login", "signup", "download", "print", ".pdf", ".zip"}

// Frontier is an in-memory crawl queue with deduplication by canonical
// URL. Documentation-hinted URLs are inserted at the head of the queue,
// everything else at the tail. The crawl loop is strictly sequential,
// so the Frontier is deliberately not synchronized.
type Frontier struct {
	rootDomain    string
	allowExternal bool
	seen          *bloom.Filter
	visited       map[string]struct{}
	queue         []webdocx.FrontierEntry
}

// NewFrontier creates a Frontier scoped to the root URL's domain.
// With allowExternal false, URLs on other domains are dropped on Push.
func NewFrontier(rootURL string, allowExternal bool) (*Frontier, error) {
	parsed, err := url.Parse(rootURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, webdocx.Errorf(webdocx.EINVALID, "invalid root URL: %q", rootURL)
	}
	return &Frontier{
		rootDomain:    parsed.Host,
		allowExternal: allowExternal,
		seen:          bloom.NewFilter(frontierExpectedURLs, frontierFalsePositiveRate),
		visited:       make(map[string]struct{}),
	}, nil
}

// Push offers a URL to the frontier. The URL is silently dropped when
// its canonical form was already queued or visited, when it fails the
// domain policy, or when it matches the skip list.
func (f *Frontier) Push(rawURL string) bool {
	canonical, parsed, err := canonicalize(rawURL)
	if err != nil {
		return false
	}

	if !f.allowExternal && parsed.Host != f.rootDomain {
		return false
	}

	lowered := strings.ToLower(canonical)
	for _, token := range skipTokens {
		if strings.Contains(lowered, token) {
			return false
		}
	}

	if f.seen.Test(canonical) {
		return false
	}
	f.seen.Add(canonical)

	entry := webdocx.FrontierEntry{
		URL:       canonical,
		DocHinted: pathHintsDocs(parsed.Path),
	}
	if entry.DocHinted {
		f.queue = append([]webdocx.FrontierEntry{entry}, f.queue...)
	} else {
		f.queue = append(f.queue, entry)
	}
	return true
}

// Pop returns the next entry. The bool result is false when empty.
func (f *Frontier) Pop() (webdocx.FrontierEntry, bool) {
	if len(f.queue) == 0 {
		return webdocx.FrontierEntry{}, false
	}
	entry := f.queue[0]
	f.queue = f.queue[1:]
	return entry, true
}

// MarkVisited records a fetch attempt for the URL, success or failure.
// A visited URL can never re-enter the queue.
func (f *Frontier) MarkVisited(rawURL string) {
	canonical, _, err := canonicalize(rawURL)
	if err != nil {
		return
	}
	f.seen.Add(canonical)
	f.visited[canonical] = struct{}{}
}

// Visited reports whether the URL's canonical form was marked visited.
func (f *Frontier) Visited(rawURL string) bool {
	canonical, _, err := canonicalize(rawURL)
	if err != nil {
		return false
	}
	_, ok := f.visited[canonical]
	return ok
}

// Len returns the number of queued entries.
func (f *Frontier) Len() int {
	return len(f.queue)
}

// Canonical returns the canonical form of a URL used as the uniqueness
// key for frontier membership: scheme + host + path, with query and
// fragment stripped. Query-addressed resources therefore merge; this
// mirrors the crawler's dedup behavior and is a documented limitation.
func Canonical(rawURL string) (string, error) {
	canonical, _, err := canonicalize(rawURL)
	return canonical, err
}

func canonicalize(rawURL string) (string, *url.URL, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", nil, webdocx.Errorf(webdocx.EINVALID, "invalid URL: %q", rawURL)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", nil, webdocx.Errorf(webdocx.EINVALID, "URL missing scheme or host: %q", rawURL)
	}
	return parsed.Scheme + "://" + parsed.Host + parsed.Path, parsed, nil
}

// pathHintsDocs reports whether a URL path looks like documentation.
func pathHintsDocs(path string) bool {
	lowered := strings.ToLower(path)
	for _, token := range docHintTokens {
		if strings.Contains(lowered, token) {
			return true
		}
	}
	return false
}
