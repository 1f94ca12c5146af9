package webdocx

import "context"

// FrontierEntry is a queued URL awaiting fetch.
// DocHinted entries are dequeued before others.
type FrontierEntry struct {
	URL       string
	DocHinted bool
}

// URLFrontier manages the crawl queue: discovered-but-not-yet-fetched
// URLs with deduplication against everything ever queued or visited.
type URLFrontier interface {
	// Push offers a URL to the frontier. It returns false if the URL's
	// canonical form was already queued or visited, fails the domain
	// policy, or matches the skip list.
	Push(rawURL string) bool

	// Pop returns the next entry, documentation-hinted URLs first.
	// The bool result is false if the frontier is empty.
	Pop() (FrontierEntry, bool)

	// MarkVisited records that a fetch of the URL was attempted.
	// It is called exactly once per dequeued URL, success or failure,
	// so a permanently failing URL is never retried by the crawl loop.
	MarkVisited(rawURL string)

	// Visited reports whether the URL's canonical form was marked visited.
	Visited(rawURL string) bool

	// Len returns the number of queued entries.
	Len() int
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
