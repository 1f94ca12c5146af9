package webdocx

import "context"

// DigestStore persists content digests between change checks.
// The change detector itself never touches storage; the caller
// (e.g. the CLI watch command) owns persistence of the digest it
// gets back and supplies it on the next check.
type DigestStore interface {
	// Digest returns the stored digest for the URL.
	// Returns ENOTFOUND if no digest has been stored.
	Digest(ctx context.Context, url string) (string, error)

	// SaveDigest stores the digest for the URL, replacing any previous one.
	SaveDigest(ctx context.Context, url string, digest string) error
}
