package mock

import (
	"context"

	"github.com/webdocx/webdocx"
)

var _ webdocx.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of webdocx.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, domain)
}

var _ webdocx.DigestStore = (*DigestStore)(nil)

// DigestStore is a mock implementation of webdocx.DigestStore.
type DigestStore struct {
	DigestFn     func(ctx context.Context, url string) (string, error)
	SaveDigestFn func(ctx context.Context, url string, digest string) error
}

func (s *DigestStore) Digest(ctx context.Context, url string) (string, error) {
	return s.DigestFn(ctx, url)
}

func (s *DigestStore) SaveDigest(ctx context.Context, url string, digest string) error {
	return s.SaveDigestFn(ctx, url, digest)
}
