package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/webdocx/webdocx"
)

// Compile-time interface verification.
var _ webdocx.DigestStore = (*DigestStore)(nil)

// DigestStore implements webdocx.DigestStore using SQLite.
type DigestStore struct {
	db *DB
}

// NewDigestStore creates a new DigestStore.
func NewDigestStore(db *DB) *DigestStore {
	return &DigestStore{db: db}
}

// Digest returns the stored digest for the URL.
func (s *DigestStore) Digest(ctx context.Context, url string) (string, error) {
	var digest string
	err := s.db.QueryRowContext(ctx, `
		SELECT digest FROM digests WHERE url = ?
	`, url).Scan(&digest)

	if errors.Is(err, sql.ErrNoRows) {
		return "", webdocx.Errorf(webdocx.ENOTFOUND, "no digest stored for %s", url)
	}
	if err != nil {
		return "", err
	}
	return digest, nil
}

// SaveDigest stores the digest for the URL, replacing any previous one.
func (s *DigestStore) SaveDigest(ctx context.Context, url string, digest string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO digests (url, digest, checked_at)
		VALUES (?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET digest = excluded.digest, checked_at = excluded.checked_at
	`, url, digest, time.Now().UTC().Format(time.RFC3339))
	return err
}
