// Package monitor detects content changes on previously seen pages.
// It performs a single fetch, hashes the normalized content and
// classifies it against a caller-supplied previous digest. The package
// owns no storage: persisting the returned digest for the next check is
// the caller's responsibility.
package monitor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/webdocx/webdocx/scrape"
)

// Status classifies the result of a change check.
type Status string

// Change check statuses.
const (
	StatusBaseline  Status = "baseline"  // no previous digest supplied
	StatusUnchanged Status = "unchanged" // digests equal
	StatusChanged   Status = "changed"   // digests differ
)

// DefaultCheckRetries is the fetch retry budget for a change check.
const DefaultCheckRetries = 1

// previewLen caps the content preview included in reports.
const previewLen = 500

// PageFetcher fetches one URL into a page. *scrape.Pipeline satisfies
// this interface.
type PageFetcher interface {
	Fetch(ctx context.Context, url string, maxRetries int) (*scrape.Result, error)
}

// Report is the outcome of a change check.
type Report struct {
	URL       string
	Title     string
	Status    Status
	Digest    string
	Previous  string
	CheckedAt time.Time
	Preview   string
}

// Detector checks URLs for content changes.
type Detector struct {
	Fetcher PageFetcher
	Retries int // defaults to DefaultCheckRetries
}

// Check fetches the URL once and classifies its content digest against
// previousDigest: Baseline when previousDigest is empty, Unchanged when
// equal, Changed otherwise. A fetch failure propagates; no stale digest
// is fabricated.
func (d *Detector) Check(ctx context.Context, url string, previousDigest string) (*Report, error) {
	retries := d.Retries
	if retries <= 0 {
		retries = DefaultCheckRetries
	}

	fetched, err := d.Fetcher.Fetch(ctx, url, retries)
	if err != nil {
		return nil, err
	}

	content := scrape.StripAttribution(fetched.Page.Content)
	digest := ComputeDigest(content)

	status := StatusChanged
	switch previousDigest {
	case "":
		status = StatusBaseline
	case digest:
		status = StatusUnchanged
	}

	preview := truncate(strings.TrimSpace(content), previewLen)

	return &Report{
		URL:       url,
		Title:     fetched.Page.Title,
		Status:    status,
		Digest:    digest,
		Previous:  previousDigest,
		CheckedAt: fetched.Page.FetchedAt,
		Preview:   preview,
	}, nil
}

// truncate cuts s to at most n bytes, backing up so a multi-byte
// rune is never split at the cut point.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// ComputeDigest returns the xxhash digest of content as a hex string.
// Digests are compared for equality only, never reversed.
func ComputeDigest(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

// Markdown renders the report as a human-readable change summary.
func (r *Report) Markdown() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Change Monitor: %s\n\n", r.Title))
	sb.WriteString(fmt.Sprintf("> URL: %s\n", r.URL))
	sb.WriteString(fmt.Sprintf("> Checked: %s\n\n", r.CheckedAt.Format("2006-01-02 15:04:05")))
	sb.WriteString("## Status\n\n")

	switch r.Status {
	case StatusBaseline:
		sb.WriteString("First check - baseline established\n\n")
		sb.WriteString(fmt.Sprintf("- Content digest: `%s`\n", r.Digest))
	case StatusUnchanged:
		sb.WriteString("No changes detected\n\n")
		sb.WriteString(fmt.Sprintf("- Content digest: `%s`\n", r.Digest))
	case StatusChanged:
		sb.WriteString("Content has changed\n\n")
		sb.WriteString(fmt.Sprintf("- Previous digest: `%s`\n", r.Previous))
		sb.WriteString(fmt.Sprintf("- Current digest: `%s`\n", r.Digest))
	}

	if r.Preview != "" {
		sb.WriteString("\n## Current Content Preview\n\n")
		sb.WriteString(r.Preview)
		sb.WriteString("\n")
	}

	return sb.String()
}
