package http

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/webdocx/webdocx"
)

// Sitemap discovers page URLs from a site's sitemaps. Crawls can use
// the result to pre-seed a frontier instead of relying on link
// discovery alone. Discovery consults robots.txt Sitemap directives
// first and falls back to /sitemap.xml.
type Sitemap struct {
	client    *http.Client
	userAgent string
}

// NewSitemap creates a sitemap discoverer sharing the given HTTP
// client. A nil client uses http.DefaultClient.
func NewSitemap(client *http.Client) *Sitemap {
	if client == nil {
		client = http.DefaultClient
	}
	return &Sitemap{client: client, userAgent: DefaultUserAgent}
}

// DiscoverURLs returns the page URLs listed in the site's sitemaps,
// deduplicated in discovery order. When baseURL carries a non-root
// path, only URLs under that path are returned. A site without any
// sitemap yields an empty slice, not an error.
func (s *Sitemap) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, webdocx.Errorf(webdocx.EINVALID, "invalid url %q", baseURL)
	}

	pathPrefix := base.Path
	if pathPrefix == "/" {
		pathPrefix = ""
	}

	// Sitemaps live at the domain root regardless of the seed path.
	root := *base
	root.Path = ""

	sitemapURLs := s.findSitemaps(ctx, &root)
	if len(sitemapURLs) == 0 {
		return []string{}, ctx.Err()
	}

	var discovered []string
	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)
	for _, sm := range sitemapURLs {
		urls, err := s.readSitemap(ctx, sm, seenSitemaps)
		if err != nil {
			return nil, err
		}
		for _, u := range urls {
			if seenURLs[u] {
				continue
			}
			seenURLs[u] = true
			if underPath(u, pathPrefix) {
				discovered = append(discovered, u)
			}
		}
	}
	if discovered == nil {
		discovered = []string{}
	}
	return discovered, nil
}

// findSitemaps locates sitemap URLs via robots.txt, falling back to the
// conventional /sitemap.xml location.
func (s *Sitemap) findSitemaps(ctx context.Context, root *url.URL) []string {
	robotsURL := root.ResolveReference(&url.URL{Path: "/robots.txt"}).String()
	if sitemaps := s.sitemapsFromRobots(ctx, robotsURL); len(sitemaps) > 0 {
		return sitemaps
	}

	fallback := root.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()
	if s.exists(ctx, fallback) {
		return []string{fallback}
	}
	return nil
}

// sitemapsFromRobots extracts Sitemap: directives from robots.txt.
// Any failure reads as "no directives".
func (s *Sitemap) sitemapsFromRobots(ctx context.Context, robotsURL string) []string {
	body, err := s.get(ctx, robotsURL)
	if err != nil {
		return nil
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			continue
		}
		if sm := strings.TrimSpace(line[len("sitemap:"):]); sm != "" {
			sitemaps = append(sitemaps, sm)
		}
	}
	return sitemaps
}

// readSitemap fetches and parses one sitemap document, following
// <sitemapindex> references recursively. Each sitemap is read at most
// once.
func (s *Sitemap) readSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, webdocx.Errorf(webdocx.ESCRAPE, "parsing sitemap %s: %s", sitemapURL, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, webdocx.Errorf(webdocx.ESCRAPE, "empty sitemap %s", sitemapURL)
	}

	if root.Tag == "sitemapindex" {
		var all []string
		for _, child := range root.SelectElements("sitemap") {
			loc := locText(child)
			if loc == "" {
				continue
			}
			urls, err := s.readSitemap(ctx, loc, seen)
			if err != nil {
				return nil, err
			}
			all = append(all, urls...)
		}
		return all, nil
	}

	var urls []string
	for _, entry := range root.SelectElements("url") {
		if loc := locText(entry); loc != "" {
			urls = append(urls, loc)
		}
	}
	return urls, nil
}

func locText(el *etree.Element) string {
	loc := el.SelectElement("loc")
	if loc == nil {
		return ""
	}
	return strings.TrimSpace(loc.Text())
}

// underPath reports whether the URL's path sits under prefix at a path
// boundary, so /docs matches /docs/intro but not /documentation.
func underPath(rawURL, prefix string) bool {
	if prefix == "" {
		return true
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return strings.HasPrefix(parsed.Path, prefix) || parsed.Path+"/" == prefix
}

func (s *Sitemap) get(ctx context.Context, target string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, webdocx.Errorf(webdocx.EINVALID, "invalid request for %s: %s", target, err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, webdocx.Errorf(webdocx.ESCRAPE, "request to %s failed: %s", target, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, webdocx.Errorf(webdocx.ESCRAPE, "HTTP %d for %s", resp.StatusCode, target)
	}
	return resp.Body, nil
}

func (s *Sitemap) exists(ctx context.Context, target string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
