// Package rod implements webdocx.Renderer using Chrome browser
// automation, for pages that only produce useful content after
// JavaScript runs.
package rod

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/webdocx/webdocx"
)

// DefaultMaxPages is the number of rendered pages before the browser is
// recycled. Chrome accumulates memory under load and never returns to
// its baseline, so a long-lived renderer swaps in a fresh browser
// periodically.
const DefaultMaxPages = 75

// Ensure Renderer implements webdocx.Renderer at compile time.
var _ webdocx.Renderer = (*Renderer)(nil)

// Renderer retrieves fully rendered pages from a headless Chrome
// browser. Renderer is safe for concurrent use.
type Renderer struct {
	mu        sync.Mutex
	browser   *rod.Browser
	launcher  *launcher.Launcher
	pageCount int64
	maxPages  int64
	closed    atomic.Bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithMaxPages sets how many pages are rendered before the browser is
// recycled. Defaults to DefaultMaxPages.
func WithMaxPages(n int64) Option {
	return func(r *Renderer) {
		r.maxPages = n
	}
}

// NewRenderer launches a headless Chrome browser. Close must be called
// when the Renderer is no longer needed. Returns an error if
// Chrome/Chromium cannot be found or launched.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.launch(); err != nil {
		return nil, err
	}
	return r, nil
}

// Render navigates to the URL, waits for the page to load and returns
// the document title and rendered HTML.
func (r *Renderer) Render(ctx context.Context, url string) (*webdocx.RenderResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := r.acquire().Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, webdocx.Errorf(webdocx.ESCRAPE, "opening page for %s: %s", url, err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return nil, webdocx.Errorf(webdocx.ESCRAPE, "navigating to %s: %s", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		if ctx.Err() != nil {
			return nil, webdocx.Errorf(webdocx.ETIMEOUT, "rendering %s timed out", url)
		}
		return nil, webdocx.Errorf(webdocx.ESCRAPE, "waiting for %s to load: %s", url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return nil, webdocx.Errorf(webdocx.ESCRAPE, "reading rendered HTML of %s: %s", url, err)
	}

	var title string
	if info, err := page.Info(); err == nil {
		title = info.Title
	}

	atomic.AddInt64(&r.pageCount, 1)

	return &webdocx.RenderResult{Title: title, HTML: html}, nil
}

// Close releases browser resources. Safe to call multiple times.
func (r *Renderer) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shutdown()
}

// acquire returns the current browser, swapping in a fresh one when
// the page count reaches maxPages.
func (r *Renderer) acquire() *rod.Browser {
	r.mu.Lock()
	defer r.mu.Unlock()

	if atomic.LoadInt64(&r.pageCount) >= r.maxPages {
		r.recycle()
	}
	return r.browser
}

// launch starts a new browser instance with stability flags.
func (r *Renderer) launch() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return webdocx.Errorf(webdocx.EUNAVAILABLE, "launching browser: %s", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return webdocx.Errorf(webdocx.EUNAVAILABLE, "connecting to browser: %s", err)
	}

	r.browser = browser
	r.launcher = l
	return nil
}

// recycle starts a fresh browser and closes the old one. If the new
// launch fails the old browser stays in place. Must be called with mu
// held.
func (r *Renderer) recycle() {
	oldBrowser, oldLauncher := r.browser, r.launcher
	r.browser, r.launcher = nil, nil

	if err := r.launch(); err != nil {
		r.browser, r.launcher = oldBrowser, oldLauncher
		return
	}

	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
	}
	atomic.StoreInt64(&r.pageCount, 0)
}

// shutdown closes the browser and kills the launcher. Must be called
// with mu held.
func (r *Renderer) shutdown() error {
	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	if r.launcher != nil {
		r.launcher.Kill()
		r.launcher = nil
	}
	return err
}

// LauncherPID returns the browser launcher's process ID. Used by tests
// to verify process cleanup.
func (r *Renderer) LauncherPID() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.launcher == nil {
		return 0
	}
	return r.launcher.PID()
}
