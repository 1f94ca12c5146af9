package mock

import (
	"context"

	"github.com/webdocx/webdocx"
)

var _ webdocx.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of webdocx.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ webdocx.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of webdocx.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, url string) (*webdocx.RenderResult, error)
	CloseFn  func() error
}

func (r *Renderer) Render(ctx context.Context, url string) (*webdocx.RenderResult, error) {
	return r.RenderFn(ctx, url)
}

func (r *Renderer) Close() error {
	if r.CloseFn == nil {
		return nil
	}
	return r.CloseFn()
}
