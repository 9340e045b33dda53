package mock

import (
	"context"

	"github.com/fwojciec/blogcrawl"
)

var _ blogcrawl.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of blogcrawl.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string, opts blogcrawl.FetchOptions) (*blogcrawl.FetchResult, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string, opts blogcrawl.FetchOptions) (*blogcrawl.FetchResult, error) {
	return f.FetchFn(ctx, url, opts)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
