package mock

import (
	"context"

	"github.com/fwojciec/blogcrawl"
)

var _ blogcrawl.FeedDiscoverer = (*FeedDiscoverer)(nil)

// FeedDiscoverer is a mock implementation of blogcrawl.FeedDiscoverer.
type FeedDiscoverer struct {
	DiscoverPostsFn func(ctx context.Context, baseURL string) ([]blogcrawl.LinkEntry, error)
}

func (d *FeedDiscoverer) DiscoverPosts(ctx context.Context, baseURL string) ([]blogcrawl.LinkEntry, error) {
	return d.DiscoverPostsFn(ctx, baseURL)
}
