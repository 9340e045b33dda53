package blogcrawl

import "context"

// FeedDiscoverer finds post links from a site's syndication feed.
type FeedDiscoverer interface {
	// DiscoverPosts locates the site's RSS or Atom feed at well-known
	// paths and returns the post links it advertises, normalized against
	// the site origin. Returns ENOTFOUND when no feed exists.
	DiscoverPosts(ctx context.Context, baseURL string) ([]LinkEntry, error)
}
