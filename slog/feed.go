package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/blogcrawl"
)

// Ensure LoggingFeedDiscoverer implements blogcrawl.FeedDiscoverer.
var _ blogcrawl.FeedDiscoverer = (*LoggingFeedDiscoverer)(nil)

// LoggingFeedDiscoverer wraps a FeedDiscoverer with debug logging.
type LoggingFeedDiscoverer struct {
	next   blogcrawl.FeedDiscoverer
	logger *slog.Logger
}

// NewLoggingFeedDiscoverer creates a new LoggingFeedDiscoverer.
func NewLoggingFeedDiscoverer(next blogcrawl.FeedDiscoverer, logger *slog.Logger) *LoggingFeedDiscoverer {
	return &LoggingFeedDiscoverer{next: next, logger: logger}
}

// DiscoverPosts delegates to the wrapped discoverer and logs the operation.
func (d *LoggingFeedDiscoverer) DiscoverPosts(ctx context.Context, baseURL string) (entries []blogcrawl.LinkEntry, err error) {
	defer func(begin time.Time) {
		d.logger.Info("feed discovery",
			"url", baseURL,
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.DiscoverPosts(ctx, baseURL)
}
