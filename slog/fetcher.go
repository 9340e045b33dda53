package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/blogcrawl"
)

// Ensure LoggingFetcher implements blogcrawl.Fetcher.
var _ blogcrawl.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   blogcrawl.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next blogcrawl.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string, opts blogcrawl.FetchOptions) (res *blogcrawl.FetchResult, err error) {
	defer func(begin time.Time) {
		var bytes int
		if res != nil {
			bytes = len(res.HTML)
		}
		f.logger.Info("fetch",
			"url", url,
			"session", opts.SessionID,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url, opts)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
