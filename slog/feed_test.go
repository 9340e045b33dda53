package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/blogcrawl"
	"github.com/fwojciec/blogcrawl/mock"
	blogslog "github.com/fwojciec/blogcrawl/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFeedDiscoverer_DiscoverPosts(t *testing.T) {
	t.Parallel()

	t.Run("logs discovery with count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.FeedDiscoverer{
			DiscoverPostsFn: func(ctx context.Context, baseURL string) ([]blogcrawl.LinkEntry, error) {
				return []blogcrawl.LinkEntry{
					{Title: "First Post", Link: "https://example.com/blog/a"},
					{Title: "Second Post", Link: "https://example.com/blog/b"},
				}, nil
			},
		}

		d := blogslog.NewLoggingFeedDiscoverer(inner, logger)
		entries, err := d.DiscoverPosts(context.Background(), "https://example.com/blog")

		require.NoError(t, err)
		assert.Len(t, entries, 2)
		output := buf.String()
		assert.Contains(t, output, "feed discovery")
		assert.Contains(t, output, "url=https://example.com/blog")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.FeedDiscoverer{
			DiscoverPostsFn: func(ctx context.Context, baseURL string) ([]blogcrawl.LinkEntry, error) {
				return nil, errors.New("connection failed")
			},
		}

		d := blogslog.NewLoggingFeedDiscoverer(inner, logger)
		_, err := d.DiscoverPosts(context.Background(), "https://example.com/blog")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "feed discovery")
		assert.Contains(t, output, "err=\"connection failed\"")
	})
}
