//go:build integration

package rod_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/blogcrawl"
	"github.com/fwojciec/blogcrawl/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Integration_GoDevBlog(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(30 * time.Second))
	require.NoError(t, err)
	defer fetcher.Close()

	res, err := fetcher.Fetch(ctx, "https://go.dev/blog/", blogcrawl.FetchOptions{SessionID: "crawl-it"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.HTML, "expected non-empty HTML response")

	// Verify HTML document structure
	lower := strings.ToLower(strings.TrimSpace(res.HTML))
	assert.True(t, strings.HasPrefix(lower, "<!doctype html>") || strings.HasPrefix(lower, "<html"),
		"expected valid HTML document start")
	assert.Contains(t, res.HTML, "<body", "expected body tag")
	assert.Contains(t, res.HTML, "</html>", "expected closing html tag")

	// Verify the post index rendered
	assert.Contains(t, res.HTML, "The Go Blog", "expected blog index heading")

	// The cleaned copy strips scripts but keeps the content
	assert.Contains(t, res.CleanedHTML, "The Go Blog")
	assert.NotContains(t, res.CleanedHTML, "<script")

	t.Logf("Fetched %d bytes from go.dev/blog/", len(res.HTML))
}
