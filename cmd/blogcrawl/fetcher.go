package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/blogcrawl"
	collyfetch "github.com/fwojciec/blogcrawl/colly"
	"github.com/fwojciec/blogcrawl/goquery"
	bloghttp "github.com/fwojciec/blogcrawl/http"
	"github.com/fwojciec/blogcrawl/rod"
)

// buildFetcher constructs the fetcher backend for a crawl run.
func buildFetcher(ctx context.Context, kind, baseURL string, stderr io.Writer) (blogcrawl.Fetcher, error) {
	switch kind {
	case "http":
		return bloghttp.NewFetcher(), nil
	case "colly":
		return collyfetch.NewFetcher(), nil
	case "browser":
		fetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return fetcher, nil
	default: // auto
		return ProbeFetcher(ctx, baseURL, bloghttp.NewFetcher(), func() (blogcrawl.Fetcher, error) {
			return rod.NewFetcher()
		})
	}
}

// ProbeFetcher picks between a plain HTTP fetcher and a browser-backed one
// by fetching the listing URL over HTTP and checking whether the page
// looks client-rendered.
//
// Decision flow:
//   - HTTP fetch fails → use the browser
//   - Page looks client-rendered → use the browser
//   - Otherwise → use HTTP
//
// When the browser cannot be started the HTTP fetcher is returned as a
// best effort.
func ProbeFetcher(ctx context.Context, baseURL string, httpFetcher blogcrawl.Fetcher, newBrowser func() (blogcrawl.Fetcher, error)) (blogcrawl.Fetcher, error) {
	res, err := httpFetcher.Fetch(ctx, baseURL, blogcrawl.FetchOptions{
		CacheMode: blogcrawl.CacheModeBypass,
	})
	if err != nil {
		return newBrowser()
	}

	if goquery.NewProbe().LooksClientRendered(res.HTML) {
		browser, err := newBrowser()
		if err != nil {
			return httpFetcher, nil
		}
		httpFetcher.Close()
		return browser, nil
	}

	return httpFetcher, nil
}
