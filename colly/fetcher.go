// Package colly provides a blogcrawl.Fetcher built on the Colly scraping
// framework. It sits between the plain HTTP fetcher and the headless
// browser: no JavaScript execution, but browser-like headers and cookie
// handling help with blogs that serve reduced markup to bare clients.
package colly

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/blogcrawl"
	"github.com/fwojciec/blogcrawl/goquery"
	"github.com/gocolly/colly/v2"
)

// DefaultFetchTimeout is the default timeout for a single fetch.
// Kept consistent with http.DefaultFetchTimeout (10s).
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent mimics a desktop browser.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Ensure Fetcher implements blogcrawl.Fetcher at compile time.
var _ blogcrawl.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content using a colly collector. The collector
// is created with AllowURLRevisit so listing pages are re-fetched on
// every crawl run. Each fetch operates on a clone of the collector, so
// Fetcher is safe for concurrent use.
type Fetcher struct {
	collector *colly.Collector
	userAgent string
	timeout   time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithUserAgent sets the User-Agent header sent with requests.
// Defaults to DefaultUserAgent if not specified.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithTimeout sets the timeout for a single fetch.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new colly-backed Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		userAgent: DefaultUserAgent,
		timeout:   DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	c := colly.NewCollector(
		colly.UserAgent(f.userAgent),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(f.timeout)
	f.collector = c

	return f
}

// Fetch retrieves the page at the given URL through a clone of the
// collector. Unless the cache mode is CacheModeEnabled the request
// carries Cache-Control: no-cache.
func (f *Fetcher) Fetch(ctx context.Context, url string, opts blogcrawl.FetchOptions) (*blogcrawl.FetchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := f.collector.Clone()
	c.Context = ctx

	var (
		html     string
		fetched  bool
		fetchErr error
	)

	c.OnRequest(func(r *colly.Request) {
		if opts.CacheMode != blogcrawl.CacheModeEnabled {
			r.Headers.Set("Cache-Control", "no-cache")
		}
	})
	c.OnResponse(func(r *colly.Response) {
		html = string(r.Body)
		fetched = true
	})
	c.OnError(func(r *colly.Response, err error) {
		if r != nil && r.StatusCode != 0 {
			fetchErr = fmt.Errorf("HTTP %d for %s", r.StatusCode, url)
			return
		}
		fetchErr = err
	})

	if err := c.Visit(url); err != nil {
		if fetchErr != nil {
			return nil, fetchErr
		}
		return nil, err
	}
	c.Wait()

	if fetchErr != nil {
		return nil, fetchErr
	}
	if !fetched {
		return nil, fmt.Errorf("no response for %s", url)
	}

	return &blogcrawl.FetchResult{
		HTML:        html,
		CleanedHTML: goquery.Clean(html),
	}, nil
}

// Close releases resources. For colly fetcher this is a no-op since the
// collector doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
