package blogcrawl

import "context"

// CacheMode controls whether a fetch may reuse previously fetched content.
type CacheMode string

// Cache modes. The crawl core always uses CacheModeBypass: listings and
// posts are re-fetched on every run so results reflect the live site.
const (
	CacheModeBypass  CacheMode = "bypass"
	CacheModeEnabled CacheMode = "enabled"
)

// FetchOptions configures a single fetch.
type FetchOptions struct {
	// CacheMode controls cache reuse. The zero value is CacheModeBypass.
	CacheMode CacheMode

	// SessionID groups fetches belonging to one crawl run so
	// implementations can reuse a browser page or connection per run.
	SessionID string
}

// FetchResult holds the markup produced by a fetch.
type FetchResult struct {
	// HTML is the raw page markup as fetched (or as rendered, for
	// browser-backed fetchers).
	HTML string

	// CleanedHTML is the page markup with script, style and noscript
	// elements removed. Probes and text heuristics run against it.
	CleanedHTML string
}

// Fetcher retrieves pages. Implementations may use plain HTTP or browser
// automation; the crawl core treats fetch failure as "nothing here" and
// never retries.
type Fetcher interface {
	// Fetch retrieves the URL and returns its markup.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string, opts FetchOptions) (*FetchResult, error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
