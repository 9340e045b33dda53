package blogcrawl

import "context"

// LinkFrontier queues harvest candidates with deduplication, so links
// discovered from a feed and from index page scanning merge cleanly.
type LinkFrontier interface {
	// Push adds a candidate to the frontier.
	// Returns false if the link has already been seen.
	Push(entry LinkEntry) bool

	// Pop returns the next candidate, shallowest path first.
	// Returns false if the frontier is empty.
	Pop() (LinkEntry, bool)

	// Len returns the number of queued candidates.
	Len() int

	// Seen returns true if the link has been queued before.
	Seen(link string) bool
}

// DomainLimiter provides per-domain rate limiting between fetches.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
