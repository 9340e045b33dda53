package crawl

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/blogcrawl"
	"golang.org/x/time/rate"
)

var _ blogcrawl.DomainLimiter = (*DomainLimiter)(nil)

// DefaultDelay is the minimum interval between requests to the same domain.
const DefaultDelay = 5 * time.Second

// DomainLimiter provides per-domain rate limiting using token buckets.
// It creates a separate rate limiter for each domain, allowing concurrent
// requests to different domains while enforcing the interval within each
// domain. The burst of 1 means the first request to a domain proceeds
// immediately and every later one waits out the interval.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	interval time.Duration
}

// NewDomainLimiter creates a new DomainLimiter enforcing the given interval
// between requests to the same domain. Non-positive intervals fall back to
// DefaultDelay.
func NewDomainLimiter(interval time.Duration) *DomainLimiter {
	if interval <= 0 {
		interval = DefaultDelay
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		interval: interval,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(d.interval), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
