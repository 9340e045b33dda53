package mock

import (
	"context"

	"github.com/fwojciec/blogcrawl"
)

var _ blogcrawl.LinkFrontier = (*LinkFrontier)(nil)

// LinkFrontier is a mock implementation of blogcrawl.LinkFrontier.
type LinkFrontier struct {
	PushFn func(entry blogcrawl.LinkEntry) bool
	PopFn  func() (blogcrawl.LinkEntry, bool)
	LenFn  func() int
	SeenFn func(link string) bool
}

func (f *LinkFrontier) Push(entry blogcrawl.LinkEntry) bool {
	return f.PushFn(entry)
}

func (f *LinkFrontier) Pop() (blogcrawl.LinkEntry, bool) {
	return f.PopFn()
}

func (f *LinkFrontier) Len() int {
	return f.LenFn()
}

func (f *LinkFrontier) Seen(link string) bool {
	return f.SeenFn(link)
}

var _ blogcrawl.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of blogcrawl.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
