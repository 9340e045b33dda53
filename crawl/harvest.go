package crawl

import (
	"context"
	"unicode/utf8"

	"github.com/fwojciec/blogcrawl"
)

// DefaultMaxLinks bounds the number of candidate links one harvest returns.
const DefaultMaxLinks = 15

// Frontier sizing for one harvest call.
const (
	// frontierExpectedLinks is the expected candidate count for Bloom filter sizing.
	frontierExpectedLinks = 1000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
)

// Harvester collects candidate post links for a site when its listing
// yields nothing structured. Feed entries and index page anchors merge
// through a shared frontier, so a post advertised by both is returned
// once.
type Harvester struct {
	Fetcher   blogcrawl.Fetcher
	Feeds     blogcrawl.FeedDiscoverer
	Links     blogcrawl.LinkExtractor
	SessionID string
	MaxLinks  int
}

// HarvestLinks returns up to MaxLinks candidate post links for the site.
// Feed discovery runs first when configured; the index page scan fills in
// the rest. Fetch and feed failures are non-fatal: the result is simply
// whatever the other source produced, possibly nothing.
func (h *Harvester) HarvestLinks(ctx context.Context, site *blogcrawl.Site) []blogcrawl.LinkEntry {
	maxLinks := h.MaxLinks
	if maxLinks <= 0 {
		maxLinks = DefaultMaxLinks
	}

	frontier := NewFrontier(frontierExpectedLinks, frontierFalsePositiveRate)

	// Feed entries are pushed first so they win deduplication against
	// the page scan. They pass the same title gate as scanned anchors.
	if h.Feeds != nil {
		if entries, err := h.Feeds.DiscoverPosts(ctx, site.BaseURL); err == nil {
			for _, entry := range entries {
				if !acceptableTitle(entry.Title) || entry.Link == "" {
					continue
				}
				frontier.Push(entry)
			}
		}
	}

	res, err := h.Fetcher.Fetch(ctx, site.BaseURL, blogcrawl.FetchOptions{
		CacheMode: blogcrawl.CacheModeBypass,
		SessionID: h.SessionID,
	})
	if err == nil {
		for _, entry := range h.Links.ExtractLinks(res.HTML, site.Origin(), site.PathHint, maxLinks) {
			frontier.Push(entry)
		}
	}

	entries := make([]blogcrawl.LinkEntry, 0, maxLinks)
	for len(entries) < maxLinks {
		entry, ok := frontier.Pop()
		if !ok {
			break
		}
		entries = append(entries, entry)
	}
	return entries
}

// acceptableTitle applies the harvest title gate: long enough to be a
// post title and free of navigation labels.
func acceptableTitle(title string) bool {
	return utf8.RuneCountInString(title) >= blogcrawl.MinTitleChars && !blogcrawl.IsNoiseTitle(title)
}
