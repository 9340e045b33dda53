package crawl

import (
	"context"
	"strings"

	"github.com/fwojciec/blogcrawl"
	"github.com/fwojciec/blogcrawl/goquery"
)

// Processor runs the per-page state machine over one listing page: probe
// for the post-card marker, fetch the listing, scope it to the configured
// selector, hand the Markdown to the extraction backend, then validate,
// dedup, and normalize each decoded post.
type Processor struct {
	Fetcher      blogcrawl.Fetcher
	Converter    blogcrawl.Converter
	Extractor    blogcrawl.PostExtractor
	Site         *blogcrawl.Site
	SessionID    string
	RequiredKeys []string

	// Duplicates and Incomplete count posts dropped during filtering.
	Duplicates int
	Incomplete int
}

// ProcessPage fetches one listing page and returns its accepted posts.
// The bool result is the pagination stop signal: a fetch failure, a
// missing post-card marker, empty extraction output, and a batch that
// filtering emptied out all report done=true. A page whose posts were
// all duplicates or incomplete is indistinguishable from the end of the
// listing.
func (p *Processor) ProcessPage(ctx context.Context, page int, seen *TitleSet) ([]*blogcrawl.Post, bool) {
	pageURL := p.Site.PageURL(page)

	// Probe for the post-card marker before paying for extraction.
	probed, err := p.Fetcher.Fetch(ctx, pageURL, blogcrawl.FetchOptions{
		CacheMode: blogcrawl.CacheModeBypass,
		SessionID: p.SessionID,
	})
	if err != nil {
		return nil, true
	}
	if !goquery.NewProbe().HasMarker(probed.CleanedHTML, p.Site.PostMarker) {
		return nil, true
	}

	res, err := p.Fetcher.Fetch(ctx, pageURL, blogcrawl.FetchOptions{
		CacheMode: blogcrawl.CacheModeBypass,
		SessionID: p.SessionID,
	})
	if err != nil {
		return nil, true
	}

	fragments, err := goquery.SelectFragments(res.CleanedHTML, p.Site.Selector)
	if err != nil || strings.TrimSpace(fragments) == "" {
		return nil, true
	}

	markdown, err := p.Converter.Convert(fragments)
	if err != nil {
		return nil, true
	}

	posts, err := p.Extractor.ExtractPosts(ctx, markdown, blogcrawl.ExtractListing)
	if err != nil {
		return nil, true
	}

	origin := p.Site.Origin()
	batch := make([]*blogcrawl.Post, 0, len(posts))
	for _, post := range posts {
		// Clear any backend error marker before validating completeness.
		post.Errored = false
		if !post.Complete(p.RequiredKeys) {
			p.Incomplete++
			continue
		}
		if !seen.Add(post.Title) {
			p.Duplicates++
			continue
		}
		post.Link = blogcrawl.NormalizeLink(origin, post.Link)
		batch = append(batch, post)
	}

	if len(batch) == 0 {
		return nil, true
	}
	return batch, false
}
