// Package crawl provides blog crawling orchestration. It drives the
// pagination loop over a site's listing pages, validates and
// deduplicates extracted posts, and degrades to link harvesting with
// per-post scraping when the listing yields nothing structured.
package crawl

import (
	"context"
	"net/url"

	"github.com/fwojciec/blogcrawl"
	"github.com/google/uuid"
)

// Run defaults.
const (
	// DefaultMaxPosts caps accepted posts per run when the site sets no cap.
	DefaultMaxPosts = 10
	// DefaultFlushEvery is how many accepted posts trigger an export flush.
	DefaultFlushEvery = 2
)

// DefaultRequiredKeys returns the fields a post must carry to be accepted.
func DefaultRequiredKeys() []string {
	return []string{"title", "body", "link"}
}

// Crawler orchestrates crawl runs. A single Crawler may serve concurrent
// runs: all mutable run state lives in per-run values.
type Crawler struct {
	Fetcher      blogcrawl.Fetcher
	Converter    blogcrawl.Converter
	Extractor    blogcrawl.PostExtractor
	Content      blogcrawl.ContentExtractor
	Links        blogcrawl.LinkExtractor
	Feeds        blogcrawl.FeedDiscoverer
	Language     blogcrawl.LanguageDetector
	Posts        blogcrawl.PostService
	Writer       blogcrawl.PostWriter
	TokenCounter blogcrawl.TokenCounter
	Limiter      blogcrawl.DomainLimiter

	RequiredKeys []string
	MaxLinks     int
	MaxChars     int
	SnippetChars int
	FlushEvery   int
}

// Result holds the outcome of a crawl run.
type Result struct {
	Pages      int
	Saved      int
	Fallback   int
	Duplicates int
	Incomplete int
	Bytes      int64
	Tokens     int
}

// ProgressEvent reports progress during a crawl run.
type ProgressEvent struct {
	Type     ProgressType
	Page     int
	Count    int
	URL      string
	Title    string
	Fallback bool
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressPage
	ProgressScraped
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// run holds the mutable state of a single crawl run.
type run struct {
	c         *Crawler
	site      *blogcrawl.Site
	sessionID string
	seen      *TitleSet
	required  []string
	maxPosts  int
	host      string
	accepted  []*blogcrawl.Post
	result    Result
	progress  ProgressFunc
}

// Crawl runs the pagination loop for site and returns run statistics.
// The run stops when the listing signals exhaustion, MaxPages is
// reached, or MaxPosts posts have been accepted. When page 1 yields
// nothing the run degrades to harvest mode: candidate links gathered
// from the site's feed and index page are scraped one by one.
// The progress callback, if provided, receives events as the run proceeds.
func (c *Crawler) Crawl(ctx context.Context, site *blogcrawl.Site, progress ProgressFunc) (*Result, error) {
	if err := site.Validate(); err != nil {
		return nil, err
	}

	required := c.RequiredKeys
	if len(required) == 0 {
		required = DefaultRequiredKeys()
	}
	maxPosts := site.MaxPosts
	if maxPosts <= 0 {
		maxPosts = DefaultMaxPosts
	}

	r := &run{
		c:         c,
		site:      site,
		sessionID: "crawl-" + uuid.New().String(),
		seen:      NewTitleSet(),
		required:  required,
		maxPosts:  maxPosts,
		host:      hostOf(site.BaseURL),
		progress:  progress,
	}

	if progress != nil {
		progress(ProgressEvent{
			Type: ProgressStarted,
			URL:  site.BaseURL,
		})
	}

	if r.paginate(ctx) {
		r.harvest(ctx)
	}

	// The final write replaces every mid-run flush with the full batch.
	if c.Writer != nil && len(r.accepted) > 0 {
		if err := c.Writer.WritePosts(r.accepted); err != nil {
			return nil, err
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressFinished,
			Count: len(r.accepted),
		})
	}

	return &r.result, nil
}

// paginate drives the page loop. It reports whether the run should
// degrade to harvest mode, which happens when page 1 produced nothing.
func (r *run) paginate(ctx context.Context) bool {
	proc := &Processor{
		Fetcher:      r.c.Fetcher,
		Converter:    r.c.Converter,
		Extractor:    r.c.Extractor,
		Site:         r.site,
		SessionID:    r.sessionID,
		RequiredKeys: r.required,
	}
	defer func() {
		r.result.Duplicates += proc.Duplicates
		r.result.Incomplete += proc.Incomplete
	}()

	harvestNeeded := false
	for page := 1; ; page++ {
		if r.site.MaxPages > 0 && page > r.site.MaxPages {
			break
		}
		if ctx.Err() != nil {
			break
		}
		if err := r.wait(ctx, r.host); err != nil {
			break // Context canceled
		}

		batch, done := proc.ProcessPage(ctx, page, r.seen)
		r.result.Pages++

		for _, post := range batch {
			if len(r.accepted) >= r.maxPosts {
				break
			}
			r.accept(ctx, post)
		}

		if r.progress != nil {
			r.progress(ProgressEvent{
				Type:  ProgressPage,
				Page:  page,
				Count: len(r.accepted),
				URL:   r.site.PageURL(page),
			})
		}

		if done {
			harvestNeeded = page == 1 && len(r.accepted) == 0
			break
		}
		if len(r.accepted) >= r.maxPosts {
			break
		}
	}
	return harvestNeeded
}

// harvest scrapes candidate links one by one through the post scraper,
// subject to the same dedup set and caps as pagination. Fallback records
// are kept: a degraded post still preserves title, link, and a snippet.
func (r *run) harvest(ctx context.Context) {
	harvester := &Harvester{
		Fetcher:   r.c.Fetcher,
		Feeds:     r.c.Feeds,
		Links:     r.c.Links,
		SessionID: r.sessionID,
		MaxLinks:  r.c.MaxLinks,
	}
	scraper := &Scraper{
		Fetcher:      r.c.Fetcher,
		Converter:    r.c.Converter,
		Extractor:    r.c.Extractor,
		Content:      r.c.Content,
		Language:     r.c.Language,
		SessionID:    r.sessionID,
		MaxChars:     r.c.MaxChars,
		SnippetChars: r.c.SnippetChars,
	}

	for _, entry := range harvester.HarvestLinks(ctx, r.site) {
		if len(r.accepted) >= r.maxPosts {
			break
		}
		if ctx.Err() != nil {
			break
		}
		if entry.Link == "" {
			continue
		}
		if r.seen.Seen(entry.Title) {
			r.result.Duplicates++
			continue
		}
		if err := r.wait(ctx, hostOf(entry.Link)); err != nil {
			break // Context canceled
		}

		post := scraper.ScrapePost(ctx, entry.Link, entry.Title)
		if !post.HasFields(r.required) {
			r.result.Incomplete++
			continue
		}
		r.seen.Add(entry.Title)
		if post.Errored {
			r.result.Fallback++
		}
		r.accept(ctx, post)

		if r.progress != nil {
			r.progress(ProgressEvent{
				Type:     ProgressScraped,
				Count:    len(r.accepted),
				URL:      entry.Link,
				Title:    post.Title,
				Fallback: post.Errored,
			})
		}
	}
}

// accept persists one validated post and folds it into the run counters.
// A persistence conflict counts as a duplicate; any other persistence
// error leaves the post in the export batch so the run's output survives
// a broken database.
func (r *run) accept(ctx context.Context, post *blogcrawl.Post) {
	post.SiteID = r.site.ID

	if r.c.Posts != nil {
		switch err := r.c.Posts.CreatePost(ctx, post); blogcrawl.ErrorCode(err) {
		case "":
			r.result.Saved++
		case blogcrawl.ECONFLICT:
			r.result.Duplicates++
		}
	} else {
		r.result.Saved++
	}

	r.accepted = append(r.accepted, post)
	r.result.Bytes += int64(len(post.Body))
	if r.c.TokenCounter != nil {
		if tokens, err := r.c.TokenCounter.CountTokens(ctx, post.Body); err == nil {
			r.result.Tokens += tokens
		}
	}

	r.flush()
}

// flush rewrites the export file once enough posts have accumulated.
// Mid-run flush errors are ignored; the final write reports them.
func (r *run) flush() {
	if r.c.Writer == nil {
		return
	}
	flushEvery := r.c.FlushEvery
	if flushEvery <= 0 {
		flushEvery = DefaultFlushEvery
	}
	if len(r.accepted)%flushEvery == 0 {
		_ = r.c.Writer.WritePosts(r.accepted)
	}
}

func (r *run) wait(ctx context.Context, host string) error {
	if r.c.Limiter == nil {
		return nil
	}
	return r.c.Limiter.Wait(ctx, host)
}

// hostOf returns the host component of rawURL, or rawURL itself when it
// cannot be parsed.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
