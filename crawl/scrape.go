package crawl

import (
	"context"

	"github.com/fwojciec/blogcrawl"
)

// Scraper defaults.
const (
	// DefaultMaxChars bounds the main-content text extracted per post.
	DefaultMaxChars = 2000
	// DefaultSnippetChars bounds the snippet carried by fallback records.
	DefaultSnippetChars = 500
)

// Scraper fetches a single post page and extracts a structured Post from
// it. Every failure path degrades to a fallback record instead of an
// error: the caller always gets a Post back.
type Scraper struct {
	Fetcher   blogcrawl.Fetcher
	Converter blogcrawl.Converter
	Extractor blogcrawl.PostExtractor
	Content   blogcrawl.ContentExtractor
	Language  blogcrawl.LanguageDetector
	SessionID string

	MaxChars     int
	SnippetChars int
}

// ScrapePost fetches url and extracts a Post from it. It never fails:
// when the fetch errors the fallback record carries only title and url,
// and when conversion or the extraction backend degrades the fallback
// record carries a snippet of the heuristically extracted main content.
func (s *Scraper) ScrapePost(ctx context.Context, url, title string) *blogcrawl.Post {
	res, err := s.Fetcher.Fetch(ctx, url, blogcrawl.FetchOptions{
		CacheMode: blogcrawl.CacheModeBypass,
		SessionID: s.SessionID,
	})
	if err != nil {
		return blogcrawl.FallbackPost(title, url, "")
	}

	maxChars := s.MaxChars
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	snippetChars := s.SnippetChars
	if snippetChars <= 0 {
		snippetChars = DefaultSnippetChars
	}

	content := s.Content.ExtractMainContent(res.HTML, maxChars)
	snippet := blogcrawl.Truncate(content, snippetChars)

	markdown, err := s.Converter.Convert(res.CleanedHTML)
	if err != nil {
		return blogcrawl.FallbackPost(title, url, snippet)
	}

	posts, err := s.Extractor.ExtractPosts(ctx, markdown, blogcrawl.ExtractPost)
	if err != nil || len(posts) == 0 || posts[0].Errored {
		return blogcrawl.FallbackPost(title, url, snippet)
	}

	post := posts[0]
	if post.Link == "" {
		post.Link = url
	}
	if post.Title == "" {
		post.Title = title
	}
	if s.Language != nil {
		post.Language = s.Language.Detect(post.Body)
	}
	return post
}
