package mock

import (
	"context"

	"github.com/fwojciec/blogcrawl"
)

var _ blogcrawl.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of blogcrawl.ContentExtractor.
type ContentExtractor struct {
	ExtractMainContentFn func(html string, maxChars int) string
}

func (e *ContentExtractor) ExtractMainContent(html string, maxChars int) string {
	return e.ExtractMainContentFn(html, maxChars)
}

var _ blogcrawl.PostExtractor = (*PostExtractor)(nil)

// PostExtractor is a mock implementation of blogcrawl.PostExtractor.
type PostExtractor struct {
	ExtractPostsFn func(ctx context.Context, markdown string, kind blogcrawl.ExtractKind) ([]*blogcrawl.Post, error)
}

func (e *PostExtractor) ExtractPosts(ctx context.Context, markdown string, kind blogcrawl.ExtractKind) ([]*blogcrawl.Post, error) {
	return e.ExtractPostsFn(ctx, markdown, kind)
}
