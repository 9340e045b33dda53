package blogcrawl

import "context"

// TokenCounter counts tokens in text for a specific model. The crawl
// driver uses it to account for extraction backend usage.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
