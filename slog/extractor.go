package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/blogcrawl"
)

// Ensure LoggingPostExtractor implements blogcrawl.PostExtractor.
var _ blogcrawl.PostExtractor = (*LoggingPostExtractor)(nil)

// LoggingPostExtractor wraps a PostExtractor with debug logging for LLM
// extraction calls.
type LoggingPostExtractor struct {
	next   blogcrawl.PostExtractor
	logger *slog.Logger
}

// NewLoggingPostExtractor creates a new LoggingPostExtractor.
func NewLoggingPostExtractor(next blogcrawl.PostExtractor, logger *slog.Logger) *LoggingPostExtractor {
	return &LoggingPostExtractor{next: next, logger: logger}
}

// ExtractPosts delegates to the wrapped extractor and logs the call.
func (e *LoggingPostExtractor) ExtractPosts(ctx context.Context, markdown string, kind blogcrawl.ExtractKind) (posts []*blogcrawl.Post, err error) {
	defer func(begin time.Time) {
		e.logger.Info("post extraction",
			"kind", string(kind),
			"chars", len(markdown),
			"posts", len(posts),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractPosts(ctx, markdown, kind)
}
