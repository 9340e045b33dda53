package blogcrawl

import "context"

// ContentExtractor pulls the main textual content out of a page.
type ContentExtractor interface {
	// ExtractMainContent returns the page's main text, whitespace
	// collapsed and truncated to maxChars with an ellipsis marker when
	// exceeded. It never fails: when no content region matches it falls
	// back to "{title}\n\n{body}" built from the whole document, and an
	// empty input yields the fallback built from empty text.
	ExtractMainContent(html string, maxChars int) string
}

// ExtractKind selects the instruction given to the extraction backend.
type ExtractKind string

// Extraction kinds.
const (
	// ExtractPost extracts a single post from a post page.
	ExtractPost ExtractKind = "post"

	// ExtractListing extracts every post card from an index page.
	ExtractListing ExtractKind = "listing"
)

// PostExtractor turns page text into structured posts. Implementations
// are backed by an LLM configured with the title/body/link schema.
type PostExtractor interface {
	// ExtractPosts extracts posts from the page's markdown. The result
	// order follows document order. Backend failure, empty output and
	// undecodable output all surface as errors; callers degrade rather
	// than retry.
	ExtractPosts(ctx context.Context, markdown string, kind ExtractKind) ([]*Post, error)
}
