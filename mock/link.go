package mock

import (
	"github.com/fwojciec/blogcrawl"
)

var _ blogcrawl.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of blogcrawl.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html, origin, pathHint string, maxLinks int) []blogcrawl.LinkEntry
}

func (e *LinkExtractor) ExtractLinks(html, origin, pathHint string, maxLinks int) []blogcrawl.LinkEntry {
	return e.ExtractLinksFn(html, origin, pathHint, maxLinks)
}
