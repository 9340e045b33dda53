package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/blogcrawl"
)

// contentSelectors are tried in order; the first one with a match supplies
// the main content region. Earlier selectors are higher precision.
var contentSelectors = []string{
	"article",
	"[class*='post-content']",
	"[class*='blog-content']",
	"[class*='content']",
}

var _ blogcrawl.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor extracts the main textual content of a page by trying
// a fixed priority order of region selectors, falling back to whole-page
// text when none match.
type ContentExtractor struct{}

// NewContentExtractor creates a new ContentExtractor.
func NewContentExtractor() *ContentExtractor {
	return &ContentExtractor{}
}

// ExtractMainContent returns the page's main text, collapsed and truncated
// to maxChars with an ellipsis when exceeded. It never fails: pages with
// no matching region fall back to "{title}\n\n{body}" built from the page
// title (or DefaultTitle) and the whole document's text, truncated to the
// same bound.
func (e *ContentExtractor) ExtractMainContent(html string, maxChars int) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return blogcrawl.Truncate(blogcrawl.DefaultTitle+"\n\n"+blogcrawl.CollapseWhitespace(html), maxChars)
	}
	doc.Find("script, style, noscript").Remove()

	for _, selector := range contentSelectors {
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			continue
		}
		text := blogcrawl.CollapseWhitespace(sel.First().Text())
		return blogcrawl.Truncate(text, maxChars)
	}

	title := blogcrawl.CollapseWhitespace(doc.Find("title").First().Text())
	if title == "" {
		title = blogcrawl.DefaultTitle
	}
	body := blogcrawl.CollapseWhitespace(doc.Text())
	return blogcrawl.Truncate(title+"\n\n"+body, maxChars)
}
