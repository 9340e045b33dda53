package trafilatura

import (
	"strings"

	"github.com/fwojciec/blogcrawl"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements blogcrawl.ContentExtractor at compile time.
var _ blogcrawl.ContentExtractor = (*Extractor)(nil)

// Extractor uses go-trafilatura to find the main article text of a page.
// It is an alternative to the selector-based extractor for pages whose
// content region carries no usable class names.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractMainContent returns the article text trafilatura finds in rawHTML,
// collapsed and truncated to maxChars. It never fails: when trafilatura
// finds nothing the result falls back to "{title}\n\n{body}" built from the
// extracted title (or blogcrawl.DefaultTitle) and the whole page's text.
func (e *Extractor) ExtractMainContent(rawHTML string, maxChars int) string {
	title := blogcrawl.DefaultTitle

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err == nil {
		if text := blogcrawl.CollapseWhitespace(result.ContentText); text != "" {
			return blogcrawl.Truncate(text, maxChars)
		}
		if t := blogcrawl.CollapseWhitespace(result.Metadata.Title); t != "" {
			title = t
		}
	}

	return blogcrawl.Truncate(title+"\n\n"+pageText(rawHTML), maxChars)
}

// pageText returns the visible text of the whole page with script and style
// content removed. Unparseable input is collapsed and returned as-is.
func pageText(rawHTML string) string {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return blogcrawl.CollapseWhitespace(rawHTML)
	}

	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return blogcrawl.CollapseWhitespace(sb.String())
}
