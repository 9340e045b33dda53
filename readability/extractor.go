package readability

import (
	"strings"

	"github.com/fwojciec/blogcrawl"
	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// Ensure Extractor implements blogcrawl.ContentExtractor at compile time.
var _ blogcrawl.ContentExtractor = (*Extractor)(nil)

// Extractor uses go-readability to score and isolate the main article text
// of a page. It is an alternative to the selector-based extractor for pages
// whose content region carries no usable class names.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractMainContent returns the article text readability isolates from
// rawHTML, collapsed and truncated to maxChars. It never fails: when
// readability finds nothing the result falls back to "{title}\n\n{body}"
// built from the page title (or blogcrawl.DefaultTitle) and the whole
// page's text.
func (e *Extractor) ExtractMainContent(rawHTML string, maxChars int) string {
	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err == nil {
		if text := blogcrawl.CollapseWhitespace(article.TextContent); text != "" {
			return blogcrawl.Truncate(text, maxChars)
		}
	}

	title, body := pageTitleAndText(rawHTML)
	if err == nil && blogcrawl.CollapseWhitespace(article.Title) != "" {
		title = blogcrawl.CollapseWhitespace(article.Title)
	}
	if title == "" {
		title = blogcrawl.DefaultTitle
	}

	return blogcrawl.Truncate(title+"\n\n"+body, maxChars)
}

// pageTitleAndText returns the page's title element text and the visible
// text of the rest of the page with script and style content removed.
// Unparseable input yields an empty title and the collapsed input.
func pageTitleAndText(rawHTML string) (string, string) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", blogcrawl.CollapseWhitespace(rawHTML)
	}

	var title string
	var body strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			case "title":
				if c := n.FirstChild; c != nil && c.Type == html.TextNode {
					title = c.Data
				}
				return
			}
		}
		if n.Type == html.TextNode {
			body.WriteString(n.Data)
			body.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return blogcrawl.CollapseWhitespace(title), blogcrawl.CollapseWhitespace(body.String())
}
