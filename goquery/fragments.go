package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/blogcrawl"
	"golang.org/x/net/html"
)

// SelectFragments returns the outer HTML of every node matching selector,
// concatenated in document order. It scopes listing extraction to the
// post cards on an index page. An empty selector returns the input whole.
func SelectFragments(markup, selector string) (string, error) {
	if selector == "" {
		return markup, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", blogcrawl.Errorf(blogcrawl.EINVALID, "parse html: %v", err)
	}

	var sb strings.Builder
	var renderErr error
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		for _, node := range sel.Nodes {
			if err := html.Render(&sb, node); err != nil {
				renderErr = err
				return
			}
			sb.WriteString("\n")
		}
	})
	if renderErr != nil {
		return "", blogcrawl.Errorf(blogcrawl.EINTERNAL, "render fragment: %v", renderErr)
	}
	return sb.String(), nil
}
