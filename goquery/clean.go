// Package goquery implements HTML heuristics for blog scraping: markup
// cleaning, main content extraction, post link scanning, and rendering
// probes. It is built on github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Clean strips script, style and noscript elements from markup and
// returns the remaining HTML. Element attributes survive so class-based
// markers remain probeable. Unparseable input is returned unchanged.
func Clean(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	doc.Find("script, style, noscript").Remove()
	cleaned, err := doc.Html()
	if err != nil {
		return html
	}
	return cleaned
}
