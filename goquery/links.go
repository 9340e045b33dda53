package goquery

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/blogcrawl"
)

var _ blogcrawl.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor scans index page markup for candidate post links.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks scans every anchor whose href contains pathHint and returns
// the surviving candidates: anchor text becomes the title (tags stripped,
// whitespace collapsed), empty/noise/short titles are discarded, hrefs are
// normalized against origin, and duplicate links keep their first
// occurrence. Results sort shallowest path first (fewer '/' occurrences)
// and are capped at maxLinks. Unparseable markup yields no candidates.
func (e *LinkExtractor) ExtractLinks(html, origin, pathHint string, maxLinks int) []blogcrawl.LinkEntry {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var entries []blogcrawl.LinkEntry

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		if !strings.Contains(href, pathHint) {
			return
		}

		title := blogcrawl.CollapseWhitespace(sel.Text())
		if title == "" {
			return
		}
		if blogcrawl.IsNoiseTitle(title) {
			return
		}

		link := blogcrawl.NormalizeLink(origin, href)

		if len([]rune(title)) < blogcrawl.MinTitleChars {
			return
		}
		if seen[link] {
			return
		}
		seen[link] = true

		entries = append(entries, blogcrawl.LinkEntry{Title: title, Link: link})
	})

	// Shallower paths are ranked first: a link one segment below the blog
	// root is more likely a post than a deeply nested archive page.
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.Count(entries[i].Link, "/") < strings.Count(entries[j].Link, "/")
	})

	if maxLinks > 0 && len(entries) > maxLinks {
		entries = entries[:maxLinks]
	}
	return entries
}
