package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/blogcrawl"
)

// minRenderedChars is the least visible text a server-rendered page is
// expected to carry. Pages below it with an SPA mount point are treated
// as client-side rendered.
const minRenderedChars = 250

// spa mount points checked by LooksClientRendered.
const mountSelectors = "#root, #app, #__next, #___gatsby, [data-reactroot], [data-server-rendered]"

// Probe answers structural questions about fetched markup.
type Probe struct{}

// NewProbe creates a new Probe.
func NewProbe() *Probe {
	return &Probe{}
}

// HasMarker reports whether the cleaned markup contains the post-card
// marker. An empty marker always reports true: a site without a
// configured marker cannot signal exhaustion this way.
func (p *Probe) HasMarker(cleanedHTML, marker string) bool {
	if marker == "" {
		return true
	}
	return strings.Contains(cleanedHTML, marker)
}

// LooksClientRendered reports whether the page appears to need JavaScript
// to render: it carries a known SPA mount point and too little visible
// text. Used to decide between plain HTTP and browser fetching.
func (p *Probe) LooksClientRendered(html string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return false
	}
	doc.Find("script, style, noscript").Remove()

	text := blogcrawl.CollapseWhitespace(doc.Text())
	if len(text) >= minRenderedChars {
		return false
	}
	return doc.Find(mountSelectors).Length() > 0
}
