package blogcrawl

import "strings"

// LinkEntry is a candidate post link discovered on an index page or in a
// feed. Entries are transient: produced and consumed within one harvest.
type LinkEntry struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// MinTitleChars is the shortest candidate title a harvest will accept.
// Shorter anchor texts are navigation labels, not post titles.
const MinTitleChars = 10

// NoiseWords are navigation labels that disqualify a candidate title.
var NoiseWords = []string{"next", "previous", "all posts", "view all"}

// IsNoiseTitle reports whether the title's lowercase form contains a
// navigation label.
func IsNoiseTitle(title string) bool {
	lower := strings.ToLower(title)
	for _, word := range NoiseWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// LinkExtractor scans index page markup for candidate post links.
type LinkExtractor interface {
	// ExtractLinks returns candidate links in ranked order: titles
	// cleaned and filtered, links normalized against origin and unique
	// within the batch, shallower paths first, at most maxLinks entries.
	// The pathHint identifies post hrefs (e.g. "/blog").
	ExtractLinks(html, origin, pathHint string, maxLinks int) []LinkEntry
}
