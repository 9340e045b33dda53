package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/blogcrawl"
)

// feedPaths are the well-known feed locations, tried in order.
var feedPaths = []string{"feed", "rss.xml", "atom.xml", "index.xml"}

// Ensure FeedDiscoverer implements blogcrawl.FeedDiscoverer.
var _ blogcrawl.FeedDiscoverer = (*FeedDiscoverer)(nil)

// FeedDiscoverer locates a site's RSS or Atom feed via HTTP and extracts
// the post links it advertises.
type FeedDiscoverer struct {
	client *http.Client
}

// NewFeedDiscoverer creates a new FeedDiscoverer with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewFeedDiscoverer(client *http.Client) *FeedDiscoverer {
	if client == nil {
		client = http.DefaultClient
	}
	return &FeedDiscoverer{client: client}
}

// DiscoverPosts probes well-known feed paths under the base URL and the
// site root and returns entries from the first feed that parses. Links
// are normalized against the site origin; titles have whitespace
// collapsed. Returns ENOTFOUND when no candidate yields a feed.
func (d *FeedDiscoverer) DiscoverPosts(ctx context.Context, baseURL string) ([]blogcrawl.LinkEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, blogcrawl.Errorf(blogcrawl.EINVALID, "invalid base URL %q", baseURL)
	}

	origin := &url.URL{Scheme: base.Scheme, Host: base.Host}

	for _, candidate := range feedCandidates(base, origin) {
		entries, err := d.fetchFeed(ctx, candidate, origin.String())
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		if len(entries) > 0 {
			return entries, nil
		}
	}

	return nil, blogcrawl.Errorf(blogcrawl.ENOTFOUND, "no feed found for %s", baseURL)
}

// feedCandidates returns feed URLs to probe. When the base URL carries a
// path (e.g. https://example.com/blog), paths under it are tried before
// the site root so blogs mounted on a subpath resolve to their own feed.
func feedCandidates(base, origin *url.URL) []string {
	var candidates []string

	basePath := strings.TrimSuffix(base.Path, "/")
	if basePath != "" {
		for _, p := range feedPaths {
			candidates = append(candidates, origin.String()+basePath+"/"+p)
		}
	}
	for _, p := range feedPaths {
		candidates = append(candidates, origin.String()+"/"+p)
	}

	return candidates
}

// fetchFeed retrieves a candidate URL and parses it as RSS or Atom.
func (d *FeedDiscoverer) fetchFeed(ctx context.Context, feedURL, origin string) ([]blogcrawl.LinkEntry, error) {
	body, err := d.fetchURL(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, fmt.Errorf("parsing feed XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty feed XML")
	}

	switch root.Tag {
	case "rss":
		return parseRSS(root, origin), nil
	case "feed":
		return parseAtom(root, origin), nil
	}
	return nil, fmt.Errorf("unrecognized feed root element <%s>", root.Tag)
}

// parseRSS extracts entries from an <rss><channel> document.
func parseRSS(root *etree.Element, origin string) []blogcrawl.LinkEntry {
	var entries []blogcrawl.LinkEntry
	for _, channel := range root.SelectElements("channel") {
		for _, item := range channel.SelectElements("item") {
			entry := blogcrawl.LinkEntry{}
			if title := item.SelectElement("title"); title != nil {
				entry.Title = blogcrawl.CollapseWhitespace(title.Text())
			}
			if link := item.SelectElement("link"); link != nil {
				if href := strings.TrimSpace(link.Text()); href != "" {
					entry.Link = blogcrawl.NormalizeLink(origin, href)
				}
			}
			if entry.Link == "" {
				continue
			}
			entries = append(entries, entry)
		}
	}
	return entries
}

// parseAtom extracts entries from an Atom <feed> document.
func parseAtom(root *etree.Element, origin string) []blogcrawl.LinkEntry {
	var entries []blogcrawl.LinkEntry
	for _, item := range root.SelectElements("entry") {
		entry := blogcrawl.LinkEntry{}
		if title := item.SelectElement("title"); title != nil {
			entry.Title = blogcrawl.CollapseWhitespace(title.Text())
		}
		entry.Link = atomEntryLink(item, origin)
		if entry.Link == "" {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// atomEntryLink picks the entry's alternate link, falling back to the
// first link that carries an href.
func atomEntryLink(item *etree.Element, origin string) string {
	links := item.SelectElements("link")
	for _, l := range links {
		if l.SelectAttrValue("rel", "alternate") != "alternate" {
			continue
		}
		if href := strings.TrimSpace(l.SelectAttrValue("href", "")); href != "" {
			return blogcrawl.NormalizeLink(origin, href)
		}
	}
	for _, l := range links {
		if href := strings.TrimSpace(l.SelectAttrValue("href", "")); href != "" {
			return blogcrawl.NormalizeLink(origin, href)
		}
	}
	return ""
}

// fetchURL fetches a URL and returns the response body.
func (d *FeedDiscoverer) fetchURL(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, targetURL)
	}

	return resp.Body, nil
}
