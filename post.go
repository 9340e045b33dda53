package blogcrawl

import (
	"context"
	"strings"
	"time"
)

// FallbackBody is the body recorded when structured extraction of a post
// fails and only the post's identity (title and link) could be preserved.
const FallbackBody = "Content extraction failed due to API limitations."

// DefaultTitle stands in for a post or page whose title could not be
// determined.
const DefaultTitle = "Untitled Post"

// Ellipsis marks truncated text.
const Ellipsis = "..."

// SnippetMaxChars bounds the content snippet carried by a fallback post.
const SnippetMaxChars = 300

// Post represents a scraped blog post. Title, Body and Link form the
// extraction schema; ContentSnippet and Errored are diagnostic fields set
// when extraction degraded. A post is never mutated after it has been
// accepted into a crawl's output batch.
type Post struct {
	ID             string    `json:"id"`
	SiteID         string    `json:"siteId"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	Link           string    `json:"link"`
	ContentSnippet string    `json:"content_snippet,omitempty"`
	Language       string    `json:"language,omitempty"`
	Errored        bool      `json:"error,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Validate returns an error if the post contains invalid fields.
func (p *Post) Validate() error {
	if p.SiteID == "" {
		return Errorf(EINVALID, "post site ID required")
	}
	if p.Title == "" {
		return Errorf(EINVALID, "post title required")
	}
	if p.Link == "" {
		return Errorf(EINVALID, "post link required")
	}
	return nil
}

// Field returns the named schema field. Unknown keys return "".
func (p *Post) Field(key string) string {
	switch key {
	case "title":
		return p.Title
	case "body":
		return p.Body
	case "link":
		return p.Link
	case "content_snippet":
		return p.ContentSnippet
	case "language":
		return p.Language
	}
	return ""
}

// HasFields reports whether every required field is non-empty.
func (p *Post) HasFields(required []string) bool {
	for _, key := range required {
		if p.Field(key) == "" {
			return false
		}
	}
	return true
}

// Complete reports whether the post has non-empty values for every
// required field and carries no error marker.
func (p *Post) Complete(required []string) bool {
	return !p.Errored && p.HasFields(required)
}

// FallbackPost builds the degraded record used whenever full extraction of
// a post fails: fetch failure, extraction backend failure, or malformed
// backend output. The body is the fixed FallbackBody literal. When a
// content snippet is supplied it is collapsed, truncated to
// SnippetMaxChars, recorded in ContentSnippet, and appended to the body so
// partial value survives. The error marker is always set so completeness
// checks can see the degradation.
func FallbackPost(title, url, snippet string) *Post {
	post := &Post{
		Title:   title,
		Body:    FallbackBody,
		Link:    url,
		Errored: true,
	}
	if snippet != "" {
		s := Truncate(CollapseWhitespace(snippet), SnippetMaxChars)
		post.ContentSnippet = s
		post.Body = FallbackBody + "\n\n" + s
	}
	return post
}

// NormalizeLink rewrites href into an absolute URL under origin. Links
// already carrying an http scheme are kept verbatim, rooted paths are
// joined to the origin, and anything else is treated as origin-relative.
func NormalizeLink(origin, href string) string {
	switch {
	case strings.HasPrefix(href, "http"):
		return href
	case strings.HasPrefix(href, "/"):
		return origin + href
	default:
		return origin + "/" + href
	}
}

// CollapseWhitespace replaces every run of whitespace in s with a single
// space and trims the ends.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate shortens s to at most max runes, appending Ellipsis when the
// input was longer. A non-positive max leaves s unchanged.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + Ellipsis
}

// PostService represents a service for managing scraped posts.
type PostService interface {
	// CreatePost persists a new post.
	// Returns ECONFLICT if the site already has a post with the same link.
	CreatePost(ctx context.Context, post *Post) error

	// FindPostByID retrieves a post by ID.
	// Returns ENOTFOUND if the post does not exist.
	FindPostByID(ctx context.Context, id string) (*Post, error)

	// FindPosts retrieves posts matching the filter.
	FindPosts(ctx context.Context, filter PostFilter) ([]*Post, error)

	// DeletePost permanently removes a post.
	// Returns ENOTFOUND if the post does not exist.
	DeletePost(ctx context.Context, id string) error

	// DeletePostsBySite removes all posts scraped from a site.
	DeletePostsBySite(ctx context.Context, siteID string) error
}

// SortOrder represents the sort order for post queries.
type SortOrder string

// SortOrder constants for PostFilter.
const (
	SortByCreatedAt SortOrder = "created_at"
	SortByTitle     SortOrder = "title"
)

// PostFilter represents a filter for FindPosts.
type PostFilter struct {
	ID      *string `json:"id"`
	SiteID  *string `json:"siteId"`
	Title   *string `json:"title"`
	Link    *string `json:"link"`
	Errored *bool   `json:"error"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}
