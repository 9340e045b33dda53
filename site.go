package blogcrawl

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Site represents a blog listing to be crawled.
type Site struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	BaseURL string `json:"baseUrl"`

	// Selector scopes listing extraction to the post cards on an index
	// page (e.g. "[class^='blog-card']").
	Selector string `json:"selector"`

	// PostMarker is the substring whose absence from a fetched index
	// page's cleaned markup signals that the listing is exhausted.
	PostMarker string `json:"postMarker"`

	// PathHint is the path segment identifying post links on the index
	// page (e.g. "/blog").
	PathHint string `json:"pathHint"`

	MaxPages int `json:"maxPages"`
	MaxPosts int `json:"maxPosts"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the site contains invalid fields.
func (s *Site) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "site name required")
	}
	if s.BaseURL == "" {
		return Errorf(EINVALID, "site base URL required")
	}
	u, err := url.Parse(s.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return Errorf(EINVALID, "site base URL must be absolute http(s): %q", s.BaseURL)
	}
	return nil
}

// Origin returns the scheme://host root of the site's base URL. Harvested
// and extracted links are normalized against it.
func (s *Site) Origin() string {
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return strings.TrimSuffix(s.BaseURL, "/")
	}
	return u.Scheme + "://" + u.Host
}

// PageURL returns the URL of the numbered index page. The first page is
// the base URL verbatim; later pages append a page query.
func (s *Site) PageURL(page int) string {
	if page <= 1 {
		return s.BaseURL
	}
	return s.BaseURL + "?page=" + strconv.Itoa(page)
}

// SiteService represents a service for managing sites.
type SiteService interface {
	// CreateSite creates a new site.
	CreateSite(ctx context.Context, site *Site) error

	// FindSiteByID retrieves a site by ID.
	// Returns ENOTFOUND if the site does not exist.
	FindSiteByID(ctx context.Context, id string) (*Site, error)

	// FindSites retrieves sites matching the filter.
	FindSites(ctx context.Context, filter SiteFilter) ([]*Site, error)

	// UpdateSite updates an existing site.
	// Returns ENOTFOUND if the site does not exist.
	UpdateSite(ctx context.Context, id string, upd SiteUpdate) (*Site, error)

	// DeleteSite permanently removes a site and all associated posts.
	// Returns ENOTFOUND if the site does not exist.
	DeleteSite(ctx context.Context, id string) error
}

// SiteFilter represents a filter for FindSites.
type SiteFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SiteUpdate represents fields that can be updated on a site.
type SiteUpdate struct {
	Name       *string `json:"name"`
	BaseURL    *string `json:"baseUrl"`
	Selector   *string `json:"selector"`
	PostMarker *string `json:"postMarker"`
	PathHint   *string `json:"pathHint"`
	MaxPages   *int    `json:"maxPages"`
	MaxPosts   *int    `json:"maxPosts"`
}
