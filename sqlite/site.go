package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/blogcrawl"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ blogcrawl.SiteService = (*SiteService)(nil)

// SiteService implements blogcrawl.SiteService using SQLite.
type SiteService struct {
	db *DB
}

// NewSiteService creates a new SiteService.
func NewSiteService(db *DB) *SiteService {
	return &SiteService{db: db}
}

// CreateSite creates a new site.
func (s *SiteService) CreateSite(ctx context.Context, site *blogcrawl.Site) error {
	if err := site.Validate(); err != nil {
		return err
	}

	site.ID = uuid.New().String()
	now := time.Now().UTC()
	site.CreatedAt = now
	site.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sites (id, name, base_url, selector, post_marker, path_hint, max_pages, max_posts, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, site.ID, site.Name, site.BaseURL, site.Selector, site.PostMarker, site.PathHint,
		site.MaxPages, site.MaxPosts,
		site.CreatedAt.Format(time.RFC3339), site.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindSiteByID retrieves a site by ID.
func (s *SiteService) FindSiteByID(ctx context.Context, id string) (*blogcrawl.Site, error) {
	var site blogcrawl.Site
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, base_url, selector, post_marker, path_hint, max_pages, max_posts, created_at, updated_at
		FROM sites
		WHERE id = ?
	`, id).Scan(&site.ID, &site.Name, &site.BaseURL, &site.Selector, &site.PostMarker,
		&site.PathHint, &site.MaxPages, &site.MaxPosts, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, blogcrawl.Errorf(blogcrawl.ENOTFOUND, "site not found")
	}
	if err != nil {
		return nil, err
	}

	if site.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if site.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &site, nil
}

// FindSites retrieves sites matching the filter.
func (s *SiteService) FindSites(ctx context.Context, filter blogcrawl.SiteFilter) ([]*blogcrawl.Site, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, base_url, selector, post_marker, path_hint, max_pages, max_posts, created_at, updated_at FROM sites WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sites []*blogcrawl.Site
	for rows.Next() {
		var site blogcrawl.Site
		var createdAt, updatedAt string

		if err := rows.Scan(&site.ID, &site.Name, &site.BaseURL, &site.Selector, &site.PostMarker,
			&site.PathHint, &site.MaxPages, &site.MaxPosts, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		if site.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if site.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		sites = append(sites, &site)
	}

	return sites, rows.Err()
}

// UpdateSite updates an existing site.
func (s *SiteService) UpdateSite(ctx context.Context, id string, upd blogcrawl.SiteUpdate) (*blogcrawl.Site, error) {
	// First check if site exists
	site, err := s.FindSiteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Apply updates
	if upd.Name != nil {
		site.Name = *upd.Name
	}
	if upd.BaseURL != nil {
		site.BaseURL = *upd.BaseURL
	}
	if upd.Selector != nil {
		site.Selector = *upd.Selector
	}
	if upd.PostMarker != nil {
		site.PostMarker = *upd.PostMarker
	}
	if upd.PathHint != nil {
		site.PathHint = *upd.PathHint
	}
	if upd.MaxPages != nil {
		site.MaxPages = *upd.MaxPages
	}
	if upd.MaxPosts != nil {
		site.MaxPosts = *upd.MaxPosts
	}

	// Validate before persisting
	if err := site.Validate(); err != nil {
		return nil, err
	}

	site.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE sites
		SET name = ?, base_url = ?, selector = ?, post_marker = ?, path_hint = ?, max_pages = ?, max_posts = ?, updated_at = ?
		WHERE id = ?
	`, site.Name, site.BaseURL, site.Selector, site.PostMarker, site.PathHint,
		site.MaxPages, site.MaxPosts, site.UpdatedAt.Format(time.RFC3339), id)

	if err != nil {
		return nil, err
	}

	return site, nil
}

// DeleteSite permanently removes a site and, via foreign keys, its posts.
func (s *SiteService) DeleteSite(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM sites WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return blogcrawl.Errorf(blogcrawl.ENOTFOUND, "site not found")
	}

	return nil
}
