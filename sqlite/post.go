package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/blogcrawl"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ blogcrawl.PostService = (*PostService)(nil)

// PostService implements blogcrawl.PostService using SQLite.
type PostService struct {
	db *DB
}

// NewPostService creates a new PostService.
func NewPostService(db *DB) *PostService {
	return &PostService{db: db}
}

// hashBody computes xxHash of a post body and returns a hex string.
func hashBody(body string) string {
	h := xxhash.Sum64String(body)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreatePost persists a new post. A post whose link already exists for
// the same site returns ECONFLICT.
func (s *PostService) CreatePost(ctx context.Context, post *blogcrawl.Post) error {
	if err := post.Validate(); err != nil {
		return err
	}

	post.ID = uuid.New().String()
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO posts (id, site_id, title, body, link, content_snippet, language, errored, body_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, post.ID, post.SiteID, post.Title, post.Body, post.Link, post.ContentSnippet,
		post.Language, boolToInt(post.Errored), hashBody(post.Body),
		post.CreatedAt.Format(time.RFC3339), post.UpdatedAt.Format(time.RFC3339))

	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return blogcrawl.Errorf(blogcrawl.ECONFLICT, "post already exists for link %q", post.Link)
	}

	return err
}

// FindPostByID retrieves a post by ID.
func (s *PostService) FindPostByID(ctx context.Context, id string) (*blogcrawl.Post, error) {
	var post blogcrawl.Post
	var errored int
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, site_id, title, body, link, content_snippet, language, errored, created_at, updated_at
		FROM posts
		WHERE id = ?
	`, id).Scan(&post.ID, &post.SiteID, &post.Title, &post.Body, &post.Link,
		&post.ContentSnippet, &post.Language, &errored, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, blogcrawl.Errorf(blogcrawl.ENOTFOUND, "post not found")
	}
	if err != nil {
		return nil, err
	}

	post.Errored = errored != 0
	if post.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if post.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &post, nil
}

// FindPosts retrieves posts matching the filter.
func (s *PostService) FindPosts(ctx context.Context, filter blogcrawl.PostFilter) ([]*blogcrawl.Post, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, site_id, title, body, link, content_snippet, language, errored, created_at, updated_at FROM posts WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SiteID != nil {
		query.WriteString(" AND site_id = ?")
		args = append(args, *filter.SiteID)
	}
	if filter.Title != nil {
		query.WriteString(" AND title = ?")
		args = append(args, *filter.Title)
	}
	if filter.Link != nil {
		query.WriteString(" AND link = ?")
		args = append(args, *filter.Link)
	}
	if filter.Errored != nil {
		query.WriteString(" AND errored = ?")
		args = append(args, boolToInt(*filter.Errored))
	}

	switch filter.SortBy {
	case blogcrawl.SortByTitle:
		query.WriteString(" ORDER BY title ASC")
	default:
		query.WriteString(" ORDER BY created_at DESC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*blogcrawl.Post
	for rows.Next() {
		var post blogcrawl.Post
		var errored int
		var createdAt, updatedAt string

		if err := rows.Scan(&post.ID, &post.SiteID, &post.Title, &post.Body, &post.Link,
			&post.ContentSnippet, &post.Language, &errored, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		post.Errored = errored != 0
		if post.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if post.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		posts = append(posts, &post)
	}

	return posts, rows.Err()
}

// DeletePost permanently removes a post.
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM posts WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return blogcrawl.Errorf(blogcrawl.ENOTFOUND, "post not found")
	}

	return nil
}

// DeletePostsBySite removes all posts scraped from a site.
func (s *PostService) DeletePostsBySite(ctx context.Context, siteID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM posts WHERE site_id = ?", siteID)
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
