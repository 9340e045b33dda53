package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/blogcrawl"
	"github.com/fwojciec/blogcrawl/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSiteService_CreateSite(t *testing.T) {
	t.Parallel()

	t.Run("creates site with generated ID and timestamps", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSiteService(db)
		ctx := context.Background()

		site := &blogcrawl.Site{
			Name:    "upguard",
			BaseURL: "https://www.upguard.com/blog",
		}

		err := svc.CreateSite(ctx, site)
		require.NoError(t, err)

		assert.NotEmpty(t, site.ID, "ID should be generated")
		assert.False(t, site.CreatedAt.IsZero(), "CreatedAt should be set")
		assert.False(t, site.UpdatedAt.IsZero(), "UpdatedAt should be set")
	})

	t.Run("returns error for invalid site", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSiteService(db)
		ctx := context.Background()

		site := &blogcrawl.Site{} // missing required fields

		err := svc.CreateSite(ctx, site)
		require.Error(t, err)
		assert.Equal(t, blogcrawl.EINVALID, blogcrawl.ErrorCode(err))
	})
}

func TestSiteService_FindSiteByID(t *testing.T) {
	t.Parallel()

	t.Run("returns site when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSiteService(db)
		ctx := context.Background()

		site := &blogcrawl.Site{
			Name:       "upguard",
			BaseURL:    "https://www.upguard.com/blog",
			Selector:   "[class^='blog-card']",
			PostMarker: "post-card",
			PathHint:   "/blog",
			MaxPages:   5,
			MaxPosts:   30,
		}
		require.NoError(t, svc.CreateSite(ctx, site))

		found, err := svc.FindSiteByID(ctx, site.ID)
		require.NoError(t, err)
		assert.Equal(t, site.ID, found.ID)
		assert.Equal(t, site.Name, found.Name)
		assert.Equal(t, site.BaseURL, found.BaseURL)
		assert.Equal(t, site.Selector, found.Selector)
		assert.Equal(t, site.PostMarker, found.PostMarker)
		assert.Equal(t, site.PathHint, found.PathHint)
		assert.Equal(t, site.MaxPages, found.MaxPages)
		assert.Equal(t, site.MaxPosts, found.MaxPosts)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSiteService(db)
		ctx := context.Background()

		_, err := svc.FindSiteByID(ctx, "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, blogcrawl.ENOTFOUND, blogcrawl.ErrorCode(err))
	})
}

func TestSiteService_FindSites(t *testing.T) {
	t.Parallel()

	t.Run("returns all sites with empty filter", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSiteService(db)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			site := &blogcrawl.Site{
				Name:    "site-" + string(rune('a'+i)),
				BaseURL: "https://example.com/blog",
			}
			require.NoError(t, svc.CreateSite(ctx, site))
		}

		sites, err := svc.FindSites(ctx, blogcrawl.SiteFilter{})
		require.NoError(t, err)
		assert.Len(t, sites, 3)
	})

	t.Run("filters by name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSiteService(db)
		ctx := context.Background()

		s1 := &blogcrawl.Site{Name: "alpha", BaseURL: "https://alpha.example.com/blog"}
		s2 := &blogcrawl.Site{Name: "beta", BaseURL: "https://beta.example.com/blog"}
		require.NoError(t, svc.CreateSite(ctx, s1))
		require.NoError(t, svc.CreateSite(ctx, s2))

		name := "alpha"
		sites, err := svc.FindSites(ctx, blogcrawl.SiteFilter{Name: &name})
		require.NoError(t, err)
		require.Len(t, sites, 1)
		assert.Equal(t, "alpha", sites[0].Name)
	})

	t.Run("respects limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSiteService(db)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			site := &blogcrawl.Site{
				Name:    "site-" + string(rune('a'+i)),
				BaseURL: "https://example.com/blog",
			}
			require.NoError(t, svc.CreateSite(ctx, site))
		}

		sites, err := svc.FindSites(ctx, blogcrawl.SiteFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		assert.Len(t, sites, 2)
	})
}

func TestSiteService_UpdateSite(t *testing.T) {
	t.Parallel()

	t.Run("updates site fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSiteService(db)
		ctx := context.Background()

		site := &blogcrawl.Site{
			Name:    "original-name",
			BaseURL: "https://example.com/blog",
		}
		require.NoError(t, svc.CreateSite(ctx, site))
		originalUpdatedAt := site.UpdatedAt

		newName := "updated-name"
		newMarker := "blog-card"
		maxPosts := 50
		updated, err := svc.UpdateSite(ctx, site.ID, blogcrawl.SiteUpdate{
			Name:       &newName,
			PostMarker: &newMarker,
			MaxPosts:   &maxPosts,
		})
		require.NoError(t, err)

		assert.Equal(t, "updated-name", updated.Name)
		assert.Equal(t, "blog-card", updated.PostMarker)
		assert.Equal(t, 50, updated.MaxPosts)
		assert.True(t, updated.UpdatedAt.After(originalUpdatedAt) || updated.UpdatedAt.Equal(originalUpdatedAt))
	})

	t.Run("rejects update that invalidates the site", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSiteService(db)
		ctx := context.Background()

		site := &blogcrawl.Site{Name: "valid", BaseURL: "https://example.com/blog"}
		require.NoError(t, svc.CreateSite(ctx, site))

		badURL := "not a url"
		_, err := svc.UpdateSite(ctx, site.ID, blogcrawl.SiteUpdate{BaseURL: &badURL})
		require.Error(t, err)
		assert.Equal(t, blogcrawl.EINVALID, blogcrawl.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSiteService(db)
		ctx := context.Background()

		name := "test"
		_, err := svc.UpdateSite(ctx, "nonexistent-id", blogcrawl.SiteUpdate{Name: &name})
		require.Error(t, err)
		assert.Equal(t, blogcrawl.ENOTFOUND, blogcrawl.ErrorCode(err))
	})
}

func TestSiteService_DeleteSite(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing site", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSiteService(db)
		ctx := context.Background()

		site := &blogcrawl.Site{
			Name:    "upguard",
			BaseURL: "https://www.upguard.com/blog",
		}
		require.NoError(t, svc.CreateSite(ctx, site))

		err := svc.DeleteSite(ctx, site.ID)
		require.NoError(t, err)

		_, err = svc.FindSiteByID(ctx, site.ID)
		assert.Equal(t, blogcrawl.ENOTFOUND, blogcrawl.ErrorCode(err))
	})

	t.Run("cascades to the site's posts", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSiteService(db)
		postSvc := sqlite.NewPostService(db)
		ctx := context.Background()

		site := &blogcrawl.Site{Name: "upguard", BaseURL: "https://www.upguard.com/blog"}
		require.NoError(t, svc.CreateSite(ctx, site))

		post := &blogcrawl.Post{
			SiteID: site.ID,
			Title:  "What is Vendor Risk?",
			Body:   "Vendor risk is...",
			Link:   "https://www.upguard.com/blog/vendor-risk",
		}
		require.NoError(t, postSvc.CreatePost(ctx, post))

		require.NoError(t, svc.DeleteSite(ctx, site.ID))

		posts, err := postSvc.FindPosts(ctx, blogcrawl.PostFilter{SiteID: &site.ID})
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSiteService(db)
		ctx := context.Background()

		err := svc.DeleteSite(ctx, "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, blogcrawl.ENOTFOUND, blogcrawl.ErrorCode(err))
	})
}
