package sqlite_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/blogcrawl"
	"github.com/fwojciec/blogcrawl/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkWALMode compares write performance between WAL and rollback journal modes.
// This simulates a crawl workload: creating a site and inserting many posts.
func BenchmarkWALMode(b *testing.B) {
	b.Run("rollback_journal", func(b *testing.B) {
		benchmarkPostInserts(b, false)
	})

	b.Run("wal_mode", func(b *testing.B) {
		benchmarkPostInserts(b, true)
	})
}

func benchmarkPostInserts(b *testing.B, useWAL bool) {
	b.Helper()

	// Create a temporary file for the database
	tmpDir := b.TempDir()
	dbPath := filepath.Join(tmpDir, "bench.db")

	db := sqlite.NewDB(dbPath)
	require.NoError(b, db.Open())

	// Enable WAL mode if requested
	if useWAL {
		ctx := context.Background()
		_, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL")
		require.NoError(b, err)
	}

	defer func() {
		db.Close()
		// Clean up WAL files if they exist
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")
	}()

	// Create a site for the posts
	ctx := context.Background()
	siteSvc := sqlite.NewSiteService(db)
	site := &blogcrawl.Site{
		Name:    "benchmark-site",
		BaseURL: "https://example.com/blog",
	}
	require.NoError(b, siteSvc.CreateSite(ctx, site))

	postSvc := sqlite.NewPostService(db)

	// Reset timer to exclude setup time
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		post := &blogcrawl.Post{
			SiteID: site.ID,
			Title:  fmt.Sprintf("Post Number %d", i),
			Body:   fmt.Sprintf("This is the body of post %d with some additional text to make it more realistic. Lorem ipsum dolor sit amet, consectetur adipiscing elit.", i),
			Link:   fmt.Sprintf("https://example.com/blog/post-%d", i),
		}
		if err := postSvc.CreatePost(ctx, post); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBulkInserts tests inserting a batch of posts (simulating a full crawl).
func BenchmarkBulkInserts(b *testing.B) {
	const postsPerCrawl = 100

	b.Run("rollback_journal", func(b *testing.B) {
		benchmarkBulkInserts(b, false, postsPerCrawl)
	})

	b.Run("wal_mode", func(b *testing.B) {
		benchmarkBulkInserts(b, true, postsPerCrawl)
	})
}

func benchmarkBulkInserts(b *testing.B, useWAL bool, postsPerCrawl int) {
	b.Helper()

	for i := 0; i < b.N; i++ {
		b.StopTimer()

		tmpDir := b.TempDir()
		dbPath := filepath.Join(tmpDir, fmt.Sprintf("bench%d.db", i))

		db := sqlite.NewDB(dbPath)
		require.NoError(b, db.Open())

		if useWAL {
			ctx := context.Background()
			_, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL")
			require.NoError(b, err)
		}

		ctx := context.Background()
		siteSvc := sqlite.NewSiteService(db)
		site := &blogcrawl.Site{
			Name:    "benchmark-site",
			BaseURL: "https://example.com/blog",
		}
		require.NoError(b, siteSvc.CreateSite(ctx, site))

		postSvc := sqlite.NewPostService(db)

		b.StartTimer()

		// Insert batch of posts
		for j := 0; j < postsPerCrawl; j++ {
			post := &blogcrawl.Post{
				SiteID: site.ID,
				Title:  fmt.Sprintf("Post Number %d", j),
				Body:   fmt.Sprintf("Body for post %d. Lorem ipsum dolor sit amet.", j),
				Link:   fmt.Sprintf("https://example.com/blog/post-%d", j),
			}
			if err := postSvc.CreatePost(ctx, post); err != nil {
				b.Fatal(err)
			}
		}

		b.StopTimer()
		db.Close()
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")
	}
}
