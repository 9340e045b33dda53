package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/blogcrawl"
	main "github.com/fwojciec/blogcrawl/cmd/blogcrawl"
	"github.com/fwojciec/blogcrawl/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleSiteService(site *blogcrawl.Site) *mock.SiteService {
	return &mock.SiteService{
		FindSitesFn: func(_ context.Context, filter blogcrawl.SiteFilter) ([]*blogcrawl.Site, error) {
			if filter.Name != nil && *filter.Name != site.Name {
				return nil, nil
			}
			return []*blogcrawl.Site{site}, nil
		},
	}
}

func TestPostsCmd_Run(t *testing.T) {
	t.Parallel()

	site := &blogcrawl.Site{ID: "site-1", Name: "upguard", BaseURL: "https://www.upguard.com/blog"}

	samplePosts := []*blogcrawl.Post{
		{
			SiteID: "site-1",
			Title:  "What is Vendor Risk?",
			Body:   "Vendor risk is the exposure an organization takes on through third parties.",
			Link:   "https://www.upguard.com/blog/vendor-risk",
		},
		{
			SiteID: "site-1",
			Title:  "What is a Data Breach?",
			Body:   "A data breach is an incident exposing confidential data.",
			Link:   "https://www.upguard.com/blog/data-breach",
		},
	}

	t.Run("lists post titles and links", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Sites:  singleSiteService(site),
			Posts: &mock.PostService{
				FindPostsFn: func(_ context.Context, filter blogcrawl.PostFilter) ([]*blogcrawl.Post, error) {
					require.NotNil(t, filter.SiteID)
					assert.Equal(t, "site-1", *filter.SiteID)
					return samplePosts, nil
				},
			},
		}

		cmd := &main.PostsCmd{Name: "upguard"}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "Posts for upguard (2 total)")
		assert.Contains(t, output, "What is Vendor Risk?")
		assert.Contains(t, output, "https://www.upguard.com/blog/data-breach")
		// Summary listing omits bodies
		assert.NotContains(t, output, "exposure an organization")
	})

	t.Run("prints full bodies with --full", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Sites:  singleSiteService(site),
			Posts: &mock.PostService{
				FindPostsFn: func(_ context.Context, _ blogcrawl.PostFilter) ([]*blogcrawl.Post, error) {
					return samplePosts, nil
				},
			},
		}

		cmd := &main.PostsCmd{Name: "upguard", Full: true}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "exposure an organization")
	})

	t.Run("returns ENOTFOUND when site has no posts", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Sites:  singleSiteService(site),
			Posts: &mock.PostService{
				FindPostsFn: func(_ context.Context, _ blogcrawl.PostFilter) ([]*blogcrawl.Post, error) {
					return nil, nil
				},
			},
		}

		cmd := &main.PostsCmd{Name: "upguard"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, blogcrawl.ENOTFOUND, blogcrawl.ErrorCode(err))
		assert.Contains(t, stderr.String(), "has no posts")
	})

	t.Run("returns ENOTFOUND for unknown site", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Sites:  singleSiteService(site),
		}

		cmd := &main.PostsCmd{Name: "nope"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, blogcrawl.ENOTFOUND, blogcrawl.ErrorCode(err))
	})
}
