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

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes site by name with --force", func(t *testing.T) {
		t.Parallel()

		deleted := ""
		sites := &mock.SiteService{
			FindSitesFn: func(_ context.Context, filter blogcrawl.SiteFilter) ([]*blogcrawl.Site, error) {
				return []*blogcrawl.Site{{ID: "site-123", Name: *filter.Name}}, nil
			},
			DeleteSiteFn: func(_ context.Context, id string) error {
				deleted = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Sites:  sites,
		}

		cmd := &main.DeleteCmd{Name: "upguard", Force: true}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "site-123", deleted)
		assert.Contains(t, stdout.String(), "Deleted site")
	})

	t.Run("refuses without --force", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		cmd := &main.DeleteCmd{Name: "upguard"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, blogcrawl.EINVALID, blogcrawl.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("returns ENOTFOUND for unknown site", func(t *testing.T) {
		t.Parallel()

		sites := &mock.SiteService{
			FindSitesFn: func(_ context.Context, _ blogcrawl.SiteFilter) ([]*blogcrawl.Site, error) {
				return nil, nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Sites:  sites,
		}

		cmd := &main.DeleteCmd{Name: "nope", Force: true}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, blogcrawl.ENOTFOUND, blogcrawl.ErrorCode(err))
	})
}
