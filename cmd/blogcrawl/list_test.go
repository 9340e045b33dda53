package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/blogcrawl"
	main "github.com/fwojciec/blogcrawl/cmd/blogcrawl"
	"github.com/fwojciec/blogcrawl/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists sites with ID, name, and URL", func(t *testing.T) {
		t.Parallel()

		sites := &mock.SiteService{
			FindSitesFn: func(_ context.Context, _ blogcrawl.SiteFilter) ([]*blogcrawl.Site, error) {
				return []*blogcrawl.Site{
					{ID: "site-123", Name: "upguard", BaseURL: "https://www.upguard.com/blog"},
					{ID: "site-456", Name: "other", BaseURL: "https://other.example.com/blog"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Sites:  sites,
		}

		cmd := &main.ListCmd{}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "site-123")
		assert.Contains(t, output, "upguard")
		assert.Contains(t, output, "https://www.upguard.com/blog")
		assert.Contains(t, output, "site-456")
		assert.Contains(t, output, "https://other.example.com/blog")
	})

	t.Run("shows helpful message when no sites exist", func(t *testing.T) {
		t.Parallel()

		sites := &mock.SiteService{
			FindSitesFn: func(_ context.Context, _ blogcrawl.SiteFilter) ([]*blogcrawl.Site, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Sites:  sites,
		}

		cmd := &main.ListCmd{}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "No sites")
	})

	t.Run("returns error when FindSites fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database connection failed")
		sites := &mock.SiteService{
			FindSitesFn: func(_ context.Context, _ blogcrawl.SiteFilter) ([]*blogcrawl.Site, error) {
				return nil, dbErr
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Sites:  sites,
		}

		cmd := &main.ListCmd{}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, dbErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
