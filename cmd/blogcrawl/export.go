package main

import (
	"fmt"

	"github.com/fwojciec/blogcrawl"
	"github.com/fwojciec/blogcrawl/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	site, err := findSiteByName(deps, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s Use 'blogcrawl list' to see available sites.\n", blogcrawl.ErrorMessage(err))
		return err
	}

	posts, err := deps.Posts.FindPosts(deps.Ctx, blogcrawl.PostFilter{
		SiteID: &site.ID,
		SortBy: blogcrawl.SortByCreatedAt,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogcrawl.ErrorMessage(err))
		return err
	}

	if err := fs.NewCSVWriter(c.Out).WritePosts(posts); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d posts to %s\n", len(posts), c.Out)
	return nil
}
