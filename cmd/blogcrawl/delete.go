package main

import (
	"fmt"

	"github.com/fwojciec/blogcrawl"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return blogcrawl.Errorf(blogcrawl.EINVALID, "use --force to confirm deletion")
	}

	site, err := findSiteByName(deps, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s Use 'blogcrawl list' to see available sites.\n", blogcrawl.ErrorMessage(err))
		return err
	}

	if err := deps.Sites.DeleteSite(deps.Ctx, site.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogcrawl.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted site %q\n", site.Name)
	return nil
}
