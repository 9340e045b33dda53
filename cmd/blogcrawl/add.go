package main

import (
	"fmt"

	"github.com/fwojciec/blogcrawl"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	// Force mode: delete existing site first
	if c.Force {
		existing, err := deps.Sites.FindSites(deps.Ctx, blogcrawl.SiteFilter{Name: &c.Name})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", blogcrawl.ErrorMessage(err))
			return err
		}
		if len(existing) > 0 {
			if err := deps.Sites.DeleteSite(deps.Ctx, existing[0].ID); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", blogcrawl.ErrorMessage(err))
				return err
			}
		}
	}

	site := &blogcrawl.Site{
		Name:       c.Name,
		BaseURL:    c.URL,
		Selector:   c.Selector,
		PostMarker: c.PostMarker,
		PathHint:   c.PathHint,
		MaxPages:   c.MaxPages,
		MaxPosts:   c.MaxPosts,
	}

	if err := deps.Sites.CreateSite(deps.Ctx, site); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogcrawl.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added site %q (%s)\n", c.Name, site.ID)
	fmt.Fprintf(deps.Stdout, "Run 'blogcrawl crawl %s' to scrape it.\n", c.Name)
	return nil
}
