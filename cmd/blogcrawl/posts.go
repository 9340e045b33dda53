package main

import (
	"fmt"

	"github.com/fwojciec/blogcrawl"
)

// Run executes the posts command.
func (c *PostsCmd) Run(deps *Dependencies) error {
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

	if len(posts) == 0 {
		fmt.Fprintf(deps.Stderr, "error: site %q has no posts. Run 'blogcrawl crawl %s' first.\n", c.Name, c.Name)
		return blogcrawl.Errorf(blogcrawl.ENOTFOUND, "site %q has no posts", c.Name)
	}

	if c.Full {
		fmt.Fprintln(deps.Stdout, blogcrawl.FormatPosts(posts, 0))
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Posts for %s (%d total):\n\n", c.Name, len(posts))
	for i, post := range posts {
		title := post.Title
		if title == "" {
			title = post.Link
		}
		fmt.Fprintf(deps.Stdout, "  %d. %s\n     %s\n", i+1, title, post.Link)
	}

	return nil
}
