package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fwojciec/blogcrawl"
	"github.com/fwojciec/blogcrawl/crawl"
	"github.com/fwojciec/blogcrawl/fs"
	"golang.org/x/sync/errgroup"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	if !c.All && c.Name == "" {
		fmt.Fprintf(deps.Stderr, "error: site name required (or use --all)\n")
		return blogcrawl.Errorf(blogcrawl.EINVALID, "site name required (or use --all)")
	}

	var sites []*blogcrawl.Site
	if c.All {
		all, err := deps.Sites.FindSites(deps.Ctx, blogcrawl.SiteFilter{})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", blogcrawl.ErrorMessage(err))
			return err
		}
		if len(all) == 0 {
			fmt.Fprintln(deps.Stdout, "No sites found. Use 'blogcrawl add' to create one.")
			return nil
		}
		sites = all
	} else {
		site, err := findSiteByName(deps, c.Name)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", blogcrawl.ErrorMessage(err))
			return err
		}
		sites = []*blogcrawl.Site{site}
	}

	limiter := crawl.NewDomainLimiter(time.Duration(c.Delay * float64(time.Second)))

	if !c.All {
		return c.crawlSite(deps, sites[0], limiter)
	}

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)
	for _, site := range sites {
		site := site
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return c.crawlSite(deps, site, limiter)
		})
	}
	return g.Wait()
}

// crawlSite runs one crawl with its own fetcher and export writer.
func (c *CrawlCmd) crawlSite(deps *Dependencies, site *blogcrawl.Site, limiter blogcrawl.DomainLimiter) error {
	crawler := *deps.Crawler
	crawler.RequiredKeys = c.Required
	crawler.MaxLinks = c.MaxLinks
	crawler.Limiter = limiter

	if deps.NewFetcher != nil {
		fetcher, err := deps.NewFetcher(deps.Ctx, c.Fetcher, site.BaseURL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", blogcrawl.ErrorMessage(err))
			return err
		}
		defer fetcher.Close()
		crawler.Fetcher = fetcher
	}

	if c.Out != "" {
		out := c.Out
		if c.All {
			// With --all the out path is a directory, one CSV per site.
			out = filepath.Join(c.Out, site.Name+".csv")
		}
		crawler.Writer = fs.NewCSVWriter(out)
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Crawling %s\n", event.URL)
		case crawl.ProgressPage:
			fmt.Fprintf(deps.Stdout, "  page %d: %d posts\n", event.Page, event.Count)
		case crawl.ProgressScraped:
			mark := ""
			if event.Fallback {
				mark = " (fallback)"
			}
			fmt.Fprintf(deps.Stdout, "  scraped %s%s\n", crawl.TruncateURL(event.URL, 72), mark)
		}
	}

	result, err := crawler.Crawl(deps.Ctx, site, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error crawling %q: %v\n", site.Name, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Crawled %q: %d pages, %d posts saved (%s, %s)\n",
		site.Name, result.Pages, result.Saved,
		crawl.FormatBytes(result.Bytes), crawl.FormatTokens(result.Tokens))
	if result.Duplicates > 0 || result.Incomplete > 0 || result.Fallback > 0 {
		fmt.Fprintf(deps.Stdout, "  skipped %d duplicates, %d incomplete; %d fallback records kept\n",
			result.Duplicates, result.Incomplete, result.Fallback)
	}
	return nil
}
