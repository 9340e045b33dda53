package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/blogcrawl"
	"github.com/fwojciec/blogcrawl/crawl"
	"github.com/fwojciec/blogcrawl/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	DB      *sqlite.DB
	Sites   blogcrawl.SiteService
	Posts   blogcrawl.PostService
	Crawler *crawl.Crawler

	// NewFetcher builds the fetcher for one crawl run. The crawl command
	// resolves it per site so "auto" can probe each site's listing URL.
	NewFetcher func(ctx context.Context, kind, baseURL string) (blogcrawl.Fetcher, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Add    AddCmd    `cmd:"" help:"Register a blog site to crawl"`
	Crawl  CrawlCmd  `cmd:"" help:"Crawl a site's listing pages and scrape its posts"`
	List   ListCmd   `cmd:"" help:"List all registered sites"`
	Posts  PostsCmd  `cmd:"" help:"List scraped posts for a site"`
	Export ExportCmd `cmd:"" help:"Export a site's posts to a CSV file"`
	Delete DeleteCmd `cmd:"" help:"Delete a site and its posts"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Name       string `arg:"" help:"Site name"`
	URL        string `arg:"" help:"Blog listing URL"`
	Selector   string `short:"s" default:"[class^='blog-card']" help:"CSS selector scoping post cards on the listing"`
	PostMarker string `short:"m" default:"post-card" help:"Marker whose absence signals an exhausted listing"`
	PathHint   string `default:"/blog" help:"Path segment identifying post links"`
	MaxPages   int    `default:"0" help:"Page limit per crawl (0 = unlimited)"`
	MaxPosts   int    `default:"0" help:"Post limit per crawl (0 = default cap)"`
	Force      bool   `short:"f" help:"Delete existing site first"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	Name        string   `arg:"" optional:"" help:"Site name (omit with --all)"`
	All         bool     `help:"Crawl every registered site"`
	Out         string   `short:"o" help:"CSV export path, flushed incrementally during the run"`
	Fetcher     string   `default:"auto" enum:"auto,http,browser,colly" help:"Fetcher backend"`
	Content     string   `default:"goquery" enum:"goquery,trafilatura,readability" help:"Main-content extractor"`
	Required    []string `short:"r" help:"Required post fields (repeatable, default title,body,link)"`
	MaxLinks    int      `default:"15" help:"Candidate link cap in harvest mode"`
	Delay       float64  `short:"d" default:"5" help:"Seconds between fetches to the same domain"`
	Concurrency int      `short:"c" default:"2" help:"Concurrent site crawls with --all"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// PostsCmd is the "posts" subcommand.
type PostsCmd struct {
	Name string `arg:"" help:"Site name"`
	Full bool   `help:"Show full post bodies"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Name string `arg:"" help:"Site name"`
	Out  string `arg:"" help:"CSV output path"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Site name"`
	Force bool   `help:"Confirm deletion"`
}

// findSiteByName resolves a site name to a site, with a uniform error
// message when the name is unknown.
func findSiteByName(deps *Dependencies, name string) (*blogcrawl.Site, error) {
	sites, err := deps.Sites.FindSites(deps.Ctx, blogcrawl.SiteFilter{Name: &name})
	if err != nil {
		return nil, err
	}
	if len(sites) == 0 {
		return nil, blogcrawl.Errorf(blogcrawl.ENOTFOUND, "site %q not found", name)
	}
	return sites[0], nil
}
