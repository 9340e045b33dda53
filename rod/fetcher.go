// Package rod provides a browser-automation implementation of
// blogcrawl.Fetcher for blogs that render their content client-side.
package rod

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fwojciec/blogcrawl"
	"github.com/fwojciec/blogcrawl/goquery"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout is the default timeout for a single fetch.
// http.DefaultFetchTimeout mirrors this value.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxPages is the default number of pages before browser recycling.
// Chrome accumulates memory over time (~0.5MB/s under load) and the
// baseline never returns to initial levels even with proper page cleanup,
// so the browser is relaunched periodically.
const DefaultMaxPages = 75

// renderedHTMLScript serializes the rendered DOM, descending into open
// shadow roots so post links inside web components survive serialization.
const renderedHTMLScript = `() => {
	const expand = (node) => {
		if (node.nodeType === Node.TEXT_NODE) return node.textContent;
		if (node.nodeType !== Node.ELEMENT_NODE) return "";
		const tag = node.localName;
		let out = "<" + tag;
		for (const a of node.attributes) {
			out += " " + a.name + '="' + a.value.replaceAll('"', "&quot;") + '"';
		}
		out += ">";
		const kids = node.shadowRoot ? node.shadowRoot.childNodes : node.childNodes;
		for (const kid of kids) {
			out += expand(kid);
		}
		return out + "</" + tag + ">";
	};
	return "<!DOCTYPE html>" + expand(document.documentElement);
}`

// Ensure Fetcher implements blogcrawl.Fetcher at compile time.
var _ blogcrawl.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser
// automation. Fetches sharing a session ID reuse one browser tab, so
// per-tab state (sessionStorage, in-page navigation) carries across the
// pages of a crawl run. The browser is recycled after maxPages fetches;
// recycling drops live sessions, which re-create their tab on next use.
//
// Fetcher is safe for concurrent use as long as each session ID is used
// by one goroutine at a time.
type Fetcher struct {
	timeout  time.Duration
	maxPages int64

	mu        sync.Mutex
	browser   *rod.Browser
	launcher  *launcher.Launcher
	sessions  map[string]*rod.Page
	pageCount int64

	closed atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the timeout for a single fetch.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxPages sets the number of pages before the browser is recycled.
// Defaults to 75 if not specified.
func WithMaxPages(n int64) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:  DefaultFetchTimeout,
		maxPages: DefaultMaxPages,
		sessions: make(map[string]*rod.Page),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.launchLocked(); err != nil {
		return nil, err
	}

	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML along with a
// cleaned copy stripped of script, style and noscript elements.
func (f *Fetcher) Fetch(ctx context.Context, url string, opts blogcrawl.FetchOptions) (*blogcrawl.FetchResult, error) {
	if f.closed.Load() {
		return nil, blogcrawl.Errorf(blogcrawl.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, oneShot, err := f.acquirePage(opts.SessionID)
	if err != nil {
		return nil, err
	}
	if oneShot {
		defer page.Close()
	}

	// Operations run on a context-bound clone; the stored session page
	// outlives this fetch.
	bound := page.Context(ctx)

	if opts.CacheMode != blogcrawl.CacheModeEnabled {
		if err := (proto.NetworkSetCacheDisabled{CacheDisabled: true}).Call(bound); err != nil {
			f.dropSession(opts.SessionID, page)
			return nil, err
		}
	}

	if err := bound.Navigate(url); err != nil {
		f.dropSession(opts.SessionID, page)
		return nil, err
	}
	if err := bound.WaitLoad(); err != nil {
		f.dropSession(opts.SessionID, page)
		return nil, err
	}

	html, err := renderedHTML(bound)
	if err != nil {
		f.dropSession(opts.SessionID, page)
		return nil, err
	}

	f.mu.Lock()
	f.pageCount++
	f.mu.Unlock()

	return &blogcrawl.FetchResult{
		HTML:        html,
		CleanedHTML: goquery.Clean(html),
	}, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.sessions = nil
	return f.closeLocked()
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.launcher == nil {
		return 0
	}
	return f.launcher.PID()
}

// acquirePage returns the tab for the session, creating it if needed.
// Fetches without a session ID get a one-shot tab the caller must close.
// When the page budget is spent the browser is recycled first.
func (f *Fetcher) acquirePage(sessionID string) (*rod.Page, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.browser == nil {
		return nil, false, blogcrawl.Errorf(blogcrawl.EINVALID, "fetcher is closed")
	}

	if f.pageCount >= f.maxPages {
		f.recycleLocked()
	}

	if sessionID == "" {
		page, err := f.browser.Page(proto.TargetCreateTarget{})
		if err != nil {
			return nil, false, err
		}
		return page, true, nil
	}

	if page, ok := f.sessions[sessionID]; ok {
		return page, false, nil
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, false, err
	}
	f.sessions[sessionID] = page
	return page, false, nil
}

// dropSession discards a session's tab after a failed fetch so the next
// fetch in the session starts from a fresh one.
func (f *Fetcher) dropSession(sessionID string, page *rod.Page) {
	if sessionID == "" {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.sessions[sessionID] == page {
		delete(f.sessions, sessionID)
		_ = page.Close()
	}
}

// launchLocked starts a new browser instance with stability flags.
// Must be called with mu held.
func (f *Fetcher) launchLocked() error {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = lnchr
	return nil
}

// closeLocked shuts down the current browser and launcher.
// Must be called with mu held.
func (f *Fetcher) closeLocked() error {
	var err error
	if f.browser != nil {
		err = f.browser.Close()
		f.browser = nil
	}
	if f.launcher != nil {
		f.launcher.Kill()
		f.launcher = nil
	}
	return err
}

// recycleLocked starts a fresh browser and closes the old one, dropping
// any session tabs tied to it. If launching the new browser fails, the
// old browser is kept so fetching can continue.
// Must be called with mu held.
func (f *Fetcher) recycleLocked() {
	oldBrowser := f.browser
	oldLauncher := f.launcher
	f.browser = nil
	f.launcher = nil

	if err := f.launchLocked(); err != nil {
		f.browser = oldBrowser
		f.launcher = oldLauncher
		return
	}

	f.sessions = make(map[string]*rod.Page)
	f.pageCount = 0

	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
	}
}

// renderedHTML serializes the page, expanding open shadow roots. Falls
// back to plain outer HTML when script evaluation fails.
func renderedHTML(page *rod.Page) (string, error) {
	obj, err := page.Eval(renderedHTMLScript)
	if err == nil {
		return obj.Value.Str(), nil
	}
	return page.HTML()
}
