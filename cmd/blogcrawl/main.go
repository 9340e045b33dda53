package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/blogcrawl"
	"github.com/fwojciec/blogcrawl/crawl"
	"github.com/fwojciec/blogcrawl/gemini"
	"github.com/fwojciec/blogcrawl/goquery"
	"github.com/fwojciec/blogcrawl/htmltomarkdown"
	bloghttp "github.com/fwojciec/blogcrawl/http"
	"github.com/fwojciec/blogcrawl/readability"
	blogslog "github.com/fwojciec/blogcrawl/slog"
	"github.com/fwojciec/blogcrawl/sqlite"
	"github.com/fwojciec/blogcrawl/trafilatura"
	"github.com/fwojciec/blogcrawl/whatlang"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	// Load .env so GEMINI_API_KEY and BLOGCRAWL_DB can live in a file.
	godotenv.Load()

	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SiteService blogcrawl.SiteService
	PostService blogcrawl.PostService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{
		Level: logLevel(),
	}))

	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("blogcrawl"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'blogcrawl --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set BLOGCRAWL_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.SiteService = sqlite.NewSiteService(m.DB)
	m.PostService = sqlite.NewPostService(m.DB)
	deps.DB = m.DB
	deps.Sites = m.SiteService
	deps.Posts = m.PostService

	// Wire crawl-specific dependencies
	if cmd == "crawl" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		tokenCounter, err := gemini.NewTokenCounter(gemini.Model)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}

		deps.Crawler = &crawl.Crawler{
			Converter:    htmltomarkdown.NewConverter(),
			Extractor:    blogslog.NewLoggingPostExtractor(gemini.NewExtractor(client, gemini.WithMaxOutputTokens(maxOutputTokens)), logger),
			Content:      contentExtractor(cli.Crawl.Content),
			Links:        goquery.NewLinkExtractor(),
			Feeds:        blogslog.NewLoggingFeedDiscoverer(bloghttp.NewFeedDiscoverer(nil), logger),
			Language:     whatlang.NewDetector(),
			Posts:        m.PostService,
			TokenCounter: tokenCounter,
		}
		deps.NewFetcher = func(ctx context.Context, kind, baseURL string) (blogcrawl.Fetcher, error) {
			fetcher, err := buildFetcher(ctx, kind, baseURL, stderr)
			if err != nil {
				return nil, err
			}
			return blogslog.NewLoggingFetcher(fetcher, logger), nil
		}
	}

	return kongCtx.Run(deps)
}

// maxOutputTokens caps the tokens generated per extraction call.
const maxOutputTokens = 8192

// contentExtractor selects the main-content extraction backend.
func contentExtractor(kind string) blogcrawl.ContentExtractor {
	switch kind {
	case "trafilatura":
		return trafilatura.NewExtractor()
	case "readability":
		return readability.NewExtractor()
	default:
		return goquery.NewContentExtractor()
	}
}

func logLevel() slog.Level {
	if os.Getenv("BLOGCRAWL_DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

func defaultDBPath() string {
	if path := os.Getenv("BLOGCRAWL_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "blogcrawl.db"
	}
	dir := filepath.Join(home, ".blogcrawl")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "blogcrawl.db")
}
