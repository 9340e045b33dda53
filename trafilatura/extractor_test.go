package trafilatura_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/blogcrawl"
	"github.com/fwojciec/blogcrawl/trafilatura"
	"github.com/stretchr/testify/assert"
)

// Ensure Extractor implements blogcrawl.ContentExtractor at compile time.
var _ blogcrawl.ContentExtractor = (*trafilatura.Extractor)(nil)

func TestExtractor_ExtractMainContent(t *testing.T) {
	t.Parallel()

	ext := trafilatura.NewExtractor()

	t.Run("extracts the article and drops navigation", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Shipping Faster - Example Blog</title></head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/blog">Blog</a></li>
<li><a href="/about">About</a></li>
</ul>
</nav>
<article>
<h1>Shipping Faster Without Breaking Things</h1>
<p>We cut our deploy time in half by splitting the monolith's test suite
into independently cached stages. This post walks through the pipeline
changes and the tradeoffs we accepted along the way.</p>
<p>The first step was profiling where the time actually went.</p>
</article>
<footer><p>Copyright 2026 Example Corp</p></footer>
</body>
</html>`

		got := ext.ExtractMainContent(html, 0)

		assert.Contains(t, got, "deploy time in half")
		assert.Contains(t, got, "profiling where the time actually went")
		assert.NotContains(t, got, "Copyright 2026 Example Corp")
	})

	t.Run("collapses whitespace runs", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><h1>Title</h1>
<p>Spread    across

		lines   and	tabs.</p></article></body></html>`

		got := ext.ExtractMainContent(html, 0)

		assert.Contains(t, got, "Spread across lines and tabs.")
	})

	t.Run("stays within the length bound", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			`<html><body><article><p>` + strings.Repeat("word ", 200) + `</p></article></body></html>`,
			`<html><body><p>` + strings.Repeat("short ", 100) + `</p></body></html>`,
			`<html><head><title>T</title></head><body><div>` + strings.Repeat("x", 500) + `</div></body></html>`,
			``,
		}

		for _, html := range inputs {
			got := ext.ExtractMainContent(html, 64)
			assert.LessOrEqual(t, len([]rune(got)), 64+len(blogcrawl.Ellipsis))
		}
	})

	t.Run("falls back to a default title for empty input", func(t *testing.T) {
		t.Parallel()

		got := ext.ExtractMainContent("", 0)

		assert.True(t, strings.HasPrefix(got, blogcrawl.DefaultTitle))
	})
}
