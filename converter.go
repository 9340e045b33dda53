package blogcrawl

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown. The input should be
	// cleaned HTML (script/style stripped); the output is what the
	// extraction backend consumes.
	Convert(html string) (string, error)
}
