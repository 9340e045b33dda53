// Package gemini implements structured post extraction and token counting
// using Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/fwojciec/blogcrawl"
	"google.golang.org/genai"
)

// Model is the Gemini model used for structured extraction.
const Model = "gemini-2.5-flash"

// Instructions per extraction kind. Both bind the model to the fixed
// title/body/link schema; only the framing differs.
const (
	postInstruction = "Extract the blog post from the following content. " +
		"Return the post's 'title', its full 'body' text without navigation, " +
		"bylines, comments or related-article boxes, and its canonical 'link'."

	listingInstruction = "Extract every blog post entry from the following " +
		"listing content. For each entry return its 'title', the summary text " +
		"shown on the card as 'body', and the URL it points to as 'link'."
)

// postSchema constrains responses to an array of title/body/link objects.
var postSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title": {Type: genai.TypeString},
			"body":  {Type: genai.TypeString},
			"link":  {Type: genai.TypeString},
		},
		Required: []string{"title", "body", "link"},
	},
}

// Ensure Extractor implements blogcrawl.PostExtractor at compile time.
var _ blogcrawl.PostExtractor = (*Extractor)(nil)

// Extractor implements blogcrawl.PostExtractor using Google Gemini with a
// fixed response schema and JSON response MIME type.
type Extractor struct {
	client    *genai.Client
	maxTokens int32
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithMaxOutputTokens caps the tokens generated per extraction call.
func WithMaxOutputTokens(n int) ExtractorOption {
	return func(e *Extractor) {
		e.maxTokens = int32(n)
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(client *genai.Client, opts ...ExtractorOption) *Extractor {
	e := &Extractor{client: client}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractPosts extracts structured posts from page markdown.
func (e *Extractor) ExtractPosts(ctx context.Context, markdown string, kind blogcrawl.ExtractKind) ([]*blogcrawl.Post, error) {
	if strings.TrimSpace(markdown) == "" {
		return nil, blogcrawl.Errorf(blogcrawl.EINVALID, "markdown content required")
	}

	result, err := e.client.Models.GenerateContent(ctx, Model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: markdown}},
		}},
		e.BuildConfig(kind),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, blogcrawl.Errorf(blogcrawl.EINTERNAL, "gemini returned nil result")
	}

	return DecodePosts(result.Text())
}

// BuildConfig returns the GenerateContentConfig for an extraction kind.
func (e *Extractor) BuildConfig(kind blogcrawl.ExtractKind) *genai.GenerateContentConfig {
	temp := float32(0)
	instruction := postInstruction
	if kind == blogcrawl.ExtractListing {
		instruction = listingInstruction
	}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: instruction}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema:   postSchema,
	}
	if e.maxTokens > 0 {
		cfg.MaxOutputTokens = e.maxTokens
	}
	return cfg
}

// DecodePosts parses the model's JSON output. A bare object is accepted as
// a single-element array; empty output is an error so callers can degrade.
func DecodePosts(text string) ([]*blogcrawl.Post, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, blogcrawl.Errorf(blogcrawl.EINTERNAL, "gemini returned no content")
	}

	var posts []*blogcrawl.Post
	if err := json.Unmarshal([]byte(trimmed), &posts); err != nil {
		var single blogcrawl.Post
		if err2 := json.Unmarshal([]byte(trimmed), &single); err2 != nil {
			return nil, blogcrawl.Errorf(blogcrawl.EINTERNAL, "decode extraction output: %v", err)
		}
		posts = []*blogcrawl.Post{&single}
	}
	if len(posts) == 0 {
		return nil, blogcrawl.Errorf(blogcrawl.EINTERNAL, "extraction output contained no posts")
	}
	return posts, nil
}
