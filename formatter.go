package blogcrawl

import "strings"

// FormatPosts formats posts for terminal display. The body is collapsed
// and truncated to bodyChars so listings stay scannable; a non-positive
// bodyChars prints the body whole. Posts are separated by blank lines.
func FormatPosts(posts []*Post, bodyChars int) string {
	if len(posts) == 0 {
		return ""
	}

	parts := make([]string, 0, len(posts))
	for _, post := range posts {
		header := post.Title
		if header == "" {
			header = post.Link
		}
		body := Truncate(CollapseWhitespace(post.Body), bodyChars)
		lines := []string{"## " + header, post.Link, body}
		if post.Errored {
			lines = append(lines, "(extraction degraded)")
		}
		parts = append(parts, strings.Join(lines, "\n"))
	}

	return strings.Join(parts, "\n\n")
}
