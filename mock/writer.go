package mock

import "github.com/fwojciec/blogcrawl"

var _ blogcrawl.PostWriter = (*PostWriter)(nil)

// PostWriter is a mock implementation of blogcrawl.PostWriter.
type PostWriter struct {
	WritePostsFn func(posts []*blogcrawl.Post) error
}

func (w *PostWriter) WritePosts(posts []*blogcrawl.Post) error {
	return w.WritePostsFn(posts)
}
