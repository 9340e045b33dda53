package blogcrawl

// PostWriter exports a run's accumulated posts.
type PostWriter interface {
	// WritePosts writes the complete accumulated list, replacing any
	// previous export. Callers re-invoke it as the run progresses so a
	// partial export survives interruption.
	WritePosts(posts []*Post) error
}
