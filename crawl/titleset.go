package crawl

import "sync"

// TitleSet tracks post titles accepted during a crawl so the same post is
// never stored twice within a session. It uses an exact set rather than a
// probabilistic filter because a false positive would silently drop a post.
// It is safe for concurrent use by multiple goroutines.
type TitleSet struct {
	mu     sync.Mutex
	titles map[string]struct{}
}

// NewTitleSet creates an empty TitleSet.
func NewTitleSet() *TitleSet {
	return &TitleSet{titles: make(map[string]struct{})}
}

// Add records a title. Returns false if the title was already present.
func (s *TitleSet) Add(title string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.titles[title]; ok {
		return false
	}
	s.titles[title] = struct{}{}
	return true
}

// Seen returns true if the title has been added.
func (s *TitleSet) Seen(title string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.titles[title]
	return ok
}

// Len returns the number of distinct titles recorded.
func (s *TitleSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.titles)
}
