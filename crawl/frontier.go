package crawl

import (
	"container/heap"
	"strings"
	"sync"

	"github.com/fwojciec/blogcrawl"
	"github.com/fwojciec/blogcrawl/bloom"
)

// Compile-time interface verification.
var _ blogcrawl.LinkFrontier = (*Frontier)(nil)

// Frontier is an in-memory link frontier with priority queue and Bloom filter
// deduplication. Shallower links (fewer path segments) are popped first, and
// links pushed earlier win ties, so feed entries keep their feed order and
// top-level posts surface before deep archive pages.
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue *linkHeap
	seq   int
}

// NewFrontier creates a new Frontier sized for n expected links
// with the given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	h := &linkHeap{}
	heap.Init(h)
	return &Frontier{
		seen:  bloom.NewFilter(n, fpRate),
		queue: h,
	}
}

// Push adds a link entry to the frontier.
// Returns false if the link has already been seen.
// URL fragments are stripped before deduplication - links differing only by
// fragment are considered duplicates.
func (f *Frontier) Push(entry blogcrawl.LinkEntry) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	link := stripFragment(entry.Link)
	if f.seen.Test(link) {
		return false
	}
	f.seen.Add(link)

	// Store the link without fragment
	entry.Link = link
	f.seq++
	heap.Push(f.queue, frontierItem{
		entry: entry,
		depth: strings.Count(link, "/"),
		seq:   f.seq,
	})
	return true
}

// Pop returns the shallowest queued link entry.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (blogcrawl.LinkEntry, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.queue.Len() == 0 {
		return blogcrawl.LinkEntry{}, false
	}
	item, _ := heap.Pop(f.queue).(frontierItem)
	return item.entry, true
}

// Len returns the number of links in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queue.Len()
}

// Seen returns true if the link has been queued before.
// URL fragments are stripped before checking.
func (f *Frontier) Seen(link string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(stripFragment(link))
}

func stripFragment(link string) string {
	if idx := strings.Index(link, "#"); idx != -1 {
		return link[:idx]
	}
	return link
}

// frontierItem pairs a link entry with its queue ordering keys.
type frontierItem struct {
	entry blogcrawl.LinkEntry
	depth int
	seq   int
}

// linkHeap implements heap.Interface for frontierItem.
// Shallower links are popped first; insertion order breaks ties (min-heap).
type linkHeap []frontierItem

func (h linkHeap) Len() int { return len(h) }

func (h linkHeap) Less(i, j int) bool {
	if h[i].depth != h[j].depth {
		return h[i].depth < h[j].depth
	}
	return h[i].seq < h[j].seq
}

func (h linkHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *linkHeap) Push(x any) {
	item, _ := x.(frontierItem)
	*h = append(*h, item)
}

func (h *linkHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}
