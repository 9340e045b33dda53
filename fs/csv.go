// Package fs provides file-based export of scraped posts.
package fs

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/fwojciec/blogcrawl"
)

// Ensure CSVWriter implements blogcrawl.PostWriter at compile time.
var _ blogcrawl.PostWriter = (*CSVWriter)(nil)

// Header is the column order of the exported CSV.
var Header = []string{"title", "body", "link"}

// CSVWriter exports posts to a CSV file with atomic replace semantics.
// Each WritePosts call rewrites the whole file: rows are written to a
// temporary file which is renamed over the target, so a crash mid-write
// never leaves a truncated export behind.
type CSVWriter struct {
	path string
}

// NewCSVWriter creates a new CSVWriter that writes to the given path.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// Path returns the export file path.
func (w *CSVWriter) Path() string {
	return w.path
}

// WritePosts writes the complete post list, replacing any previous export.
func (w *CSVWriter) WritePosts(posts []*blogcrawl.Post) error {
	// Create parent directories
	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmpPath := w.path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(Header); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}
	for _, post := range posts {
		if err := cw.Write([]string{post.Title, post.Body, post.Link}); err != nil {
			f.Close()
			os.Remove(tmpPath)
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	// Atomically rename temp to final
	return os.Rename(tmpPath, w.path)
}
