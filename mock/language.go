package mock

import (
	"github.com/fwojciec/blogcrawl"
)

var _ blogcrawl.LanguageDetector = (*LanguageDetector)(nil)

// LanguageDetector is a mock implementation of blogcrawl.LanguageDetector.
type LanguageDetector struct {
	DetectFn func(text string) string
}

func (d *LanguageDetector) Detect(text string) string {
	return d.DetectFn(text)
}
