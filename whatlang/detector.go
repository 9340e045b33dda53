// Package whatlang provides a blogcrawl.LanguageDetector backed by
// whatlanggo's trigram model.
package whatlang

import (
	"strings"

	"github.com/abadojack/whatlanggo"
	"github.com/fwojciec/blogcrawl"
)

// Ensure Detector implements blogcrawl.LanguageDetector at compile time.
var _ blogcrawl.LanguageDetector = (*Detector)(nil)

// sampleWords bounds the text fed to the trigram model. The opening of a
// post is enough to classify it.
const sampleWords = 100

// Detector identifies the language of post text.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns the ISO 639-3 code of the language of text, or "" when
// the model's prediction is not reliable enough to record.
func (d *Detector) Detect(text string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	if len(words) > sampleWords {
		words = words[:sampleWords]
	}

	info := whatlanggo.Detect(strings.Join(words, " "))
	if !info.IsReliable() {
		return ""
	}

	return info.Lang.Iso6393()
}
