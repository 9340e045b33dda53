package blogcrawl

// LanguageDetector identifies the language of extracted text.
type LanguageDetector interface {
	// Detect returns the ISO 639-3 code of the text's dominant language,
	// or "" when detection is not reliable enough to record.
	Detect(text string) string
}
