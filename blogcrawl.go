// Package blogcrawl provides a CLI-based blog scraping tool. It discovers
// post links from a blog's listing pages, extracts structured content
// (title, body, link) through heuristic HTML parsing with an LLM-backed
// fallback, deduplicates posts by title, and paginates across the listing
// until it is exhausted.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, gemini/).
package blogcrawl
