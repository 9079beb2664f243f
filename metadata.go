package bookbot

import (
	"path"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// UnknownAuthor is the sentinel returned when no attribution line is
// found in a work's leading content.
const UnknownAuthor = "Unknown Author"

// DefaultAuthorHeadLines bounds how many leading lines are scanned for
// an attribution. The title page of an archive text sits at the top;
// scanning further invites false positives from the narrative body.
const DefaultAuthorHeadLines = 50

// defaultAuthorPatterns are tried in priority order. NAME is a
// capitalized word sequence terminated by a line break; the first group
// of the first matching pattern wins.
var defaultAuthorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)by\s+([A-Z][A-Za-z. ]*[A-Za-z.])\s*$`),
	regexp.MustCompile(`(?m)(?:written|translated)\s+by\s+([A-Z][A-Za-z. ]*[A-Za-z.])\s*$`),
	regexp.MustCompile(`(?m)(?:Author|Written|Translated):\s+([A-Z][A-Za-z. ]*[A-Za-z.])\s*$`),
}

// defaultMinorWords are not capitalized in derived titles unless they
// are the first or last word.
var defaultMinorWords = []string{
	"a", "an", "the", "and", "but", "or", "for", "nor",
	"of", "on", "in", "to", "with", "by",
}

// Metadata holds the display metadata recovered for a work.
type Metadata struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

// MetadataExtractor derives display metadata from a work's identifier
// and leading content. The zero value is not usable; construct with
// NewMetadataExtractor. Safe for concurrent use.
type MetadataExtractor struct {
	minorWords map[string]bool
	patterns   []Matcher
	headLines  int
}

// MetadataOption configures a MetadataExtractor.
type MetadataOption func(*MetadataExtractor)

// WithMinorWords replaces the set of words left lowercase in titles.
func WithMinorWords(words []string) MetadataOption {
	return func(e *MetadataExtractor) {
		e.minorWords = make(map[string]bool, len(words))
		for _, w := range words {
			e.minorWords[strings.ToLower(w)] = true
		}
	}
}

// WithAuthorPatterns replaces the ordered attribution patterns.
func WithAuthorPatterns(patterns []*regexp.Regexp) MetadataOption {
	return func(e *MetadataExtractor) {
		e.patterns = make([]Matcher, len(patterns))
		for i, re := range patterns {
			e.patterns[i] = NewPattern(re)
		}
	}
}

// WithAuthorHeadLines sets how many leading lines are scanned for an
// attribution.
func WithAuthorHeadLines(n int) MetadataOption {
	return func(e *MetadataExtractor) {
		e.headLines = n
	}
}

// NewMetadataExtractor returns an extractor with the default minor-word
// set and attribution patterns.
func NewMetadataExtractor(opts ...MetadataOption) *MetadataExtractor {
	e := &MetadataExtractor{headLines: DefaultAuthorHeadLines}
	WithMinorWords(defaultMinorWords)(e)
	WithAuthorPatterns(defaultAuthorPatterns)(e)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract derives both title and author for a work.
func (e *MetadataExtractor) Extract(identifier, content string) Metadata {
	return Metadata{
		Title:  e.TitleFromSlug(identifier),
		Author: e.AuthorFromContent(content),
	}
}

// TitleFromSlug converts a filename or slug like "tale-of-2-cities.txt"
// into a display title like "Tale of Two Cities". This is a best-effort
// heuristic, not editorial title-casing: hyphens become spaces, the
// digit "2" becomes "Two", and every word is capitalized except interior
// minor words. A slug that reduces to nothing falls back to the raw
// identifier.
func (e *MetadataExtractor) TitleFromSlug(identifier string) string {
	name := strings.TrimSuffix(identifier, path.Ext(identifier))
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "2", "Two")

	words := strings.Fields(name)
	if len(words) == 0 {
		return identifier
	}

	for i, word := range words {
		if i == 0 || i == len(words)-1 || !e.minorWords[strings.ToLower(word)] {
			words[i] = capitalize(word)
		}
	}
	return strings.Join(words, " ")
}

// AuthorFromContent scans the leading lines of a work for an attribution
// such as "by Jane Austen" or "Translated by Constance Garnett". The
// configured patterns are tried in priority order; the first match wins.
// Returns UnknownAuthor when nothing matches within the bounded prefix.
func (e *MetadataExtractor) AuthorFromContent(content string) string {
	head := headLines(content, e.headLines)
	if m, ok := FirstMatch(head, e.patterns); ok && m.Value != "" {
		return m.Value
	}
	return UnknownAuthor
}

// headLines returns the first n lines of s, including their newlines.
func headLines(s string, n int) string {
	pos := 0
	for i := 0; i < n; i++ {
		next := strings.IndexByte(s[pos:], '\n')
		if next < 0 {
			return s
		}
		pos += next + 1
	}
	return s[:pos]
}

// capitalize uppercases the first rune and lowercases the rest, the way
// "word".capitalize would.
func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
}
