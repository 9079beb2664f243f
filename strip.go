package bookbot

import (
	"regexp"
	"strings"
)

// MarkerSet holds ordered boundary candidates for locating the archive
// boilerplate around a work. Candidates earlier in a list take priority
// over later ones regardless of where they occur in the text. The End
// literals outrank every EndPattern.
type MarkerSet struct {
	Start []string
	End   []string

	// EndPatterns are regular-expression footer candidates, tried in
	// order after the End literals. They cover spellings that need a
	// wildcard, like numbered license section headings.
	EndPatterns []*regexp.Regexp
}

// DefaultMarkerSet returns the Project Gutenberg boundary markers.
// The primary "***" spellings come first; looser footer spellings follow
// so they only apply when no primary end marker is present.
func DefaultMarkerSet() MarkerSet {
	return MarkerSet{
		Start: []string{
			"*** START OF THE PROJECT GUTENBERG EBOOK",
			"*** START OF THIS PROJECT GUTENBERG EBOOK",
			"***START OF THE PROJECT GUTENBERG EBOOK",
		},
		End: []string{
			"*** END OF THE PROJECT GUTENBERG EBOOK",
			"*** END OF THIS PROJECT GUTENBERG EBOOK",
			"***END OF THE PROJECT GUTENBERG EBOOK",
			"End of the Project Gutenberg",
			"End of Project Gutenberg",
		},
		EndPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^\s*Section \d+\.\s+Information about`),
			regexp.MustCompile(`(?m)^The Project Gutenberg Literary Archive Foundation`),
		},
	}
}

// BoundaryResult reports where the work content was located inside the
// raw text. When a marker is not found the corresponding offset defaults
// to the document's natural edge, so absent boilerplate never drops
// content. Invariant: 0 <= Start <= End <= len(content).
type BoundaryResult struct {
	StartFound bool
	EndFound   bool
	Start      int
	End        int
}

// Stripper locates and removes archive boilerplate using a fixed marker
// set. Construct one per configuration; it is safe for concurrent use.
type Stripper struct {
	start []Matcher
	end   []Matcher
}

// NewStripper returns a Stripper for the given marker set.
func NewStripper(markers MarkerSet) *Stripper {
	end := Literals(markers.End)
	for _, re := range markers.EndPatterns {
		end = append(end, NewPattern(re))
	}
	return &Stripper{
		start: Literals(markers.Start),
		end:   end,
	}
}

// Strip slices the work content out of content and reports the detected
// boundaries. The header boundary is the end of the line containing the
// first start marker (by priority); the footer boundary is the start of
// the first end marker. Both searches run independently over the original
// text, so a footer variant embedded in front matter cannot shift once
// the header is removed. Missing markers are non-fatal: the slice falls
// back to the document edge and the corresponding flag is false.
func (s *Stripper) Strip(content string) (string, BoundaryResult) {
	result := BoundaryResult{Start: 0, End: len(content)}

	if m, ok := FirstMatch(content, s.start); ok {
		result.StartFound = true
		result.Start = endOfLine(content, m.End)
	}

	if m, ok := FirstMatch(content, s.end); ok {
		result.EndFound = true
		result.End = m.Start
	}

	// A footer variant can occur inside the front matter; clamp so the
	// slice is never inverted.
	if result.End < result.Start {
		result.End = result.Start
	}

	clean := content[result.Start:result.End]
	clean = trimLeadingWhitespaceRun(clean)
	clean = strings.TrimRight(clean, " \t\r\n")
	return clean, result
}

// endOfLine returns the offset just past the newline that terminates the
// line containing pos, or len(s) if the line is unterminated.
func endOfLine(s string, pos int) int {
	if i := strings.IndexByte(s[pos:], '\n'); i >= 0 {
		return pos + i + 1
	}
	return len(s)
}

// trimLeadingWhitespaceRun removes exactly one run of leading whitespace.
func trimLeadingWhitespaceRun(s string) string {
	return strings.TrimLeft(s, " \t\r\n")
}
