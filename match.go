package bookbot

import (
	"regexp"
	"strings"
)

// Match describes where a Matcher matched and what it captured.
type Match struct {
	// Start and End are byte offsets of the full match within the
	// searched string.
	Start int
	End   int

	// Value is the captured text: the first submatch for pattern
	// matchers, or the matched literal otherwise.
	Value string
}

// Matcher locates the first occurrence of a candidate within a string.
type Matcher interface {
	Match(s string) (Match, bool)
}

// FirstMatch tries each matcher in order and returns the result of the
// first one that matches anywhere in s. Priority is list order, not
// position in the text: an earlier matcher wins even if a later one
// occurs earlier in s. This tie-break lets preferred candidate spellings
// win over looser ones, and is shared by boundary marker search and
// author pattern extraction.
func FirstMatch(s string, matchers []Matcher) (Match, bool) {
	for _, m := range matchers {
		if match, ok := m.Match(s); ok {
			return match, true
		}
	}
	return Match{}, false
}

// Literal matches the first case-sensitive occurrence of a fixed string.
type Literal string

// Match implements Matcher.
func (l Literal) Match(s string) (Match, bool) {
	i := strings.Index(s, string(l))
	if i < 0 {
		return Match{}, false
	}
	return Match{Start: i, End: i + len(l), Value: string(l)}, true
}

// Pattern matches the first occurrence of a compiled regular expression.
// If the expression has capture groups, Value holds the first group,
// trimmed; otherwise it holds the whole match.
type Pattern struct {
	re *regexp.Regexp
}

// NewPattern wraps a compiled regular expression as a Matcher.
func NewPattern(re *regexp.Regexp) Pattern {
	return Pattern{re: re}
}

// Match implements Matcher.
func (p Pattern) Match(s string) (Match, bool) {
	loc := p.re.FindStringSubmatchIndex(s)
	if loc == nil {
		return Match{}, false
	}
	m := Match{Start: loc[0], End: loc[1]}
	if len(loc) >= 4 && loc[2] >= 0 {
		m.Value = strings.TrimSpace(s[loc[2]:loc[3]])
	} else {
		m.Value = s[loc[0]:loc[1]]
	}
	return m, true
}

// Literals converts a list of strings into literal matchers, preserving
// order.
func Literals(candidates []string) []Matcher {
	matchers := make([]Matcher, len(candidates))
	for i, c := range candidates {
		matchers[i] = Literal(c)
	}
	return matchers
}
