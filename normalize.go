package bookbot

import "regexp"

var (
	// Three or more newlines, possibly with whitespace in between,
	// collapse to a single blank line. A plain paragraph break ("\n\n")
	// is left alone.
	blankRunRE = regexp.MustCompile(`\n\s*\n\s*\n+`)

	// Runs of horizontal whitespace collapse to a single space.
	horizontalRE = regexp.MustCompile(`[ \t]+`)
)

// Normalize collapses excess whitespace in work content: first runs of
// blank lines down to one blank line, then runs of spaces and tabs down
// to a single space. It is idempotent and never grows its input.
func Normalize(content string) string {
	content = blankRunRE.ReplaceAllString(content, "\n\n")
	content = horizontalRE.ReplaceAllString(content, " ")
	return content
}
