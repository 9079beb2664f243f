package bookbot

import (
	"math/rand/v2"
	"strings"
)

// DefaultPalette holds pastel, book-like background colors for
// placeholder covers.
var DefaultPalette = []string{
	"#E6B89C", "#F9CDAD", "#F9F2E7", "#ACD8AA", "#6B7A8F", // earthy
	"#EAD2AC", "#9CAFB7", "#D5E5F2", "#C4D7ED", "#ABC8E2", // blues
	"#F8EBEE", "#E3C7CF", "#CBAACB", "#BEBBBB", "#8D6A9F", // purples
	"#F1BB87", "#F4E3B2", "#D3DCB2", "#AAC7D8", "#E7D8C9", // autumn
	"#92DCE5", "#EEE5E9", "#D64933", "#7D70BA", "#2E5266", // mixed
}

// titleLineWords is the maximum number of words on the first title line.
const titleLineWords = 3

// CoverLayout describes a placeholder cover: a background color, the
// title split across up to two lines, and the author. Rendering the
// layout into concrete markup is a separate concern.
type CoverLayout struct {
	Background string `json:"background"`
	TitleLine1 string `json:"titleLine1"`
	TitleLine2 string `json:"titleLine2,omitempty"`
	Author     string `json:"author"`
}

// CoverPlanner decides cover layouts. The background color is a uniform
// random draw from a fixed palette; the draw is cosmetic and carries no
// meaning, unlike the priority order of marker and pattern lists.
type CoverPlanner struct {
	palette []string
	pick    func(n int) int
}

// CoverOption configures a CoverPlanner.
type CoverOption func(*CoverPlanner)

// WithPalette replaces the background color palette.
func WithPalette(palette []string) CoverOption {
	return func(p *CoverPlanner) {
		p.palette = palette
	}
}

// WithPick replaces the random selection function. pick(n) must return
// a value in [0, n). Tests use this to make the draw deterministic.
func WithPick(pick func(n int) int) CoverOption {
	return func(p *CoverPlanner) {
		p.pick = pick
	}
}

// NewCoverPlanner returns a planner using DefaultPalette and a
// math/rand/v2 draw.
func NewCoverPlanner(opts ...CoverOption) *CoverPlanner {
	p := &CoverPlanner{
		palette: DefaultPalette,
		pick:    rand.IntN,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Plan splits the title into a first line of up to three words plus a
// remainder line and picks a background color.
func (p *CoverPlanner) Plan(title, author string) CoverLayout {
	layout := CoverLayout{
		Author:     author,
		Background: p.palette[p.pick(len(p.palette))],
	}

	words := strings.Fields(title)
	if len(words) <= titleLineWords {
		layout.TitleLine1 = strings.Join(words, " ")
		return layout
	}
	layout.TitleLine1 = strings.Join(words[:titleLineWords], " ")
	layout.TitleLine2 = strings.Join(words[titleLineWords:], " ")
	return layout
}
