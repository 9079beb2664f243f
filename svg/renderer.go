// Package svg renders planned cover layouts as SVG markup.
package svg

import (
	"strconv"

	"github.com/abaj8494/bookbot"
	"github.com/beevik/etree"
)

// Cover geometry. A 2:3 portrait canvas with the title block above
// center and the author block below.
const (
	coverWidth  = 300
	coverHeight = 450

	borderInset = 10

	titleY1 = 180
	titleY2 = 215
	byY     = 270
	authorY = 300
)

const fontFamily = "Georgia, serif"

// Ensure Renderer implements bookbot.CoverRenderer at compile time.
var _ bookbot.CoverRenderer = (*Renderer)(nil)

// Renderer builds placeholder cover SVGs from layouts.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the SVG document for a cover layout.
func (r *Renderer) Render(layout bookbot.CoverLayout) ([]byte, error) {
	doc := etree.NewDocument()

	root := doc.CreateElement("svg")
	root.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	root.CreateAttr("viewBox", "0 0 300 450")
	root.CreateAttr("width", strconv.Itoa(coverWidth))
	root.CreateAttr("height", strconv.Itoa(coverHeight))

	background := root.CreateElement("rect")
	background.CreateAttr("width", strconv.Itoa(coverWidth))
	background.CreateAttr("height", strconv.Itoa(coverHeight))
	background.CreateAttr("fill", layout.Background)

	border := root.CreateElement("rect")
	border.CreateAttr("x", strconv.Itoa(borderInset))
	border.CreateAttr("y", strconv.Itoa(borderInset))
	border.CreateAttr("width", strconv.Itoa(coverWidth-2*borderInset))
	border.CreateAttr("height", strconv.Itoa(coverHeight-2*borderInset))
	border.CreateAttr("fill", "none")
	border.CreateAttr("stroke", "#333")
	border.CreateAttr("stroke-width", "2")

	title1 := centeredText(root, titleY1, "24", layout.TitleLine1)
	title1.CreateAttr("font-weight", "bold")

	if layout.TitleLine2 != "" {
		title2 := centeredText(root, titleY2, "24", layout.TitleLine2)
		title2.CreateAttr("font-weight", "bold")
	}

	centeredText(root, byY, "18", "by")
	centeredText(root, authorY, "20", layout.Author)

	doc.Indent(2)
	return doc.WriteToBytes()
}

// centeredText adds a horizontally centered text element at the given
// baseline.
func centeredText(root *etree.Element, y int, fontSize, content string) *etree.Element {
	text := root.CreateElement("text")
	text.CreateAttr("x", strconv.Itoa(coverWidth/2))
	text.CreateAttr("y", strconv.Itoa(y))
	text.CreateAttr("font-family", fontFamily)
	text.CreateAttr("font-size", fontSize)
	text.CreateAttr("text-anchor", "middle")
	text.CreateAttr("fill", "#333")
	text.SetText(content)
	return text
}
