package mock

import "github.com/abaj8494/bookbot"

var _ bookbot.CoverRenderer = (*CoverRenderer)(nil)

// CoverRenderer is a mock implementation of bookbot.CoverRenderer.
type CoverRenderer struct {
	RenderFn func(layout bookbot.CoverLayout) ([]byte, error)
}

func (r *CoverRenderer) Render(layout bookbot.CoverLayout) ([]byte, error) {
	return r.RenderFn(layout)
}
