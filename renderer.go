package bookbot

// CoverRenderer turns a planned cover layout into concrete image markup.
type CoverRenderer interface {
	// Render produces the cover bytes for a layout.
	Render(layout CoverLayout) ([]byte, error)
}
