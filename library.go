package bookbot

import (
	"context"
	"path"
	"strings"
)

// Library persists clean text and covers with atomic semantics.
// SaveText and SaveCover write to a temporary location; Commit makes
// changes permanent; Abort discards pending changes.
type Library interface {
	SaveText(ctx context.Context, slug, content string) error
	SaveCover(ctx context.Context, slug string, svg []byte) error

	// Texts lists the slugs of all committed texts.
	Texts(ctx context.Context) ([]string, error)

	// HasCover reports whether a committed cover exists for the slug.
	HasCover(ctx context.Context, slug string) (bool, error)

	// ReadText returns the committed clean text for the slug.
	// Returns ENOTFOUND if no such text exists.
	ReadText(ctx context.Context, slug string) (string, error)

	Commit() error
	Abort() error
}

// SlugFromFilename strips directory and extension from a filename.
// Example: "txt/war-and-peace.txt" → "war-and-peace".
func SlugFromFilename(filename string) string {
	base := path.Base(filename)
	return strings.TrimSuffix(base, path.Ext(base))
}
