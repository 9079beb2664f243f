// Package fs provides file-based storage for clean texts and covers.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/abaj8494/bookbot"
)

// Ensure Library implements bookbot.Library at compile time.
var _ bookbot.Library = (*Library)(nil)

// Library stores clean texts under <base>/txt and covers under
// <base>/covers, with staged writes for atomic update semantics.
// SaveText and SaveCover write into a staging directory; Commit moves
// each staged file into place with a rename, so partially ingested
// batches never leak into the committed tree; Abort discards the stage.
type Library struct {
	baseDir string
}

// NewLibrary creates a Library rooted at baseDir.
func NewLibrary(baseDir string) *Library {
	return &Library{baseDir: baseDir}
}

func (l *Library) txtDir() string     { return filepath.Join(l.baseDir, "txt") }
func (l *Library) coversDir() string  { return filepath.Join(l.baseDir, "covers") }
func (l *Library) stagingDir() string { return filepath.Join(l.baseDir, ".staging") }

// validSlug rejects slugs that would escape the library directories.
func validSlug(slug string) error {
	if slug == "" || strings.ContainsAny(slug, "/\\") || slug == "." || slug == ".." {
		return bookbot.Errorf(bookbot.EINVALID, "invalid slug %q", slug)
	}
	return nil
}

// SaveText stages the clean text for a slug.
func (l *Library) SaveText(ctx context.Context, slug, content string) error {
	if err := validSlug(slug); err != nil {
		return err
	}
	return l.stage(filepath.Join("txt", slug+".txt"), []byte(content))
}

// SaveCover stages the cover markup for a slug.
func (l *Library) SaveCover(ctx context.Context, slug string, svg []byte) error {
	if err := validSlug(slug); err != nil {
		return err
	}
	return l.stage(filepath.Join("covers", slug+".svg"), svg)
}

func (l *Library) stage(relPath string, data []byte) error {
	fullPath := filepath.Join(l.stagingDir(), relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, data, 0644)
}

// Texts lists the slugs of all committed texts in sorted order.
func (l *Library) Texts(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(l.txtDir())
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	slugs := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(entry.Name(), ".txt"))
	}
	sort.Strings(slugs)
	return slugs, nil
}

// HasCover reports whether a committed cover exists for the slug.
func (l *Library) HasCover(ctx context.Context, slug string) (bool, error) {
	if err := validSlug(slug); err != nil {
		return false, err
	}
	_, err := os.Stat(filepath.Join(l.coversDir(), slug+".svg"))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ReadText returns the committed clean text for the slug.
func (l *Library) ReadText(ctx context.Context, slug string) (string, error) {
	if err := validSlug(slug); err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(l.txtDir(), slug+".txt"))
	if os.IsNotExist(err) {
		return "", bookbot.Errorf(bookbot.ENOTFOUND, "text %q not found", slug)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Commit moves every staged file into the committed tree.
// Files already committed for other slugs are left untouched.
func (l *Library) Commit() error {
	for _, sub := range []string{"txt", "covers"} {
		stagedDir := filepath.Join(l.stagingDir(), sub)
		entries, err := os.ReadDir(stagedDir)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return err
		}

		finalDir := filepath.Join(l.baseDir, sub)
		if err := os.MkdirAll(finalDir, 0755); err != nil {
			return err
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			src := filepath.Join(stagedDir, entry.Name())
			dst := filepath.Join(finalDir, entry.Name())
			if err := os.Rename(src, dst); err != nil {
				return err
			}
		}
	}

	return os.RemoveAll(l.stagingDir())
}

// Abort discards all staged files.
func (l *Library) Abort() error {
	return os.RemoveAll(l.stagingDir())
}
