package bookbot_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/abaj8494/bookbot"
	"github.com/stretchr/testify/assert"
)

func TestMetadataExtractor_TitleFromSlug(t *testing.T) {
	t.Parallel()

	e := bookbot.NewMetadataExtractor()

	tests := []struct {
		name       string
		identifier string
		want       string
	}{
		{
			name:       "hyphens become spaces with title casing",
			identifier: "war-and-peace.txt",
			want:       "War and Peace",
		},
		{
			name:       "numeral two becomes the word",
			identifier: "tale-of-2-cities.txt",
			want:       "Tale of Two Cities",
		},
		{
			name:       "minor word capitalized when first",
			identifier: "the-great-gatsby",
			want:       "The Great Gatsby",
		},
		{
			name:       "minor word capitalized when last",
			identifier: "what-its-all-for.txt",
			want:       "What Its All For",
		},
		{
			name:       "interior minor words stay lowercase",
			identifier: "of-mice-and-men",
			want:       "Of Mice and Men",
		},
		{
			name:       "uppercase input is normalized per word",
			identifier: "MOBY-DICK.TXT",
			want:       "Moby Dick",
		},
		{
			name:       "single word",
			identifier: "dracula.txt",
			want:       "Dracula",
		},
		{
			name:       "empty derivation falls back to raw identifier",
			identifier: "---",
			want:       "---",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, e.TitleFromSlug(tt.identifier))
		})
	}
}

func TestMetadataExtractor_AuthorFromContent(t *testing.T) {
	t.Parallel()

	t.Run("finds plain by attribution", func(t *testing.T) {
		t.Parallel()

		e := bookbot.NewMetadataExtractor()
		content := "Pride and Prejudice\n\nby Jane Austen\n\nChapter 1\n"

		assert.Equal(t, "Jane Austen", e.AuthorFromContent(content))
	})

	t.Run("finds translated by attribution", func(t *testing.T) {
		t.Parallel()

		e := bookbot.NewMetadataExtractor()
		content := "Crime and Punishment\n\ntranslated by Constance Garnett\n"

		assert.Equal(t, "Constance Garnett", e.AuthorFromContent(content))
	})

	t.Run("finds labeled attribution", func(t *testing.T) {
		t.Parallel()

		e := bookbot.NewMetadataExtractor()
		content := "Title: Walden\nAuthor: Henry David Thoreau\n"

		assert.Equal(t, "Henry David Thoreau", e.AuthorFromContent(content))
	})

	t.Run("keeps initials and periods", func(t *testing.T) {
		t.Parallel()

		e := bookbot.NewMetadataExtractor()
		content := "The Time Machine\n\nby H. G. Wells\n"

		assert.Equal(t, "H. G. Wells", e.AuthorFromContent(content))
	})

	t.Run("returns sentinel when nothing matches", func(t *testing.T) {
		t.Parallel()

		e := bookbot.NewMetadataExtractor()
		content := "An anonymous work.\n\nChapter 1\n"

		assert.Equal(t, bookbot.UnknownAuthor, e.AuthorFromContent(content))
	})

	t.Run("does not scan past the bounded prefix", func(t *testing.T) {
		t.Parallel()

		e := bookbot.NewMetadataExtractor(bookbot.WithAuthorHeadLines(3))
		content := "line one\nline two\nline three\nby Deep Narrator\n"

		assert.Equal(t, bookbot.UnknownAuthor, e.AuthorFromContent(content))
	})

	t.Run("scans up to fifty lines by default", func(t *testing.T) {
		t.Parallel()

		e := bookbot.NewMetadataExtractor()
		content := strings.Repeat("filler line\n", 49) + "by Patient Reader\n"

		assert.Equal(t, "Patient Reader", e.AuthorFromContent(content))
	})

	t.Run("pattern priority is list order", func(t *testing.T) {
		t.Parallel()

		// The second pattern would match earlier in the text, but the
		// first listed pattern wins.
		e := bookbot.NewMetadataExtractor(bookbot.WithAuthorPatterns([]*regexp.Regexp{
			regexp.MustCompile(`Author: (.+)`),
			regexp.MustCompile(`by (.+)`),
		}))
		content := "by Early Match\nAuthor: Listed First\n"

		assert.Equal(t, "Listed First", e.AuthorFromContent(content))
	})
}

func TestMetadataExtractor_Extract(t *testing.T) {
	t.Parallel()

	e := bookbot.NewMetadataExtractor()
	meta := e.Extract("pride-and-prejudice.txt", "Pride and Prejudice\n\nby Jane Austen\n")

	assert.Equal(t, "Pride and Prejudice", meta.Title)
	assert.Equal(t, "Jane Austen", meta.Author)
}
