package bookbot_test

import (
	"testing"

	"github.com/abaj8494/bookbot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripper_Strip(t *testing.T) {
	t.Parallel()

	t.Run("strips header and footer", func(t *testing.T) {
		t.Parallel()

		raw := "noise\n*** START OF THE PROJECT GUTENBERG EBOOK FOO ***\nBODY\n*** END OF THE PROJECT GUTENBERG EBOOK FOO ***\nlicense text"
		s := bookbot.NewStripper(bookbot.DefaultMarkerSet())

		clean, result := s.Strip(raw)

		assert.Equal(t, "BODY", clean)
		assert.True(t, result.StartFound)
		assert.True(t, result.EndFound)
	})

	t.Run("missing start marker keeps leading content", func(t *testing.T) {
		t.Parallel()

		raw := "Chapter 1\n\nIt was the best of times.\n*** END OF THE PROJECT GUTENBERG EBOOK ***\nlicense"
		s := bookbot.NewStripper(bookbot.DefaultMarkerSet())

		clean, result := s.Strip(raw)

		assert.False(t, result.StartFound)
		assert.Zero(t, result.Start)
		assert.True(t, result.EndFound)
		assert.Equal(t, "Chapter 1\n\nIt was the best of times.", clean)
	})

	t.Run("missing end marker keeps trailing content", func(t *testing.T) {
		t.Parallel()

		raw := "*** START OF THE PROJECT GUTENBERG EBOOK ***\nIt was the best of times."
		s := bookbot.NewStripper(bookbot.DefaultMarkerSet())

		clean, result := s.Strip(raw)

		assert.True(t, result.StartFound)
		assert.False(t, result.EndFound)
		assert.Equal(t, len(raw), result.End)
		assert.Equal(t, "It was the best of times.", clean)
	})

	t.Run("no markers found returns whole document trimmed", func(t *testing.T) {
		t.Parallel()

		raw := "  just some text\n"
		s := bookbot.NewStripper(bookbot.DefaultMarkerSet())

		clean, result := s.Strip(raw)

		assert.False(t, result.StartFound)
		assert.False(t, result.EndFound)
		assert.Zero(t, result.Start)
		assert.Equal(t, len(raw), result.End)
		assert.Equal(t, "just some text", clean)
	})

	t.Run("marker priority is list order not text position", func(t *testing.T) {
		t.Parallel()

		// The second-priority spelling occurs first in the text; the
		// first-priority spelling still wins.
		raw := "second\nbody after second\nfirst\nbody after first\n"
		s := bookbot.NewStripper(bookbot.MarkerSet{Start: []string{"first", "second"}})

		clean, result := s.Strip(raw)

		require.True(t, result.StartFound)
		assert.Equal(t, "body after first", clean)
	})

	t.Run("footer search runs over the original document", func(t *testing.T) {
		t.Parallel()

		// The end marker sits inside the front matter, before the
		// header boundary. The slice must clamp rather than invert.
		raw := "END\nfront matter\nSTART here\nbody\n"
		s := bookbot.NewStripper(bookbot.MarkerSet{
			Start: []string{"START"},
			End:   []string{"END"},
		})

		clean, result := s.Strip(raw)

		assert.True(t, result.StartFound)
		assert.True(t, result.EndFound)
		assert.LessOrEqual(t, result.Start, result.End)
		assert.Empty(t, clean)
	})

	t.Run("start offset is never greater than end offset", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"",
			"plain",
			"*** START OF THE PROJECT GUTENBERG EBOOK",
			"*** END OF THE PROJECT GUTENBERG EBOOK",
			"*** END OF THE PROJECT GUTENBERG EBOOK\n*** START OF THE PROJECT GUTENBERG EBOOK\n",
		}
		s := bookbot.NewStripper(bookbot.DefaultMarkerSet())

		for _, raw := range inputs {
			_, result := s.Strip(raw)

			assert.GreaterOrEqual(t, result.Start, 0)
			assert.LessOrEqual(t, result.Start, result.End)
			assert.LessOrEqual(t, result.End, len(raw))
		}
	})

	t.Run("unterminated header line slices to document end", func(t *testing.T) {
		t.Parallel()

		raw := "noise\n*** START OF THE PROJECT GUTENBERG EBOOK FOO"
		s := bookbot.NewStripper(bookbot.DefaultMarkerSet())

		clean, result := s.Strip(raw)

		assert.True(t, result.StartFound)
		assert.Equal(t, len(raw), result.Start)
		assert.Empty(t, clean)
	})

	t.Run("alternate footer spellings apply after primary ones", func(t *testing.T) {
		t.Parallel()

		raw := "*** START OF THE PROJECT GUTENBERG EBOOK ***\nbody\nEnd of the Project Gutenberg EBook of Foo\n"
		s := bookbot.NewStripper(bookbot.DefaultMarkerSet())

		clean, result := s.Strip(raw)

		assert.True(t, result.EndFound)
		assert.Equal(t, "body", clean)
	})

	t.Run("numbered section heading detects the footer", func(t *testing.T) {
		t.Parallel()

		raw := "*** START OF THE PROJECT GUTENBERG EBOOK FOO ***\nBODY\nSection 1. Information about the Mission of Project Gutenberg\nlicense text\n"
		s := bookbot.NewStripper(bookbot.DefaultMarkerSet())

		clean, result := s.Strip(raw)

		assert.True(t, result.EndFound)
		assert.Equal(t, "BODY", clean)
	})

	t.Run("section heading outranks the Foundation line", func(t *testing.T) {
		t.Parallel()

		// The Foundation line occurs first in the text, but the section
		// heading is the higher-priority candidate, so the cut lands on
		// the heading.
		raw := "*** START OF THE PROJECT GUTENBERG EBOOK FOO ***\nBODY\nThe Project Gutenberg Literary Archive Foundation\nSection 1. Information about the Mission of Project Gutenberg\nlicense text\n"
		s := bookbot.NewStripper(bookbot.DefaultMarkerSet())

		clean, result := s.Strip(raw)

		assert.True(t, result.EndFound)
		assert.Equal(t, "BODY\nThe Project Gutenberg Literary Archive Foundation", clean)
	})

	t.Run("end literals outrank end patterns", func(t *testing.T) {
		t.Parallel()

		raw := "*** START OF THE PROJECT GUTENBERG EBOOK FOO ***\nBODY\n*** END OF THE PROJECT GUTENBERG EBOOK FOO ***\nSection 2. Information about the Foundation\n"
		s := bookbot.NewStripper(bookbot.DefaultMarkerSet())

		clean, result := s.Strip(raw)

		assert.True(t, result.EndFound)
		assert.Equal(t, "BODY", clean)
	})
}
