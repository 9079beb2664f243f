package bookbot_test

import (
	"testing"

	"github.com/abaj8494/bookbot"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("collapses blank line runs to one blank line", func(t *testing.T) {
		t.Parallel()

		got := bookbot.Normalize("one\n\n\n\ntwo")

		assert.Equal(t, "one\n\ntwo", got)
	})

	t.Run("collapses blank lines containing whitespace", func(t *testing.T) {
		t.Parallel()

		got := bookbot.Normalize("one\n  \n\t\n  \ntwo")

		assert.Equal(t, "one\n\ntwo", got)
	})

	t.Run("preserves single paragraph breaks", func(t *testing.T) {
		t.Parallel()

		got := bookbot.Normalize("one\n\ntwo")

		assert.Equal(t, "one\n\ntwo", got)
	})

	t.Run("collapses horizontal whitespace runs", func(t *testing.T) {
		t.Parallel()

		got := bookbot.Normalize("a  b\t\tc \t d")

		assert.Equal(t, "a b c d", got)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"",
			"plain text",
			"a\n\n\n\nb\t\tc",
			"  leading\n \n \n \nand   interior  ",
			"\n\n\n",
		}

		for _, in := range inputs {
			once := bookbot.Normalize(in)
			twice := bookbot.Normalize(once)

			assert.Equal(t, once, twice)
		}
	})

	t.Run("never grows the input", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"",
			"unchanged",
			"a   b",
			"a\n\n\n\n\nb",
			" \t \n \t \n \t \n",
		}

		for _, in := range inputs {
			assert.LessOrEqual(t, len(bookbot.Normalize(in)), len(in))
		}
	})
}
