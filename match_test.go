package bookbot_test

import (
	"regexp"
	"testing"

	"github.com/abaj8494/bookbot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteral_Match(t *testing.T) {
	t.Parallel()

	t.Run("finds first occurrence", func(t *testing.T) {
		t.Parallel()

		m, ok := bookbot.Literal("needle").Match("hay needle hay needle")

		require.True(t, ok)
		assert.Equal(t, 4, m.Start)
		assert.Equal(t, 10, m.End)
		assert.Equal(t, "needle", m.Value)
	})

	t.Run("is case sensitive", func(t *testing.T) {
		t.Parallel()

		_, ok := bookbot.Literal("Needle").Match("hay needle hay")

		assert.False(t, ok)
	})
}

func TestPattern_Match(t *testing.T) {
	t.Parallel()

	t.Run("captures first group trimmed", func(t *testing.T) {
		t.Parallel()

		p := bookbot.NewPattern(regexp.MustCompile(`by ([A-Z][a-z]+ [A-Z][a-z]+)`))
		m, ok := p.Match("a novel by Jane Austen\n")

		require.True(t, ok)
		assert.Equal(t, "Jane Austen", m.Value)
	})

	t.Run("falls back to whole match without groups", func(t *testing.T) {
		t.Parallel()

		p := bookbot.NewPattern(regexp.MustCompile(`[0-9]+`))
		m, ok := p.Match("chapter 42 begins")

		require.True(t, ok)
		assert.Equal(t, "42", m.Value)
	})
}

func TestFirstMatch(t *testing.T) {
	t.Parallel()

	t.Run("priority is list order not text position", func(t *testing.T) {
		t.Parallel()

		// "beta" appears earlier in the text, but "alpha" is listed
		// first so it wins.
		matchers := bookbot.Literals([]string{"alpha", "beta"})
		m, ok := bookbot.FirstMatch("beta ... alpha", matchers)

		require.True(t, ok)
		assert.Equal(t, "alpha", m.Value)
		assert.Equal(t, 9, m.Start)
	})

	t.Run("falls through to later candidates", func(t *testing.T) {
		t.Parallel()

		matchers := bookbot.Literals([]string{"missing", "beta"})
		m, ok := bookbot.FirstMatch("beta", matchers)

		require.True(t, ok)
		assert.Equal(t, "beta", m.Value)
	})

	t.Run("reports no match", func(t *testing.T) {
		t.Parallel()

		_, ok := bookbot.FirstMatch("text", bookbot.Literals([]string{"a", "b"}))

		assert.False(t, ok)
	})

	t.Run("empty matcher list never matches", func(t *testing.T) {
		t.Parallel()

		_, ok := bookbot.FirstMatch("text", nil)

		assert.False(t, ok)
	})
}
