package bookbot_test

import (
	"testing"

	"github.com/abaj8494/bookbot"
	"github.com/stretchr/testify/assert"
)

func TestCoverPlanner_Plan(t *testing.T) {
	t.Parallel()

	t.Run("splits long title after three words", func(t *testing.T) {
		t.Parallel()

		p := bookbot.NewCoverPlanner()
		layout := p.Plan("A Tale of Two Cities", "Charles Dickens")

		assert.Equal(t, "A Tale of", layout.TitleLine1)
		assert.Equal(t, "Two Cities", layout.TitleLine2)
		assert.Equal(t, "Charles Dickens", layout.Author)
	})

	t.Run("short title fits on one line", func(t *testing.T) {
		t.Parallel()

		p := bookbot.NewCoverPlanner()
		layout := p.Plan("Moby Dick", "Herman Melville")

		assert.Equal(t, "Moby Dick", layout.TitleLine1)
		assert.Empty(t, layout.TitleLine2)
	})

	t.Run("background is drawn from the palette", func(t *testing.T) {
		t.Parallel()

		p := bookbot.NewCoverPlanner()
		layout := p.Plan("Dracula", "Bram Stoker")

		assert.Contains(t, bookbot.DefaultPalette, layout.Background)
	})

	t.Run("pick function selects the background", func(t *testing.T) {
		t.Parallel()

		p := bookbot.NewCoverPlanner(
			bookbot.WithPalette([]string{"#111111", "#222222"}),
			bookbot.WithPick(func(n int) int { return n - 1 }),
		)
		layout := p.Plan("Dracula", "Bram Stoker")

		assert.Equal(t, "#222222", layout.Background)
	})
}
