package carousel

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/germanamz/rover/pkg/composite/item"
	"github.com/germanamz/rover/pkg/engine"
)

func newCarousel(t *testing.T) Model {
	t.Helper()
	eng, err := NewEngine(engine.Config{
		Items: []item.Item{
			{ID: "s1", Label: "Mountains"},
			{ID: "s2", Label: "Coast", Disabled: true},
			{ID: "s3", Label: "Desert"},
		},
		AnnounceDelay: "1h",
	})
	require.NoError(t, err)
	t.Cleanup(eng.Destroy)
	return New(eng, func(it item.Item, _ int) string { return "slide " + it.Label })
}

func key(m Model, k tea.KeyType) Model {
	next, _ := m.Update(tea.KeyMsg{Type: k})
	return next.(Model)
}

func TestCarousel_ShowsFirstSlide(t *testing.T) {
	m := newCarousel(t)

	assert.Equal(t, 0, m.Page())
	assert.Contains(t, m.View(), "slide Mountains")
}

func TestCarousel_WrapsBothWays(t *testing.T) {
	m := newCarousel(t)

	m = key(m, tea.KeyLeft) // enters at the showing slide
	m = key(m, tea.KeyLeft)
	assert.Equal(t, 2, m.Page(), "wraps to the last slide")
	assert.Equal(t, "Slide 3 of 3: Desert", m.Engine().State().Announcement)

	m = key(m, tea.KeyRight)
	assert.Equal(t, 0, m.Page(), "wraps forward")
	assert.Contains(t, m.View(), "slide Mountains")
}

func TestCarousel_PaginatorDots(t *testing.T) {
	m := newCarousel(t)
	m = key(m, tea.KeyEnd)

	view := m.View()
	assert.Contains(t, view, "○○●")
}
