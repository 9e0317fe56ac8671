package tabs

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/germanamz/rover/pkg/composite/item"
	"github.com/germanamz/rover/pkg/engine"
)

func newTabs(t *testing.T, cfg engine.Config) Model {
	t.Helper()
	if cfg.Items == nil {
		cfg.Items = []item.Item{
			{ID: "alpha", Label: "Alpha"},
			{ID: "beta", Label: "Beta", Disabled: true},
			{ID: "gamma", Label: "Gamma"},
		}
	}
	cfg.AnnounceDelay = "1h"
	eng, err := NewEngine(cfg)
	require.NoError(t, err)
	t.Cleanup(eng.Destroy)
	return New(eng, func(it item.Item, _ int) string { return "panel " + it.ID })
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestTabs_ArrowActivates(t *testing.T) {
	m := newTabs(t, engine.Config{DefaultValue: []string{"alpha"}})
	assert.Contains(t, m.View(), "panel alpha")

	m = update(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "alpha", m.Engine().State().FocusedID, "the first arrow enters at the active tab")

	m = update(m, tea.KeyMsg{Type: tea.KeyRight})
	state := m.Engine().State()
	assert.Equal(t, []string{"gamma"}, state.ActiveIDs)
	assert.Equal(t, "gamma", state.FocusedID)

	view := m.View()
	assert.Contains(t, view, "panel gamma")
	assert.Contains(t, view, "Gamma activated")
}

func TestTabs_ManualActivation(t *testing.T) {
	m := newTabs(t, engine.Config{Activation: "manual", DefaultValue: []string{"alpha"}})

	m = update(m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, []string{"alpha"}, m.Engine().State().ActiveIDs)

	m = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"gamma"}, m.Engine().State().ActiveIDs)
}

func TestTabs_MouseHitTesting(t *testing.T) {
	m := newTabs(t, engine.Config{}).SetOrigin(0, 2)

	id, ok := m.HitTest(1, 2)
	require.True(t, ok)
	assert.Equal(t, "alpha", id)

	_, ok = m.HitTest(1, 3)
	assert.False(t, ok, "wrong row")

	// "Alpha" plus padding is 7 cells, then a separator, then "Beta".
	id, ok = m.HitTest(9, 2)
	require.True(t, ok)
	assert.Equal(t, "beta", id)

	m = update(m, tea.MouseMsg{X: 9, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Empty(t, m.Engine().State().ActiveIDs, "disabled tab is not activated")
	assert.Contains(t, m.View(), "Beta unavailable")

	m = update(m, tea.MouseMsg{X: 1, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, []string{"alpha"}, m.Engine().State().ActiveIDs)
	assert.False(t, m.Engine().State().KeyboardMode)
}

func TestTabs_LongLabelsTruncated(t *testing.T) {
	m := newTabs(t, engine.Config{Items: []item.Item{
		{ID: "long", Label: strings.Repeat("x", 40)},
	}})

	firstLine := strings.SplitN(m.View(), "\n", 2)[0]
	assert.Contains(t, firstLine, "…")
	assert.NotContains(t, firstLine, strings.Repeat("x", MaxLabelWidth+1))
}

func TestNewEngine_ForcesSingleMode(t *testing.T) {
	eng, err := NewEngine(engine.Config{Mode: "multi", Items: []item.Item{{ID: "a"}}})
	require.NoError(t, err)
	defer eng.Destroy()

	assert.False(t, eng.Accessibility().Multiselectable)
}
