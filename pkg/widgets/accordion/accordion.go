// Package accordion renders collapsible panels on top of an engine.Engine.
// Headers are stacked vertically; Enter or Space expands or collapses the
// focused panel. Multi mode lets several panels stay open.
package accordion

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/germanamz/rover/pkg/composite/announce"
	"github.com/germanamz/rover/pkg/composite/item"
	"github.com/germanamz/rover/pkg/engine"
	"github.com/germanamz/rover/pkg/widgets/styles"
)

// BodyFunc renders the content of an expanded panel.
type BodyFunc func(it item.Item, width int) string

// NewEngine builds an engine with accordion defaults: vertical orientation,
// manual activation, and collapsible panels in single mode.
func NewEngine(cfg engine.Config, opts ...engine.Option) (*engine.Engine, error) {
	cfg.Orientation = "vertical"
	if cfg.Activation == "" {
		cfg.Activation = "manual"
	}
	cfg.Collapsible = true

	phrases := engine.WithPhrases(announce.Phrases{
		Activated:   announce.Expanded,
		Deactivated: announce.Collapsed,
	})
	return engine.New(cfg, append([]engine.Option{phrases}, opts...)...)
}

// Model is the Bubble Tea model of an accordion.
type Model struct {
	eng   *engine.Engine
	body  BodyFunc
	help  help.Model
	width int
	x, y  int
}

// New returns an accordion driven by eng.
func New(eng *engine.Engine, body BodyFunc) Model {
	if body == nil {
		body = func(it item.Item, _ int) string { return it.Title() }
	}
	return Model{eng: eng, body: body, help: help.New(), width: 80}
}

// SetOrigin records where the first header is drawn on screen.
func (m Model) SetOrigin(x, y int) Model {
	m.x, m.y = x, y
	return m
}

// Engine returns the engine driving the widget.
func (m Model) Engine() *engine.Engine { return m.eng }

func (m Model) Init() tea.Cmd { return m.eng.Init() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if id, ok := m.HitTest(msg.X, msg.Y); ok {
			return m, m.eng.Click(id)
		}
		return m, nil
	}
	return m, m.eng.Update(msg)
}

// rows renders headers and open bodies; owners maps each output line to the
// id of the header on it, or "" for body lines.
func (m Model) rows() (lines, owners []string) {
	tree := m.eng.Accessibility()
	keyboard := m.eng.State().KeyboardMode
	bodyWidth := max(m.width-4, 10)

	for _, it := range tree.Items {
		marker := "▸ "
		style := styles.InactiveStyle
		switch {
		case it.Disabled:
			style = styles.DisabledStyle
		case it.Selected:
			marker = "▾ "
			style = styles.ActiveStyle
		}
		if it.Focused && keyboard {
			style = style.Inherit(styles.FocusStyle)
		}
		lines = append(lines, style.Render(marker+it.Label))
		owners = append(owners, it.ID)

		if !it.Selected {
			continue
		}
		full, _ := m.eng.Items().Get(it.ID)
		for _, l := range strings.Split(styles.BodyStyle.Width(bodyWidth).Render(m.body(full, bodyWidth)), "\n") {
			lines = append(lines, l)
			owners = append(owners, "")
		}
	}
	return lines, owners
}

// HitTest returns the id of the header under the screen cell (x, y).
func (m Model) HitTest(x, y int) (string, bool) {
	if x < m.x {
		return "", false
	}
	_, owners := m.rows()
	row := y - m.y
	if row < 0 || row >= len(owners) || owners[row] == "" {
		return "", false
	}
	return owners[row], true
}

func (m Model) View() string {
	lines, _ := m.rows()

	var sb strings.Builder
	sb.WriteString(strings.Join(lines, "\n"))
	sb.WriteString("\n")
	if live := styles.Live(m.eng.Accessibility().Live.Text); live != "" {
		sb.WriteString(live)
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.View(m.eng.KeyMap()))
	return sb.String()
}
