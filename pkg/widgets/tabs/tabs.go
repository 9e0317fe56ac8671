// Package tabs renders a tab group on top of an engine.Engine: a horizontal
// tab bar with automatic activation and the active tab's panel below it.
package tabs

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/germanamz/rover/pkg/composite/item"
	"github.com/germanamz/rover/pkg/engine"
	"github.com/germanamz/rover/pkg/widgets/styles"
)

// MaxLabelWidth caps a tab label in display cells.
const MaxLabelWidth = 16

// PanelFunc renders the content of the active tab.
type PanelFunc func(it item.Item, width int) string

// NewEngine builds an engine with tab defaults: single mode, horizontal
// orientation and automatic activation unless cfg says otherwise.
func NewEngine(cfg engine.Config, opts ...engine.Option) (*engine.Engine, error) {
	cfg.Mode = "single"
	if cfg.Orientation == "" {
		cfg.Orientation = "horizontal"
	}
	if cfg.Activation == "" {
		cfg.Activation = "automatic"
	}
	return engine.New(cfg, opts...)
}

// Model is the Bubble Tea model of a tab group.
type Model struct {
	eng   *engine.Engine
	panel PanelFunc
	help  help.Model
	width int
	// Screen position of the tab bar, for mouse hit testing.
	x, y int
}

// New returns a tab group driven by eng.
func New(eng *engine.Engine, panel PanelFunc) Model {
	if panel == nil {
		panel = func(it item.Item, _ int) string { return it.Title() }
	}
	return Model{eng: eng, panel: panel, help: help.New(), width: 80}
}

// SetOrigin records where the tab bar is drawn on screen.
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

type span struct {
	id         string
	start, end int
	text       string
}

// layout renders each tab and records its horizontal extent.
func (m Model) layout() []span {
	tree := m.eng.Accessibility()
	spans := make([]span, 0, len(tree.Items))
	x := m.x
	for _, it := range tree.Items {
		style := styles.InactiveStyle
		switch {
		case it.Disabled:
			style = styles.DisabledStyle
		case it.Selected:
			style = styles.ActiveStyle
		}
		if it.Focused && m.eng.State().KeyboardMode {
			style = style.Inherit(styles.FocusStyle)
		}

		text := styles.TabStyle.Inherit(style).Render(styles.Truncate(it.Label, MaxLabelWidth))
		w := lipgloss.Width(text)
		spans = append(spans, span{id: it.ID, start: x, end: x + w, text: text})
		x += w + 1
	}
	return spans
}

// HitTest returns the id of the tab under the screen cell (x, y).
func (m Model) HitTest(x, y int) (string, bool) {
	if y != m.y {
		return "", false
	}
	for _, s := range m.layout() {
		if x >= s.start && x < s.end {
			return s.id, true
		}
	}
	return "", false
}

func (m Model) View() string {
	spans := m.layout()
	parts := make([]string, len(spans))
	for i, s := range spans {
		parts[i] = s.text
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(parts, " "))
	sb.WriteString("\n")

	panelWidth := max(m.width-4, 10)
	if active := m.eng.State().ActiveIDs; len(active) > 0 {
		if it, ok := m.eng.Items().Get(active[0]); ok {
			sb.WriteString(styles.PanelStyle.Width(panelWidth).Render(m.panel(it, panelWidth)))
			sb.WriteString("\n")
		}
	}

	if live := styles.Live(m.eng.Accessibility().Live.Text); live != "" {
		sb.WriteString(live)
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.View(m.eng.KeyMap()))

	return sb.String()
}
