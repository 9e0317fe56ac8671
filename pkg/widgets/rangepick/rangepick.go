// Package rangepick picks a contiguous span from a vertical list, such as a
// run of dates. Enter or a click sets the start, a second pick sets the
// end, and a third pick starts over. A second pick that precedes the first
// swaps the two.
package rangepick

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/germanamz/rover/pkg/composite/announce"
	"github.com/germanamz/rover/pkg/composite/item"
	"github.com/germanamz/rover/pkg/composite/selection"
	"github.com/germanamz/rover/pkg/engine"
	"github.com/germanamz/rover/pkg/widgets/styles"
)

// NewEngine builds an engine for range picking: multi mode over the two
// endpoints, vertical, manual activation. The picker owns its value, so
// value and default_value are ignored.
func NewEngine(cfg engine.Config, opts ...engine.Option) (*engine.Engine, error) {
	cfg.Mode = "multi"
	cfg.Orientation = "vertical"
	cfg.Activation = "manual"
	cfg.Value, cfg.DefaultValue = nil, nil
	return engine.New(cfg, opts...)
}

// Model is the Bubble Tea model of a range picker.
type Model struct {
	eng  *engine.Engine
	rng  *selection.Range
	help help.Model
	x, y int
}

// New returns a range picker driven by eng.
func New(eng *engine.Engine) Model {
	return Model{
		eng:  eng,
		rng:  selection.NewRange(eng.Items()),
		help: help.New(),
	}
}

// SetOrigin records where the first row is drawn on screen.
func (m Model) SetOrigin(x, y int) Model {
	m.x, m.y = x, y
	return m
}

// Engine returns the engine driving the widget.
func (m Model) Engine() *engine.Engine { return m.eng }

// Bounds returns the picked endpoints; either may be empty.
func (m Model) Bounds() (start, end string) { return m.rng.Bounds() }

func (m Model) Init() tea.Cmd { return m.eng.Init() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.eng.KeyMap().Confirm) {
			idx := m.eng.State().FocusedIndex
			if it, ok := m.eng.Items().At(idx); ok {
				return m, m.Pick(it.ID)
			}
			return m, nil
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if it, ok := m.eng.Items().At(msg.Y - m.y); ok && msg.X >= m.x {
			return m, tea.Batch(m.eng.Point(it.ID), m.Pick(it.ID))
		}
		return m, nil
	}
	return m, m.eng.Update(msg)
}

// Pick records id as the next endpoint and announces the result.
func (m Model) Pick(id string) tea.Cmd {
	p, swapped := m.rng.Pick(id)
	label := m.label(id)

	switch p {
	case selection.PickStart:
		m.eng.SetActive(m.rng.IDs())
		return m.eng.Announce(announce.RangeStart(label))
	case selection.PickEnd:
		m.eng.SetActive(m.rng.IDs())
		start, end := m.rng.Bounds()
		text := announce.RangeEnd(label) + ". " + announce.RangeComplete(m.label(start), m.label(end))
		if swapped {
			text = announce.RangeStart(m.label(start)) + ". " + announce.RangeComplete(m.label(start), m.label(end))
		}
		return m.eng.Announce(text)
	default:
		return m.eng.Announce(announce.DefaultPhrases().Unavailable(label))
	}
}

// SetItems replaces the list. Endpoints that vanished or became disabled
// reset the range.
func (m Model) SetItems(items []item.Item) (tea.Cmd, error) {
	cmd, err := m.eng.SetItems(items)
	if err != nil {
		return nil, err
	}
	m.rng.SetItems(m.eng.Items())
	m.eng.SetActive(m.rng.IDs())
	return cmd, nil
}

func (m Model) label(id string) string {
	it, _ := m.eng.Items().Get(id)
	return it.Title()
}

func (m Model) View() string {
	tree := m.eng.Accessibility()
	keyboard := m.eng.State().KeyboardMode

	var sb strings.Builder
	for _, it := range tree.Items {
		prefix := "  "
		if it.Focused {
			prefix = "> "
		}

		style := styles.InactiveStyle
		switch {
		case it.Disabled:
			style = styles.DisabledStyle
		case it.Selected:
			style = styles.EndpointStyle
		case m.rng.Contains(it.ID):
			style = styles.InRangeStyle
		}
		if it.Focused && keyboard {
			style = style.Inherit(styles.FocusStyle)
		}
		sb.WriteString(prefix + style.Render(it.Label))
		sb.WriteString("\n")
	}

	if start, end := m.rng.Bounds(); start != "" {
		summary := "From " + m.label(start)
		if end != "" {
			summary += " to " + m.label(end)
		}
		sb.WriteString(styles.DescStyle.Render(summary))
		sb.WriteString("\n")
	}
	if live := styles.Live(tree.Live.Text); live != "" {
		sb.WriteString(live)
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.View(m.eng.KeyMap()))
	return sb.String()
}
