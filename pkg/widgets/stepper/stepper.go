// Package stepper renders a multi-step wizard on top of an engine.Engine.
// The active item is the current step; steps before it are completed
// unless marked as failed. In linear mode steps beyond the furthest reached
// one are disabled, so they can be neither focused nor selected.
package stepper

import (
	"fmt"
	"maps"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/germanamz/rover/pkg/composite/announce"
	"github.com/germanamz/rover/pkg/composite/item"
	"github.com/germanamz/rover/pkg/composite/navigation"
	"github.com/germanamz/rover/pkg/engine"
	"github.com/germanamz/rover/pkg/widgets/styles"
)

// NewEngine builds an engine with stepper defaults: single mode,
// horizontal orientation and manual activation. The first enabled step is
// current unless cfg supplies a value.
func NewEngine(cfg engine.Config, opts ...engine.Option) (*engine.Engine, error) {
	cfg.Mode = "single"
	if cfg.Orientation == "" {
		cfg.Orientation = "horizontal"
	}
	if cfg.Activation == "" {
		cfg.Activation = "manual"
	}
	if cfg.Value == nil && len(cfg.DefaultValue) == 0 {
		for _, it := range cfg.Items {
			if !it.Disabled {
				cfg.DefaultValue = []string{it.ID}
				break
			}
		}
	}

	phrases := engine.WithPhrases(announce.Phrases{Activated: announce.StepCurrent})
	return engine.New(cfg, append([]engine.Option{phrases}, opts...)...)
}

// Model is the Bubble Tea model of a stepper.
type Model struct {
	eng    *engine.Engine
	help   help.Model
	base   []item.Item
	linear bool
	failed map[string]bool
	// reached is the furthest step index visited.
	reached int
}

// New returns a stepper driven by eng. In linear mode the engine's items
// are re-published with unreached steps disabled.
func New(eng *engine.Engine, linear bool) (Model, tea.Cmd) {
	m := Model{
		eng:    eng,
		help:   help.New(),
		base:   eng.Items().Items(),
		linear: linear,
		failed: make(map[string]bool),
	}
	m.reached = max(m.current(), 0)
	return m, m.relock()
}

// Engine returns the engine driving the widget.
func (m Model) Engine() *engine.Engine { return m.eng }

func (m Model) Init() tea.Cmd { return m.eng.Init() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wm, ok := msg.(tea.WindowSizeMsg); ok {
		m.help.Width = wm.Width
		return m, nil
	}
	cmd := m.eng.Update(msg)
	return m.track(cmd)
}

// Next makes the following enabled step current.
func (m Model) Next() (Model, tea.Cmd) { return m.step(navigation.Next) }

// Back makes the preceding enabled step current.
func (m Model) Back() (Model, tea.Cmd) { return m.step(navigation.Previous) }

func (m Model) step(in navigation.Intent) (Model, tea.Cmd) {
	cur := m.current()
	out := navigation.Resolve(cur, in, navigation.Options{Items: m.eng.Items()})
	if !out.Moved {
		return m, nil
	}
	it, _ := m.eng.Items().At(out.Index)
	var cmds []tea.Cmd
	if m.eng.State().FocusedIndex >= 0 {
		cmds = append(cmds, m.eng.Focus(it.ID))
	}
	cmds = append(cmds, m.eng.Select(it.ID))
	return m.track(tea.Batch(cmds...))
}

// MarkError returns a copy of m with the step flagged as failed, or with
// the flag cleared. m itself is left unchanged.
func (m Model) MarkError(id string, failed bool) Model {
	flags := maps.Clone(m.failed)
	if flags == nil {
		flags = make(map[string]bool)
	}
	if failed {
		flags[id] = true
	} else {
		delete(flags, id)
	}
	m.failed = flags
	return m
}

// StepState resolves the visual state of the step at index i.
func (m Model) StepState(i int) styles.StepState {
	it, ok := m.eng.Items().At(i)
	cur := m.current()
	switch {
	case !ok:
		return styles.StepUpcoming
	case m.failed[it.ID]:
		return styles.StepError
	case i == cur:
		return styles.StepCurrent
	case cur >= 0 && i < cur:
		return styles.StepCompleted
	default:
		return styles.StepUpcoming
	}
}

// track records the furthest step reached and, in linear mode, unlocks the
// step after it.
func (m Model) track(cmd tea.Cmd) (Model, tea.Cmd) {
	if cur := m.current(); cur > m.reached {
		m.reached = cur
		return m, tea.Batch(cmd, m.relock())
	}
	return m, cmd
}

func (m Model) relock() tea.Cmd {
	if !m.linear {
		return nil
	}
	items := make([]item.Item, len(m.base))
	for i, it := range m.base {
		it.Disabled = it.Disabled || i > m.reached+1
		items[i] = it
	}
	cmd, err := m.eng.SetItems(items)
	if err != nil {
		// base is already a valid list.
		panic(err)
	}
	return cmd
}

func (m Model) current() int {
	active := m.eng.State().ActiveIDs
	if len(active) == 0 {
		return -1
	}
	return m.eng.Items().IndexOf(active[0])
}

func (m Model) View() string {
	tree := m.eng.Accessibility()
	keyboard := m.eng.State().KeyboardMode

	parts := make([]string, len(tree.Items))
	for i, it := range tree.Items {
		v := styles.Step(m.StepState(i))
		label := fmt.Sprintf("%s %s", v.Marker, it.Label)
		style := v.Style
		if it.Disabled && m.StepState(i) == styles.StepUpcoming {
			style = styles.DisabledStyle
		}
		if it.Focused && keyboard {
			style = style.Inherit(styles.FocusStyle)
		}
		parts[i] = style.Render(label)
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(parts, styles.DescStyle.Render(" ─ ")))
	sb.WriteString("\n")
	if cur := m.current(); cur >= 0 {
		sb.WriteString(styles.DescStyle.Render(fmt.Sprintf("Step %d of %d", cur+1, len(tree.Items))))
		sb.WriteString("\n")
	}
	if live := styles.Live(tree.Live.Text); live != "" {
		sb.WriteString(live)
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.View(m.eng.KeyMap()))
	return sb.String()
}
