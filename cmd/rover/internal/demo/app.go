// Package demo hosts the interactive widget demos behind "rover demo".
package demo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/germanamz/rover/pkg/engine"
	"github.com/germanamz/rover/pkg/widgets/stepper"
	"github.com/germanamz/rover/pkg/widgets/styles"
)

// maxLog bounds the event log shown under the widget.
const maxLog = 6

type keyMap struct {
	Quit  key.Binding
	Leave key.Binding
	About key.Binding
	Next  key.Binding
	Back  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Leave: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "leave/enter widget")),
		About: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "about")),
		Next:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next step")),
		Back:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "previous step")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Leave, k.About, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Next, k.Back}}
}

// App is the top-level model of a demo: one widget, its description and a
// log of the events it published.
type App struct {
	w       Widget
	keys    keyMap
	help    help.Model
	md      *glamour.TermRenderer
	width   int
	outside bool
	about   bool
	log     []string
}

// NewApp wraps w for hosting in a tea.Program.
func NewApp(w Widget) App {
	return App{w: w, keys: defaultKeys(), help: help.New()}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.w.Setup, a.w.Model.Init())
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.help.Width = msg.Width
		a.md = newRenderer(msg.Width)
	case eventMsg:
		a.log = append(a.log, formatEvent(msg.ev))
		if len(a.log) > maxLog {
			a.log = a.log[len(a.log)-maxLog:]
		}
		return a, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			a.w.Engine.Destroy()
			return a, tea.Quit
		case key.Matches(msg, a.keys.Leave):
			a.outside = !a.outside
			if a.outside {
				return a.forward(engine.BlurMsg{Widget: a.w.Engine.ID()})
			}
			return a, nil
		case key.Matches(msg, a.keys.About):
			a.about = !a.about
			return a, nil
		}
		if a.outside {
			return a, nil
		}
		if s, ok := a.w.Model.(stepper.Model); ok {
			switch {
			case key.Matches(msg, a.keys.Next):
				s, cmd := s.Next()
				a.w.Model = s
				return a, cmd
			case key.Matches(msg, a.keys.Back):
				s, cmd := s.Back()
				a.w.Model = s
				return a, cmd
			}
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			a.outside = false
		}
	}
	return a.forward(msg)
}

func (a App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.w.Model.Update(msg)
	a.w.Model = next
	return a, cmd
}

func (a App) View() string {
	var sb strings.Builder

	title := a.w.Kind
	if a.outside {
		title += styles.DescStyle.Render("  (focus outside)")
	}
	sb.WriteString(styles.ActiveStyle.Render(title))
	sb.WriteString("\n\n")
	sb.WriteString(a.w.Model.View())
	sb.WriteString("\n")

	if a.about {
		if desc := a.w.Engine.Description(); desc != "" {
			sb.WriteString("\n")
			sb.WriteString(renderMarkdown(a.md, desc))
			sb.WriteString("\n")
		}
	}

	if len(a.log) > 0 {
		sb.WriteString("\n")
		for _, line := range a.log {
			sb.WriteString(styles.DescStyle.Render(line))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	h := a.help
	_, h.ShowAll = a.w.Model.(stepper.Model)
	sb.WriteString(h.View(a.keys))
	return sb.String()
}

func formatEvent(ev engine.Event) string {
	ts := ev.Timestamp.Format("15:04:05")
	switch d := ev.Data.(type) {
	case engine.FocusData:
		if d.Index < 0 {
			return fmt.Sprintf("%s %s left", ts, ev.Kind)
		}
		return fmt.Sprintf("%s %s %s (%s)", ts, ev.Kind, d.ID, d.Source)
	case engine.SelectionData:
		return fmt.Sprintf("%s %s [%s]", ts, ev.Kind, strings.Join(d.Active, " "))
	case engine.AnnounceData:
		return fmt.Sprintf("%s %s %q", ts, ev.Kind, d.Text)
	case error:
		return fmt.Sprintf("%s %s: %v", ts, ev.Kind, d)
	default:
		return fmt.Sprintf("%s %s", ts, ev.Kind)
	}
}

// Run hosts w in a full-screen program until the user quits or ctx ends.
func Run(ctx context.Context, w Widget) error {
	p := tea.NewProgram(NewApp(w),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	stop := startBridge(ctx, p, w.Engine.Events())
	defer stop()

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
