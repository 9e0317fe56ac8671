// Package carousel shows one slide at a time on top of an engine.Engine,
// with a dot paginator below it. Slides wrap around by default.
package carousel

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/germanamz/rover/pkg/composite/announce"
	"github.com/germanamz/rover/pkg/composite/item"
	"github.com/germanamz/rover/pkg/engine"
	"github.com/germanamz/rover/pkg/widgets/styles"
)

// SlideFunc renders one slide.
type SlideFunc func(it item.Item, width int) string

// NewEngine builds an engine with carousel defaults: single mode,
// horizontal, automatic activation, first slide showing. Carousels always
// wrap.
func NewEngine(cfg engine.Config, opts ...engine.Option) (*engine.Engine, error) {
	cfg.Mode = "single"
	cfg.Orientation = "horizontal"
	cfg.Circular = true
	if cfg.Activation == "" {
		cfg.Activation = "automatic"
	}
	if cfg.Value == nil && len(cfg.DefaultValue) == 0 {
		for _, it := range cfg.Items {
			if !it.Disabled {
				cfg.DefaultValue = []string{it.ID}
				break
			}
		}
	}

	phrases := engine.WithPhrases(announce.Phrases{Activated: announce.Slide})
	return engine.New(cfg, append([]engine.Option{phrases}, opts...)...)
}

// Model is the Bubble Tea model of a carousel.
type Model struct {
	eng   *engine.Engine
	slide SlideFunc
	pages paginator.Model
	help  help.Model
	width int
}

// New returns a carousel driven by eng.
func New(eng *engine.Engine, slide SlideFunc) Model {
	if slide == nil {
		slide = func(it item.Item, _ int) string { return it.Title() }
	}
	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = styles.ActiveStyle.Render("●")
	p.InactiveDot = styles.DescStyle.Render("○")
	p.SetTotalPages(eng.Items().Len())

	return Model{eng: eng, slide: slide, pages: p, help: help.New(), width: 60}
}

// Engine returns the engine driving the widget.
func (m Model) Engine() *engine.Engine { return m.eng }

func (m Model) Init() tea.Cmd { return m.eng.Init() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wm.Width
		m.help.Width = wm.Width
		return m, nil
	}
	return m, m.eng.Update(msg)
}

// Page returns the position of the showing slide, or -1.
func (m Model) Page() int {
	active := m.eng.State().ActiveIDs
	if len(active) == 0 {
		return -1
	}
	return m.eng.Items().IndexOf(active[0])
}

func (m Model) View() string {
	var sb strings.Builder

	width := max(m.width-4, 10)
	page := m.Page()
	if it, ok := m.eng.Items().At(page); ok {
		sb.WriteString(styles.PanelStyle.Width(width).Render(m.slide(it, width)))
		sb.WriteString("\n")
	}

	pages := m.pages
	pages.SetTotalPages(m.eng.Items().Len())
	pages.Page = max(page, 0)
	sb.WriteString(pages.View())
	sb.WriteString("\n")

	if live := styles.Live(m.eng.Accessibility().Live.Text); live != "" {
		sb.WriteString(live)
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.View(m.eng.KeyMap()))
	return sb.String()
}
