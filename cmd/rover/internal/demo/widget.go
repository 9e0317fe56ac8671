package demo

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/germanamz/rover/pkg/composite/item"
	"github.com/germanamz/rover/pkg/engine"
	"github.com/germanamz/rover/pkg/widgets/accordion"
	"github.com/germanamz/rover/pkg/widgets/carousel"
	"github.com/germanamz/rover/pkg/widgets/rangepick"
	"github.com/germanamz/rover/pkg/widgets/stepper"
	"github.com/germanamz/rover/pkg/widgets/tabs"
)

// headerHeight is the number of lines App draws above the widget.
const headerHeight = 2

// Options tune how Build wires a widget.
type Options struct {
	Logger *slog.Logger
	Events *engine.EventBus
	// Linear locks stepper steps until they are reached.
	Linear bool
}

// Widget is a built widget ready to be hosted by App.
type Widget struct {
	Kind   string
	Model  tea.Model
	Engine *engine.Engine
	// Setup is returned from App.Init next to the widget's own Init.
	Setup tea.Cmd
}

// Build creates the widget of the given kind from cfg.
func Build(kind string, cfg engine.Config, opts Options) (Widget, error) {
	var eopts []engine.Option
	if opts.Logger != nil {
		eopts = append(eopts, engine.WithLogger(opts.Logger.With("kind", kind)))
	}
	if opts.Events != nil {
		eopts = append(eopts, engine.WithEventBus(opts.Events))
	}

	w := Widget{Kind: kind}
	switch kind {
	case "tabs":
		eng, err := tabs.NewEngine(cfg, eopts...)
		if err != nil {
			return w, err
		}
		w.Engine, w.Model = eng, tabs.New(eng, payload).SetOrigin(0, headerHeight)
	case "accordion":
		eng, err := accordion.NewEngine(cfg, eopts...)
		if err != nil {
			return w, err
		}
		w.Engine, w.Model = eng, accordion.New(eng, payload).SetOrigin(0, headerHeight)
	case "stepper":
		eng, err := stepper.NewEngine(cfg, eopts...)
		if err != nil {
			return w, err
		}
		m, setup := stepper.New(eng, opts.Linear)
		w.Engine, w.Model, w.Setup = eng, m, setup
	case "carousel":
		eng, err := carousel.NewEngine(cfg, eopts...)
		if err != nil {
			return w, err
		}
		w.Engine, w.Model = eng, carousel.New(eng, payload)
	case "rangepick":
		eng, err := rangepick.NewEngine(cfg, eopts...)
		if err != nil {
			return w, err
		}
		w.Engine, w.Model = eng, rangepick.New(eng).SetOrigin(0, headerHeight)
	default:
		return w, fmt.Errorf("demo: unknown widget %q (want one of %v)", kind, Kinds)
	}
	return w, nil
}

// payload renders an item's string payload, falling back to its title.
func payload(it item.Item, _ int) string {
	if s, ok := it.Payload.(string); ok && s != "" {
		return s
	}
	return it.Title()
}
