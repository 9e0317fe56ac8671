package engine

import (
	"github.com/germanamz/rover/pkg/composite/announce"
	"github.com/germanamz/rover/pkg/composite/navigation"
	"github.com/germanamz/rover/pkg/composite/selection"
)

// Tree is the accessibility output of one widget: what a renderer hands to
// assistive technology.
type Tree struct {
	ID              string
	Label           string
	DescribedBy     string
	Orientation     navigation.Orientation
	Multiselectable bool
	Items           []ItemAttrs
	Live            LiveRegion
	Description     DescriptionRegion
}

// ItemAttrs are the per-item attributes. Selected doubles as the
// expanded/current flag of accordions and steppers.
type ItemAttrs struct {
	ID         string
	ElementID  string
	ControlsID string
	Label      string
	Selected   bool
	Disabled   bool
	Focused    bool
	// TabStop marks the one item reachable by the default tab order.
	TabStop bool
}

// LiveRegion is the visually hidden announcement region. Text is empty when
// politeness is off or nothing is being announced.
type LiveRegion struct {
	ID         string
	Text       string
	Politeness announce.Politeness
}

// DescriptionRegion is the visually hidden region referenced by DescribedBy.
type DescriptionRegion struct {
	ID   string
	Text string
}

// Accessibility builds the accessibility tree from the current state.
func (e *Engine) Accessibility() Tree {
	t := Tree{
		ID:              e.id,
		Label:           e.cfg.AriaLabel,
		Orientation:     e.set.orientation,
		Multiselectable: e.sel.Mode() == selection.Multi,
		Live: LiveRegion{
			ID:         e.id + "-live",
			Text:       e.channel.LiveText(),
			Politeness: e.channel.Politeness(),
		},
	}

	if e.cfg.Description != "" {
		t.Description = DescriptionRegion{ID: e.id + "-desc", Text: e.cfg.Description}
		t.DescribedBy = t.Description.ID
	}

	stop := e.tabStop()
	focused := e.focus.Index()
	for i, it := range e.sel.Items().Items() {
		t.Items = append(t.Items, ItemAttrs{
			ID:         it.ID,
			ElementID:  e.ElementID(it.ID),
			ControlsID: e.PanelID(it.ID),
			Label:      it.Title(),
			Selected:   e.sel.IsSelected(it.ID),
			Disabled:   it.Disabled,
			Focused:    i == focused,
			TabStop:    i == stop,
		})
	}

	return t
}

// ElementID returns the element id of item id.
func (e *Engine) ElementID(id string) string { return e.id + "-item-" + id }

// PanelID returns the id of the content region item id controls.
func (e *Engine) PanelID(id string) string { return e.id + "-panel-" + id }
