// Package selection holds the set of active item ids of a composite widget.
// A Model runs in single mode (tabs, steppers, carousels, single accordions)
// or multi mode (multi accordions). Disabled ids are never active.
package selection

import (
	"fmt"
	"sort"

	"github.com/germanamz/rover/pkg/composite/item"
)

// Mode selects single or multi selection.
type Mode int

const (
	Single Mode = iota
	Multi
)

func (m Mode) String() string {
	if m == Multi {
		return "multi"
	}
	return "single"
}

// ParseMode maps a config string to a Mode. The empty string is Single.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "single":
		return Single, nil
	case "multi", "multiple":
		return Multi, nil
	default:
		return Single, fmt.Errorf("selection: unknown mode %q", s)
	}
}

// Result reports what a mutation did.
type Result int

const (
	Unchanged Result = iota
	Applied
	// Rejected means the id is unknown or disabled.
	Rejected
	// Unsupported means the operation does not exist in this mode.
	Unsupported
)

func (r Result) String() string {
	switch r {
	case Applied:
		return "applied"
	case Rejected:
		return "rejected"
	case Unsupported:
		return "unsupported"
	default:
		return "unchanged"
	}
}

// Model is the selection state of one widget instance. It is not safe for
// concurrent use.
type Model struct {
	mode   Mode
	items  item.List
	active map[string]struct{}
}

// New returns an empty selection over items.
func New(mode Mode, items item.List) *Model {
	return &Model{
		mode:   mode,
		items:  items,
		active: make(map[string]struct{}),
	}
}

// Clone returns an independent copy. Used to preview a mutation without
// applying it.
func (m *Model) Clone() *Model {
	cp := New(m.mode, m.items)
	for id := range m.active {
		cp.active[id] = struct{}{}
	}
	return cp
}

// Mode returns Single or Multi.
func (m *Model) Mode() Mode { return m.mode }

// Items returns the current item list.
func (m *Model) Items() item.List { return m.items }

// IsSelected reports whether id is active.
func (m *Model) IsSelected(id string) bool {
	_, ok := m.active[id]
	return ok
}

// IsEnabled reports whether id exists and is not disabled.
func (m *Model) IsEnabled(id string) bool {
	return m.items.EnabledID(id)
}

// Select activates id. In single mode the previous id is deselected.
func (m *Model) Select(id string) Result {
	if !m.IsEnabled(id) {
		return Rejected
	}
	if m.IsSelected(id) && (m.mode == Multi || len(m.active) == 1) {
		return Unchanged
	}
	if m.mode == Single {
		clear(m.active)
	}
	m.active[id] = struct{}{}
	return Applied
}

// Deselect removes id from the active set.
func (m *Model) Deselect(id string) Result {
	if !m.IsSelected(id) {
		return Unchanged
	}
	delete(m.active, id)
	return Applied
}

// Toggle flips id. Multi mode only.
func (m *Model) Toggle(id string) Result {
	if m.mode != Multi {
		return Unsupported
	}
	if m.IsSelected(id) {
		return m.Deselect(id)
	}
	return m.Select(id)
}

// Clear deselects everything.
func (m *Model) Clear() {
	clear(m.active)
}

// Active returns the active ids ordered by item position.
func (m *Model) Active() []string {
	out := make([]string, 0, len(m.active))
	for id := range m.active {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool {
		return m.items.IndexOf(out[i]) < m.items.IndexOf(out[j])
	})
	return out
}

// Replace sets the active ids wholesale. Unknown and disabled ids are
// dropped; in single mode only the first valid id is kept.
func (m *Model) Replace(ids []string) (dropped []string) {
	clear(m.active)
	for _, id := range ids {
		if !m.IsEnabled(id) {
			dropped = append(dropped, id)
			continue
		}
		if m.mode == Single && len(m.active) == 1 {
			if !m.IsSelected(id) {
				dropped = append(dropped, id)
			}
			continue
		}
		m.active[id] = struct{}{}
	}
	return dropped
}

// SetItems swaps the item list and prunes ids that vanished or became
// disabled.
func (m *Model) SetItems(items item.List) (dropped []string) {
	m.items = items
	for id := range m.active {
		if !items.EnabledID(id) {
			delete(m.active, id)
			dropped = append(dropped, id)
		}
	}
	sort.Strings(dropped)
	return dropped
}

// FirstEnabledIndex returns the smallest enabled position, or -1.
func (m *Model) FirstEnabledIndex() int { return m.items.FirstEnabled() }

// LastEnabledIndex returns the largest enabled position, or -1.
func (m *Model) LastEnabledIndex() int { return m.items.LastEnabled() }
