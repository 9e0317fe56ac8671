// Package item defines the ordered, id-addressed item sequence that every
// composite widget navigates. Identity is by ID; the index is derived from
// position and may shift when the list is replaced.
package item

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyID is returned when an item has no ID.
	ErrEmptyID = errors.New("item: empty id")
	// ErrDuplicateID is returned when two items share an ID.
	ErrDuplicateID = errors.New("item: duplicate id")
)

// Item is a single selectable entry of a composite widget.
type Item struct {
	ID       string `yaml:"id"`
	Label    string `yaml:"label,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
	Payload  any    `yaml:"payload,omitempty"`
	Index    int    `yaml:"-"` // Derived from position by NewList.
}

// Title returns the label used for rendering and announcements.
func (it Item) Title() string {
	if it.Label != "" {
		return it.Label
	}
	return it.ID
}

// List is an immutable ordered sequence of items. The zero value is an empty
// list.
type List struct {
	items []Item
	index map[string]int
}

// NewList validates ids and derives positions.
func NewList(items []Item) (List, error) {
	l := List{
		items: make([]Item, len(items)),
		index: make(map[string]int, len(items)),
	}

	for i, it := range items {
		if it.ID == "" {
			return List{}, fmt.Errorf("%w at position %d", ErrEmptyID, i)
		}
		if _, dup := l.index[it.ID]; dup {
			return List{}, fmt.Errorf("%w %q", ErrDuplicateID, it.ID)
		}
		it.Index = i
		l.items[i] = it
		l.index[it.ID] = i
	}

	return l, nil
}

// MustList is like NewList but panics on invalid input.
func MustList(items ...Item) List {
	l, err := NewList(items)
	if err != nil {
		panic(err)
	}
	return l
}

// Len returns the number of items.
func (l List) Len() int { return len(l.items) }

// At returns the item at position i.
func (l List) At(i int) (Item, bool) {
	if i < 0 || i >= len(l.items) {
		return Item{}, false
	}
	return l.items[i], true
}

// Get returns the item with the given id.
func (l List) Get(id string) (Item, bool) {
	i, ok := l.index[id]
	if !ok {
		return Item{}, false
	}
	return l.items[i], true
}

// IndexOf returns the position of id, or -1.
func (l List) IndexOf(id string) int {
	if i, ok := l.index[id]; ok {
		return i
	}
	return -1
}

// Enabled reports whether position i holds an enabled item.
func (l List) Enabled(i int) bool {
	it, ok := l.At(i)
	return ok && !it.Disabled
}

// EnabledID reports whether id names an enabled item.
func (l List) EnabledID(id string) bool {
	return l.Enabled(l.IndexOf(id))
}

// EnabledIndices returns the positions of enabled items in order.
func (l List) EnabledIndices() []int {
	out := make([]int, 0, len(l.items))
	for i, it := range l.items {
		if !it.Disabled {
			out = append(out, i)
		}
	}
	return out
}

// FirstEnabled returns the smallest enabled position, or -1.
func (l List) FirstEnabled() int {
	for i, it := range l.items {
		if !it.Disabled {
			return i
		}
	}
	return -1
}

// LastEnabled returns the largest enabled position, or -1.
func (l List) LastEnabled() int {
	for i := len(l.items) - 1; i >= 0; i-- {
		if !l.items[i].Disabled {
			return i
		}
	}
	return -1
}

// Items returns a copy of the underlying items.
func (l List) Items() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}
