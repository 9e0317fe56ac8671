package selection

import "github.com/germanamz/rover/pkg/composite/item"

// Pick reports how Range.Pick interpreted an id.
type Pick int

const (
	PickRejected Pick = iota
	PickStart
	PickEnd
)

// Range selects a contiguous span by two picks. The first pick sets the
// start, the second the end; a third pick starts over. When the second pick
// precedes the first in list order the endpoints are swapped.
type Range struct {
	items      item.List
	start, end string
}

// NewRange returns an empty range over items.
func NewRange(items item.List) *Range {
	return &Range{items: items}
}

// Pick records id as the next endpoint.
func (r *Range) Pick(id string) (p Pick, swapped bool) {
	if !r.items.EnabledID(id) {
		return PickRejected, false
	}

	if r.start == "" || r.end != "" {
		r.start, r.end = id, ""
		return PickStart, false
	}

	if r.items.IndexOf(id) < r.items.IndexOf(r.start) {
		r.start, r.end = id, r.start
		return PickEnd, true
	}

	r.end = id
	return PickEnd, false
}

// Bounds returns the endpoints; either may be empty.
func (r *Range) Bounds() (start, end string) { return r.start, r.end }

// Complete reports whether both endpoints are set.
func (r *Range) Complete() bool { return r.start != "" && r.end != "" }

// IDs returns the set endpoints in order.
func (r *Range) IDs() []string {
	switch {
	case r.start == "":
		return nil
	case r.end == "" || r.end == r.start:
		return []string{r.start}
	default:
		return []string{r.start, r.end}
	}
}

// Contains reports whether id lies within a complete range, inclusive.
func (r *Range) Contains(id string) bool {
	if !r.Complete() {
		return id != "" && id == r.start
	}
	i := r.items.IndexOf(id)
	return i >= r.items.IndexOf(r.start) && i <= r.items.IndexOf(r.end)
}

// Reset clears both endpoints.
func (r *Range) Reset() { r.start, r.end = "", "" }

// SetItems swaps the item list, dropping endpoints that vanished or became
// disabled.
func (r *Range) SetItems(items item.List) {
	r.items = items
	if !items.EnabledID(r.start) || (r.end != "" && !items.EnabledID(r.end)) {
		r.Reset()
	}
}
