package focus

// Ring is the default Target for terminal widgets: it records which element
// draws the focus ring. Elements exist for indices below the mounted size.
//
// Terminal adapters redraw every item on each frame, so Ring assumes all
// items are rendered as soon as they are in the list and the engine mounts
// it when the list changes. Targets whose elements appear during rendering
// should implement Has truthfully instead; commits are retried until the
// element exists.
type Ring struct {
	size    int
	focused int
}

// NewRing returns a ring with no mounted elements.
func NewRing() *Ring {
	return &Ring{focused: -1}
}

// Mount declares that n elements are rendered.
func (r *Ring) Mount(n int) {
	r.size = n
	if r.focused >= n {
		r.focused = -1
	}
}

// Has implements Target.
func (r *Ring) Has(index int) bool { return index >= 0 && index < r.size }

// Focus implements Target.
func (r *Ring) Focus(index int) { r.focused = index }

// Clear removes the ring from every element.
func (r *Ring) Clear() { r.focused = -1 }

// Focused returns the element holding platform focus, or -1.
func (r *Ring) Focused() int { return r.focused }
