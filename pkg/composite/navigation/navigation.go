// Package navigation computes where focus goes next inside a composite
// widget. Resolve is a pure function of the item list, the current position
// and an Intent; disabled items are skipped and wrapping only happens when
// Circular is set.
package navigation

import (
	"fmt"

	"github.com/germanamz/rover/pkg/composite/item"
)

// Kind enumerates intents.
type Kind int

const (
	KindNone Kind = iota
	KindNext
	KindPrevious
	KindFirst
	KindLast
	KindShortcut
	// KindConfirm activates the focused item. Resolve treats it as a no-op.
	KindConfirm
)

// Intent is a directional or positional request. N is the 1-indexed
// shortcut number for KindShortcut.
type Intent struct {
	Kind Kind
	N    int
}

var (
	Next     = Intent{Kind: KindNext}
	Previous = Intent{Kind: KindPrevious}
	First    = Intent{Kind: KindFirst}
	Last     = Intent{Kind: KindLast}
	Confirm  = Intent{Kind: KindConfirm}
)

// Shortcut returns the numeric jump intent for n (1-indexed).
func Shortcut(n int) Intent { return Intent{Kind: KindShortcut, N: n} }

func (in Intent) String() string {
	switch in.Kind {
	case KindNext:
		return "next"
	case KindPrevious:
		return "previous"
	case KindFirst:
		return "first"
	case KindLast:
		return "last"
	case KindShortcut:
		return fmt.Sprintf("shortcut(%d)", in.N)
	case KindConfirm:
		return "confirm"
	default:
		return "none"
	}
}

// Orientation decides which arrow keys map to forward and backward.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseOrientation maps a config string. The empty string is Horizontal.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "", "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("navigation: unknown orientation %q", s)
	}
}

// Source tells where a focus or activation request came from.
type Source int

const (
	Keyboard Source = iota
	Pointer
	Programmatic
)

func (s Source) String() string {
	switch s {
	case Pointer:
		return "pointer"
	case Programmatic:
		return "programmatic"
	default:
		return "keyboard"
	}
}

// Options configure Resolve.
type Options struct {
	Circular    bool
	Orientation Orientation
	Items       item.List
}

// Outcome is the result of resolving an intent.
type Outcome struct {
	Index int
	// Moved is set when Index differs from the (clamped) current index.
	Moved bool
	// Boundary is set when a non-circular walk ran off either end.
	Boundary bool
	// Rejected is set when a shortcut targets a disabled item. Target holds
	// that item's position.
	Rejected bool
	Target   int
}

// NextIndex returns only the resulting index of Resolve.
func NextIndex(current int, in Intent, opts Options) int {
	return Resolve(current, in, opts).Index
}

// Resolve computes the next focusable index. Out-of-range current values are
// clamped into [-1, len-1]; -1 walks from before the first item (Next) or
// after the last one (Previous).
func Resolve(current int, in Intent, opts Options) Outcome {
	n := opts.Items.Len()
	cur := clamp(current, -1, n-1)
	out := Outcome{Index: cur, Target: -1}

	enabled := opts.Items.EnabledIndices()
	if len(enabled) == 0 {
		out.Index = -1
		return out
	}

	switch in.Kind {
	case KindFirst:
		out.Index = enabled[0]
	case KindLast:
		out.Index = enabled[len(enabled)-1]
	case KindNext:
		out.Index, out.Boundary = walk(opts.Items, cur, 1, opts.Circular, enabled)
	case KindPrevious:
		out.Index, out.Boundary = walk(opts.Items, cur, -1, opts.Circular, enabled)
	case KindShortcut:
		target := in.N - 1
		if target < 0 || target >= n {
			return out
		}
		if !opts.Items.Enabled(target) {
			out.Rejected = true
			out.Target = target
			return out
		}
		out.Index = target
	default:
		return out
	}

	out.Moved = out.Index != cur
	return out
}

func walk(items item.List, cur, step int, circular bool, enabled []int) (int, bool) {
	i := cur + step
	if cur < 0 && step < 0 {
		i = items.Len() - 1
	}

	for ; i >= 0 && i < items.Len(); i += step {
		if items.Enabled(i) {
			return i, false
		}
	}

	if circular {
		if step > 0 {
			return enabled[0], false
		}
		return enabled[len(enabled)-1], false
	}

	return cur, true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
