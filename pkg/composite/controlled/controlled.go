// Package controlled reconciles a caller-supplied current value with the
// internal selection. In controlled mode the supplied value is authoritative
// and internal changes are only proposed through OnChange; in uncontrolled
// mode the selection owns its state and the bridge is a pass-through.
package controlled

import (
	"errors"
	"fmt"
	"slices"

	"github.com/germanamz/rover/pkg/composite/selection"
)

// ErrModeSwitch flags a widget that changed between controlled and
// uncontrolled after construction.
var ErrModeSwitch = errors.New("controlled: switching between controlled and uncontrolled mode is unsupported")

// Mode is fixed for the lifetime of a Bridge.
type Mode int

const (
	Uncontrolled Mode = iota
	Controlled
)

func (m Mode) String() string {
	if m == Controlled {
		return "controlled"
	}
	return "uncontrolled"
}

// Value is the caller's current value for one update cycle. The zero Value
// means "not supplied".
type Value struct {
	ids []string
	set bool
}

// ValueOf returns a supplied value. ValueOf() with no ids means "nothing
// active" and is still a supplied value.
func ValueOf(ids ...string) Value {
	return Value{ids: slices.Clone(ids), set: true}
}

// IsSet reports whether the caller supplied the value.
func (v Value) IsSet() bool { return v.set }

// IDs returns a copy of the supplied ids.
func (v Value) IDs() []string { return slices.Clone(v.ids) }

// Bridge sits between widget operations and the selection model.
type Bridge struct {
	mode     Mode
	model    *selection.Model
	onChange func(ids []string)
	value    []string
	degraded bool
}

// New fixes the mode from initial: supplied means controlled. In
// uncontrolled mode the model is seeded from defaults.
func New(model *selection.Model, initial Value, defaults []string, onChange func(ids []string)) *Bridge {
	b := &Bridge{model: model, onChange: onChange}
	if initial.IsSet() {
		b.mode = Controlled
		b.value = initial.IDs()
		b.degraded = b.reconcile(b.value)
		return b
	}
	b.reconcile(defaults)
	return b
}

// Mode returns the mode fixed at construction.
func (b *Bridge) Mode() Mode { return b.mode }

// Degraded reports whether the last controlled value referenced unknown or
// disabled ids and a fallback was applied.
func (b *Bridge) Degraded() bool { return b.degraded }

// Sync is called once per update cycle with the caller's value. A value
// whose presence disagrees with the mode yields ErrModeSwitch and leaves the
// state untouched.
func (b *Bridge) Sync(v Value) error {
	switch {
	case v.IsSet() && b.mode == Uncontrolled:
		return fmt.Errorf("%w: value supplied to an uncontrolled widget", ErrModeSwitch)
	case !v.IsSet() && b.mode == Controlled:
		return fmt.Errorf("%w: value omitted from a controlled widget", ErrModeSwitch)
	case b.mode == Uncontrolled:
		return nil
	}

	b.value = v.IDs()
	b.degraded = b.reconcile(b.value)
	return nil
}

// Refresh re-derives the selection after the item list changed. Controlled
// widgets re-apply the last supplied value.
func (b *Bridge) Refresh() {
	if b.mode == Controlled {
		b.degraded = b.reconcile(b.value)
	}
}

// Propose surfaces a selection change. OnChange always fires; the change is
// applied only in uncontrolled mode.
func (b *Bridge) Propose(next []string) (applied bool) {
	if b.onChange != nil {
		b.onChange(slices.Clone(next))
	}
	if b.mode == Controlled {
		return false
	}
	b.model.Replace(next)
	return true
}

// reconcile replaces the model's selection with ids. Unknown or disabled ids
// are dropped; a value left empty by that, in either mode, falls back to the
// first enabled item.
func (b *Bridge) reconcile(ids []string) (degraded bool) {
	dropped := b.model.Replace(ids)
	degraded = len(dropped) > 0

	if len(b.model.Active()) == 0 && len(ids) > 0 {
		if first, ok := b.model.Items().At(b.model.FirstEnabledIndex()); ok {
			b.model.Select(first.ID)
		}
	}

	return degraded
}
