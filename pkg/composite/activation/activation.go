// Package activation decides whether moving focus also changes the
// selection. Explicit confirms and pointer clicks always activate; the
// policy only governs focus moves.
package activation

import (
	"fmt"

	"github.com/germanamz/rover/pkg/composite/navigation"
)

// Mode is the activation mode of a widget.
type Mode int

const (
	// Automatic selects every item that receives keyboard focus.
	Automatic Mode = iota
	// Manual only moves focus; selection waits for a confirm.
	Manual
)

func (m Mode) String() string {
	if m == Manual {
		return "manual"
	}
	return "automatic"
}

// ParseMode maps a config string. The empty string is Automatic.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "automatic", "auto":
		return Automatic, nil
	case "manual":
		return Manual, nil
	default:
		return Automatic, fmt.Errorf("activation: unknown mode %q", s)
	}
}

// Policy decides whether a focus move selects the newly focused item.
// Implementations must be side-effect free.
type Policy interface {
	SelectOnFocus(src navigation.Source) bool
}

// PolicyFunc adapts a plain function to Policy.
type PolicyFunc func(src navigation.Source) bool

// SelectOnFocus calls the underlying function.
func (f PolicyFunc) SelectOnFocus(src navigation.Source) bool { return f(src) }

type automatic struct{}

// Programmatic moves bypass the policy, so only keyboard moves select.
func (automatic) SelectOnFocus(src navigation.Source) bool {
	return src == navigation.Keyboard
}

type manual struct{}

func (manual) SelectOnFocus(navigation.Source) bool { return false }

// For returns the built-in policy of a mode.
func For(m Mode) Policy {
	if m == Manual {
		return manual{}
	}
	return automatic{}
}
