// Package composite holds the building blocks of the interaction engine for
// composite widgets such as tab lists, accordions and carousels.
//
// It is organized into sub-packages:
//   - [github.com/germanamz/rover/pkg/composite/item]: ordered item lists with stable ids
//   - [github.com/germanamz/rover/pkg/composite/selection]: single, multi and range selection
//   - [github.com/germanamz/rover/pkg/composite/navigation]: pure focus movement and key bindings
//   - [github.com/germanamz/rover/pkg/composite/activation]: automatic and manual activation
//   - [github.com/germanamz/rover/pkg/composite/focus]: logical focus and two-phase platform commit
//   - [github.com/germanamz/rover/pkg/composite/announce]: live region messages with a clear timer
//   - [github.com/germanamz/rover/pkg/composite/controlled]: controlled and uncontrolled values
//
// The packages hold no I/O. [github.com/germanamz/rover/pkg/engine] wires
// them into one engine per widget.
package composite
