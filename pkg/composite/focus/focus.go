// Package focus keeps the logical focused index of a composite widget in
// step with the platform focus target.
//
// Focus is applied in two phases. Move updates the logical index and records
// a pending effect; CommitCmd returns a command whose CommitMsg comes back on
// a later loop turn, after Bubble Tea has rendered the state produced by the
// Move. Commit then applies platform focus, but only if the element exists
// and no newer Move or Detach superseded the request. When the element is not
// rendered yet, Retry redelivers the request on a later turn.
package focus

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/germanamz/rover/pkg/composite/navigation"
)

// Target is the platform side of focus: the rendered elements of a widget.
type Target interface {
	// Has reports whether the element for index currently exists.
	Has(index int) bool
	// Focus moves platform focus to the element for index.
	Focus(index int)
}

// maxCommitAttempts bounds how many loop turns a commit waits for its
// element before the effect is dropped.
const maxCommitAttempts = 10

// CommitMsg asks the owning coordinator to apply its pending focus effect.
type CommitMsg struct {
	Owner string
	Gen   uint64
}

// Coordinator owns the logical focus state of one widget instance.
type Coordinator struct {
	owner    string
	index    int
	keyboard bool
	pending  bool
	gen      uint64
	attempts int
	detached bool
}

// New returns a coordinator with nothing focused. owner tags CommitMsg so
// several widgets can share one program.
func New(owner string) *Coordinator {
	return &Coordinator{owner: owner, index: -1}
}

// Index returns the logical focused index, or -1.
func (c *Coordinator) Index() int { return c.index }

// KeyboardMode reports whether focus was last driven by keys.
func (c *Coordinator) KeyboardMode() bool { return c.keyboard }

// Pending reports whether a platform focus effect awaits commit.
func (c *Coordinator) Pending() bool { return c.pending }

// Detached reports whether Detach was called.
func (c *Coordinator) Detached() bool { return c.detached }

// Move sets the logical index and schedules platform focus. Keyboard moves
// enter keyboard mode, pointer moves leave it, programmatic moves keep it.
// It reports whether the index changed.
func (c *Coordinator) Move(index int, src navigation.Source) bool {
	if c.detached {
		return false
	}

	switch src {
	case navigation.Keyboard:
		c.keyboard = true
	case navigation.Pointer:
		c.keyboard = false
	}

	changed := index != c.index
	c.index = index
	c.gen++
	c.pending = index >= 0
	c.attempts = 0

	return changed
}

// AutoFocus focuses index on first mount.
func (c *Coordinator) AutoFocus(index int) bool {
	if index < 0 {
		return false
	}
	return c.Move(index, navigation.Programmatic)
}

// Blur handles platform focus leaving an item. When the new target is outside
// the widget's item set, keyboard mode ends and the index resets.
func (c *Coordinator) Blur(inside bool) bool {
	if inside || c.detached {
		return false
	}
	changed := c.index != -1 || c.keyboard
	c.Reset()
	c.keyboard = false
	return changed
}

// Reset clears the logical index and drops any pending effect.
func (c *Coordinator) Reset() {
	c.index = -1
	c.pending = false
	c.gen++
}

// CommitCmd returns the follow-up command for a pending effect, or nil.
func (c *Coordinator) CommitCmd() tea.Cmd {
	if !c.pending || c.detached {
		return nil
	}
	msg := CommitMsg{Owner: c.owner, Gen: c.gen}
	return func() tea.Msg { return msg }
}

// Commit applies the pending effect to t. Stale, foreign or detached
// messages are ignored; if the element does not exist yet the effect stays
// pending and nothing is focused.
func (c *Coordinator) Commit(msg CommitMsg, t Target) bool {
	if c.detached || !c.pending || msg.Owner != c.owner || msg.Gen != c.gen {
		return false
	}
	if t == nil || !t.Has(c.index) {
		return false
	}
	c.pending = false
	t.Focus(c.index)
	return true
}

// Retry returns a command that delivers msg again on the next loop turn. It
// returns nil when msg is stale or already applied. Once maxCommitAttempts
// turns passed without the element appearing the effect is dropped and
// dropped reports true.
func (c *Coordinator) Retry(msg CommitMsg) (cmd tea.Cmd, dropped bool) {
	if c.detached || !c.pending || msg.Owner != c.owner || msg.Gen != c.gen {
		return nil, false
	}
	if c.attempts >= maxCommitAttempts {
		c.pending = false
		return nil, true
	}
	c.attempts++
	return func() tea.Msg { return msg }, false
}

// Detach drops pending effects and ignores further moves. Called on destroy.
func (c *Coordinator) Detach() {
	c.detached = true
	c.pending = false
	c.gen++
}
