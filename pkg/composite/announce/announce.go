// Package announce implements the live-region channel of a composite widget:
// short messages for assistive technology that clear themselves after a
// bounded delay.
//
// A Channel is Idle or Announcing. Announce replaces the current message and
// restarts the single clear timer; messages never stack. The timer runs as a
// Bubble Tea command that can be canceled, and Destroy cancels it
// unconditionally.
package announce

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDelay is how long a message stays visible.
const DefaultDelay = time.Second

// State of a Channel.
type State int

const (
	Idle State = iota
	Announcing
)

func (s State) String() string {
	if s == Announcing {
		return "announcing"
	}
	return "idle"
}

// Politeness of the live region.
type Politeness int

const (
	Polite Politeness = iota
	Assertive
	Off
)

func (p Politeness) String() string {
	switch p {
	case Assertive:
		return "assertive"
	case Off:
		return "off"
	default:
		return "polite"
	}
}

// ParsePoliteness maps a config string. The empty string is Polite.
func ParsePoliteness(s string) (Politeness, error) {
	switch s {
	case "", "polite":
		return Polite, nil
	case "assertive":
		return Assertive, nil
	case "off":
		return Off, nil
	default:
		return Polite, fmt.Errorf("announce: unknown politeness %q", s)
	}
}

// ClearMsg is delivered when a message's delay has elapsed.
type ClearMsg struct {
	Channel string
	Gen     uint64
}

// Channel is the announcement state of one widget instance. It is not safe
// for concurrent use; the clear command only sends a message back.
type Channel struct {
	id         string
	delay      time.Duration
	politeness Politeness

	state     State
	message   string
	gen       uint64
	cancel    context.CancelFunc
	destroyed bool
}

// New returns an idle channel. A non-positive delay uses DefaultDelay.
func New(id string, delay time.Duration, p Politeness) *Channel {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Channel{id: id, delay: delay, politeness: p}
}

// State returns Idle or Announcing.
func (c *Channel) State() State { return c.state }

// Message returns the text the live region should carry, empty when Idle.
func (c *Channel) Message() string { return c.message }

// Politeness returns the live region level.
func (c *Channel) Politeness() Politeness { return c.politeness }

// Delay returns how long a message stays before it is cleared.
func (c *Channel) Delay() time.Duration { return c.delay }

// Destroyed reports whether Destroy was called.
func (c *Channel) Destroyed() bool { return c.destroyed }

// TimerPending reports whether a clear timer is still armed.
func (c *Channel) TimerPending() bool { return c.cancel != nil }

// SetPoliteness changes the live region level for later messages.
func (c *Channel) SetPoliteness(p Politeness) { c.politeness = p }

// LiveText is what the live region renders. Politeness Off keeps the state
// machine running but renders nothing.
func (c *Channel) LiveText() string {
	if c.politeness == Off {
		return ""
	}
	return c.message
}

// Announce shows text and returns the command that clears it. Empty text and
// destroyed channels are ignored.
func (c *Channel) Announce(text string) tea.Cmd {
	if c.destroyed || text == "" {
		return nil
	}

	c.stop()
	c.gen++
	c.message = text
	c.state = Announcing

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	msg := ClearMsg{Channel: c.id, Gen: c.gen}
	delay := c.delay

	return func() tea.Msg {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-timer.C:
			return msg
		case <-ctx.Done():
			return nil
		}
	}
}

// HandleClear returns the channel to Idle if msg belongs to the current
// message.
func (c *Channel) HandleClear(msg ClearMsg) bool {
	if c.destroyed || msg.Channel != c.id || msg.Gen != c.gen || c.state == Idle {
		return false
	}
	c.stop()
	c.message = ""
	c.state = Idle
	return true
}

// Destroy cancels the pending timer and silences the channel for good.
func (c *Channel) Destroy() {
	c.stop()
	c.destroyed = true
	c.message = ""
	c.state = Idle
}

func (c *Channel) stop() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
