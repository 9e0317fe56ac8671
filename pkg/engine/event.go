package engine

import (
	"sync"
	"time"

	"github.com/germanamz/rover/pkg/composite/navigation"
)

// EventKind identifies the type of engine event.
type EventKind string

const (
	EventFocusChanged     EventKind = "focus_changed"
	EventSelectionChanged EventKind = "selection_changed"
	EventChangeRequested  EventKind = "change_requested"
	EventAnnounced        EventKind = "announced"
	EventDegraded         EventKind = "degraded"
	EventModeSwitch       EventKind = "mode_switch"
	EventDestroyed        EventKind = "destroyed"
)

// Event is an immutable notification of engine activity. Data holds one of
// FocusData, SelectionData, AnnounceData or an error for EventModeSwitch.
type Event struct {
	Kind      EventKind
	Widget    string
	Timestamp time.Time
	Data      any
}

// FocusData accompanies EventFocusChanged. Index is -1 when focus left the
// widget.
type FocusData struct {
	Index  int
	ID     string
	Source navigation.Source
}

// SelectionData accompanies EventSelectionChanged, EventChangeRequested and
// EventDegraded.
type SelectionData struct {
	Active []string
}

// AnnounceData accompanies EventAnnounced.
type AnnounceData struct {
	Text string
}

// Subscription receives events from an EventBus.
type Subscription struct {
	C  <-chan Event
	ch chan Event
}

// EventBus fans out events to all active subscribers. It is safe for
// concurrent use and may be shared by several engines.
type EventBus struct {
	mu   sync.RWMutex
	subs map[*Subscription]struct{}
}

// NewEventBus creates an EventBus ready for use.
func NewEventBus() *EventBus {
	return &EventBus{
		subs: make(map[*Subscription]struct{}),
	}
}

// Subscribe creates a new subscription with the given channel buffer size.
// The caller should read from sub.C and eventually call Unsubscribe.
func (b *EventBus) Subscribe(bufSize int) *Subscription {
	ch := make(chan Event, bufSize)
	sub := &Subscription{C: ch, ch: ch}

	b.mu.Lock()
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	return sub
}

// Unsubscribe removes the subscription and closes its channel.
func (b *EventBus) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[sub]; ok {
		delete(b.subs, sub)
		close(sub.ch)
	}
}

// Publish sends an event to all subscribers. A full subscriber buffer drops
// the event for that subscriber so Update never blocks on an observer.
func (b *EventBus) Publish(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.subs {
		select {
		case sub.ch <- e:
		default:
		}
	}
}
