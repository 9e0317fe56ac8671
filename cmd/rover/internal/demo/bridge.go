package demo

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/germanamz/rover/pkg/engine"
)

// sender is the part of *tea.Program the bridge needs.
type sender interface {
	Send(msg tea.Msg)
}

// eventMsg carries an engine event into the Bubble Tea loop.
type eventMsg struct {
	ev engine.Event
}

// startBridge forwards engine events to the program until the returned
// cancel function is called. The goroutine only calls p.Send, never touching
// model state. Cancel waits for it to exit so nothing is sent after return.
func startBridge(ctx context.Context, p sender, events *engine.EventBus) context.CancelFunc {
	bridgeCtx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	sub := events.Subscribe(64)

	wg.Go(func() {
		defer events.Unsubscribe(sub)
		for {
			select {
			case <-bridgeCtx.Done():
				return
			case ev, ok := <-sub.C:
				if !ok {
					return
				}
				p.Send(eventMsg{ev: ev})
			}
		}
	})

	return func() {
		cancel()
		wg.Wait()
	}
}
