package platform

import (
	"sync"
	"time"

	"pomobar/internal/core/phasetimer"
)

// Ticker is the production tick source, one goroutine per subscription.
type Ticker struct{}

// NewTicker creates a Ticker.
func NewTicker() *Ticker {
	return &Ticker{}
}

// Subscribe delivers fn once per interval until the subscription is released.
func (*Ticker) Subscribe(interval time.Duration, fn func()) phasetimer.Subscription {
	if interval <= 0 {
		interval = time.Second
	}
	sub := &tickSubscription{stopCh: make(chan struct{})}
	go sub.run(interval, fn)
	return sub
}

type tickSubscription struct {
	once   sync.Once
	stopCh chan struct{}
}

func (sub *tickSubscription) run(interval time.Duration, fn func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-sub.stopCh:
			return
		case <-ticker.C:
			// A firing racing with Unsubscribe delivers at most one late
			// callback; subscribers re-check their own state on entry.
			select {
			case <-sub.stopCh:
				return
			default:
			}
			fn()
		}
	}
}

// Unsubscribe stops the tick stream. Safe to call more than once.
func (sub *tickSubscription) Unsubscribe() {
	sub.once.Do(func() {
		close(sub.stopCh)
	})
}
