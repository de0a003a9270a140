package phasetimer

import "time"

// Subscription is a handle on a live periodic tick stream.
type Subscription interface {
	// Unsubscribe stops the stream. A callback already dispatched when
	// Unsubscribe returns may still land; the timer re-checks its running
	// flag under its own lock, so such a tick is a no-op.
	Unsubscribe()
}

// TickSource delivers periodic callbacks while a subscription is held.
// At most one callback is pending per interval.
type TickSource interface {
	Subscribe(interval time.Duration, fn func()) Subscription
}

// DisplaySink is the persistent on-screen status indicator. All setters are
// pure output; the sink holds no timer state.
type DisplaySink interface {
	SetText(text string)
	SetTooltip(text string)
	SetColor(token string)
	SetClickAction(command string)
	Show()
	Dispose()
}

// Notifier surfaces messages to the user. Ask resolves asynchronously with
// the action label if the user accepted, or "" if dismissed; the channel
// receives exactly one value.
type Notifier interface {
	Info(message string)
	Ask(message, actionLabel string) <-chan string
}
