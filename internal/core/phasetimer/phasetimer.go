// Package phasetimer implements the work/break countdown state machine.
//
// A Timer alternates between a work phase and a break phase, decrementing
// once per tick while running. Phase transitions, whether from natural expiry
// or from Skip, always leave the timer stopped; the user restarts explicitly
// or accepts the actionable notification offered at the transition.
package phasetimer

import (
	"fmt"
	"sync"
	"time"

	"pomobar/internal/core/model"
)

// Status is a point-in-time snapshot of the timer state.
type Status struct {
	Phase     Phase
	Remaining time.Duration
	Running   bool
	Sessions  int
}

// Timer is the phase/countdown state machine. All state is guarded by one
// mutex; notifications are delivered outside it.
type Timer struct {
	mu        sync.Mutex
	config    model.PhaseConfig
	phase     Phase
	remaining time.Duration
	running   bool
	sessions  int
	ticks     TickSource
	sub       Subscription
	display   DisplaySink
	notifier  Notifier
}

// notice is a pending user notification composed under the lock and
// delivered after it is released. An empty action means plain info.
type notice struct {
	message string
	action  string
}

// New creates a Timer in its initial state: work phase, full work duration,
// zero completed sessions, not running. The display is refreshed immediately.
func New(config model.PhaseConfig, ticks TickSource, display DisplaySink, notifier Notifier) *Timer {
	timer := &Timer{
		config:   config.Normalized(),
		ticks:    ticks,
		display:  display,
		notifier: notifier,
	}
	timer.mu.Lock()
	timer.resetLocked()
	timer.refreshLocked()
	timer.mu.Unlock()
	return timer
}

// Start begins (or resumes) the countdown. Calling Start while already
// running is a no-op beyond an informational notification, which also makes
// a stale accept from an earlier transition prompt harmless.
func (timer *Timer) Start() {
	timer.mu.Lock()
	if timer.running {
		timer.mu.Unlock()
		timer.notifier.Info("Timer is already running.")
		return
	}
	timer.running = true
	timer.sub = timer.ticks.Subscribe(time.Second, timer.tick)
	phase := timer.phase
	remaining := timer.remaining
	timer.refreshLocked()
	timer.mu.Unlock()

	timer.notifier.Info(fmt.Sprintf("%s phase running, %s remaining.", phase.Title(), FormatClock(remaining)))
}

// Pause freezes the countdown. A no-op with a notification when not running.
func (timer *Timer) Pause() {
	timer.mu.Lock()
	if !timer.running {
		timer.mu.Unlock()
		timer.notifier.Info("Timer is not running.")
		return
	}
	timer.stopTickingLocked()
	timer.refreshLocked()
	timer.mu.Unlock()

	timer.notifier.Info("Timer paused.")
}

// Reset stops the countdown silently and restores the initial work phase,
// zeroing the completed-session count.
func (timer *Timer) Reset() {
	timer.mu.Lock()
	timer.stopTickingLocked()
	timer.resetLocked()
	timer.refreshLocked()
	workDuration := timer.config.WorkDuration
	timer.mu.Unlock()

	timer.notifier.Info(fmt.Sprintf("Timer reset: %s of work ahead.", FormatClock(workDuration)))
}

// Skip forces an immediate phase transition through the same path a natural
// countdown expiry takes.
func (timer *Timer) Skip() {
	timer.mu.Lock()
	pending := timer.transitionLocked()
	timer.mu.Unlock()

	timer.deliver(pending)
}

// UpdateConfig replaces the phase durations. The new values take effect at
// the next reset or transition; a countdown in progress is never shortened
// or extended mid-phase.
func (timer *Timer) UpdateConfig(config model.PhaseConfig) {
	timer.mu.Lock()
	timer.config = config.Normalized()
	timer.mu.Unlock()
}

// Dispose stops ticking and releases the display sink. Must be called at
// most once; no other method may be called afterwards.
func (timer *Timer) Dispose() {
	timer.mu.Lock()
	timer.stopTickingLocked()
	display := timer.display
	timer.display = nil
	timer.mu.Unlock()

	if display != nil {
		display.Dispose()
	}
}

// Status returns a snapshot of the current state.
func (timer *Timer) Status() Status {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return Status{
		Phase:     timer.phase,
		Remaining: timer.remaining,
		Running:   timer.running,
		Sessions:  timer.sessions,
	}
}

// tick runs one decrement step. A tick landing after the subscription was
// released sees running == false and does nothing.
func (timer *Timer) tick() {
	timer.mu.Lock()
	if !timer.running {
		timer.mu.Unlock()
		return
	}
	timer.remaining -= time.Second
	var pending notice
	transitioned := false
	if timer.remaining <= 0 {
		pending = timer.transitionLocked()
		transitioned = true
	}
	timer.refreshLocked()
	timer.mu.Unlock()

	if transitioned {
		timer.deliver(pending)
	}
}

// transitionLocked switches to the other phase and composes the transition
// notification. Both the expiry and Skip paths run through here, so their
// resulting state is identical.
func (timer *Timer) transitionLocked() notice {
	timer.stopTickingLocked()

	var pending notice
	if timer.phase == PhaseWork {
		timer.sessions++
		timer.phase = PhaseBreak
		timer.remaining = timer.config.BreakDuration
		pending = notice{
			message: fmt.Sprintf("Work session %d complete! Take a %s break.", timer.sessions, FormatClock(timer.remaining)),
			action:  "Start Break",
		}
	} else {
		timer.phase = PhaseWork
		timer.remaining = timer.config.WorkDuration
		pending = notice{
			message: fmt.Sprintf("Break over. Ready for work session %d?", timer.sessions+1),
			action:  "Start Work",
		}
	}
	timer.refreshLocked()
	return pending
}

// deliver sends a composed notification. An actionable notice resolves
// later with the user's choice; accepting it re-enters Start, where the
// already-running guard handles a stale accept.
func (timer *Timer) deliver(pending notice) {
	if pending.action == "" {
		timer.notifier.Info(pending.message)
		return
	}
	choice := timer.notifier.Ask(pending.message, pending.action)
	go func() {
		if <-choice == pending.action {
			timer.Start()
		}
	}()
}

func (timer *Timer) stopTickingLocked() {
	timer.running = false
	if timer.sub != nil {
		timer.sub.Unsubscribe()
		timer.sub = nil
	}
}

func (timer *Timer) resetLocked() {
	timer.phase = PhaseWork
	timer.remaining = timer.config.WorkDuration
	timer.sessions = 0
}

func (timer *Timer) refreshLocked() {
	if timer.display == nil {
		return
	}

	glyph := "⏸"
	color := ColorPaused
	command := CommandStart
	inverse := "start"
	if timer.running {
		glyph = "▶"
		color = ColorActive
		command = CommandPause
		inverse = "pause"
	}

	timer.display.SetText(fmt.Sprintf("%s %s %s", timer.phase.Title(), FormatClock(timer.remaining), glyph))
	timer.display.SetTooltip(fmt.Sprintf("%d work sessions completed. Click to %s.", timer.sessions, inverse))
	timer.display.SetColor(color)
	timer.display.SetClickAction(command)
	timer.display.Show()
}
