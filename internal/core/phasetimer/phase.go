package phasetimer

import (
	"fmt"
	"time"
)

// Phase identifies which countdown pool is active.
type Phase string

const (
	PhaseWork  Phase = "work"
	PhaseBreak Phase = "break"
)

// Title returns the human-readable phase name.
func (phase Phase) Title() string {
	if phase == PhaseBreak {
		return "Break"
	}
	return "Work"
}

// Command identifiers bound to the display click action. The host layer maps
// these to whatever command registration mechanism it has.
const (
	CommandStart = "pomobar.start"
	CommandPause = "pomobar.pause"
)

// Color tokens pushed to the display sink.
const (
	ColorActive = "active"
	ColorPaused = "paused"
)

// FormatClock renders a duration as zero-padded MM:SS. Minutes are not
// clamped to 59, so an hour renders as "60:00".
func FormatClock(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
