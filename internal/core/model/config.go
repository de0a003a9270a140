package model

import "time"

// Default phase lengths applied when a configured value is not positive.
const (
	DefaultWorkDuration  = 50 * time.Minute
	DefaultBreakDuration = 10 * time.Minute
)

// PhaseConfig holds the countdown lengths for the two timer phases.
type PhaseConfig struct {
	WorkDuration  time.Duration
	BreakDuration time.Duration
}

// Normalized returns a copy with non-positive durations replaced by defaults.
func (config PhaseConfig) Normalized() PhaseConfig {
	if config.WorkDuration <= 0 {
		config.WorkDuration = DefaultWorkDuration
	}
	if config.BreakDuration <= 0 {
		config.BreakDuration = DefaultBreakDuration
	}
	return config
}
