package preferences

import (
	"time"

	"pomobar/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	WorkDuration  time.Duration
	BreakDuration time.Duration
}

// DefaultSettings returns the stock 50/10 minute split.
func DefaultSettings() Settings {
	return Settings{
		WorkDuration:  model.DefaultWorkDuration,
		BreakDuration: model.DefaultBreakDuration,
	}
}

// PhaseConfig converts settings to the timer configuration.
func (settings Settings) PhaseConfig() model.PhaseConfig {
	return model.PhaseConfig{
		WorkDuration:  settings.WorkDuration,
		BreakDuration: settings.BreakDuration,
	}
}
