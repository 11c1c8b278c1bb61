package domain

import (
	"time"
)

// BrightnessChange is one applied brightness write, as kept in the journal.
type BrightnessChange struct {
	ID        int64
	Level     uint32  // device level actually written
	Percent   float64 // percentage the level corresponds to
	Clamped   bool    // request fell outside 0-100% and was pulled back in
	Timestamp time.Time
}

// NewBrightnessChange creates a journal entry with validation.
func NewBrightnessChange(level uint32, percent float64, clamped bool) (*BrightnessChange, error) {
	// Business rule: the journal only records percentages that can be applied
	if percent < 0 || percent > 100 {
		return nil, ErrInvalidChange
	}

	return &BrightnessChange{
		Level:     level,
		Percent:   percent,
		Clamped:   clamped,
		Timestamp: time.Now(),
	}, nil
}
