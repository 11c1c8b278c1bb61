package ports

import (
	"context"
)

// BacklightDevice defines how to read and drive a display backlight
// This is a PORT - adapters (sysfs, Mock) will implement it
type BacklightDevice interface {
	// Brightness returns the current level in device units
	Brightness(ctx context.Context) (uint32, error)

	// MaxBrightness returns the largest level the device accepts
	MaxBrightness(ctx context.Context) (uint32, error)

	// SetBrightness writes a new level, 0..MaxBrightness
	SetBrightness(ctx context.Context, level uint32) error
}
