package mock

import (
	"context"
	"sync"
)

// FakeDevice simulates a sysfs backlight for tests and development
// This implements the ports.BacklightDevice interface
type FakeDevice struct {
	mu    sync.Mutex
	level uint32
	max   uint32

	// ReadErr and WriteErr, when set, are returned from the matching calls
	ReadErr  error
	WriteErr error

	// Reads and Writes count Brightness and SetBrightness calls
	Reads  int
	Writes int
}

// NewFakeDevice creates a device sitting at level out of max.
func NewFakeDevice(level, max uint32) *FakeDevice {
	return &FakeDevice{
		level: level,
		max:   max,
	}
}

// Brightness returns the simulated current level.
func (d *FakeDevice) Brightness(ctx context.Context) (uint32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.Reads++
	if d.ReadErr != nil {
		return 0, d.ReadErr
	}
	return d.level, nil
}

// MaxBrightness returns the simulated device ceiling.
func (d *FakeDevice) MaxBrightness(ctx context.Context) (uint32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.ReadErr != nil {
		return 0, d.ReadErr
	}
	return d.max, nil
}

// SetBrightness records the written level.
func (d *FakeDevice) SetBrightness(ctx context.Context, level uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.Writes++
	if d.WriteErr != nil {
		return d.WriteErr
	}
	d.level = level
	return nil
}

// Level reports the level the device is currently at.
func (d *FakeDevice) Level() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.level
}
