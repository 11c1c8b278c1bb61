package sysfs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	brightnessFile    = "brightness"
	maxBrightnessFile = "max_brightness"
)

// Device drives a backlight through its sysfs directory, e.g.
// /sys/class/backlight/intel_backlight. Each value lives in its own
// plain-text file holding a decimal integer.
type Device struct {
	dir string
}

// NewDevice creates a sysfs-backed backlight for the given device directory.
func NewDevice(dir string) *Device {
	return &Device{dir: dir}
}

// Brightness reads the current level from the brightness file.
func (d *Device) Brightness(ctx context.Context) (uint32, error) {
	return d.readLevel(brightnessFile)
}

// MaxBrightness reads the device ceiling from the max_brightness file.
func (d *Device) MaxBrightness(ctx context.Context) (uint32, error) {
	return d.readLevel(maxBrightnessFile)
}

// SetBrightness truncates the brightness file and writes the level as
// decimal text. Sysfs expects no trailing newline.
func (d *Device) SetBrightness(ctx context.Context, level uint32) error {
	path := filepath.Join(d.dir, brightnessFile)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(strconv.FormatUint(uint64(level), 10)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// readLevel reads a whole sysfs file, trims surrounding whitespace and
// parses the remainder as an unsigned integer.
func (d *Device) readLevel(name string) (uint32, error) {
	path := filepath.Join(d.dir, name)

	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}

	text := strings.TrimSpace(string(raw))
	level, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %q is not an unsigned integer", path, text)
	}
	return uint32(level), nil
}
