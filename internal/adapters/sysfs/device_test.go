package sysfs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func newTestDevice(t *testing.T, brightness, max string) *Device {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "brightness"), []byte(brightness), 0o644); err != nil {
		t.Fatalf("failed to seed brightness: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "max_brightness"), []byte(max), 0o644); err != nil {
		t.Fatalf("failed to seed max_brightness: %v", err)
	}
	return NewDevice(dir)
}

func TestBrightness_TrimsTrailingNewline(t *testing.T) {
	device := newTestDevice(t, "498\n", "1048\n")
	ctx := context.Background()

	level, err := device.Brightness(ctx)
	if err != nil {
		t.Fatalf("Brightness failed: %v", err)
	}
	if level != 498 {
		t.Errorf("expected 498, got %d", level)
	}
}

func TestMaxBrightness_TrimsSurroundingWhitespace(t *testing.T) {
	device := newTestDevice(t, "498\n", " 1048 \n")
	ctx := context.Background()

	max, err := device.MaxBrightness(ctx)
	if err != nil {
		t.Fatalf("MaxBrightness failed: %v", err)
	}
	if max != 1048 {
		t.Errorf("expected 1048, got %d", max)
	}
}

func TestBrightness_NonNumericContent(t *testing.T) {
	device := newTestDevice(t, "charging\n", "1048\n")
	ctx := context.Background()

	if _, err := device.Brightness(ctx); err == nil {
		t.Error("expected error for non-numeric content")
	}
}

func TestBrightness_MissingFile(t *testing.T) {
	device := NewDevice(t.TempDir())
	ctx := context.Background()

	_, err := device.Brightness(ctx)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestSetBrightness_WritesDecimalWithoutNewline(t *testing.T) {
	device := newTestDevice(t, "498\n", "1048\n")
	ctx := context.Background()

	if err := device.SetBrightness(ctx, 702); err != nil {
		t.Fatalf("SetBrightness failed: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(device.dir, "brightness"))
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if string(raw) != "702" {
		t.Errorf("expected %q, got %q", "702", string(raw))
	}
}

func TestSetBrightness_TruncatesLongerContent(t *testing.T) {
	device := newTestDevice(t, "10000\n", "10000\n")
	ctx := context.Background()

	if err := device.SetBrightness(ctx, 5); err != nil {
		t.Fatalf("SetBrightness failed: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(device.dir, "brightness"))
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if string(raw) != "5" {
		t.Errorf("expected %q, got %q", "5", string(raw))
	}
}

func TestSetBrightness_MissingFile(t *testing.T) {
	device := NewDevice(t.TempDir())
	ctx := context.Background()

	err := device.SetBrightness(ctx, 100)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

// Write then read must round-trip through the same files.
func TestSetBrightness_ReadBack(t *testing.T) {
	device := newTestDevice(t, "0", "1048")
	ctx := context.Background()

	if err := device.SetBrightness(ctx, 524); err != nil {
		t.Fatalf("SetBrightness failed: %v", err)
	}

	level, err := device.Brightness(ctx)
	if err != nil {
		t.Fatalf("Brightness failed: %v", err)
	}
	if level != 524 {
		t.Errorf("expected 524, got %d", level)
	}
}
