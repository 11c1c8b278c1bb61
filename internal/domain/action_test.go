package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseAction_Empty(t *testing.T) {
	action, err := ParseAction("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if action.Kind != ActionGet {
		t.Errorf("expected ActionGet, got %v", action.Kind)
	}
}

// Every magnitude 0-100 with every sign/percent combination must parse to
// the exact expected action.
func TestParseAction_ValidGrid(t *testing.T) {
	signs := []struct {
		prefix string
		mode   SetMode
	}{
		{"", Absolute},
		{"+", RelativeUp},
		{"-", RelativeDown},
	}
	suffixes := []string{"", "%"}

	for m := 0; m <= 100; m++ {
		for _, sign := range signs {
			for _, suffix := range suffixes {
				input := fmt.Sprintf("%s%d%s", sign.prefix, m, suffix)
				t.Run(input, func(t *testing.T) {
					action, err := ParseAction(input)
					if err != nil {
						t.Fatalf("unexpected error: %v", err)
					}
					if action.Kind != ActionSet {
						t.Fatalf("expected ActionSet, got %v", action.Kind)
					}
					if action.Magnitude != uint8(m) {
						t.Errorf("expected magnitude %d, got %d", m, action.Magnitude)
					}
					if action.Mode != sign.mode {
						t.Errorf("expected mode %v, got %v", sign.mode, action.Mode)
					}
				})
			}
		}
	}
}

func TestParseAction_Invalid(t *testing.T) {
	inputs := []string{
		"hi", "max", "min",
		"101", "101%", "+101", "-101",
		"1.2", "+1.2", "-1.2",
		"5.3%", "+5.3%", "-5.3%",
		"+", "-", "%", "+%", "-%",
		"++5", "--5", "+-5", "5%%", "%5",
		"256", "99999999999999999999",
		" 5", "5 ",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseAction(input); err == nil {
				t.Errorf("expected %q to fail to parse", input)
			}
		})
	}
}

func TestParseAction_ErrorKinds(t *testing.T) {
	_, err := ParseAction("abc")
	if !errors.Is(err, ErrMalformedAction) {
		t.Errorf("expected ErrMalformedAction, got %v", err)
	}

	// 101-255 parse lexically but exceed the magnitude range
	_, err = ParseAction("101")
	if !errors.Is(err, ErrMagnitudeTooLarge) {
		t.Errorf("expected ErrMagnitudeTooLarge, got %v", err)
	}

	// 256 does not even fit the lexical range
	_, err = ParseAction("256")
	if !errors.Is(err, ErrMalformedAction) {
		t.Errorf("expected ErrMalformedAction, got %v", err)
	}
}

// Signed zeros are valid, functionally equivalent actions.
func TestParseAction_SignedZero(t *testing.T) {
	for _, input := range []string{"0", "+0", "-0", "0%", "+0%", "-0%"} {
		t.Run(input, func(t *testing.T) {
			action, err := ParseAction(input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if action.Magnitude != 0 {
				t.Errorf("expected magnitude 0, got %d", action.Magnitude)
			}
		})
	}
}
