package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// SetMode says how a Set magnitude is applied to the current brightness.
type SetMode int

const (
	// Absolute targets the magnitude itself as the new percentage
	Absolute SetMode = iota
	// RelativeUp adds the magnitude to the current percentage
	RelativeUp
	// RelativeDown subtracts the magnitude from the current percentage
	RelativeDown
)

// ActionKind tags the two shapes an Action can take.
type ActionKind int

const (
	// ActionGet reports the current brightness, changing nothing
	ActionGet ActionKind = iota
	// ActionSet moves brightness to a new percentage
	ActionSet
)

// Action is a parsed command-line request.
// This is pure domain logic - no flags, no sysfs, just what the user meant.
// Magnitude and Mode are only meaningful when Kind is ActionSet.
type Action struct {
	Kind      ActionKind
	Magnitude uint8 // 0-100 percentage points
	Mode      SetMode
}

// ParseAction converts a raw command-line argument into an Action.
//
// Grammar: empty input is a Get; otherwise an optional leading '+' or '-'
// selecting a relative adjustment, decimal digits, and an optional trailing
// '%'. The number must lie in 0-100. "-0", "+0" and "0" are all accepted;
// a lone sign or percent is not, and fractional values are rejected rather
// than rounded.
func ParseAction(text string) (Action, error) {
	if text == "" {
		return Action{Kind: ActionGet}, nil
	}

	mode := Absolute
	rest := text
	switch text[0] {
	case '+':
		mode = RelativeUp
		rest = text[1:]
	case '-':
		mode = RelativeDown
		rest = text[1:]
	}

	rest = strings.TrimSuffix(rest, "%")

	n, err := strconv.ParseUint(rest, 10, 8)
	if err != nil {
		return Action{}, fmt.Errorf("%w: %q", ErrMalformedAction, text)
	}
	if n > 100 {
		return Action{}, fmt.Errorf("%w: %q", ErrMagnitudeTooLarge, text)
	}

	return Action{Kind: ActionSet, Magnitude: uint8(n), Mode: mode}, nil
}
