package domain

import "math"

// CurrentFunc reads the device's current brightness level.
// Evaluate calls it at most once, and only when the action needs the
// current level - this keeps the policy testable without a real device.
type CurrentFunc func() (uint32, error)

// Plan is the outcome of evaluating an Action against the device's range.
//
// When Write is set, Fraction is the requested brightness as a share of
// the device maximum. It is not clamped here: relative adjustments can
// land outside [0, 1] and the caller clamps uniformly before converting
// to a level. When Write is unset (a Get), Fraction is the current share
// and Current holds the raw level for display.
type Plan struct {
	Write    bool
	Fraction float64
	Current  uint32
}

// Evaluate maps an action onto the device's level space.
func Evaluate(action Action, maxLevel uint32, current CurrentFunc) (Plan, error) {
	if action.Kind == ActionGet {
		cur, err := current()
		if err != nil {
			return Plan{}, err
		}
		return Plan{
			Fraction: float64(cur) / float64(maxLevel),
			Current:  cur,
		}, nil
	}

	want := float64(action.Magnitude) / 100
	if action.Mode == Absolute {
		return Plan{Write: true, Fraction: want}, nil
	}

	cur, err := current()
	if err != nil {
		return Plan{}, err
	}

	if action.Mode == RelativeDown {
		want = -want
	}
	return Plan{
		Write:    true,
		Fraction: float64(cur)/float64(maxLevel) + want,
		Current:  cur,
	}, nil
}

// Clamp bounds a fraction to the representable range [0, 1].
func Clamp(f float64) float64 {
	return math.Min(1, math.Max(0, f))
}

// LevelFor converts a clamped fraction to a device level.
// Halves round away from zero (math.Round).
func LevelFor(f float64, maxLevel uint32) uint32 {
	return uint32(math.Round(f * float64(maxLevel)))
}
