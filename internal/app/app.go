package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/brightctl/brightctl/internal/domain"
	"github.com/brightctl/brightctl/internal/ports"
)

// App wires the backlight device, the optional change journal and the
// output stream together for a single invocation.
type App struct {
	out       io.Writer
	device    ports.BacklightDevice
	journal   domain.ChangeRepository
	retention time.Duration
}

// New creates an App. journal may be nil to disable the change journal.
func New(out io.Writer, device ports.BacklightDevice, journal domain.ChangeRepository, retention time.Duration) *App {
	return &App{
		out:       out,
		device:    device,
		journal:   journal,
		retention: retention,
	}
}

// Run performs one invocation: read the device ceiling, parse the raw
// action, evaluate the policy (reading the current level lazily) and, for
// Set actions, clamp, round and write the new level.
//
// Get reports are printed as "<pct>% (<level>/<max>)" with one decimal
// place, matching the device's own numerator/denominator.
func (a *App) Run(ctx context.Context, raw string) error {
	max, err := a.device.MaxBrightness(ctx)
	if err != nil {
		return &Error{Message: "reading max brightness", Cause: err}
	}
	if max == 0 {
		return &Error{Message: "reading max brightness", Cause: errors.New("device reports max_brightness 0")}
	}

	action, err := domain.ParseAction(raw)
	if err != nil {
		return err
	}

	plan, err := domain.Evaluate(action, max, func() (uint32, error) {
		return a.device.Brightness(ctx)
	})
	if err != nil {
		return &Error{Message: "reading brightness", Cause: err}
	}

	if !plan.Write {
		fmt.Fprintf(a.out, "%.1f%% (%d/%d)\n", 100*plan.Fraction, plan.Current, max)
		return nil
	}

	clamped := domain.Clamp(plan.Fraction)
	if clamped != plan.Fraction {
		log.Warn().
			Float64("requested", 100*plan.Fraction).
			Float64("applied", 100*clamped).
			Msg("requested brightness out of range, clamping")
	}

	level := domain.LevelFor(clamped, max)
	if err := a.device.SetBrightness(ctx, level); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			log.Warn().Msg("writing the brightness file usually requires root privileges")
		}
		return &Error{Message: fmt.Sprintf("setting brightness to %d", level), Cause: err}
	}

	log.Info().
		Uint32("level", level).
		Uint32("max", max).
		Float64("percent", 100*clamped).
		Msg("brightness set")

	a.record(ctx, level, 100*clamped, clamped != plan.Fraction)
	return nil
}

// record appends the applied change to the journal and prunes old entries.
// Journal failures never fail the invocation - the device write already
// happened.
func (a *App) record(ctx context.Context, level uint32, percent float64, wasClamped bool) {
	if a.journal == nil {
		return
	}

	change, err := domain.NewBrightnessChange(level, percent, wasClamped)
	if err != nil {
		log.Error().Err(err).Msg("failed to create journal entry")
		return
	}

	if err := a.journal.SaveChange(ctx, change); err != nil {
		log.Error().Err(err).Msg("failed to save journal entry")
		return
	}

	if a.retention > 0 {
		if err := a.journal.DeleteOldChanges(ctx, a.retention); err != nil {
			log.Error().Err(err).Msg("failed to prune journal")
		}
	}
}

// History prints the most recent journal entries, newest first.
func (a *App) History(ctx context.Context, limit int) error {
	if a.journal == nil {
		return &Error{Message: "no history database configured, set BRIGHTCTL_HISTORY_DB"}
	}

	changes, err := a.journal.RecentChanges(ctx, limit)
	if err != nil {
		return &Error{Message: "reading history", Cause: err}
	}

	for _, c := range changes {
		note := ""
		if c.Clamped {
			note = " (clamped)"
		}
		fmt.Fprintf(a.out, "%s  %.1f%% level=%d%s\n", c.Timestamp.Format(time.RFC3339), c.Percent, c.Level, note)
	}
	return nil
}
