package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brightctl/brightctl/internal/adapters/sqlite"
	"github.com/brightctl/brightctl/internal/adapters/sysfs"
	"github.com/brightctl/brightctl/internal/app"
	"github.com/brightctl/brightctl/internal/cli"
	"github.com/brightctl/brightctl/internal/domain"
)

const prog = "brightctl"

// Config holds application configuration
type Config struct {
	DeviceDir string        `env:"BRIGHTCTL_DEVICE_DIR" envDefault:"/sys/class/backlight/intel_backlight"`
	LogLevel  string        `env:"BRIGHTCTL_LOG_LEVEL" envDefault:"warn"`
	HistoryDB string        `env:"BRIGHTCTL_HISTORY_DB"` // empty disables the journal
	Retention time.Duration `env:"BRIGHTCTL_HISTORY_RETENTION" envDefault:"720h"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run holds the whole invocation so defers fire before the process exits.
// Exit codes: 0 success, 1 runtime failure, 2 usage error or help.
func run(args []string) int {
	// Initialize logger
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	req, err := cli.Parse(args)
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			cli.Usage(os.Stderr)
			return exitErr.Code
		}
		fmt.Fprintf(os.Stderr, "%s: %s\n", prog, err)
		return 1
	}

	// Read configuration from environment
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", prog, &app.Error{Message: "reading environment", Cause: err})
		return 1
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: invalid BRIGHTCTL_LOG_LEVEL %q\n", prog, cfg.LogLevel)
		return 1
	}
	zerolog.SetGlobalLevel(level)

	// Initialize journal
	var journal domain.ChangeRepository
	if cfg.HistoryDB != "" {
		j, err := sqlite.NewChangeRepository(cfg.HistoryDB)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", prog, &app.Error{Message: "opening history database", Cause: err})
			return 1
		}
		defer j.Close()
		journal = j
		log.Debug().Str("db_path", cfg.HistoryDB).Msg("initialized SQLite journal")
	}

	device := sysfs.NewDevice(cfg.DeviceDir)
	a := app.New(os.Stdout, device, journal, cfg.Retention)

	ctx := context.Background()

	if req.History {
		err = a.History(ctx, 20)
	} else {
		err = a.Run(ctx, req.Action)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", prog, err)
		if errors.Is(err, domain.ErrMalformedAction) || errors.Is(err, domain.ErrMagnitudeTooLarge) {
			cli.Usage(os.Stderr)
			return 2
		}
		return 1
	}
	return 0
}
