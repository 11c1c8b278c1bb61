// Package cli parses command-line arguments and owns process-level
// concerns like usage text and exit codes. The action grammar itself
// lives in the domain package; flags cannot be handled by the flag
// package because "-10" is a valid action, not a flag.
package cli

import (
	"fmt"
	"io"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const usage = `brightctl - read and set display backlight brightness

Usage:
  brightctl            print current brightness, e.g. "47.5% (498/1048)"
  brightctl 70         set brightness to 70%
  brightctl +10        raise brightness by 10 percentage points
  brightctl -10        lower brightness by 10 percentage points
  brightctl --history  print recently applied changes

A trailing '%' is accepted: "70%", "+10%". Magnitudes are 0-100; relative
changes clamp to that range.

Environment:
  BRIGHTCTL_DEVICE_DIR         backlight directory (default /sys/class/backlight/intel_backlight)
  BRIGHTCTL_LOG_LEVEL          log level (default warn)
  BRIGHTCTL_HISTORY_DB         SQLite file for the change journal (empty = disabled)
  BRIGHTCTL_HISTORY_RETENTION  how long journal entries are kept (default 720h)
`

// Usage writes the help text.
func Usage(w io.Writer) {
	fmt.Fprint(w, usage)
}

// Request is what the user asked the process to do.
type Request struct {
	Action  string // raw action argument, "" for a plain report
	History bool   // print the change journal instead of acting
}

// Parse processes command-line arguments (without the program name).
// Help requests and malformed invocations come back as an *ExitError
// carrying the exit code; the caller prints usage and exits with it.
func Parse(args []string) (Request, error) {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return Request{}, &ExitError{Code: 2, Message: "help requested"}
		}
	}

	switch len(args) {
	case 0:
		return Request{}, nil
	case 1:
		if args[0] == "--history" {
			return Request{History: true}, nil
		}
		return Request{Action: args[0]}, nil
	default:
		return Request{}, &ExitError{Code: 2, Message: "expected at most one argument"}
	}
}
