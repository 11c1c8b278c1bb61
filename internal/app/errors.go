package app

import "fmt"

// Error is a runtime failure carrying a user-facing message and its
// underlying cause. It renders as "message (cause)"; main prefixes the
// program name.
type Error struct {
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s)", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}
