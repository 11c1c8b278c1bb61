package domain

import "errors"

var (
	// ErrMalformedAction indicates the argument is not part of the action grammar
	ErrMalformedAction = errors.New("not a brightness action")

	// ErrMagnitudeTooLarge indicates a numeric magnitude above 100
	ErrMagnitudeTooLarge = errors.New("magnitude exceeds 100")

	// ErrInvalidChange indicates a journal entry with an impossible percentage
	ErrInvalidChange = errors.New("percent must be between 0 and 100")

	// ErrChangeNotFound indicates a requested journal entry doesn't exist
	ErrChangeNotFound = errors.New("change not found")
)
