package config

import "errors"

// Error variables define configuration loading failures.
var (
	// ErrNilConfig indicates Load was called with a nil target pointer.
	ErrNilConfig = errors.New("nil config pointer")

	// ErrLoadFailed indicates environment variable parsing failed,
	// typically due to a missing required variable or a type mismatch.
	ErrLoadFailed = errors.New("failed to load config from environment")
)
