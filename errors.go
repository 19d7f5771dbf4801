package hitship

import "errors"

// Package errors returned by the public API; check with errors.Is.
var (
	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("hitship: invalid configuration")

	// ErrMissingField is returned when a hit-recording operation lacks a
	// field the wire protocol requires.
	ErrMissingField = errors.New("hitship: missing required field")
)
