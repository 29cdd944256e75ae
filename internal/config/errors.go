package config

import (
	"errors"
	"fmt"
)

// ErrInvalidValue is returned when a config field holds a value outside
// its accepted range.
var ErrInvalidValue = errors.New("invalid config value")

// ParseError describes a failure parsing a config file.
type ParseError struct {
	// Path is the file that failed to parse.
	Path string

	// Message is a human-readable description.
	Message string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing config %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
