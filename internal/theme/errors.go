package theme

import (
	"errors"
	"fmt"
)

// Sentinel errors for theme handling.
var (
	// ErrUnknownTheme is returned when a theme name is not registered.
	ErrUnknownTheme = errors.New("unknown theme")

	// ErrNoThemeName is returned when a loaded theme carries no name.
	ErrNoThemeName = errors.New("theme has no name")

	// ErrUnsupportedFormat is returned for file extensions no loader handles.
	ErrUnsupportedFormat = errors.New("unsupported theme format")
)

// ParseError describes a failure parsing a theme file.
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
	return fmt.Sprintf("parsing theme %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
