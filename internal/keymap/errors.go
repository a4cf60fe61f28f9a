package keymap

import (
	"errors"
	"fmt"
)

// Errors returned by keymap loading.
var (
	// ErrNoCommands indicates the keymap file defines no commands.
	ErrNoCommands = errors.New("keymap defines no commands")

	// ErrMissingName indicates a command entry without a name.
	ErrMissingName = errors.New("command entry missing name")

	// ErrInvalidKey indicates a base key that is not a single character.
	ErrInvalidKey = errors.New("base key must be a single character")

	// ErrDuplicateCommand indicates the same command appears twice.
	ErrDuplicateCommand = errors.New("duplicate command")
)

// ParseError represents an error while parsing a keymap file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
