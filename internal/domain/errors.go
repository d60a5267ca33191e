package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat indicates a malformed version string.
var ErrInvalidFormat = errors.New("invalid version format")

// InvalidFormatError carries the text that failed to parse as a Version.
type InvalidFormatError struct {
	Text string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid version string: `%s` given, expect format: xx.xx.xx", e.Text)
}

// Is returns true if the target error is ErrInvalidFormat
func (e *InvalidFormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// NewInvalidFormatError creates a new InvalidFormatError
func NewInvalidFormatError(text string) *InvalidFormatError {
	return &InvalidFormatError{Text: text}
}
