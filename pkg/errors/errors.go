package errors

import (
	"fmt"
)

// ParseError represents a deck document that could not be decoded.
type ParseError struct {
	Source  string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError. Source is a file path or a short label such as
// "inline" when the document did not come from disk.
func NewParseError(source string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Source: source, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Source, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Source, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures a decoded document whose values are out of range.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SurfaceError reports that an effect surface could not be brought up. It is always
// recovered by disabling the effect.
type SurfaceError struct {
	Surface string
	Message string
	Err     error
}

// NewSurfaceError constructs a SurfaceError for the named surface.
func NewSurfaceError(surface, message string, err error) error {
	return &SurfaceError{Surface: surface, Message: message, Err: err}
}

func (e *SurfaceError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("surface error [%s]: %s: %v", e.Surface, e.Message, e.Err)
	}
	return fmt.Sprintf("surface error [%s]: %s", e.Surface, e.Message)
}

// Unwrap exposes the underlying error.
func (e *SurfaceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
