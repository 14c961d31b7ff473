package config

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// UnknownFieldError is returned when the document contains a field
// name the configuration schema does not recognize.
type UnknownFieldError struct {
	// Field is the unrecognized field name.
	Field string
}

// Error implements the error interface.
func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown configuration field %q", e.Field)
}

// FieldError wraps a decode failure with the field it occurred in, so
// the user sees "configuration error in field X: reason".
type FieldError struct {
	// Field is the document field being decoded.
	Field string
	// Err is the underlying decode error.
	Err error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("configuration error in field %q: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// InvalidDurationError is returned when a millisecond duration field
// is negative.
type InvalidDurationError struct {
	// Value is the offending number of milliseconds.
	Value int64
}

// Error implements the error interface.
func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("invalid duration %dms: must be non-negative", e.Value)
}

// MalformedStructureError is returned when a field has the wrong
// shape, such as a scalar where a mapping was expected.
type MalformedStructureError struct {
	// Expected describes the expected shape.
	Expected string
	// Actual is the type name of what the document contained.
	Actual string
}

// Error implements the error interface.
func (e *MalformedStructureError) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Actual)
}

// ParseError represents an error while parsing TOML configuration data.
type ParseError struct {
	// Path is the file path that failed to parse, if known.
	Path string
	// Line is the line number where the error occurred (if available).
	Line int
	// Column is the column number where the error occurred (if available).
	Column int
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// NewParseError wraps a TOML decode failure, extracting the source
// position when the underlying error carries one. Path may be empty
// when the data did not come from a file.
func NewParseError(path string, err error) *ParseError {
	perr := &ParseError{
		Path:    path,
		Message: err.Error(),
		Err:     err,
	}
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		perr.Line, perr.Column = derr.Position()
	}
	return perr
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	in := ""
	if e.Path != "" {
		in = fmt.Sprintf(" in %s", e.Path)
	}
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error%s at line %d, column %d: %s", in, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error%s at line %d: %s", in, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error%s: %s", in, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case string:
		return "string"
	case int, int64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case []any, []string:
		return "list"
	case map[string]any:
		return "map"
	default:
		return fmt.Sprintf("%T", v)
	}
}
