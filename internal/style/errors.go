package style

import (
	"errors"
	"fmt"
)

// ErrEmptyAttributes indicates an attributes list that is present but
// empty. An empty set is expressed by omitting the field; an explicit
// empty list is an authoring mistake.
var ErrEmptyAttributes = errors.New("attributes list is present but empty")

// UnrecognizedColorError is returned when a color name is not in the
// palette and is not a valid hex or index value.
type UnrecognizedColorError struct {
	// Name is the offending color token from the document.
	Name string
}

// Error implements the error interface.
func (e *UnrecognizedColorError) Error() string {
	return fmt.Sprintf("unrecognized color %q", e.Name)
}

// UnrecognizedAttributeError is returned when an attribute name is not
// a known text attribute.
type UnrecognizedAttributeError struct {
	// Name is the offending attribute token from the document.
	Name string
}

// Error implements the error interface.
func (e *UnrecognizedAttributeError) Error() string {
	return fmt.Sprintf("unrecognized attribute %q", e.Name)
}

// MalformedStyleError is returned when a style document has the wrong
// shape: an unknown field, or a field holding the wrong kind of value.
type MalformedStyleError struct {
	// Reason describes what is wrong with the document.
	Reason string
}

// Error implements the error interface.
func (e *MalformedStyleError) Error() string {
	return fmt.Sprintf("malformed style: %s", e.Reason)
}
