package key

import "fmt"

// UnrecognizedKeyError is returned when a key name is not a known
// special key.
type UnrecognizedKeyError struct {
	// Name is the offending key token from the document.
	Name string
}

// Error implements the error interface.
func (e *UnrecognizedKeyError) Error() string {
	return fmt.Sprintf("unrecognized key %q", e.Name)
}

// UnrecognizedModifierError is returned when a modifier name is not
// recognized.
type UnrecognizedModifierError struct {
	// Name is the offending modifier token from the document.
	Name string
}

// Error implements the error interface.
func (e *UnrecognizedModifierError) Error() string {
	return fmt.Sprintf("unrecognized modifier %q", e.Name)
}

// MalformedChordError is returned when a chord document has the wrong
// shape, such as a missing key field or a Char payload that is not a
// single character.
type MalformedChordError struct {
	// Reason describes what was wrong with the chord.
	Reason string
}

// Error implements the error interface.
func (e *MalformedChordError) Error() string {
	return fmt.Sprintf("malformed key chord: %s", e.Reason)
}
