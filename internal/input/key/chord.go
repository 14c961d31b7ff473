package key

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Chord represents a single key press bound to a command: a key plus
// modifier flags. Chords are immutable value types; equality is
// structural, so == works.
type Chord struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune chords.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewChord creates a chord for a special key.
func NewChord(k Key, mods Modifier) Chord {
	return Chord{Key: k, Modifiers: mods}
}

// NewRuneChord creates a chord for a character key.
func NewRuneChord(r rune, mods Modifier) Chord {
	return Chord{Key: KeyRune, Rune: r, Modifiers: mods}
}

// IsRune returns true if this is a character chord.
func (c Chord) IsRune() bool {
	return c.Key == KeyRune && c.Rune != 0
}

// Equals returns true if two chords represent the same key press.
func (c Chord) Equals(other Chord) bool {
	return c == other
}

// String returns a readable representation like "C-e", "A-f", "Up".
func (c Chord) String() string {
	var parts []string
	if c.Modifiers.Has(ModCtrl) {
		parts = append(parts, "C")
	}
	if c.Modifiers.Has(ModAlt) {
		parts = append(parts, "A")
	}
	if c.Modifiers.Has(ModMeta) {
		parts = append(parts, "M")
	}
	if c.Modifiers.Has(ModShift) && !c.IsRune() {
		parts = append(parts, "S")
	}

	if c.IsRune() {
		parts = append(parts, string(c.Rune))
	} else {
		parts = append(parts, c.Key.String())
	}
	return strings.Join(parts, "-")
}

// DecodeDocument decodes the document form of a chord:
//
//	key = "Tab"              # named key, or
//	key = { Char = "$" }     # literal character
//	modifiers = "CONTROL"    # optional; name or "A | B" combination
//
// The key field is required. Wrong shapes fail with
// *MalformedChordError, unknown names with *UnrecognizedKeyError or
// *UnrecognizedModifierError.
func DecodeDocument(doc map[string]any) (Chord, error) {
	var c Chord
	sawKey := false

	for field, raw := range doc {
		switch field {
		case "key":
			sawKey = true
			k, r, err := decodeKeyValue(raw)
			if err != nil {
				return Chord{}, err
			}
			c.Key = k
			c.Rune = r
		case "modifiers":
			name, ok := raw.(string)
			if !ok {
				return Chord{}, &MalformedChordError{
					Reason: fmt.Sprintf("modifiers: expected a modifier name, got %T", raw),
				}
			}
			mods, err := ParseModifiers(name)
			if err != nil {
				return Chord{}, err
			}
			c.Modifiers = mods
		default:
			return Chord{}, &MalformedChordError{
				Reason: fmt.Sprintf("unknown chord field %q", field),
			}
		}
	}

	if !sawKey {
		return Chord{}, &MalformedChordError{Reason: "missing key field"}
	}
	return c, nil
}

// decodeKeyValue handles the polymorphic key field: a string names a
// special key, a { Char = "x" } table carries a literal character.
func decodeKeyValue(raw any) (Key, rune, error) {
	switch v := raw.(type) {
	case string:
		k, err := ParseKey(v)
		if err != nil {
			return KeyNone, 0, err
		}
		return k, 0, nil
	case map[string]any:
		payload, ok := v["Char"]
		if !ok || len(v) != 1 {
			return KeyNone, 0, &MalformedChordError{
				Reason: "key table must contain exactly one Char entry",
			}
		}
		s, ok := payload.(string)
		if !ok {
			return KeyNone, 0, &MalformedChordError{
				Reason: fmt.Sprintf("Char: expected a single character string, got %T", payload),
			}
		}
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError || size != len(s) {
			return KeyNone, 0, &MalformedChordError{
				Reason: fmt.Sprintf("Char: expected a single character, got %q", s),
			}
		}
		return KeyRune, r, nil
	default:
		return KeyNone, 0, &MalformedChordError{
			Reason: fmt.Sprintf("key: expected a key name or Char table, got %T", raw),
		}
	}
}

// Document returns the chord in its canonical document form.
// Modifiers are omitted when empty, matching how the default
// configuration is authored.
func (c Chord) Document() map[string]any {
	doc := make(map[string]any)
	if c.Key == KeyRune {
		doc["key"] = map[string]any{"Char": string(c.Rune)}
	} else {
		doc["key"] = c.Key.String()
	}
	if !c.Modifiers.IsEmpty() {
		doc["modifiers"] = c.Modifiers.String()
	}
	return doc
}
