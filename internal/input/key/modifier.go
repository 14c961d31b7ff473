package key

import "strings"

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// modifierDocNames lists modifiers with their document names in
// canonical order.
var modifierDocNames = [...]struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "CONTROL"},
	{ModAlt, "ALT"},
	{ModShift, "SHIFT"},
	{ModMeta, "META"},
}

// String returns the document form: "NONE", a single name, or a
// combination like "CONTROL | ALT" in canonical order.
func (m Modifier) String() string {
	if m == ModNone {
		return "NONE"
	}
	var parts []string
	for _, entry := range modifierDocNames {
		if m.Has(entry.mod) {
			parts = append(parts, entry.name)
		}
	}
	return strings.Join(parts, " | ")
}

// ParseModifiers parses the document form of a modifier set: a single
// name ("CONTROL", "NONE") or a combination joined with "|"
// ("CONTROL | SHIFT"). Names are case-insensitive. An unrecognized or
// empty name fails; it never degrades to no modifiers.
func ParseModifiers(s string) (Modifier, error) {
	var result Modifier
	for _, part := range strings.Split(s, "|") {
		name := strings.ToUpper(strings.TrimSpace(part))
		switch name {
		case "NONE":
			// NONE is the identity; harmless in combinations.
		case "CONTROL", "CTRL":
			result = result.With(ModCtrl)
		case "ALT", "OPTION":
			result = result.With(ModAlt)
		case "SHIFT":
			result = result.With(ModShift)
		case "META", "SUPER", "CMD":
			result = result.With(ModMeta)
		default:
			return ModNone, &UnrecognizedModifierError{Name: strings.TrimSpace(part)}
		}
	}
	return result, nil
}
