package style

// Attribute represents text attributes (bold, dim, etc.).
// Individual attributes are single bits; a value with several bits set
// acts as an attribute set. Union via | is idempotent and commutative,
// and AttrNone is its identity.
type Attribute uint16

// Text attribute flags.
const (
	AttrNone       Attribute = 0
	AttrBold       Attribute = 1 << iota
	AttrDim                  // Faint/dim text
	AttrItalic               // Italic text
	AttrUnderlined           // Underlined text
	AttrSlowBlink            // Blinking text
	AttrRapidBlink           // Fast blinking text (rarely supported)
	AttrReverse              // Reverse video (swap fg/bg)
	AttrHidden               // Hidden/invisible text
	AttrCrossedOut           // Struck-through text
)

// attrNames lists every attribute with its document name, in canonical
// order. Encoding always walks this table rather than the bit layout,
// so serialized attribute lists are deterministic.
var attrNames = [...]struct {
	attr Attribute
	name string
}{
	{AttrBold, "Bold"},
	{AttrDim, "Dim"},
	{AttrItalic, "Italic"},
	{AttrUnderlined, "Underlined"},
	{AttrSlowBlink, "SlowBlink"},
	{AttrRapidBlink, "RapidBlink"},
	{AttrReverse, "Reverse"},
	{AttrHidden, "Hidden"},
	{AttrCrossedOut, "CrossedOut"},
}

// AllAttributes returns every attribute in canonical order.
func AllAttributes() []Attribute {
	attrs := make([]Attribute, len(attrNames))
	for i, entry := range attrNames {
		attrs[i] = entry.attr
	}
	return attrs
}

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

// IsEmpty returns true if no attributes are set.
func (a Attribute) IsEmpty() bool {
	return a == AttrNone
}

// String returns the document name of a single attribute.
// For combined sets it names each present attribute in canonical
// order, joined with "|".
func (a Attribute) String() string {
	if a == AttrNone {
		return "None"
	}
	var out string
	for _, entry := range attrNames {
		if a.Has(entry.attr) {
			if out != "" {
				out += "|"
			}
			out += entry.name
		}
	}
	return out
}

// ParseAttribute parses a document attribute name (case-insensitive,
// "crossed_out" and "CrossedOut" both accepted).
func ParseAttribute(s string) (Attribute, error) {
	name := normalizeName(s)
	for _, entry := range attrNames {
		if name == normalizeName(entry.name) {
			return entry.attr, nil
		}
	}
	return AttrNone, &UnrecognizedAttributeError{Name: s}
}

// MarshalText implements encoding.TextMarshaler.
func (a Attribute) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Attribute) UnmarshalText(text []byte) error {
	parsed, err := ParseAttribute(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
