package style

import "fmt"

// Style represents the visual style of rendered text: optional
// foreground, background, and underline colors plus a set of text
// attributes. The zero value applies no styling at all.
type Style struct {
	Foreground Color
	Background Color
	Underline  Color
	Attributes Attribute
}

// New returns an empty style.
func New() Style {
	return Style{}
}

// WithForeground returns a copy with the given foreground color.
func (s Style) WithForeground(c Color) Style {
	s.Foreground = c
	return s
}

// WithBackground returns a copy with the given background color.
func (s Style) WithBackground(c Color) Style {
	s.Background = c
	return s
}

// WithUnderline returns a copy with the given underline color.
func (s Style) WithUnderline(c Color) Style {
	s.Underline = c
	return s
}

// WithAttributes returns a copy with the given attributes added.
func (s Style) WithAttributes(attrs Attribute) Style {
	s.Attributes = s.Attributes.With(attrs)
	return s
}

// IsZero returns true if the style applies no styling.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Record is the serializable form of a Style. All fields are optional;
// Attributes is nil exactly when the style's attribute set is empty.
type Record struct {
	Foreground *Color      `toml:"foreground,omitempty"`
	Background *Color      `toml:"background,omitempty"`
	Underline  *Color      `toml:"underline,omitempty"`
	Attributes []Attribute `toml:"attributes,omitempty"`
}

// Record converts the style to its serializable form. Attributes are
// listed in canonical order regardless of how the set was built, so
// two equal styles always encode identically.
func (s Style) Record() Record {
	var r Record
	if s.Foreground.IsSet() {
		fg := s.Foreground
		r.Foreground = &fg
	}
	if s.Background.IsSet() {
		bg := s.Background
		r.Background = &bg
	}
	if s.Underline.IsSet() {
		ul := s.Underline
		r.Underline = &ul
	}
	if !s.Attributes.IsEmpty() {
		for _, entry := range attrNames {
			if s.Attributes.Has(entry.attr) {
				r.Attributes = append(r.Attributes, entry.attr)
			}
		}
	}
	return r
}

// Style converts the serializable form back to a Style. An attributes
// list that is present but empty fails with ErrEmptyAttributes rather
// than silently normalizing to "no attributes".
func (r Record) Style() (Style, error) {
	var s Style
	if r.Foreground != nil {
		s.Foreground = *r.Foreground
	}
	if r.Background != nil {
		s.Background = *r.Background
	}
	if r.Underline != nil {
		s.Underline = *r.Underline
	}
	if r.Attributes != nil {
		if len(r.Attributes) == 0 {
			return Style{}, ErrEmptyAttributes
		}
		for _, attr := range r.Attributes {
			s.Attributes = s.Attributes.With(attr)
		}
	}
	return s, nil
}

// Document returns the style in document form, with colors and
// attributes as their wire names. Used when dumping a resolved
// configuration.
func (s Style) Document() map[string]any {
	doc := make(map[string]any)
	if s.Foreground.IsSet() {
		doc["foreground"] = s.Foreground.String()
	}
	if s.Background.IsSet() {
		doc["background"] = s.Background.String()
	}
	if s.Underline.IsSet() {
		doc["underline"] = s.Underline.String()
	}
	if !s.Attributes.IsEmpty() {
		var names []string
		for _, entry := range attrNames {
			if s.Attributes.Has(entry.attr) {
				names = append(names, entry.name)
			}
		}
		doc["attributes"] = names
	}
	return doc
}

// DecodeDocument decodes the document form of a style. The mapping
// recognizes exactly foreground, background, underline, and
// attributes; anything else is an error so that typos surface instead
// of being ignored.
func DecodeDocument(doc map[string]any) (Style, error) {
	var s Style
	for field, raw := range doc {
		switch field {
		case "foreground", "background", "underline":
			name, ok := raw.(string)
			if !ok {
				return Style{}, &MalformedStyleError{
					Reason: fmt.Sprintf("%s: expected a color name, got %T", field, raw),
				}
			}
			c, err := ParseColor(name)
			if err != nil {
				return Style{}, err
			}
			switch field {
			case "foreground":
				s.Foreground = c
			case "background":
				s.Background = c
			case "underline":
				s.Underline = c
			}
		case "attributes":
			attrs, err := decodeAttrList(raw)
			if err != nil {
				return Style{}, err
			}
			s.Attributes = attrs
		default:
			return Style{}, &MalformedStyleError{
				Reason: fmt.Sprintf("unknown style field %q", field),
			}
		}
	}
	return s, nil
}

// decodeAttrList folds a document attribute list into a set.
// Duplicates are harmless since union is idempotent.
func decodeAttrList(raw any) (Attribute, error) {
	items, ok := raw.([]any)
	if !ok {
		if names, ok := raw.([]string); ok {
			items = make([]any, len(names))
			for i, n := range names {
				items[i] = n
			}
		} else {
			return AttrNone, &MalformedStyleError{
				Reason: fmt.Sprintf("attributes: expected a list of attribute names, got %T", raw),
			}
		}
	}
	if len(items) == 0 {
		return AttrNone, ErrEmptyAttributes
	}

	var set Attribute
	for _, item := range items {
		name, ok := item.(string)
		if !ok {
			return AttrNone, &MalformedStyleError{
				Reason: fmt.Sprintf("attributes: expected an attribute name, got %T", item),
			}
		}
		attr, err := ParseAttribute(name)
		if err != nil {
			return AttrNone, err
		}
		set = set.With(attr)
	}
	return set, nil
}
