package style

import (
	"errors"
	"reflect"
	"testing"
)

func TestStyleRecordRoundTrip(t *testing.T) {
	styles := []Style{
		{},
		New().WithForeground(ColorGreen),
		New().WithBackground(ColorMagenta),
		New().WithUnderline(ColorRed),
		New().WithAttributes(AttrBold),
		New().
			WithForeground(ColorGrey).
			WithBackground(ColorYellow).
			WithAttributes(AttrBold | AttrUnderlined),
		New().
			WithForeground(ColorFromRGB(0x1e, 0x90, 0xff)).
			WithUnderline(ColorFromIndex(208)).
			WithAttributes(AttrDim | AttrCrossedOut | AttrReverse),
	}

	for _, s := range styles {
		got, err := s.Record().Style()
		if err != nil {
			t.Errorf("decode(encode(%+v)) error: %v", s, err)
			continue
		}
		if got != s {
			t.Errorf("decode(encode(%+v)) = %+v", s, got)
		}
	}
}

func TestStyleRecordOmitsEmptyAttributes(t *testing.T) {
	r := New().WithForeground(ColorBlue).Record()
	if r.Attributes != nil {
		t.Errorf("empty attribute set should be omitted, got %v", r.Attributes)
	}
}

func TestStyleRecordCanonicalAttributeOrder(t *testing.T) {
	// Insertion order must not leak into the encoded form.
	a := New().WithAttributes(AttrUnderlined).WithAttributes(AttrBold)
	b := New().WithAttributes(AttrBold).WithAttributes(AttrUnderlined)

	ra, rb := a.Record(), b.Record()
	if !reflect.DeepEqual(ra, rb) {
		t.Fatalf("records differ: %+v vs %+v", ra, rb)
	}
	if len(ra.Attributes) != 2 || ra.Attributes[0] != AttrBold || ra.Attributes[1] != AttrUnderlined {
		t.Errorf("attributes = %v, want [Bold Underlined]", ra.Attributes)
	}
}

func TestRecordEmptyAttributesListFails(t *testing.T) {
	r := Record{Attributes: []Attribute{}}
	_, err := r.Style()
	if !errors.Is(err, ErrEmptyAttributes) {
		t.Fatalf("error = %v, want ErrEmptyAttributes", err)
	}
}

func TestDecodeDocument(t *testing.T) {
	doc := map[string]any{
		"background": "green",
		"underline":  "red",
		"attributes": []any{"Underlined", "Bold", "Bold"},
	}

	got, err := DecodeDocument(doc)
	if err != nil {
		t.Fatalf("DecodeDocument error: %v", err)
	}

	want := New().
		WithBackground(ColorGreen).
		WithUnderline(ColorRed).
		WithAttributes(AttrBold | AttrUnderlined)
	if got != want {
		t.Errorf("DecodeDocument = %+v, want %+v", got, want)
	}
}

func TestDecodeDocumentErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]any
	}{
		{"unknown field", map[string]any{"forground": "green"}},
		{"bad color", map[string]any{"foreground": "greenish"}},
		{"bad attribute", map[string]any{"attributes": []any{"Bould"}}},
		{"empty attributes", map[string]any{"attributes": []any{}}},
		{"color not a string", map[string]any{"foreground": 3}},
		{"attributes not a list", map[string]any{"attributes": "Bold"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeDocument(tt.doc); err == nil {
				t.Errorf("DecodeDocument(%v) should fail", tt.doc)
			}
		})
	}
}

func TestDecodeDocumentErrorTypes(t *testing.T) {
	_, err := DecodeDocument(map[string]any{"foreground": "greenish"})
	var cerr *UnrecognizedColorError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %v, want UnrecognizedColorError", err)
	}
	if cerr.Name != "greenish" {
		t.Errorf("error names %q, want the offending token", cerr.Name)
	}

	_, err = DecodeDocument(map[string]any{"attributes": []any{"Bould"}})
	var aerr *UnrecognizedAttributeError
	if !errors.As(err, &aerr) {
		t.Fatalf("error = %v, want UnrecognizedAttributeError", err)
	}

	var merr *MalformedStyleError
	_, err = DecodeDocument(map[string]any{"forground": "green"})
	if !errors.As(err, &merr) {
		t.Fatalf("error = %v, want MalformedStyleError", err)
	}
	_, err = DecodeDocument(map[string]any{"attributes": "Bold"})
	if !errors.As(err, &merr) {
		t.Fatalf("error = %v, want MalformedStyleError", err)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	s := New().
		WithForeground(ColorCyan).
		WithAttributes(AttrBold | AttrDim)

	got, err := DecodeDocument(s.Document())
	if err != nil {
		t.Fatalf("DecodeDocument error: %v", err)
	}
	if got != s {
		t.Errorf("document round trip = %+v, want %+v", got, s)
	}
}

func TestDocumentDeterministic(t *testing.T) {
	s := New().WithAttributes(AttrCrossedOut | AttrBold | AttrItalic)

	first := s.Document()
	second := s.Document()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Document() not deterministic: %v vs %v", first, second)
	}

	attrs, ok := first["attributes"].([]string)
	if !ok {
		t.Fatalf("attributes = %T, want []string", first["attributes"])
	}
	want := []string{"Bold", "Italic", "CrossedOut"}
	if !reflect.DeepEqual(attrs, want) {
		t.Errorf("attributes = %v, want %v", attrs, want)
	}
}
