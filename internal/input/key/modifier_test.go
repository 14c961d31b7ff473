package key

import (
	"errors"
	"testing"
)

func TestModifierHas(t *testing.T) {
	tests := []struct {
		mod    Modifier
		check  Modifier
		expect bool
	}{
		{ModNone, ModCtrl, false},
		{ModCtrl, ModCtrl, true},
		{ModCtrl | ModAlt, ModCtrl, true},
		{ModCtrl | ModAlt, ModAlt, true},
		{ModCtrl | ModAlt, ModShift, false},
		{ModCtrl | ModAlt | ModShift | ModMeta, ModMeta, true},
	}

	for _, tt := range tests {
		if got := tt.mod.Has(tt.check); got != tt.expect {
			t.Errorf("Modifier(%d).Has(%d) = %v, want %v", tt.mod, tt.check, got, tt.expect)
		}
	}
}

func TestParseModifiers(t *testing.T) {
	tests := []struct {
		input string
		want  Modifier
	}{
		{"NONE", ModNone},
		{"CONTROL", ModCtrl},
		{"control", ModCtrl},
		{"CTRL", ModCtrl},
		{"ALT", ModAlt},
		{"SHIFT", ModShift},
		{"META", ModMeta},
		{"CONTROL | ALT", ModCtrl | ModAlt},
		{"CONTROL|SHIFT", ModCtrl | ModShift},
		{"CONTROL | ALT | SHIFT | META", ModCtrl | ModAlt | ModShift | ModMeta},
	}

	for _, tt := range tests {
		got, err := ParseModifiers(tt.input)
		if err != nil {
			t.Errorf("ParseModifiers(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseModifiers(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseModifiersUnrecognized(t *testing.T) {
	inputs := []string{"CONTRL", "CONTROL | WIN2", "ctrl+alt", "", "CONTROL |"}

	for _, input := range inputs {
		got, err := ParseModifiers(input)
		if err == nil {
			t.Errorf("ParseModifiers(%q) = %v, should fail", input, got)
			continue
		}
		var merr *UnrecognizedModifierError
		if !errors.As(err, &merr) {
			t.Errorf("ParseModifiers(%q) error = %v, want UnrecognizedModifierError", input, err)
		}
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, "NONE"},
		{ModCtrl, "CONTROL"},
		{ModAlt, "ALT"},
		{ModCtrl | ModAlt, "CONTROL | ALT"},
		{ModAlt | ModCtrl, "CONTROL | ALT"}, // canonical order
		{ModCtrl | ModAlt | ModShift | ModMeta, "CONTROL | ALT | SHIFT | META"},
	}

	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("Modifier(%d).String() = %q, want %q", tt.mod, got, tt.want)
		}
	}
}

func TestModifierStringParseRoundTrip(t *testing.T) {
	mods := []Modifier{ModNone, ModCtrl, ModAlt | ModShift, ModCtrl | ModMeta}

	for _, m := range mods {
		got, err := ParseModifiers(m.String())
		if err != nil {
			t.Errorf("ParseModifiers(%q) error: %v", m.String(), err)
			continue
		}
		if got != m {
			t.Errorf("ParseModifiers(%q) = %v, want %v", m.String(), got, m)
		}
	}
}
