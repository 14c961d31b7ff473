package key

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestChordTcellNamedKeys(t *testing.T) {
	tests := []struct {
		chord   Chord
		wantKey tcell.Key
		wantMod tcell.ModMask
	}{
		{NewChord(KeyUp, ModNone), tcell.KeyUp, tcell.ModNone},
		{NewChord(KeyTab, ModNone), tcell.KeyTab, tcell.ModNone},
		{NewChord(KeyLeft, ModShift), tcell.KeyLeft, tcell.ModShift},
		{NewChord(KeyF5, ModAlt), tcell.KeyF5, tcell.ModAlt},
	}

	for _, tt := range tests {
		ev := tt.chord.Tcell()
		if ev.Key() != tt.wantKey {
			t.Errorf("%v.Tcell().Key() = %v, want %v", tt.chord, ev.Key(), tt.wantKey)
		}
		if ev.Modifiers() != tt.wantMod {
			t.Errorf("%v.Tcell().Modifiers() = %v, want %v", tt.chord, ev.Modifiers(), tt.wantMod)
		}
	}
}

func TestChordTcellRune(t *testing.T) {
	ev := NewRuneChord('$', ModNone).Tcell()
	if ev.Key() != tcell.KeyRune || ev.Rune() != '$' {
		t.Errorf("rune chord converted to key=%v rune=%q", ev.Key(), ev.Rune())
	}
}

func TestChordTcellCtrlLetter(t *testing.T) {
	ev := NewRuneChord('e', ModCtrl).Tcell()
	if ev.Key() != tcell.KeyCtrlE {
		t.Errorf("Ctrl+e converted to key %v, want KeyCtrlE", ev.Key())
	}
}

func TestFromTcellRoundTrip(t *testing.T) {
	chords := []Chord{
		NewRuneChord('a', ModNone),
		NewRuneChord('f', ModAlt),
		NewChord(KeyUp, ModNone),
		NewChord(KeyTab, ModNone),
		NewChord(KeyBackspace, ModNone),
		NewChord(KeyF12, ModShift),
	}

	for _, c := range chords {
		if got := FromTcell(c.Tcell()); got != c {
			t.Errorf("FromTcell(%v.Tcell()) = %+v, want %+v", c, got, c)
		}
	}
}

func TestFromTcellCtrlCode(t *testing.T) {
	// Terminals report Ctrl+E as the raw control code.
	ev := tcell.NewEventKey(tcell.KeyCtrlE, rune(5), tcell.ModCtrl)
	got := FromTcell(ev)
	if want := NewRuneChord('e', ModCtrl); got != want {
		t.Errorf("FromTcell(CtrlE) = %+v, want %+v", got, want)
	}
}

func TestFromTcellBothBackspaces(t *testing.T) {
	for _, code := range []tcell.Key{tcell.KeyBackspace, tcell.KeyBackspace2} {
		ev := tcell.NewEventKey(code, 0, tcell.ModNone)
		if got := FromTcell(ev); got != NewChord(KeyBackspace, ModNone) {
			t.Errorf("FromTcell(%v) = %+v, want Backspace", code, got)
		}
	}
}
