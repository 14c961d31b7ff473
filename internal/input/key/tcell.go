package key

import "github.com/gdamore/tcell/v2"

// tcellKeys maps named keys to their tcell equivalents.
var tcellKeys = map[Key]tcell.Key{
	KeyEscape:    tcell.KeyEscape,
	KeyEnter:     tcell.KeyEnter,
	KeyTab:       tcell.KeyTab,
	KeyBackTab:   tcell.KeyBacktab,
	KeyBackspace: tcell.KeyBackspace2,
	KeyDelete:    tcell.KeyDelete,
	KeyInsert:    tcell.KeyInsert,
	KeyHome:      tcell.KeyHome,
	KeyEnd:       tcell.KeyEnd,
	KeyPageUp:    tcell.KeyPgUp,
	KeyPageDown:  tcell.KeyPgDn,
	KeyUp:        tcell.KeyUp,
	KeyDown:      tcell.KeyDown,
	KeyLeft:      tcell.KeyLeft,
	KeyRight:     tcell.KeyRight,
	KeyF1:        tcell.KeyF1,
	KeyF2:        tcell.KeyF2,
	KeyF3:        tcell.KeyF3,
	KeyF4:        tcell.KeyF4,
	KeyF5:        tcell.KeyF5,
	KeyF6:        tcell.KeyF6,
	KeyF7:        tcell.KeyF7,
	KeyF8:        tcell.KeyF8,
	KeyF9:        tcell.KeyF9,
	KeyF10:       tcell.KeyF10,
	KeyF11:       tcell.KeyF11,
	KeyF12:       tcell.KeyF12,
}

// fromTcellKeys is the reverse mapping, built once at init.
var fromTcellKeys = func() map[tcell.Key]Key {
	m := make(map[tcell.Key]Key, len(tcellKeys)+1)
	for k, tk := range tcellKeys {
		m[tk] = k
	}
	// tcell distinguishes the two backspace codes; both mean Backspace.
	m[tcell.KeyBackspace] = KeyBackspace
	return m
}()

func modsToTcell(m Modifier) tcell.ModMask {
	var mask tcell.ModMask
	if m.Has(ModShift) {
		mask |= tcell.ModShift
	}
	if m.Has(ModCtrl) {
		mask |= tcell.ModCtrl
	}
	if m.Has(ModAlt) {
		mask |= tcell.ModAlt
	}
	if m.Has(ModMeta) {
		mask |= tcell.ModMeta
	}
	return mask
}

func modsFromTcell(mask tcell.ModMask) Modifier {
	var m Modifier
	if mask&tcell.ModShift != 0 {
		m = m.With(ModShift)
	}
	if mask&tcell.ModCtrl != 0 {
		m = m.With(ModCtrl)
	}
	if mask&tcell.ModAlt != 0 {
		m = m.With(ModAlt)
	}
	if mask&tcell.ModMeta != 0 {
		m = m.With(ModMeta)
	}
	return m
}

// Tcell converts the chord to a tcell key event.
func (c Chord) Tcell() *tcell.EventKey {
	mask := modsToTcell(c.Modifiers)
	if c.Key == KeyRune {
		if c.Modifiers.Has(ModCtrl) && c.Rune >= 'a' && c.Rune <= 'z' {
			// Terminals deliver Ctrl+letter as a control code.
			k := tcell.Key(c.Rune - 'a' + 1)
			return tcell.NewEventKey(k, c.Rune, mask)
		}
		return tcell.NewEventKey(tcell.KeyRune, c.Rune, mask)
	}
	if tk, ok := tcellKeys[c.Key]; ok {
		return tcell.NewEventKey(tk, 0, mask)
	}
	return tcell.NewEventKey(tcell.KeyNUL, 0, mask)
}

// FromTcell converts an incoming tcell key event to a chord so it can
// be compared against configured bindings.
func FromTcell(ev *tcell.EventKey) Chord {
	mods := modsFromTcell(ev.Modifiers())

	switch {
	case ev.Key() == tcell.KeyRune:
		return NewRuneChord(ev.Rune(), mods)
	case ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ:
		// Control codes that are not named keys (Tab, Enter, etc.)
		// translate back to Ctrl+letter.
		if k, ok := fromTcellKeys[ev.Key()]; ok {
			return NewChord(k, mods)
		}
		r := rune(ev.Key()-tcell.KeyCtrlA) + 'a'
		return NewRuneChord(r, mods.With(ModCtrl))
	default:
		if k, ok := fromTcellKeys[ev.Key()]; ok {
			return NewChord(k, mods)
		}
		return Chord{Modifiers: mods}
	}
}
