package style

import "github.com/gdamore/tcell/v2"

// Tcell converts the color to its tcell equivalent.
// Unset colors map to the terminal default.
func (c Color) Tcell() tcell.Color {
	switch c.kind {
	case colorNamed, colorIndexed:
		return tcell.PaletteColor(int(c.index))
	case colorRGB:
		return tcell.NewRGBColor(int32(c.r), int32(c.g), int32(c.b))
	default:
		return tcell.ColorDefault
	}
}

// Tcell converts the style to a tcell.Style for the rendering backend.
func (s Style) Tcell() tcell.Style {
	st := tcell.StyleDefault

	if s.Foreground.IsSet() {
		st = st.Foreground(s.Foreground.Tcell())
	}
	if s.Background.IsSet() {
		st = st.Background(s.Background.Tcell())
	}

	if s.Attributes.Has(AttrBold) {
		st = st.Bold(true)
	}
	if s.Attributes.Has(AttrDim) {
		st = st.Dim(true)
	}
	if s.Attributes.Has(AttrItalic) {
		st = st.Italic(true)
	}
	if s.Attributes.Has(AttrSlowBlink) || s.Attributes.Has(AttrRapidBlink) {
		st = st.Blink(true)
	}
	if s.Attributes.Has(AttrReverse) {
		st = st.Reverse(true)
	}
	if s.Attributes.Has(AttrCrossedOut) {
		st = st.StrikeThrough(true)
	}
	// tcell has no invisible attribute; AttrHidden is left to the
	// renderer, which blanks hidden cells itself.

	if s.Attributes.Has(AttrUnderlined) || s.Underline.IsSet() {
		if s.Underline.IsSet() {
			st = st.Underline(true, s.Underline.Tcell())
		} else {
			st = st.Underline(true)
		}
	}

	return st
}
