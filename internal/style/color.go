package style

import (
	"fmt"
	"strconv"
	"strings"
)

type colorKind uint8

const (
	colorUnset colorKind = iota
	colorNamed
	colorIndexed
	colorRGB
)

// Color represents a terminal color.
// The zero value is "unset" and means the terminal's default color.
// Supports the 16-color ANSI palette by name, 256-color palette
// indices, and 24-bit RGB.
type Color struct {
	kind    colorKind
	index   uint8 // palette index for named/indexed colors
	r, g, b uint8
}

// The ANSI palette. Names follow the configuration document format;
// the dark variants are the classic 8 colors, the plain names the
// bright ones.
var (
	ColorBlack       = paletteColor(0)
	ColorDarkRed     = paletteColor(1)
	ColorDarkGreen   = paletteColor(2)
	ColorDarkYellow  = paletteColor(3)
	ColorDarkBlue    = paletteColor(4)
	ColorDarkMagenta = paletteColor(5)
	ColorDarkCyan    = paletteColor(6)
	ColorGrey        = paletteColor(7)
	ColorDarkGrey    = paletteColor(8)
	ColorRed         = paletteColor(9)
	ColorGreen       = paletteColor(10)
	ColorYellow      = paletteColor(11)
	ColorBlue        = paletteColor(12)
	ColorMagenta     = paletteColor(13)
	ColorCyan        = paletteColor(14)
	ColorWhite       = paletteColor(15)
)

func paletteColor(index uint8) Color {
	return Color{kind: colorNamed, index: index}
}

// ColorFromRGB creates a 24-bit color.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b}
}

// ColorFromIndex creates a 256-palette color.
func ColorFromIndex(index uint8) Color {
	return Color{kind: colorIndexed, index: index}
}

// IsSet reports whether the color carries a value.
// An unset color means the terminal default.
func (c Color) IsSet() bool {
	return c.kind != colorUnset
}

// RGB returns the color components for RGB colors.
// Only meaningful when the color was built with ColorFromRGB.
func (c Color) RGB() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// Index returns the palette index for named and indexed colors.
func (c Color) Index() uint8 {
	return c.index
}

// colorNames maps palette indices to canonical document names.
var colorNames = [16]string{
	"black", "dark_red", "dark_green", "dark_yellow",
	"dark_blue", "dark_magenta", "dark_cyan", "grey",
	"dark_grey", "red", "green", "yellow",
	"blue", "magenta", "cyan", "white",
}

// String returns the canonical document form: a palette name, a
// decimal palette index, or "#rrggbb". Unset colors return "".
func (c Color) String() string {
	switch c.kind {
	case colorNamed:
		return colorNames[c.index&0x0f]
	case colorIndexed:
		return strconv.Itoa(int(c.index))
	case colorRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	default:
		return ""
	}
}

// ParseColor parses a document color value: a palette name
// (case-insensitive, "gray"/"grey" both accepted), a decimal palette
// index (0-255), or a hex RGB value ("#rrggbb" or "#rgb").
func ParseColor(s string) (Color, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Color{}, &UnrecognizedColorError{Name: s}
	}

	if strings.HasPrefix(trimmed, "#") {
		return parseHexColor(s, strings.ToLower(trimmed[1:]))
	}

	if index, err := strconv.ParseUint(trimmed, 10, 8); err == nil {
		return ColorFromIndex(uint8(index)), nil
	}

	name := normalizeName(trimmed)
	for i, candidate := range colorNames {
		if name == candidate || name == strings.ReplaceAll(candidate, "grey", "gray") {
			return paletteColor(uint8(i)), nil
		}
	}

	return Color{}, &UnrecognizedColorError{Name: s}
}

// parseHexColor parses "rgb" and "rrggbb" hex payloads.
func parseHexColor(orig, hex string) (Color, error) {
	var r, g, b uint64
	var err error

	switch len(hex) {
	case 3:
		if r, err = strconv.ParseUint(hex[0:1], 16, 8); err != nil {
			return Color{}, &UnrecognizedColorError{Name: orig}
		}
		if g, err = strconv.ParseUint(hex[1:2], 16, 8); err != nil {
			return Color{}, &UnrecognizedColorError{Name: orig}
		}
		if b, err = strconv.ParseUint(hex[2:3], 16, 8); err != nil {
			return Color{}, &UnrecognizedColorError{Name: orig}
		}
		// Expand each nibble: F -> FF
		r, g, b = r*17, g*17, b*17
	case 6:
		if r, err = strconv.ParseUint(hex[0:2], 16, 8); err != nil {
			return Color{}, &UnrecognizedColorError{Name: orig}
		}
		if g, err = strconv.ParseUint(hex[2:4], 16, 8); err != nil {
			return Color{}, &UnrecognizedColorError{Name: orig}
		}
		if b, err = strconv.ParseUint(hex[4:6], 16, 8); err != nil {
			return Color{}, &UnrecognizedColorError{Name: orig}
		}
	default:
		return Color{}, &UnrecognizedColorError{Name: orig}
	}

	return ColorFromRGB(uint8(r), uint8(g), uint8(b)), nil
}

// normalizeName lowercases a name and canonicalizes separators so that
// "DarkGrey", "dark-grey", and "dark grey" all match "dark_grey".
func normalizeName(s string) string {
	s = strings.TrimSpace(s)
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	for i, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			if i > 0 {
				prev := s[i-1]
				if prev >= 'a' && prev <= 'z' {
					sb.WriteByte('_')
				}
			}
			sb.WriteRune(r - 'A' + 'a')
		case r == '-' || r == ' ':
			sb.WriteByte('_')
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
