// Package style defines terminal text styling values for the JSON
// browser: colors, text attributes, and the Style aggregate applied to
// UI regions and syntax-highlighted value types.
//
// Styles are plain value types with no dependency on a terminal
// library. The document (wire) form keeps colors and attributes as
// human-readable names; the tcell adapter converts resolved styles for
// the rendering backend.
package style
