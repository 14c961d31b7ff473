// Package key defines keyboard chords for the JSON browser's editing
// and navigation commands.
//
// A Chord is a key press (a literal character or a named special key)
// plus a set of modifier flags. Chords are plain value types with
// structural equality; the configuration subsystem decodes them from
// their document form and the input loop matches incoming terminal
// events against them via the tcell adapter.
package key
