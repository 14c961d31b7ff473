package config

import (
	"time"

	"github.com/sheeeng/ynqa-jnv/internal/input/key"
	"github.com/sheeeng/ynqa-jnv/internal/style"
)

// Config holds every tunable value the application needs. It is
// constructed once at startup, either from Default or by parsing a
// user document over the defaults, and never mutated afterwards.
type Config struct {
	// Duration to debounce query events.
	QueryDebounceDuration time.Duration

	// Duration to debounce resize events.
	ResizeDebounceDuration time.Duration

	// Interval between spinner frames while a search is loading.
	SpinDuration time.Duration

	// Number of search results rendered per chunk.
	SearchResultChunkSize int

	// Number of items loaded into the search index per chunk.
	SearchLoadChunkSize int

	// Styles for the result list.
	ActiveItemStyle   style.Style
	InactiveItemStyle style.Style

	// Styles for the query editor.
	PrefixStyle       style.Style
	ActiveCharStyle   style.Style
	InactiveCharStyle style.Style

	// Prefix and styles while the editor has focus.
	FocusPrefix            string
	FocusPrefixStyle       style.Style
	FocusActiveCharStyle   style.Style
	FocusInactiveCharStyle style.Style

	// Prefix and styles while the editor is defocused.
	DefocusPrefix            string
	DefocusPrefixStyle       style.Style
	DefocusActiveCharStyle   style.Style
	DefocusInactiveCharStyle style.Style

	// Syntax styles for rendered JSON.
	CurlyBracketsStyle  style.Style
	SquareBracketsStyle style.Style
	KeyStyle            style.Style
	StringValueStyle    style.Style
	NumberValueStyle    style.Style
	BooleanValueStyle   style.Style
	NullValueStyle      style.Style

	// Characters that delimit words in the query editor.
	WordBreakChars RuneSet

	// Editing and navigation bindings.
	MoveToTail             key.Chord
	MoveToHead             key.Chord
	Backward               key.Chord
	Forward                key.Chord
	Completion             key.Chord
	MoveToNextNearest      key.Chord
	MoveToPreviousNearest  key.Chord
	Erase                  key.Chord
	EraseAll               key.Chord
	EraseToPreviousNearest key.Chord
	EraseToNextNearest     key.Chord
	SearchUp               key.Chord
	SearchDown             key.Chord
}

// Default returns the built-in configuration. It is the complete
// fallback when no document exists and the base every parsed document
// is overlaid onto; construction never fails.
func Default() Config {
	return Config{
		QueryDebounceDuration:  600 * time.Millisecond,
		ResizeDebounceDuration: 200 * time.Millisecond,
		SpinDuration:           300 * time.Millisecond,
		SearchResultChunkSize:  100,
		SearchLoadChunkSize:    50000,

		ActiveItemStyle: style.New().
			WithForeground(style.ColorGrey).
			WithBackground(style.ColorYellow),
		InactiveItemStyle: style.New().WithForeground(style.ColorGrey),

		PrefixStyle:       style.New().WithForeground(style.ColorBlue),
		ActiveCharStyle:   style.New().WithBackground(style.ColorMagenta),
		InactiveCharStyle: style.New(),

		FocusPrefix:            "❯❯ ",
		FocusPrefixStyle:       style.New().WithForeground(style.ColorBlue),
		FocusActiveCharStyle:   style.New().WithBackground(style.ColorMagenta),
		FocusInactiveCharStyle: style.New(),

		DefocusPrefix: "▼",
		DefocusPrefixStyle: style.New().
			WithForeground(style.ColorBlue).
			WithAttributes(style.AttrDim),
		DefocusActiveCharStyle:   style.New().WithAttributes(style.AttrDim),
		DefocusInactiveCharStyle: style.New().WithAttributes(style.AttrDim),

		CurlyBracketsStyle:  style.New().WithAttributes(style.AttrBold),
		SquareBracketsStyle: style.New().WithAttributes(style.AttrBold),
		KeyStyle:            style.New().WithForeground(style.ColorCyan),
		StringValueStyle:    style.New().WithForeground(style.ColorGreen),
		NumberValueStyle:    style.New(),
		BooleanValueStyle:   style.New(),
		NullValueStyle:      style.New().WithForeground(style.ColorGrey),

		WordBreakChars: NewRuneSet('.', '|', '(', ')', '[', ']'),

		MoveToTail:             key.NewRuneChord('e', key.ModCtrl),
		MoveToHead:             key.NewRuneChord('a', key.ModCtrl),
		Backward:               key.NewChord(key.KeyLeft, key.ModNone),
		Forward:                key.NewChord(key.KeyRight, key.ModNone),
		Completion:             key.NewChord(key.KeyTab, key.ModNone),
		MoveToNextNearest:      key.NewRuneChord('f', key.ModAlt),
		MoveToPreviousNearest:  key.NewRuneChord('b', key.ModAlt),
		Erase:                  key.NewChord(key.KeyBackspace, key.ModNone),
		EraseAll:               key.NewRuneChord('u', key.ModCtrl),
		EraseToPreviousNearest: key.NewRuneChord('w', key.ModCtrl),
		EraseToNextNearest:     key.NewRuneChord('d', key.ModCtrl),
		SearchUp:               key.NewChord(key.KeyUp, key.ModNone),
		SearchDown:             key.NewChord(key.KeyDown, key.ModNone),
	}
}
