package config

import (
	"github.com/pelletier/go-toml/v2"
)

// Document returns the resolved configuration in document form, with
// styles, chords, and colors as their wire names. Attribute lists and
// word-break characters are emitted in canonical order, so encoding
// equal configurations always produces equal documents.
func (c Config) Document() map[string]any {
	doc := map[string]any{
		"query_debounce_duration_ms":  c.QueryDebounceDuration.Milliseconds(),
		"resize_debounce_duration_ms": c.ResizeDebounceDuration.Milliseconds(),
		"spin_duration_ms":            c.SpinDuration.Milliseconds(),
		"search_result_chunk_size":    int64(c.SearchResultChunkSize),
		"search_load_chunk_size":      int64(c.SearchLoadChunkSize),
		"focus_prefix":                c.FocusPrefix,
		"defocus_prefix":              c.DefocusPrefix,

		"active_item_style":           c.ActiveItemStyle.Document(),
		"inactive_item_style":         c.InactiveItemStyle.Document(),
		"prefix_style":                c.PrefixStyle.Document(),
		"active_char_style":           c.ActiveCharStyle.Document(),
		"inactive_char_style":         c.InactiveCharStyle.Document(),
		"focus_prefix_style":          c.FocusPrefixStyle.Document(),
		"focus_active_char_style":     c.FocusActiveCharStyle.Document(),
		"focus_inactive_char_style":   c.FocusInactiveCharStyle.Document(),
		"defocus_prefix_style":        c.DefocusPrefixStyle.Document(),
		"defocus_active_char_style":   c.DefocusActiveCharStyle.Document(),
		"defocus_inactive_char_style": c.DefocusInactiveCharStyle.Document(),
		"curly_brackets_style":        c.CurlyBracketsStyle.Document(),
		"square_brackets_style":       c.SquareBracketsStyle.Document(),
		"key_style":                   c.KeyStyle.Document(),
		"string_value_style":          c.StringValueStyle.Document(),
		"number_value_style":          c.NumberValueStyle.Document(),
		"boolean_value_style":         c.BooleanValueStyle.Document(),
		"null_value_style":            c.NullValueStyle.Document(),

		"move_to_tail":              c.MoveToTail.Document(),
		"move_to_head":              c.MoveToHead.Document(),
		"backward":                  c.Backward.Document(),
		"forward":                   c.Forward.Document(),
		"completion":                c.Completion.Document(),
		"move_to_next_nearest":      c.MoveToNextNearest.Document(),
		"move_to_previous_nearest":  c.MoveToPreviousNearest.Document(),
		"erase":                     c.Erase.Document(),
		"erase_all":                 c.EraseAll.Document(),
		"erase_to_previous_nearest": c.EraseToPreviousNearest.Document(),
		"erase_to_next_nearest":     c.EraseToNextNearest.Document(),
		"search_up":                 c.SearchUp.Document(),
		"search_down":               c.SearchDown.Document(),
	}

	chars := make([]string, 0, len(c.WordBreakChars))
	for _, r := range c.WordBreakChars.Runes() {
		chars = append(chars, string(r))
	}
	doc["word_break_chars"] = chars

	return doc
}

// TOML renders the resolved configuration as a TOML document.
func (c Config) TOML() ([]byte, error) {
	return toml.Marshal(c.Document())
}
