package config

import (
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/sheeeng/ynqa-jnv/internal/input/key"
	"github.com/sheeeng/ynqa-jnv/internal/style"
)

// Load parses TOML configuration bytes into a Config. Fields absent
// from the document keep their default value; an empty document
// yields Default exactly. Any present-but-invalid field aborts the
// whole parse.
func Load(data []byte) (Config, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return Config{}, NewParseError("", err)
	}
	return Parse(doc)
}

// Parse overlays a decoded document onto the defaults, field by field.
// The schema is closed: a field name that is not part of the
// configuration fails with *UnknownFieldError.
func Parse(doc map[string]any) (Config, error) {
	cfg := Default()
	for field, raw := range doc {
		if err := cfg.apply(field, raw); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// apply decodes one document field onto its Config slot.
func (c *Config) apply(field string, raw any) error {
	var err error
	switch field {
	case "query_debounce_duration_ms":
		c.QueryDebounceDuration, err = decodeDurationMS(raw)
	case "resize_debounce_duration_ms":
		c.ResizeDebounceDuration, err = decodeDurationMS(raw)
	case "spin_duration_ms":
		c.SpinDuration, err = decodeDurationMS(raw)
	case "search_result_chunk_size":
		c.SearchResultChunkSize, err = decodePositiveInt(raw)
	case "search_load_chunk_size":
		c.SearchLoadChunkSize, err = decodePositiveInt(raw)
	case "focus_prefix":
		c.FocusPrefix, err = decodeString(raw)
	case "defocus_prefix":
		c.DefocusPrefix, err = decodeString(raw)
	case "word_break_chars":
		c.WordBreakChars, err = decodeRuneSet(raw)

	case "active_item_style":
		c.ActiveItemStyle, err = decodeStyle(raw)
	case "inactive_item_style":
		c.InactiveItemStyle, err = decodeStyle(raw)
	case "prefix_style":
		c.PrefixStyle, err = decodeStyle(raw)
	case "active_char_style":
		c.ActiveCharStyle, err = decodeStyle(raw)
	case "inactive_char_style":
		c.InactiveCharStyle, err = decodeStyle(raw)
	case "focus_prefix_style":
		c.FocusPrefixStyle, err = decodeStyle(raw)
	case "focus_active_char_style":
		c.FocusActiveCharStyle, err = decodeStyle(raw)
	case "focus_inactive_char_style":
		c.FocusInactiveCharStyle, err = decodeStyle(raw)
	case "defocus_prefix_style":
		c.DefocusPrefixStyle, err = decodeStyle(raw)
	case "defocus_active_char_style":
		c.DefocusActiveCharStyle, err = decodeStyle(raw)
	case "defocus_inactive_char_style":
		c.DefocusInactiveCharStyle, err = decodeStyle(raw)
	case "curly_brackets_style":
		c.CurlyBracketsStyle, err = decodeStyle(raw)
	case "square_brackets_style":
		c.SquareBracketsStyle, err = decodeStyle(raw)
	case "key_style":
		c.KeyStyle, err = decodeStyle(raw)
	case "string_value_style":
		c.StringValueStyle, err = decodeStyle(raw)
	case "number_value_style":
		c.NumberValueStyle, err = decodeStyle(raw)
	case "boolean_value_style":
		c.BooleanValueStyle, err = decodeStyle(raw)
	case "null_value_style":
		c.NullValueStyle, err = decodeStyle(raw)

	case "move_to_tail":
		c.MoveToTail, err = decodeChord(raw)
	case "move_to_head":
		c.MoveToHead, err = decodeChord(raw)
	case "backward":
		c.Backward, err = decodeChord(raw)
	case "forward":
		c.Forward, err = decodeChord(raw)
	case "completion":
		c.Completion, err = decodeChord(raw)
	case "move_to_next_nearest":
		c.MoveToNextNearest, err = decodeChord(raw)
	case "move_to_previous_nearest":
		c.MoveToPreviousNearest, err = decodeChord(raw)
	case "erase":
		c.Erase, err = decodeChord(raw)
	case "erase_all":
		c.EraseAll, err = decodeChord(raw)
	case "erase_to_previous_nearest":
		c.EraseToPreviousNearest, err = decodeChord(raw)
	case "erase_to_next_nearest":
		c.EraseToNextNearest, err = decodeChord(raw)
	case "search_up":
		c.SearchUp, err = decodeChord(raw)
	case "search_down":
		c.SearchDown, err = decodeChord(raw)

	default:
		return &UnknownFieldError{Field: field}
	}

	if err != nil {
		return &FieldError{Field: field, Err: err}
	}
	return nil
}

func decodeString(raw any) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", &MalformedStructureError{Expected: "string", Actual: typeName(raw)}
	}
	return s, nil
}

func decodeInt(raw any) (int64, error) {
	switch v := raw.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	default:
		return 0, &MalformedStructureError{Expected: "integer", Actual: typeName(raw)}
	}
}

func decodePositiveInt(raw any) (int, error) {
	n, err := decodeInt(raw)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, &MalformedStructureError{Expected: "positive integer", Actual: typeName(raw)}
	}
	return int(n), nil
}

// decodeDurationMS decodes a non-negative integer count of
// milliseconds into a time.Duration.
func decodeDurationMS(raw any) (time.Duration, error) {
	n, err := decodeInt(raw)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, &InvalidDurationError{Value: n}
	}
	return time.Duration(n) * time.Millisecond, nil
}

// decodeRuneSet decodes a list of single-character strings.
func decodeRuneSet(raw any) (RuneSet, error) {
	items, ok := raw.([]any)
	if !ok {
		names, ok := raw.([]string)
		if !ok {
			return nil, &MalformedStructureError{Expected: "list of characters", Actual: typeName(raw)}
		}
		items = make([]any, len(names))
		for i, n := range names {
			items[i] = n
		}
	}
	set := make(RuneSet, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, &MalformedStructureError{Expected: "single character", Actual: typeName(item)}
		}
		runes := []rune(s)
		if len(runes) != 1 {
			return nil, &MalformedStructureError{Expected: "single character", Actual: "string"}
		}
		set[runes[0]] = struct{}{}
	}
	return set, nil
}

func decodeStyle(raw any) (style.Style, error) {
	doc, ok := raw.(map[string]any)
	if !ok {
		return style.Style{}, &MalformedStructureError{Expected: "style table", Actual: typeName(raw)}
	}
	return style.DecodeDocument(doc)
}

func decodeChord(raw any) (key.Chord, error) {
	doc, ok := raw.(map[string]any)
	if !ok {
		return key.Chord{}, &MalformedStructureError{Expected: "key chord table", Actual: typeName(raw)}
	}
	return key.DecodeDocument(doc)
}
