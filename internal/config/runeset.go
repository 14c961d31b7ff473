package config

import "sort"

// RuneSet is a set of characters, used for the word-break character
// configuration.
type RuneSet map[rune]struct{}

// NewRuneSet builds a set from the given runes.
func NewRuneSet(runes ...rune) RuneSet {
	s := make(RuneSet, len(runes))
	for _, r := range runes {
		s[r] = struct{}{}
	}
	return s
}

// Has reports whether the set contains r.
func (s RuneSet) Has(r rune) bool {
	_, ok := s[r]
	return ok
}

// Runes returns the members in sorted order, so the encoded form is
// deterministic.
func (s RuneSet) Runes() []rune {
	runes := make([]rune, 0, len(s))
	for r := range s {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}

// Equals reports whether two sets have the same members.
func (s RuneSet) Equals(other RuneSet) bool {
	if len(s) != len(other) {
		return false
	}
	for r := range s {
		if !other.Has(r) {
			return false
		}
	}
	return true
}
