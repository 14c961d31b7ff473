package config

import (
	"reflect"
	"testing"
)

func TestRuneSetHas(t *testing.T) {
	s := NewRuneSet('.', '|')
	if !s.Has('.') || !s.Has('|') {
		t.Error("set should contain its members")
	}
	if s.Has('x') {
		t.Error("set should not contain 'x'")
	}
}

func TestRuneSetRunesSorted(t *testing.T) {
	s := NewRuneSet('|', '.', '(')
	if got := s.Runes(); !reflect.DeepEqual(got, []rune{'(', '.', '|'}) {
		t.Errorf("Runes() = %q", string(got))
	}
}

func TestRuneSetEquals(t *testing.T) {
	if !NewRuneSet('a', 'b').Equals(NewRuneSet('b', 'a')) {
		t.Error("sets with the same members should be equal")
	}
	if NewRuneSet('a').Equals(NewRuneSet('a', 'b')) {
		t.Error("sets of different size should differ")
	}
	if NewRuneSet('a', 'c').Equals(NewRuneSet('a', 'b')) {
		t.Error("sets with different members should differ")
	}
}
