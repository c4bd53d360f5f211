package domain

import "strings"

// Sequence is an ordered, read-only list of symbols. Index 0 is the first symbol.
type Sequence[T comparable] struct {
	symbols []T
}

// NewSequence copies symbols into a new Sequence.
func NewSequence[T comparable](symbols ...T) Sequence[T] {
	return Sequence[T]{symbols: append([]T(nil), symbols...)}
}

// FromString splits s into one Char per rune.
func FromString(s string) Sequence[Char] {
	out := make([]Char, 0, len(s))
	for _, r := range s {
		out = append(out, Char(r))
	}
	return Sequence[Char]{symbols: out}
}

// Len returns the number of symbols.
func (s Sequence[T]) Len() int { return len(s.symbols) }

// At returns the symbol at index i. It panics if i is out of range.
func (s Sequence[T]) At(i int) T { return s.symbols[i] }

// Symbols returns a copy of the underlying symbols.
func (s Sequence[T]) Symbols() []T { return append([]T(nil), s.symbols...) }

// Equal reports whether s and o hold the same symbols in the same order.
func (s Sequence[T]) Equal(o Sequence[T]) bool {
	if len(s.symbols) != len(o.symbols) {
		return false
	}
	for i := range s.symbols {
		if s.symbols[i] != o.symbols[i] {
			return false
		}
	}
	return true
}

// String concatenates the textual form of every symbol.
func (s Sequence[T]) String() string {
	var b strings.Builder
	for _, v := range s.symbols {
		b.WriteString(symbolString(v))
	}
	return b.String()
}
