package domain

import (
	"fmt"
	"unicode/utf8"
)

// Char is a single text symbol. It encodes to JSON as a one-character string.
type Char rune

// String returns the symbol as text.
func (c Char) String() string { return string(rune(c)) }

// MarshalText implements encoding.TextMarshaler.
func (c Char) MarshalText() ([]byte, error) {
	return []byte(string(rune(c))), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Exactly one rune is accepted.
func (c *Char) UnmarshalText(b []byte) error {
	r, size := utf8.DecodeRune(b)
	if size == 0 || size != len(b) {
		return fmt.Errorf("char: want exactly one symbol, got %q", b)
	}
	*c = Char(r)
	return nil
}
