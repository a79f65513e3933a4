package value

import (
	"strings"
	"unicode/utf16"
)

// String is a sequence of UTF-16 code units. Unpaired surrogates are allowed,
// so a String is not guaranteed to be valid encoded text.
type String []uint16

// StringOf encodes a Go string as UTF-16 code units.
func StringOf(s string) String {
	return String(utf16.Encode([]rune(s)))
}

// Len returns the number of code units.
func (s String) Len() int { return len(s) }

// Key returns a Go string holding the raw code units, suitable as a map key.
// Distinct Strings always produce distinct keys.
func (s String) Key() string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, u := range s {
		b.WriteByte(byte(u >> 8))
		b.WriteByte(byte(u))
	}
	return b.String()
}

// Text decodes s for display. Unpaired surrogates become U+FFFD.
func (s String) Text() string {
	return string(utf16.Decode(s))
}

// Equal reports whether s and t hold the same code units.
func (s String) Equal(t String) bool {
	if len(s) != len(t) {
		return false
	}
	for i := range s {
		if s[i] != t[i] {
			return false
		}
	}
	return true
}
