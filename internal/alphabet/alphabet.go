// Package alphabet provides the canonical A-Z letter domain shared by
// every classical cipher: normalization of free-form input and the
// letter/index mapping.
package alphabet

import "strings"

// Size is the number of letters in the cipher alphabet.
const Size = 26

// Filler is the conventional padding letter for block and digraph ciphers.
const Filler byte = 'X'

// AltFiller separates a doubled filler letter so Playfair digraphs
// never contain two identical letters.
const AltFiller byte = 'Q'

// Normalize strips every non-letter character and upper-cases the rest.
// It never fails; an empty result means the input had no usable letters.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c)
		case c >= 'a' && c <= 'z':
			b.WriteByte(c - 'a' + 'A')
		}
	}
	return b.String()
}

// IsLetter reports whether c is an ASCII letter in either case.
func IsLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// Index maps an upper-case letter to its 0-25 value.
func Index(c byte) int {
	return int(c - 'A')
}

// Letter maps a 0-25 value back to its upper-case letter.
func Letter(n int) byte {
	return byte('A' + n)
}
