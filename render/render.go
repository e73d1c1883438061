// Package render formats LFSRs, Berlekamp-Massey runs and GF(2^8)
// tables as text.
package render

import (
	"fmt"
	"strings"
)

// Format says how symbols of a particular field are written.
type Format struct {
	// Digits is the number of hex digits per symbol.
	Digits int
	// Scaled is set for fields other than GF(2), where
	// coefficients are written out and multiplied in.
	Scaled bool
}

var (
	// GF2 writes single bits.
	GF2 = Format{Digits: 1}
	// GF256 writes bytes as two hex digits.
	GF256 = Format{Digits: 2, Scaled: true}
)

// Symbol formats a single symbol.
func (f Format) Symbol(x byte) string {
	return fmt.Sprintf("%0*x", f.Digits, x)
}

// Sequence formats s with symbols separated by spaces.
func (f Format) Sequence(s []byte) string {
	parts := make([]string, len(s))
	for i, x := range s {
		parts[i] = f.Symbol(x)
	}
	return strings.Join(parts, " ")
}

// Recurrence formats the polynomial l, lowest degree first, as a sum
// of terms in s_i, s_i-1 and so on.
func (f Format) Recurrence(l []byte) string {
	var terms []string
	for i, b := range l {
		if b == 0 {
			continue
		}
		term := "s_i"
		if i > 0 {
			term = fmt.Sprintf("s_i-%d", i)
		}
		if f.Scaled {
			term = f.Symbol(b) + " " + term
		}
		terms = append(terms, term)
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}

// Bytes converts a sequence of any byte-sized field element to
// bytes.
func Bytes[E ~uint8](s []E) []byte {
	r := make([]byte, len(s))
	for i, x := range s {
		r[i] = byte(x)
	}
	return r
}

// Reversed returns a reversed copy of s.
func Reversed(s []byte) []byte {
	r := make([]byte, len(s))
	for i, x := range s {
		r[len(s)-1-i] = x
	}
	return r
}
