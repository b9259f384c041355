// Package digits holds the digit sequence every view draws from.
package digits

import (
	"errors"
	"fmt"
	"strings"
)

// Pi is the fixed sequence shown by default in every view.
const Pi = "3.14159265358979323846"

// point marks the decimal point in a parsed sequence.
const point = -1

// ErrInvalidDigit is returned by Parse for characters other than 0-9 and '.'.
var ErrInvalidDigit = errors.New("invalid digit")

// Sequence is an immutable, index addressable run of decimal digits that may
// contain a single decimal point marker.
type Sequence struct {
	text   string
	values []int
}

// Parse builds a Sequence from its textual form.
func Parse(s string) (Sequence, error) {
	if s == "" {
		return Sequence{}, fmt.Errorf("parse %q: empty sequence", s)
	}
	values := make([]int, 0, len(s))
	points := 0
	for i, r := range s {
		switch {
		case r == '.':
			points++
			if points > 1 {
				return Sequence{}, fmt.Errorf("parse %q: second decimal point at %d: %w", s, i, ErrInvalidDigit)
			}
			values = append(values, point)
		case r >= '0' && r <= '9':
			values = append(values, int(r-'0'))
		default:
			return Sequence{}, fmt.Errorf("parse %q: %q at %d: %w", s, r, i, ErrInvalidDigit)
		}
	}
	return Sequence{text: s, values: values}, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Sequence {
	seq, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return seq
}

// Default returns the fixed π sequence.
func Default() Sequence {
	return MustParse(Pi)
}

// Generate returns the first n decimal digits of π (the leading 3 included)
// with the decimal point after the first digit.
func Generate(n int) (Sequence, error) {
	if n < 1 {
		return Sequence{}, fmt.Errorf("generate %d digits: count must be positive", n)
	}
	d := spigot(n)
	if n == 1 {
		return Parse(d)
	}
	return Parse(d[:1] + "." + d[1:])
}

// Len is the number of entries, the decimal point included.
func (s Sequence) Len() int {
	return len(s.values)
}

// Digit reports the value at index i. ok is false for the decimal point and
// for indexes outside the sequence.
func (s Sequence) Digit(i int) (value int, ok bool) {
	if i < 0 || i >= len(s.values) {
		return 0, false
	}
	v := s.values[i]
	if v == point {
		return 0, false
	}
	return v, true
}

// Char returns the entry at index i as printed, or "" outside the sequence.
func (s Sequence) Char(i int) string {
	if i < 0 || i >= len(s.text) {
		return ""
	}
	return s.text[i : i+1]
}

// Digits counts the numeric entries.
func (s Sequence) Digits() int {
	return len(s.values) - strings.Count(s.text, ".")
}

func (s Sequence) String() string {
	return s.text
}
