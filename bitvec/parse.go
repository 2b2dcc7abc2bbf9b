// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitvec

import (
	"github.com/pkg/errors"
)

// ErrSyntax is the cause of all errors returned by SetString and Parse.
//
var ErrSyntax = errors.New("invalid syntax")

// radix detects the radix prefix of s. It returns the radix and the number of
// prefix characters to skip.
//
//	d       decimal
//	h x     hexadecimal
//	0h 0x   hexadecimal
//	b       binary
//	0b      binary
//
// Prefixes are case insensitive. Without prefix, the radix is 10.
//
func radix(s string) (int, int) {
	var c0, c1 byte
	if len(s) > 0 {
		c0 = lower(s[0])
	}
	if len(s) > 1 {
		c1 = lower(s[1])
	}
	switch {
	case c0 == 'd':
		return 10, 1
	case c0 == 'h' || c0 == 'x':
		return 16, 1
	case c0 == '0' && (c1 == 'h' || c1 == 'x'):
		return 16, 2
	case c0 == 'b':
		return 2, 1
	case c0 == '0' && c1 == 'b':
		return 2, 2
	}
	return 10, 0
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// digit returns the value of the digit c, or -1 if c is not a digit.
//
func digit(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return -1
}

// SetString sets v to the value of s truncated to the width of v.
//
// s is an optional radix prefix (see below) followed by digits in that radix.
// Underscores are ignored and can be used as digit separators. An empty digit
// string is 0.
//
//	d       decimal (default)
//	h, x    hexadecimal
//	0h, 0x  hexadecimal
//	b, 0b   binary
//
// Prefixes and digits are case insensitive. On failure, v is left unchanged
// and the returned error has ErrSyntax as its cause.
//
func (v *Value) SetString(s string) error {
	r, pos := radix(s)

	acc := New(v.width)
	base := New(v.width).SetUint64(1)
	prod := New(v.width)

	// digits are accumulated from the least significant one
	for i := len(s) - 1; i >= pos; i-- {
		c := s[i]
		if c == '_' {
			continue
		}
		d := digit(c)
		if d < 0 || d >= r {
			return errors.Wrapf(ErrSyntax, "invalid character %q at position %d in %q", c, i, s)
		}
		if base.IsZero() {
			// no more significant bits left in the width, keep validating.
			continue
		}
		acc.Add(acc, prod.MulWord(base, Word(d)))
		base.MulWord(base, Word(r))
	}
	v.Copy(acc)
	return nil
}

// Parse returns a new Value of the given width set to the value of s.
// See SetString for the syntax of s.
//
func Parse(s string, width int) (*Value, error) {
	v := New(width)
	if err := v.SetString(s); err != nil {
		return nil, err
	}
	return v, nil
}

// MustParse is like Parse but panics on error.
//
func MustParse(s string, width int) *Value {
	v, err := Parse(s, width)
	if err != nil {
		panic(err)
	}
	return v
}
