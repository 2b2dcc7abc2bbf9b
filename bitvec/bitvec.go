// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package bitvec implements fixed width bit vectors packed into 64 bits words.
//
// A Value holds exactly Width() bits stored in Words(width) words, word 0 being
// the least significant. Bits above the width in the last word are always zero
// after any mutating operation.
//
// Arithmetic is modulo 2**width. Operations follow the math/big convention:
// the receiver is the destination and is returned so that calls can be
// chained. Operands must have the same width as the receiver.
//
package bitvec

import (
	"strconv"
	"strings"
)

// A Word is the storage unit of a Value.
//
type Word = uint64

// WordBits is the size of a Word in bits.
//
const WordBits = 64

// Words returns the number of words needed to store width bits.
//
func Words(width int) int {
	return (width + WordBits - 1) / WordBits
}

// Value is a fixed width bit vector.
//
// The zero Value is a read-only zero-width vector that reads as 0. Use New to
// create a useful one.
//
type Value struct {
	width int
	words []Word
}

// New returns a new zeroed Value of the given bit width.
// It panics if width < 1.
//
func New(width int) *Value {
	if width < 1 {
		panic("bitvec: invalid width")
	}
	return &Value{width: width, words: make([]Word, Words(width))}
}

// Make returns n zeroed values of the given bit width stored contiguously.
//
func Make(width, n int) []Value {
	if width < 1 {
		panic("bitvec: invalid width")
	}
	nw := Words(width)
	backing := make([]Word, n*nw)
	vs := make([]Value, n)
	for i := range vs {
		vs[i] = Value{width: width, words: backing[i*nw : (i+1)*nw : (i+1)*nw]}
	}
	return vs
}

// Width returns the bit width of v.
//
func (v *Value) Width() int { return v.width }

// Bits returns the underlying words of v, least significant first.
// The returned slice shares v's storage.
//
func (v *Value) Bits() []Word { return v.words }

// normalize clears the bits above the width in the last word.
//
func (v *Value) normalize() *Value {
	if r := v.width % WordBits; r != 0 {
		v.words[len(v.words)-1] &= 1<<uint(r) - 1
	}
	return v
}

func checkWidth(a, b *Value) {
	if a.width != b.width {
		panic("bitvec: width mismatch")
	}
}

// Zero sets all bits of v to 0 and returns v.
//
func (v *Value) Zero() *Value {
	for i := range v.words {
		v.words[i] = 0
	}
	return v
}

// Copy sets v to x and returns v.
//
func (v *Value) Copy(x *Value) *Value {
	checkWidth(v, x)
	copy(v.words, x.words)
	return v
}

// Clone returns a new Value equal to v.
//
func (v *Value) Clone() *Value {
	return New(v.width).Copy(v)
}

// SetUint64 zeroes v, stores x in its low word and returns v. x is truncated
// to the width of v.
//
func (v *Value) SetUint64(x Word) *Value {
	v.Zero()
	v.words[0] = x
	return v.normalize()
}

// Uint64 returns the low 64 bits of v.
//
func (v *Value) Uint64() uint64 {
	if len(v.words) == 0 {
		return 0
	}
	return v.words[0]
}

// IsUint64 reports whether v fits in a uint64.
//
func (v *Value) IsUint64() bool {
	if len(v.words) < 2 {
		return true
	}
	for _, w := range v.words[1:] {
		if w != 0 {
			return false
		}
	}
	return true
}

// IsZero reports whether all bits of v are 0.
//
func (v *Value) IsZero() bool {
	for _, w := range v.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Bit returns the value of the i'th bit of v.
//
func (v *Value) Bit(i int) uint {
	if i < 0 || i >= v.width {
		return 0
	}
	return uint(v.words[i/WordBits]>>uint(i%WordBits)) & 1
}

// Equal reports whether v and x hold the same bits. Values of different widths
// are never equal.
//
func (v *Value) Equal(x *Value) bool {
	if v.width != x.width {
		return false
	}
	for i, w := range v.words {
		if w != x.words[i] {
			return false
		}
	}
	return true
}

// Cmp compares v and x as unsigned integers and returns -1, 0 or +1.
// It panics if the widths differ.
//
func (v *Value) Cmp(x *Value) int {
	checkWidth(v, x)
	for i := len(v.words) - 1; i >= 0; i-- {
		switch a, b := v.words[i], x.words[i]; {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}
	return 0
}

// String returns the decimal representation of v.
//
func (v *Value) String() string {
	return v.Text(10)
}

// GoString implements fmt.GoStringer.
//
func (v *Value) GoString() string {
	var b strings.Builder
	b.WriteString("bitvec.Value{")
	b.WriteString(strconv.Itoa(v.width))
	b.WriteString(":0x")
	b.WriteString(v.Text(16))
	b.WriteByte('}')
	return b.String()
}
