// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitvec

import "math/bits"

// Add sets v to the sum x+y truncated to the width of v and returns v.
// v may alias x or y.
//
func (v *Value) Add(x, y *Value) *Value {
	checkWidth(v, x)
	checkWidth(v, y)
	var carry Word
	for i := range v.words {
		v.words[i], carry = bits.Add64(x.words[i], y.words[i], carry)
	}
	return v.normalize()
}

// Sub sets v to the difference x-y modulo 2**width and returns v.
// v may alias x or y.
//
func (v *Value) Sub(x, y *Value) *Value {
	checkWidth(v, x)
	checkWidth(v, y)
	var borrow Word
	for i := range v.words {
		v.words[i], borrow = bits.Sub64(x.words[i], y.words[i], borrow)
	}
	return v.normalize()
}

// MulWord sets v to the product x*y truncated to the width of v and returns v.
// v may alias x.
//
func (v *Value) MulWord(x *Value, y Word) *Value {
	checkWidth(v, x)
	var carry Word
	for i := range v.words {
		hi, lo := bits.Mul64(x.words[i], y)
		var c Word
		lo, c = bits.Add64(lo, carry, 0)
		v.words[i] = lo
		carry = hi + c
	}
	return v.normalize()
}

// QuoWord sets v to the quotient x/y and returns the remainder x%y.
// v may alias x. QuoWord panics if y is 0.
//
func (v *Value) QuoWord(x *Value, y Word) (r Word) {
	checkWidth(v, x)
	if y == 0 {
		panic("bitvec: division by zero")
	}
	for i := len(v.words) - 1; i >= 0; i-- {
		v.words[i], r = bits.Div64(r, x.words[i], y)
	}
	return r
}

// And sets v to the bitwise x&y and returns v.
//
func (v *Value) And(x, y *Value) *Value {
	checkWidth(v, x)
	checkWidth(v, y)
	for i := range v.words {
		v.words[i] = x.words[i] & y.words[i]
	}
	return v
}

// Or sets v to the bitwise x|y and returns v.
//
func (v *Value) Or(x, y *Value) *Value {
	checkWidth(v, x)
	checkWidth(v, y)
	for i := range v.words {
		v.words[i] = x.words[i] | y.words[i]
	}
	return v
}

// Xor sets v to the bitwise x^y and returns v.
//
func (v *Value) Xor(x, y *Value) *Value {
	checkWidth(v, x)
	checkWidth(v, y)
	for i := range v.words {
		v.words[i] = x.words[i] ^ y.words[i]
	}
	return v
}

// Not sets v to the bitwise complement of x and returns v.
//
func (v *Value) Not(x *Value) *Value {
	checkWidth(v, x)
	for i := range v.words {
		v.words[i] = ^x.words[i]
	}
	return v.normalize()
}
