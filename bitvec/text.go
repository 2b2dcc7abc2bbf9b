// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitvec

import (
	"strconv"
	"strings"
)

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// largest power of 10 that fits in a Word.
const (
	decBase   Word = 10000000000000000000
	decDigits      = 19
)

// Text returns the representation of v in the given radix, without prefix.
// radix must be between 2 and 36.
//
func (v *Value) Text(radix int) string {
	if radix < 2 || radix > len(digits) {
		panic("bitvec: invalid radix " + strconv.Itoa(radix))
	}
	if v.IsUint64() {
		return strconv.FormatUint(v.Uint64(), radix)
	}
	switch radix {
	case 2, 4, 16, 32:
		return v.textPow2(radix)
	case 10:
		return v.textChunks(decBase, decDigits, 10)
	}
	return v.textChunks(Word(radix), 1, radix)
}

// textPow2 renders v in a power of two radix by shifting out groups of bits.
//
func (v *Value) textPow2(radix int) string {
	shift := 0
	for 1<<uint(shift) < radix {
		shift++
	}
	n := (v.width + shift - 1) / shift
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		d := 0
		for b := 0; b < shift; b++ {
			d |= int(v.Bit(i*shift+b)) << uint(b)
		}
		buf[n-1-i] = digits[d]
	}
	s := strings.TrimLeft(string(buf), "0")
	if s == "" {
		return "0"
	}
	return s
}

// textChunks renders v by repeated division by base, where base is radix**n.
//
func (v *Value) textChunks(base Word, n int, radix int) string {
	var chunks []string
	q := v.Clone()
	for !q.IsZero() {
		r := q.QuoWord(q, base)
		chunks = append(chunks, strconv.FormatUint(r, radix))
	}
	var b strings.Builder
	for i := len(chunks) - 1; i >= 0; i-- {
		if i < len(chunks)-1 {
			// inner chunks are zero padded
			for pad := n - len(chunks[i]); pad > 0; pad-- {
				b.WriteByte('0')
			}
		}
		b.WriteString(chunks[i])
	}
	return b.String()
}
