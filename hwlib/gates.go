// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of reusable parts for hwprobe.
//
// All parts operate on whole wires. Unless stated otherwise, the wires
// connected to a part's data pins must have the same width.
//
package hwlib

import (
	hw "github.com/db47h/hwprobe"
	"github.com/db47h/hwprobe/bitvec"
)

// common pin names
const (
	pA     = "a"
	pB     = "b"
	pIn    = "in"
	pSel   = "sel"
	pOut   = "out"
	pEn    = "en"
	pMem   = "mem"
	pRAddr = "raddr"
	pRData = "rdata"
	pWAddr = "waddr"
	pWData = "wdata"
	pWEn   = "wen"
)

var notGate = &hw.PartSpec{Name: "Not", Inputs: []string{pIn}, Outputs: []string{pOut},
	Mount: func(s *hw.Socket) []hw.Component {
		in, out := s.Wire(pIn), s.Wire(pOut)
		s.SameWidth(pIn, pOut)
		return []hw.Component{{
			Lo: func(*hw.Circuit) { out.Not(in) },
		}}
	},
}

// Not returns a bitwise NOT gate.
//
//	Inputs: in
//	Outputs: out
//	Function: out = ^in
//
func Not(w string) hw.Part {
	return notGate.NewPart(w)
}

// other gates
type gate func(out, a, b *bitvec.Value) *bitvec.Value

func (g gate) mount(s *hw.Socket) []hw.Component {
	a, b, out := s.Wire(pA), s.Wire(pB), s.Wire(pOut)
	s.SameWidth(pA, pB, pOut)
	return []hw.Component{{
		Lo: func(*hw.Circuit) { g(out, a, b) },
	}}
}

func newGate(name string, fn gate) *hw.PartSpec {
	return &hw.PartSpec{
		Name:    name,
		Inputs:  gateIn,
		Outputs: gateOut,
		Mount:   fn.mount,
	}
}

var (
	gateIn  = []string{pA, pB}
	gateOut = []string{pOut}

	and = newGate("And", (*bitvec.Value).And)
	or  = newGate("Or", (*bitvec.Value).Or)
	xor = newGate("Xor", (*bitvec.Value).Xor)
)

// And returns a bitwise AND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a & b
//
func And(w string) hw.Part { return and.NewPart(w) }

// Or returns a bitwise OR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a | b
//
func Or(w string) hw.Part { return or.NewPart(w) }

// Xor returns a bitwise XOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a ^ b
//
func Xor(w string) hw.Part { return xor.NewPart(w) }
