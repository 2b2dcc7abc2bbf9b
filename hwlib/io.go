// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	hw "github.com/db47h/hwprobe"
	"github.com/db47h/hwprobe/bitvec"
)

// Const returns a NewPartFn for a constant driver. The value is parsed like
// a poked value when the part is mounted.
//
//	Outputs: out
//	Function: out = value
//
func Const(value string) hw.NewPartFn {
	return (&hw.PartSpec{
		Name:    "Const",
		Outputs: []string{pOut},
		Mount: func(s *hw.Socket) []hw.Component {
			out := s.Wire(pOut)
			v := initValue(value, out.Width())
			out.Copy(v)
			return []hw.Component{{
				Lo: func(*hw.Circuit) { out.Copy(v) },
			}}
		}}).NewPart
}

// Input creates a function based input. f is called with the wire to update on
// every low clock phase.
//
//	Outputs: out
//	Function: f(out)
//
func Input(f func(out *bitvec.Value)) hw.NewPartFn {
	return (&hw.PartSpec{
		Name:    "Input",
		Outputs: []string{pOut},
		Mount: func(s *hw.Socket) []hw.Component {
			out := s.Wire(pOut)
			return []hw.Component{{
				Lo: func(*hw.Circuit) { f(out) },
			}}
		}}).NewPart
}

// Output creates an output or probe. f is called with the wire state on every
// high clock phase. f must not retain the value.
//
//	Inputs: in
//	Function: f(in)
//
func Output(f func(in *bitvec.Value)) hw.NewPartFn {
	return (&hw.PartSpec{
		Name:   "Output",
		Inputs: []string{pIn},
		Mount: func(s *hw.Socket) []hw.Component {
			in := s.Wire(pIn)
			return []hw.Component{{
				Hi: func(*hw.Circuit) { f(in) },
			}}
		}}).NewPart
}
