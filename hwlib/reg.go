// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	hw "github.com/db47h/hwprobe"
	"github.com/db47h/hwprobe/bitvec"
	"github.com/pkg/errors"
)

// initValue parses an initial value for a wire of the given width. It panics
// on error, which is reported by hwprobe.NewCircuit.
//
func initValue(s string, width int) *bitvec.Value {
	if s == "" {
		return bitvec.New(width)
	}
	v, err := bitvec.Parse(s, width)
	if err != nil {
		panic(errors.Wrap(err, "initial value"))
	}
	return v
}

// Reg returns a NewPartFn for a clocked register with the given initial value.
// The en pin is optional.
//
//	Inputs: in, en
//	Outputs: out
//	Function: if reset then out(t) = init
//	          else if en != 0 then out(t) = in(t-1)
//	          else out(t) = out(t-1)
//
func Reg(init string) hw.NewPartFn {
	return (&hw.PartSpec{
		Name:    "Reg",
		Inputs:  []string{pIn, pEn},
		Outputs: []string{pOut},
		Mount: func(s *hw.Socket) []hw.Component {
			in, out := s.Wire(pIn), s.Wire(pOut)
			s.SameWidth(pIn, pOut)
			var en *bitvec.Value
			if s.Has(pEn) {
				en = s.Wire(pEn)
			}
			iv := initValue(init, out.Width())
			next := bitvec.New(out.Width())
			return []hw.Component{{
				Lo: func(c *hw.Circuit) {
					switch {
					case c.Reset():
						next.Copy(iv)
					case en == nil || !en.IsZero():
						next.Copy(in)
					default:
						next.Copy(out)
					}
				},
				Hi: func(*hw.Circuit) { out.Copy(next) },
			}}
		}}).NewPart
}

// DFF returns a register without enable pin, cleared on reset.
//
//	Inputs: in
//	Outputs: out
//	Function: out(t) = in(t-1) // where t is the current clock cycle.
//
func DFF(w string) hw.Part {
	return Reg("")(w)
}
