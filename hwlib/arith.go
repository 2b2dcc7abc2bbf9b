// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	hw "github.com/db47h/hwprobe"
	"github.com/db47h/hwprobe/bitvec"
)

var adder = &hw.PartSpec{
	Name:    "Add",
	Inputs:  []string{pA, pB},
	Outputs: []string{pOut},
	Mount: func(s *hw.Socket) []hw.Component {
		a, b, out := s.Wire(pA), s.Wire(pB), s.Wire(pOut)
		s.SameWidth(pA, pB, pOut)
		return []hw.Component{{
			Lo: func(*hw.Circuit) { out.Add(a, b) },
		}}
	}}

// Add returns an adder. The carry out is dropped.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a + b
//
func Add(c string) hw.Part {
	return adder.NewPart(c)
}

var subtracter = &hw.PartSpec{
	Name:    "Sub",
	Inputs:  []string{pA, pB},
	Outputs: []string{pOut},
	Mount: func(s *hw.Socket) []hw.Component {
		a, b, out := s.Wire(pA), s.Wire(pB), s.Wire(pOut)
		s.SameWidth(pA, pB, pOut)
		return []hw.Component{{
			Lo: func(*hw.Circuit) { out.Sub(a, b) },
		}}
	}}

// Sub returns a subtracter. The borrow is dropped.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a - b
//
func Sub(c string) hw.Part {
	return subtracter.NewPart(c)
}

// Counter returns a NewPartFn for a counter with the given initial value.
// The en pin is optional.
//
//	Inputs: en
//	Outputs: out
//	Function: if reset then out(t) = init
//	          else if en != 0 then out(t) = out(t-1) + 1
//	          else out(t) = out(t-1)
//
func Counter(init string) hw.NewPartFn {
	return (&hw.PartSpec{
		Name:    "Counter",
		Inputs:  []string{pEn},
		Outputs: []string{pOut},
		Mount: func(s *hw.Socket) []hw.Component {
			out := s.Wire(pOut)
			var en *bitvec.Value
			if s.Has(pEn) {
				en = s.Wire(pEn)
			}
			iv := initValue(init, out.Width())
			one := bitvec.New(out.Width()).SetUint64(1)
			next := bitvec.New(out.Width())
			return []hw.Component{{
				Lo: func(c *hw.Circuit) {
					switch {
					case c.Reset():
						next.Copy(iv)
					case en == nil || !en.IsZero():
						next.Add(out, one)
					default:
						next.Copy(out)
					}
				},
				Hi: func(*hw.Circuit) { out.Copy(next) },
			}}
		}}).NewPart
}
