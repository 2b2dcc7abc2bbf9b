// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import hw "github.com/db47h/hwprobe"

var mux = &hw.PartSpec{
	Name:    "Mux",
	Inputs:  []string{pA, pB, pSel},
	Outputs: []string{pOut},
	Mount: func(s *hw.Socket) []hw.Component {
		a, b, sel, out := s.Wire(pA), s.Wire(pB), s.Wire(pSel), s.Wire(pOut)
		s.SameWidth(pA, pB, pOut)
		return []hw.Component{{
			Lo: func(*hw.Circuit) {
				if sel.IsZero() {
					out.Copy(a)
				} else {
					out.Copy(b)
				}
			}}}
	}}

// Mux returns a multiplexer. The sel wire can be of any width.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: If sel=0 then out=a else out=b.
//
func Mux(c string) hw.Part {
	return mux.NewPart(c)
}
