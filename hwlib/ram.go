// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	hw "github.com/db47h/hwprobe"
	"github.com/db47h/hwprobe/bitvec"
)

var ram = &hw.PartSpec{
	Name:     "RAM",
	Inputs:   []string{pRAddr, pWAddr, pWData, pWEn},
	Outputs:  []string{pRData},
	Memories: []string{pMem},
	Mount: func(s *hw.Socket) []hw.Component {
		m := s.Mem(pMem)
		var cs []hw.Component
		if s.Has(pRData) {
			raddr, rdata := s.Wire(pRAddr), s.Wire(pRData)
			s.CheckWidth(pRData, m.Width)
			cs = append(cs, hw.Component{
				Lo: func(*hw.Circuit) { rdata.Copy(m.CellAt(raddr)) },
			})
		}
		if s.Has(pWEn) {
			waddr, wdata, wen := s.Wire(pWAddr), s.Wire(pWData), s.Wire(pWEn)
			s.CheckWidth(pWData, m.Width)
			var (
				write bool
				cell  *bitvec.Value
				data  = bitvec.New(m.Width)
			)
			cs = append(cs, hw.Component{
				Lo: func(*hw.Circuit) {
					write = !wen.IsZero()
					if write {
						cell = m.CellAt(waddr)
						data.Copy(wdata)
					}
				},
				Hi: func(*hw.Circuit) {
					if write {
						cell.Copy(data)
					}
				},
			})
		}
		return cs
	}}

// RAM returns a random access memory with a combinational read port and a
// clocked write port. Addresses wrap around the memory depth. Either port can
// be left unconnected.
//
//	Memories: mem
//	Inputs: raddr, waddr, wdata, wen
//	Outputs: rdata
//	Function: rdata = mem[raddr]
//	          if wen != 0 then mem[waddr](t) = wdata(t-1)
//
func RAM(c string) hw.Part {
	return ram.NewPart(c)
}
