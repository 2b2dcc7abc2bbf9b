// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwprobe

import (
	"github.com/db47h/hwprobe/bitvec"
	"github.com/pkg/errors"
)

// A Socket maps a part's pin names to the wires and memories they are
// connected to in a circuit.
//
// Socket methods panic when a pin is not connected or has the wrong kind.
// Use Has to probe optional pins.
//
type Socket struct {
	p *Part
	c *Circuit
}

// Circuit returns the circuit the part is being mounted in.
//
func (s *Socket) Circuit() *Circuit { return s.c }

// Has returns true if the given pin is connected.
//
func (s *Socket) Has(pin string) bool {
	_, ok := s.p.Conns[pin]
	return ok
}

// Wire returns the wire connected to the given pin.
//
func (s *Socket) Wire(pin string) *bitvec.Value {
	name, ok := s.p.Conns[pin]
	if !ok {
		panic(errors.Errorf("pin %s not connected", pin))
	}
	w := s.c.wires[name]
	if w == nil {
		panic(errors.Errorf("pin %s: %s is not a wire", pin, name))
	}
	return w
}

// Mem returns the memory connected to the given pin.
//
func (s *Socket) Mem(pin string) *Mem {
	name, ok := s.p.Conns[pin]
	if !ok {
		panic(errors.Errorf("pin %s not connected", pin))
	}
	m := s.c.mems[name]
	if m == nil {
		panic(errors.Errorf("pin %s: %s is not a memory", pin, name))
	}
	return m
}

// Width returns the width of the wire connected to the given pin.
//
func (s *Socket) Width(pin string) int {
	return s.Wire(pin).Width()
}

// SameWidth checks that the wires connected to the given pins all have the
// same width.
//
func (s *Socket) SameWidth(pins ...string) {
	if len(pins) == 0 {
		return
	}
	w := s.Width(pins[0])
	for _, p := range pins[1:] {
		if pw := s.Width(p); pw != w {
			panic(errors.Errorf("width mismatch: %s is %d bits, %s is %d bits", pins[0], w, p, pw))
		}
	}
}

// CheckWidth checks that the wire connected to pin is exactly width bits wide.
//
func (s *Socket) CheckWidth(pin string, width int) {
	if w := s.Width(pin); w != width {
		panic(errors.Errorf("pin %s: expected %d bits wire, got %d", pin, width, w))
	}
}
