// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwprobe

import (
	"fmt"
	"sort"
	"strings"

	"github.com/db47h/hwprobe/api"
	"github.com/db47h/hwprobe/bitvec"
	"github.com/pkg/errors"
)

// An Updater updates the state of a circuit during one clock phase.
//
type Updater func(c *Circuit)

// A Component is an element of a circuit.
//
// Lo is called during the low phase of the clock. It must settle combinational
// outputs or compute the next state of sequential elements. Hi is called
// during the high phase and commits that state. Components with a nil Hi are
// combinational.
//
// In the low phase, combinational components are updated first, in mount
// order, then sequential ones. Sequential components therefore always sample
// settled inputs.
//
type Component struct {
	Lo Updater
	Hi Updater
}

// A MountFn mounts a part into socket s. MountFn's should query the socket
// for the wires connected to the part's pins and return closures around
// these wires.
//
// For example, an adder can be defined like this:
//
//	add := &PartSpec{
//		Name: "Add",
//		Inputs: []string{"a", "b"},
//		Outputs: []string{"out"},
//		Mount: func(s *Socket) []Component {
//			a, b, out := s.Wire("a"), s.Wire("b"), s.Wire("out")
//			s.SameWidth("a", "b", "out")
//			return []Component{{
//				Lo: func(c *Circuit) { out.Add(a, b) },
//			}}
//		}}
//
// Socket methods panic on invalid connections. NewCircuit recovers these
// panics and returns them as errors.
//
type MountFn func(s *Socket) []Component

// A PartSpec wraps a part specification (its blueprint).
//
type PartSpec struct {
	// Part name.
	Name string
	// Input pin names.
	Inputs []string
	// Output pin names. A wire can be connected to at most one output pin.
	Outputs []string
	// Memory pin names. Memory pins connect to memories instead of wires.
	Memories []string
	// Mount function (see MountFn).
	Mount MountFn
}

// NewPart is a NewPartFn that wraps p with the given connections into a Part.
// It panics if the connection string is malformed.
//
func (p *PartSpec) NewPart(connections string) Part {
	w, err := ParseConnections(connections)
	if err != nil {
		panic(err)
	}
	return Part{PartSpec: p, Conns: w}
}

// A NewPartFn is a function that takes a connection configuration and returns
// a new Part. See ParseConnections for the syntax of the connection string.
//
type NewPartFn func(c string) Part

// A Part wraps a part specification together with its connections within a
// circuit.
//
type Part struct {
	*PartSpec
	Conns W
	// Clock domain of the part's components.
	Clock int
}

// OnClock returns a copy of p assigned to the given clock domain.
//
func (p Part) OnClock(domain int) Part {
	p.Clock = domain
	return p
}

// Parts is a convenience wrapper for []Part.
//
type Parts []Part

// A WireSpec declares a wire. A dotted name like "alu.acc" places the wire in
// a sub-path of the circuit.
//
type WireSpec struct {
	Name  string
	Width int
}

// A MemSpec declares a memory of Depth elements of Width bits.
//
type MemSpec struct {
	Name  string
	Width int
	Depth int
}

// Mem is a memory in a circuit.
//
type Mem struct {
	Width int
	Cells []bitvec.Value
}

// Cell returns the element at index i modulo the memory depth.
//
func (m *Mem) Cell(i uint64) *bitvec.Value {
	return &m.Cells[i%uint64(len(m.Cells))]
}

// CellAt returns the element addressed by the value of addr modulo the memory
// depth.
//
func (m *Mem) CellAt(addr *bitvec.Value) *bitvec.Value {
	if addr.IsUint64() {
		return m.Cell(addr.Uint64())
	}
	return m.Cell(addr.Clone().QuoWord(addr, uint64(len(m.Cells))))
}

type component struct {
	Component
	clock int
}

type clock struct {
	period int
	count  int
}

// Circuit is a runnable circuit simulation.
//
type Circuit struct {
	name    string
	wires   map[string]*bitvec.Value
	mems    map[string]*Mem
	comb    []Updater
	seq     []component
	domains int // number of clock domains used by components

	reset  bool
	cycles uint64
	clocks []clock
	fire   []bool
}

// NewCircuit builds a new circuit named name from the given wires, memories
// and parts.
//
// Components are updated in the order of parts: a part that reads a wire
// driven combinationally by another part must come after it.
//
func NewCircuit(name string, wires []WireSpec, mems []MemSpec, parts Parts) (c *Circuit, err error) {
	c = &Circuit{
		name:    name,
		wires:   make(map[string]*bitvec.Value, len(wires)),
		mems:    make(map[string]*Mem, len(mems)),
		domains: 1,
	}
	for _, w := range wires {
		if err := c.checkName(w.Name); err != nil {
			return nil, err
		}
		if w.Width < 1 {
			return nil, errors.Errorf("wire %s: invalid width %d", w.Name, w.Width)
		}
		c.wires[w.Name] = bitvec.New(w.Width)
	}
	for _, m := range mems {
		if err := c.checkName(m.Name); err != nil {
			return nil, err
		}
		if m.Width < 1 || m.Depth < 1 {
			return nil, errors.Errorf("memory %s: invalid geometry %dx%d", m.Name, m.Width, m.Depth)
		}
		c.mems[m.Name] = &Mem{Width: m.Width, Cells: bitvec.Make(m.Width, m.Depth)}
	}

	driven := make(map[string]string)
	for i := range parts {
		p := &parts[i]
		if err := c.checkPart(p, driven); err != nil {
			return nil, errors.Wrapf(err, "part #%d (%s)", i, p.Name)
		}
		ups, err := c.mount(p)
		if err != nil {
			return nil, errors.Wrapf(err, "part #%d (%s)", i, p.Name)
		}
		for _, u := range ups {
			switch {
			case u.Hi != nil:
				c.seq = append(c.seq, component{u, p.Clock})
			case u.Lo != nil:
				c.comb = append(c.comb, u.Lo)
			}
		}
		if p.Clock >= c.domains {
			c.domains = p.Clock + 1
		}
	}
	return c, nil
}

func (c *Circuit) checkName(name string) error {
	if name == "" || strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") {
		return errors.Errorf("invalid name %q", name)
	}
	if c.wires[name] != nil || c.mems[name] != nil {
		return errors.Errorf("%s redeclared", name)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// checkPart checks that the connections of p refer to known pins and declared
// wires, and that no wire is driven by more than one output.
//
func (c *Circuit) checkPart(p *Part, driven map[string]string) error {
	if p.Clock < 0 {
		return errors.Errorf("invalid clock domain %d", p.Clock)
	}
	for _, pin := range p.Conns.Pins() {
		w := p.Conns[pin]
		switch {
		case contains(p.Memories, pin):
			if c.mems[w] == nil {
				return errors.Errorf("pin %s: undeclared memory %s", pin, w)
			}
		case contains(p.Inputs, pin):
			if c.wires[w] == nil {
				return errors.Errorf("pin %s: undeclared wire %s", pin, w)
			}
		case contains(p.Outputs, pin):
			if c.wires[w] == nil {
				return errors.Errorf("pin %s: undeclared wire %s", pin, w)
			}
			if prev, ok := driven[w]; ok {
				return errors.Errorf("pin %s: wire %s already driven by %s", pin, w, prev)
			}
			driven[w] = p.Name + "." + pin
		default:
			return errors.Errorf("invalid pin name %s for part %s", pin, p.Name)
		}
	}
	return nil
}

func (c *Circuit) mount(p *Part) (ups []Component, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = errors.New(fmt.Sprint(r))
			}
		}
	}()
	return p.Mount(&Socket{p: p, c: c}), nil
}

// Name returns the name of the circuit. It is the root path of all its wires
// and memories.
//
func (c *Circuit) Name() string { return c.name }

// Wire returns the wire with the given name or nil if no such wire exists.
//
func (c *Circuit) Wire(name string) *bitvec.Value { return c.wires[name] }

// Mem returns the memory with the given name or nil if no such memory exists.
//
func (c *Circuit) Mem(name string) *Mem { return c.mems[name] }

// Size returns the component count in the circuit.
//
func (c *Circuit) Size() int { return len(c.comb) + len(c.seq) }

// Cycles returns the number of high clock phases run so far.
//
func (c *Circuit) Cycles() uint64 { return c.cycles }

// Reset returns the state of the reset signal for the current clock phase.
//
func (c *Circuit) Reset() bool { return c.reset }

// ClockLo runs the low phase of all components.
//
func (c *Circuit) ClockLo(reset bool) {
	c.reset = reset
	c.settle()
	for i := range c.seq {
		if lo := c.seq[i].Lo; lo != nil {
			lo(c)
		}
	}
}

// ClockHi runs the high phase of all components.
//
func (c *Circuit) ClockHi(reset bool) {
	c.reset = reset
	for i := range c.seq {
		c.seq[i].Hi(c)
	}
	c.cycles++
}

// SetClocks sets the period of each clock domain. The number of periods must
// cover all clock domains used by the circuit. An empty list reverts to a
// single clock where every step is a full cycle.
//
func (c *Circuit) SetClocks(periods []int) error {
	if len(periods) == 0 {
		c.clocks, c.fire = nil, nil
		return nil
	}
	if len(periods) < c.domains {
		return errors.Errorf("circuit uses %d clock domains, got %d periods", c.domains, len(periods))
	}
	clocks := make([]clock, len(periods))
	for i, p := range periods {
		if p <= 0 {
			return errors.Errorf("clock %d: invalid period %d", i, p)
		}
		clocks[i] = clock{p, p}
	}
	c.clocks, c.fire = clocks, make([]bool, len(clocks))
	return nil
}

// Step runs n clock edges with reset inactive and returns the elapsed time.
//
// With a single clock, each edge is a full cycle of duration 1. With multiple
// clocks set by SetClocks, each edge advances time to the next edge of the
// closest clocks and only the sequential components of these clock domains
// are updated. Combinational outputs are settled before returning.
//
func (c *Circuit) Step(n int) int {
	delta := 0
	for i := 0; i < n; i++ {
		delta += c.edge()
	}
	c.settle()
	return delta
}

// settle updates combinational components only.
//
func (c *Circuit) settle() {
	for _, lo := range c.comb {
		lo(c)
	}
}

func (c *Circuit) edge() int {
	if len(c.clocks) == 0 {
		c.ClockLo(false)
		c.ClockHi(false)
		return 1
	}
	dt := c.clocks[0].count
	for _, k := range c.clocks[1:] {
		if k.count < dt {
			dt = k.count
		}
	}
	for i := range c.clocks {
		k := &c.clocks[i]
		k.count -= dt
		c.fire[i] = k.count == 0
		if c.fire[i] {
			k.count = k.period
		}
	}
	c.reset = false
	c.settle()
	for i := range c.seq {
		if p := &c.seq[i]; p.Lo != nil && c.fire[p.clock] {
			p.Lo(c)
		}
	}
	for i := range c.seq {
		if p := &c.seq[i]; c.fire[p.clock] {
			p.Hi(c)
		}
	}
	c.cycles++
	return dt
}

// split splits a dotted name into path and short name.
//
func (c *Circuit) split(name string) (path, short string) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return c.name, name
	}
	if c.name == "" {
		return name[:i], name[i+1:]
	}
	return c.name + "." + name[:i], name[i+1:]
}

// Declare registers all wires and memories of c into r.
//
func (c *Circuit) Declare(r *api.Registry) {
	for _, n := range sortedKeys(c.wires) {
		path, name := c.split(n)
		r.AddValue(name, path, c.wires[n])
	}
	for _, n := range sortedKeys(c.mems) {
		path, name := c.split(n)
		m := c.mems[n]
		r.AddMemory(name, path, m.Width, m.Cells)
	}
}

func sortedKeys[T any](m map[string]T) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}
