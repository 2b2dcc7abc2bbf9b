// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package netlist builds circuits from YAML descriptions.
//
// A netlist declares the circuit name, its wires and memories, and the list of
// parts connecting them:
//
//	name: Top
//	wires:
//	  - {name: io_en, width: 1}
//	  - {name: count, width: 8}
//	mems:
//	  - {name: ram, width: 56, depth: 16}
//	parts:
//	  - {type: counter, conns: "en=io_en, out=count", init: "0"}
//	  - {type: ram, conns: "raddr=count", mem: ram}
//
// Part types are the lower case names of the hwlib parts. The init field sets
// the initial value of const, reg and counter parts. The mem field is a
// shorthand for a "mem=..." connection. The clock field assigns the part to a
// clock domain (see hwprobe.Circuit.SetClocks).
//
package netlist

import (
	"bytes"
	"io"
	"os"
	"sort"

	hw "github.com/db47h/hwprobe"
	"github.com/db47h/hwprobe/hwlib"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Netlist is a circuit description.
//
type Netlist struct {
	Name  string `yaml:"name"`
	Wires []Wire `yaml:"wires"`
	Mems  []Mem  `yaml:"mems"`
	Parts []Part `yaml:"parts"`
}

// Wire declares a wire.
//
type Wire struct {
	Name  string `yaml:"name"`
	Width int    `yaml:"width"`
}

// Mem declares a memory.
//
type Mem struct {
	Name  string `yaml:"name"`
	Width int    `yaml:"width"`
	Depth int    `yaml:"depth"`
}

// Part declares a part instance.
//
type Part struct {
	Type  string `yaml:"type"`
	Conns string `yaml:"conns"`
	Init  string `yaml:"init,omitempty"`
	Mem   string `yaml:"mem,omitempty"`
	Clock int    `yaml:"clock,omitempty"`
}

// init field usage
const (
	initNone = iota
	initOptional
	initRequired
)

type builder struct {
	init int
	new  func(init string) hw.NewPartFn
}

func fixed(fn hw.NewPartFn) func(string) hw.NewPartFn {
	return func(string) hw.NewPartFn { return fn }
}

var library = map[string]builder{
	"const":   {initRequired, hwlib.Const},
	"reg":     {initOptional, hwlib.Reg},
	"counter": {initOptional, hwlib.Counter},
	"add":     {initNone, fixed(hwlib.Add)},
	"sub":     {initNone, fixed(hwlib.Sub)},
	"and":     {initNone, fixed(hwlib.And)},
	"or":      {initNone, fixed(hwlib.Or)},
	"xor":     {initNone, fixed(hwlib.Xor)},
	"not":     {initNone, fixed(hwlib.Not)},
	"mux":     {initNone, fixed(hwlib.Mux)},
	"ram":     {initNone, fixed(hwlib.RAM)},
}

// Types returns the supported part types, sorted.
//
func Types() []string {
	ts := make([]string, 0, len(library))
	for k := range library {
		ts = append(ts, k)
	}
	sort.Strings(ts)
	return ts
}

// Load decodes a netlist from r. Unknown fields are rejected.
//
func Load(r io.Reader) (*Netlist, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var n Netlist
	if err := dec.Decode(&n); err != nil {
		if err == io.EOF {
			return nil, errors.New("empty netlist")
		}
		return nil, errors.Wrap(err, "decode netlist")
	}
	return &n, nil
}

// LoadFile loads a netlist from the named file.
//
func LoadFile(path string) (*Netlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read netlist")
	}
	n, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return n, nil
}

// Build builds the circuit described by n.
//
func (n *Netlist) Build() (*hw.Circuit, error) {
	ws := make([]hw.WireSpec, len(n.Wires))
	for i, w := range n.Wires {
		ws[i] = hw.WireSpec{Name: w.Name, Width: w.Width}
	}
	ms := make([]hw.MemSpec, len(n.Mems))
	for i, m := range n.Mems {
		ms[i] = hw.MemSpec{Name: m.Name, Width: m.Width, Depth: m.Depth}
	}
	ps := make(hw.Parts, len(n.Parts))
	for i := range n.Parts {
		p, err := n.Parts[i].part()
		if err != nil {
			return nil, errors.Wrapf(err, "part #%d (%s)", i, n.Parts[i].Type)
		}
		ps[i] = p
	}
	return hw.NewCircuit(n.Name, ws, ms, ps)
}

func (p *Part) part() (hw.Part, error) {
	if p.Type == "" {
		return hw.Part{}, errors.New("missing part type")
	}
	b, ok := library[p.Type]
	if !ok {
		return hw.Part{}, errors.Errorf("unknown part type %q", p.Type)
	}
	switch {
	case b.init == initRequired && p.Init == "":
		return hw.Part{}, errors.New("missing init value")
	case b.init == initNone && p.Init != "":
		return hw.Part{}, errors.New("init value not supported")
	}
	conns := p.Conns
	if p.Mem != "" {
		if conns != "" {
			conns += ", "
		}
		conns += "mem=" + p.Mem
	}
	// NewPart panics on malformed connections
	if _, err := hw.ParseConnections(conns); err != nil {
		return hw.Part{}, err
	}
	return b.new(p.Init)(conns).OnClock(p.Clock), nil
}
