// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits.
//
package hwtest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	hw "github.com/db47h/hwprobe"
	"github.com/db47h/hwprobe/bitvec"
)

// number of random input vectors tried by ComparePart.
const compareIter = 256

func connString(pins []string, prefix string) string {
	var b strings.Builder
	for _, n := range pins {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n)
		b.WriteRune('=')
		b.WriteString(prefix)
		b.WriteString(n)
	}
	return b.String()
}

// randomize sets v to a random value.
//
func randomize(rnd *rand.Rand, v *bitvec.Value) {
	var b strings.Builder
	b.WriteByte('h')
	for i := 0; i < bitvec.Words(v.Width()); i++ {
		fmt.Fprintf(&b, "%016x", rnd.Uint64())
	}
	if err := v.SetString(b.String()); err != nil {
		panic(err)
	}
}

// ComparePart takes two parts and compares their outputs given the same inputs.
// Both parts must have the same Input/Output interface. widths gives the width
// of the wire to connect to each pin.
//
// Inputs are set to all zeroes, all ones, then random values. For each input
// vector, both parts are clocked once and their outputs compared.
//
func ComparePart(t testing.TB, widths map[string]int, part1 hw.NewPartFn, part2 hw.NewPartFn) {
	t.Helper()

	ps1, ps2 := part1(""), part2("")
	if strings.Join(ps1.Inputs, ",") != strings.Join(ps2.Inputs, ",") {
		t.Fatalf("input mismatch: %v != %v", ps1.Inputs, ps2.Inputs)
	}
	if strings.Join(ps1.Outputs, ",") != strings.Join(ps2.Outputs, ",") {
		t.Fatalf("output mismatch: %v != %v", ps1.Outputs, ps2.Outputs)
	}

	var ws []hw.WireSpec
	width := func(pin string) int {
		w, ok := widths[pin]
		if !ok {
			t.Fatalf("no width for pin %s", pin)
		}
		return w
	}
	for _, n := range ps1.Inputs {
		ws = append(ws, hw.WireSpec{Name: n, Width: width(n)})
	}
	for _, n := range ps1.Outputs {
		ws = append(ws, hw.WireSpec{Name: "p1." + n, Width: width(n)}, hw.WireSpec{Name: "p2." + n, Width: width(n)})
	}
	in := connString(ps1.Inputs, "")
	conns := func(prefix string) string {
		if out := connString(ps1.Outputs, prefix); out != "" {
			return in + ", " + out
		}
		return in
	}
	c, err := hw.NewCircuit("compare", ws, nil, hw.Parts{part1(conns("p1.")), part2(conns("p2."))})
	if err != nil {
		t.Fatal(err)
	}

	inputs := make([]*bitvec.Value, len(ps1.Inputs))
	for i, n := range ps1.Inputs {
		inputs[i] = c.Wire(n)
	}

	errString := func(oname string, ex, got *bitvec.Value) string {
		var b strings.Builder
		for i, n := range ps1.Inputs {
			if b.Len() > 0 {
				b.WriteString(", ")
			}
			b.WriteString(n)
			b.WriteRune('=')
			b.WriteString(inputs[i].Text(16))
		}
		return fmt.Sprintf("\nExpected %s => %s=%v\nGot %v", b.String(), oname, ex, got)
	}

	check := func() {
		t.Helper()
		c.ClockLo(false)
		c.ClockHi(false)
		c.ClockLo(false)
		for _, o := range ps1.Outputs {
			if v1, v2 := c.Wire("p1."+o), c.Wire("p2."+o); !v1.Equal(v2) {
				t.Fatal(errString(o, v1, v2))
			}
		}
	}

	start := time.Now()

	// try all 0
	check()

	// try all 1
	for _, v := range inputs {
		v.Not(v.Zero())
	}
	check()

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < compareIter; i++ {
		for _, v := range inputs {
			randomize(rnd, v)
		}
		check()
	}

	elapsed := time.Since(start)
	t.Logf("%d components. %d cycles in %v", c.Size(), c.Cycles(), elapsed)
}

// Widths returns a width map where all the given pins have the same width.
//
func Widths(width int, pins ...string) map[string]int {
	m := make(map[string]int, len(pins))
	for _, p := range pins {
		m[p] = width
	}
	return m
}
