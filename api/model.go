// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package api

// A Model is a cycle based circuit model that can be driven and inspected
// through an Interpreter.
//
type Model interface {
	// ClockLo runs the low half of a clock cycle: combinational logic settles
	// and the next state of sequential elements is computed.
	ClockLo(reset bool)
	// ClockHi runs the high half of a clock cycle: sequential elements commit
	// their next state.
	ClockHi(reset bool)
	// Step runs n clock edges with reset inactive and returns the number of
	// time units elapsed.
	Step(n int) int
	// SetClocks sets the periods of the model's clock domains.
	SetClocks(periods []int) error
	// Declare registers the model's named wires and memories into r.
	Declare(r *Registry)
}
