/*
Package hwprobe provides a cycle based circuit simulator with a debug
introspection API.

Circuits are built from parts connected by named wires and memories. Wires and
memory elements are arbitrary width bit vectors (see package bitvec). Each part
mounts into a circuit as one or more components, updated in two phases: the
low phase settles combinational logic and computes the next state, the high
phase commits it.

A Circuit implements api.Model: once wrapped into an api.Interpreter, all its
wires and memories can be listed, peeked and poked by name, and the circuit
clocked, reset or stepped, through the text protocol served by api.Session.

Wire names may contain dots to group them in a hierarchy: in a circuit named
"Top", the wire "alu.acc" is reachable as "Top.alu.acc".

Package hwlib provides a library of ready to use parts. Package netlist builds
circuits from YAML descriptions.

*/
package hwprobe
