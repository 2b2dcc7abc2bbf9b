// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package api

import (
	"sort"

	"github.com/db47h/hwprobe/bitvec"
	"github.com/sirupsen/logrus"
)

// A Registry maps qualified names to the wires and memories of a circuit
// model.
//
// Accessors hold references to the model's storage: writes through an
// accessor are visible to the model and vice versa.
//
type Registry struct {
	values map[string]Value
	mems   map[string]Memory
	log    logrus.FieldLogger
}

// NewRegistry returns an empty registry. Lookup misses are reported to log.
// If log is nil, the logrus standard logger is used.
//
func NewRegistry(log logrus.FieldLogger) *Registry {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Registry{
		values: make(map[string]Value),
		mems:   make(map[string]Memory),
		log:    log,
	}
}

// AddValue registers the wire v under the qualified name path.name.
// A previous registration with the same qualified name is replaced.
//
func (r *Registry) AddValue(name, path string, v *bitvec.Value) {
	s := &scalar{entity{name, path}, v}
	r.values[s.PathName()] = s
}

// AddMemory registers a memory of len(cells) elements of the given width
// under the qualified name path.name.
// A previous registration with the same qualified name is replaced.
//
func (r *Registry) AddMemory(name, path string, width int, cells []bitvec.Value) {
	m := &memory{entity{name, path}, width, cells}
	r.mems[m.PathName()] = m
}

// Value returns the Value registered under the given qualified name. If there
// is none, it logs a diagnostic and returns a fallback Value whose
// operations all fail.
//
func (r *Registry) Value(name string) Value {
	if v, ok := r.values[name]; ok {
		return v
	}
	r.log.WithField("name", name).Warn("unable to find wire")
	return missingValue
}

// Memory returns the Memory registered under the given qualified name. If
// there is none, it logs a diagnostic and returns a fallback Memory whose
// operations all fail.
//
func (r *Registry) Memory(name string) Memory {
	if m, ok := r.mems[name]; ok {
		return m
	}
	r.log.WithField("name", name).Warn("unable to find memory")
	return missingMemory
}

// Values returns the qualified names of all registered values, sorted.
//
func (r *Registry) Values() []string {
	return sortedKeys(r.values)
}

// Memories returns the qualified names of all registered memories, sorted.
//
func (r *Registry) Memories() []string {
	return sortedKeys(r.mems)
}

func sortedKeys[T any](m map[string]T) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}
