// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package api

import (
	"strconv"

	"github.com/db47h/hwprobe/bitvec"
	"github.com/pkg/errors"
)

// Sentinel is the response of any command or accessor that fails.
//
const Sentinel = "error"

var (
	// ErrNotFound is the error returned by the fallback accessors.
	ErrNotFound = errors.New("no such entity")
	// ErrIndex is the cause of errors returned for malformed or out of range
	// memory indices.
	ErrIndex = errors.New("invalid memory index")
)

// An Entity is a named object of the circuit model.
//
type Entity interface {
	// Name returns the short name of the entity.
	Name() string
	// Path returns the path of the entity, without a trailing dot.
	Path() string
	// PathName returns the qualified name of the entity: Path() + "." + Name(),
	// or Name() if the path is empty.
	PathName() string
}

// A Value gives access to a scalar wire or register of the circuit model.
//
type Value interface {
	Entity
	// Get returns the decimal value of the wire.
	Get() string
	// Set parses s and stores it into the wire. On failure, the wire is left
	// unchanged.
	Set(s string) error
	// Width returns the bit width of the wire.
	Width() string
}

// A Memory gives access to the elements of a memory of the circuit model.
// Element indices are base 10 integers.
//
type Memory interface {
	Entity
	// Element returns the decimal value of the element at index.
	Element(index string) (string, error)
	// SetElement parses s and stores it into the element at index.
	SetElement(index, s string) error
	// Width returns the bit width of memory elements.
	Width() string
	// Depth returns the number of elements.
	Depth() string
}

type entity struct {
	name string
	path string
}

func (e *entity) Name() string { return e.name }
func (e *entity) Path() string { return e.path }

func (e *entity) PathName() string {
	if e.path == "" {
		return e.name
	}
	return e.path + "." + e.name
}

// scalar is a Value bound to a bitvec.Value owned by the circuit model.
//
type scalar struct {
	entity
	v *bitvec.Value
}

func (s *scalar) Get() string { return s.v.String() }
func (s *scalar) Width() string { return strconv.Itoa(s.v.Width()) }

func (s *scalar) Set(value string) error {
	return s.v.SetString(value)
}

// memory is a Memory bound to the element slice of a memory of the circuit
// model.
//
type memory struct {
	entity
	width int
	cells []bitvec.Value
}

func (m *memory) cell(index string) (*bitvec.Value, error) {
	i, err := strconv.Atoi(index)
	if err != nil {
		return nil, errors.Wrapf(ErrIndex, "%s[%s]", m.PathName(), index)
	}
	if i < 0 || i >= len(m.cells) {
		return nil, errors.Wrapf(ErrIndex, "%s[%d] out of range [0, %d)", m.PathName(), i, len(m.cells))
	}
	return &m.cells[i], nil
}

func (m *memory) Element(index string) (string, error) {
	c, err := m.cell(index)
	if err != nil {
		return Sentinel, err
	}
	return c.String(), nil
}

func (m *memory) SetElement(index, value string) error {
	c, err := m.cell(index)
	if err != nil {
		return err
	}
	return c.SetString(value)
}

func (m *memory) Width() string { return strconv.Itoa(m.width) }
func (m *memory) Depth() string { return strconv.Itoa(len(m.cells)) }

// missing is the fallback accessor returned by failed lookups. All its
// operations fail.
//
type missing struct {
	entity
}

var missingEntity = &missing{entity{name: Sentinel}}

// fallback accessors shared by all failed lookups.
var (
	missingValue  Value  = missingEntity
	missingMemory Memory = missingEntity
)

func (*missing) Get() string { return Sentinel }
func (*missing) Set(string) error { return ErrNotFound }
func (*missing) Width() string { return Sentinel }
func (*missing) Depth() string { return Sentinel }
func (*missing) Element(string) (string, error) { return Sentinel, ErrNotFound }
func (*missing) SetElement(string, string) error { return ErrNotFound }
