// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwprobe

import (
	"reflect"
	"strings"

	"github.com/db47h/hwprobe/bitvec"
	"github.com/pkg/errors"
)

// Evaluator is the interface that custom components built using reflection
// must implement. See MakePart.
//
// Eval is called during the low clock phase.
//
type Evaluator interface {
	Eval(c *Circuit)
}

// A Committer is an Evaluator with state. Commit is called during the high
// clock phase.
//
type Committer interface {
	Evaluator
	Commit(c *Circuit)
}

var (
	valueType = reflect.TypeOf((*bitvec.Value)(nil))
	memType   = reflect.TypeOf((*Mem)(nil))
)

type field struct {
	index int
	pin   string
	mem   bool
}

// MakePart wraps an Evaluator into a custom component.
// Pins are identified by field tags.
//
// The field tag must be `hw:"in"`, `hw:"out"` or `hw:"mem"` to identify input
// pins, output pins and memory pins. By default, the pin name is the field
// name in lowercase. A specific pin name can be forced by adding it in the
// tag: `hw:"in,pin_name"`.
//
// Wire pins must be of type *bitvec.Value, memory pins of type *Mem. Each
// time the part is mounted, a new instance of the struct is allocated and its
// pin fields set to the connected wires and memories. If the connection of a
// pin is omitted, the field is left nil.
//
func MakePart(t Evaluator) *PartSpec {
	typ := reflect.TypeOf(t)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if k := typ.Kind(); k != reflect.Struct {
		panic(errors.Errorf("unsupported type %q for %q", k, typ.Name()))
	}

	sp := &PartSpec{
		Name: typ.Name(),
	}
	var fields []field

	n := typ.NumField()
	for i := 0; i < n; i++ {
		f := typ.Field(i)
		tag, ok := f.Tag.Lookup("hw")
		if !ok {
			continue
		}
		pin := strings.ToLower(f.Name)
		tv := strings.Split(tag, ",")
		if len(tv) > 2 {
			panic(errors.Errorf("unsupported tag %q for field %q in %q", tag, f.Name, typ.Name()))
		}
		if len(tv) == 2 && tv[1] != "" {
			pin = tv[1]
		}
		want := valueType
		switch tv[0] {
		case "in":
			sp.Inputs = append(sp.Inputs, pin)
		case "out":
			sp.Outputs = append(sp.Outputs, pin)
		case "mem":
			sp.Memories = append(sp.Memories, pin)
			want = memType
		default:
			panic(errors.Errorf("unsupported tag %q for field %q in %q", tag, f.Name, typ.Name()))
		}
		if f.Type != want {
			panic(errors.Errorf("unsupported type %q for field %q in %q", f.Type, f.Name, typ.Name()))
		}
		fields = append(fields, field{i, pin, want == memType})
	}
	sp.Mount = mountPart(typ, fields)
	return sp
}

func mountPart(typ reflect.Type, fields []field) MountFn {
	return func(s *Socket) []Component {
		v := reflect.New(typ)
		e := v.Elem()
		for _, f := range fields {
			if !s.Has(f.pin) {
				continue
			}
			if f.mem {
				e.Field(f.index).Set(reflect.ValueOf(s.Mem(f.pin)))
			} else {
				e.Field(f.index).Set(reflect.ValueOf(s.Wire(f.pin)))
			}
		}

		comp := v.Interface().(Evaluator)
		if cm, ok := comp.(Committer); ok {
			return []Component{{Lo: cm.Eval, Hi: cm.Commit}}
		}
		return []Component{{Lo: comp.Eval}}
	}
}
