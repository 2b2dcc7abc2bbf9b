// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwprobe

import (
	"strings"

	"github.com/pkg/errors"
)

// W is a set of connections, mapping a part's pin names (the map key) to wire
// or memory names in its circuit.
//
type W map[string]string

// ParseConnections parses a connection string like "a=x, b=y" into a W.
//
// Connections are separated by commas and/or spaces. Names are any sequence of
// characters other than '=', ',' and white space.
//
func ParseConnections(s string) (W, error) {
	w := make(W)
	for _, c := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' || r == '\n' }) {
		i := strings.IndexByte(c, '=')
		if i < 0 {
			return nil, errors.Errorf("in %q: missing '=' in connection %q", s, c)
		}
		pin, wire := c[:i], c[i+1:]
		if pin == "" || wire == "" || strings.IndexByte(wire, '=') >= 0 {
			return nil, errors.Errorf("in %q: invalid connection %q", s, c)
		}
		if _, ok := w[pin]; ok {
			return nil, errors.Errorf("in %q: pin %s connected more than once", s, pin)
		}
		w[pin] = wire
	}
	return w, nil
}

// Pins returns the names of the connected pins, sorted.
//
func (w W) Pins() []string {
	return sortedKeys(w)
}

// String returns the connection string for w. The result is suitable for
// ParseConnections.
//
func (w W) String() string {
	var b strings.Builder
	for i, p := range w.Pins() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p)
		b.WriteByte('=')
		b.WriteString(w[p])
	}
	return b.String()
}
