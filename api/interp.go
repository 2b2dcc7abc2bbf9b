// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package api

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Identification strings returned by get_host_name, get_api_version and
// get_api_support.
//
const (
	HostName   = "Go Emulator API"
	APIVersion = "0"
	APISupport = "PeekPoke Introspection"
)

// An Interpreter evaluates protocol commands against a circuit model.
//
// Evaluation never fails: errors are reported to the interpreter's logger and
// the command returns Sentinel (or "false" for the poke family).
//
type Interpreter struct {
	m   Model
	reg *Registry
	log logrus.FieldLogger
}

// NewInterpreter returns an interpreter for the model m. The registry is
// populated once by calling m.Declare. Diagnostics are sent to log, or to the
// logrus standard logger if log is nil.
//
func NewInterpreter(m Model, log logrus.FieldLogger) *Interpreter {
	if log == nil {
		log = logrus.StandardLogger()
	}
	reg := NewRegistry(log)
	m.Declare(reg)
	return &Interpreter{m: m, reg: reg, log: log}
}

// Registry returns the interpreter's registry.
//
func (it *Interpreter) Registry() *Registry { return it.reg }

type command struct {
	min, max int    // argument count range. max < 0 means unbounded.
	usage    string // response on usage error
	run      func(it *Interpreter, args []string) string
}

var commands = map[string]command{
	"get_host_name":   {0, 0, Sentinel, func(*Interpreter, []string) string { return HostName }},
	"get_api_version": {0, 0, Sentinel, func(*Interpreter, []string) string { return APIVersion }},
	"get_api_support": {0, 0, Sentinel, func(*Interpreter, []string) string { return APISupport }},

	"clock":      {1, 1, Sentinel, (*Interpreter).clock},
	"step":       {1, 1, Sentinel, (*Interpreter).step},
	"set-clocks": {0, -1, Sentinel, (*Interpreter).setClocks},
	"reset":      {0, 1, Sentinel, (*Interpreter).reset},

	"peek": {1, 2, Sentinel, (*Interpreter).peek},
	"poke": {2, 3, "", (*Interpreter).poke},

	"wire_peek": {1, 1, Sentinel, (*Interpreter).wirePeek},
	"wire_poke": {2, 2, Sentinel, (*Interpreter).wirePoke},
	"mem_peek":  {2, 2, Sentinel, (*Interpreter).memPeek},
	"mem_poke":  {3, 3, Sentinel, (*Interpreter).memPoke},

	"list_wires": {0, 0, Sentinel, func(it *Interpreter, _ []string) string { return strings.Join(it.reg.Values(), " ") }},
	"list_mems":  {0, 0, Sentinel, func(it *Interpreter, _ []string) string { return strings.Join(it.reg.Memories(), " ") }},
	"wire_width": {1, 1, Sentinel, func(it *Interpreter, args []string) string { return it.reg.Value(args[0]).Width() }},
	"mem_width":  {1, 1, Sentinel, func(it *Interpreter, args []string) string { return it.reg.Memory(args[0]).Width() }},
	"mem_depth":  {1, 1, Sentinel, func(it *Interpreter, args []string) string { return it.reg.Memory(args[0]).Depth() }},
}

// Commands returns the names of all supported commands, sorted.
//
func Commands() []string {
	return sortedKeys(commands)
}

// Eval evaluates a single command line and returns the response.
//
func (it *Interpreter) Eval(line string) string {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		it.log.Warn("empty command")
		return Sentinel
	}
	name, args := tokens[0], tokens[1:]
	cmd, ok := commands[name]
	if !ok {
		it.log.WithField("cmd", name).Error("unknown command")
		return Sentinel
	}
	if len(args) < cmd.min {
		it.log.WithField("cmd", name).Errorf("expects at least %d args, got %d", cmd.min, len(args))
		return cmd.usage
	}
	if cmd.max >= 0 && len(args) > cmd.max {
		it.log.WithField("cmd", name).Errorf("expects at most %d args, got %d", cmd.max, len(args))
		return cmd.usage
	}
	it.log.WithField("cmd", name).Debug(strings.Join(args, " "))
	return cmd.run(it, args)
}

// count parses a non-negative cycle count.
//
func (it *Interpreter) count(cmd, s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		it.log.WithField("cmd", cmd).Errorf("invalid count %q", s)
		return 0, false
	}
	return n, true
}

// result converts the outcome of a set operation to a response.
//
func (it *Interpreter) result(cmd string, err error) string {
	if err != nil {
		it.log.WithField("cmd", cmd).Error(err)
		return "false"
	}
	return "true"
}

func (it *Interpreter) element(cmd string, m Memory, index string) string {
	v, err := m.Element(index)
	if err != nil {
		it.log.WithField("cmd", cmd).Error(err)
		return Sentinel
	}
	return v
}

func (it *Interpreter) clock(args []string) string {
	n, ok := it.count("clock", args[0])
	if !ok {
		return Sentinel
	}
	for i := 0; i < n; i++ {
		it.m.ClockLo(false)
		it.m.ClockHi(false)
	}
	it.m.ClockLo(false)
	return strconv.Itoa(n)
}

func (it *Interpreter) step(args []string) string {
	n, ok := it.count("step", args[0])
	if !ok {
		return Sentinel
	}
	return strconv.Itoa(it.m.Step(n))
}

func (it *Interpreter) setClocks(args []string) string {
	periods := make([]int, len(args))
	for i, a := range args {
		p, err := strconv.Atoi(a)
		if err != nil {
			it.log.WithField("cmd", "set-clocks").Errorf("invalid period %q", a)
			return Sentinel
		}
		periods[i] = p
	}
	if err := it.m.SetClocks(periods); err != nil {
		it.log.WithField("cmd", "set-clocks").Error(err)
		return Sentinel
	}
	return "ok"
}

func (it *Interpreter) reset(args []string) string {
	n := 1
	if len(args) > 0 {
		var ok bool
		if n, ok = it.count("reset", args[0]); !ok {
			return Sentinel
		}
	}
	for i := 0; i < n; i++ {
		it.m.ClockLo(true)
		it.m.ClockHi(true)
	}
	it.m.ClockLo(false)
	return strconv.Itoa(n)
}

func (it *Interpreter) peek(args []string) string {
	it.log.WithField("cmd", "peek").Warn("peek is deprecated, use wire_peek or mem_peek")
	if len(args) == 1 {
		return it.reg.Value(args[0]).Get()
	}
	return it.element("peek", it.reg.Memory(args[0]), args[1])
}

func (it *Interpreter) poke(args []string) string {
	it.log.WithField("cmd", "poke").Warn("poke is deprecated, use wire_poke or mem_poke")
	if len(args) == 2 {
		return it.result("poke", it.reg.Value(args[0]).Set(args[1]))
	}
	return it.result("poke", it.reg.Memory(args[0]).SetElement(args[1], args[2]))
}

func (it *Interpreter) wirePeek(args []string) string {
	return it.reg.Value(args[0]).Get()
}

func (it *Interpreter) wirePoke(args []string) string {
	return it.result("wire_poke", it.reg.Value(args[0]).Set(args[1]))
}

func (it *Interpreter) memPeek(args []string) string {
	return it.element("mem_peek", it.reg.Memory(args[0]), args[1])
}

func (it *Interpreter) memPoke(args []string) string {
	return it.result("mem_poke", it.reg.Memory(args[0]).SetElement(args[1], args[2]))
}
