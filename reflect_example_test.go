package hwprobe_test

import (
	"fmt"

	hw "github.com/db47h/hwprobe"
	"github.com/db47h/hwprobe/bitvec"
	hl "github.com/db47h/hwprobe/hwlib"
)

// maxImpl is a custom part that outputs the largest of its inputs.
//
type maxImpl struct {
	A   *bitvec.Value `hw:"in"`
	B   *bitvec.Value `hw:"in"`
	Out *bitvec.Value `hw:"out,max"` // the second tag value forces the pin name to "max"
}

// Eval implements Evaluator.
//
func (m *maxImpl) Eval(*hw.Circuit) {
	if m.A.Cmp(m.B) >= 0 {
		m.Out.Copy(m.A)
	} else {
		m.Out.Copy(m.B)
	}
}

// no need to import reflect, just cast a nil pointer to maxImpl
var maxSpec = hw.MakePart((*maxImpl)(nil))

// maxSpec is the *PartSpec for our Max. In order to use it like the built-ins
// in hwlib, we need to get its NewPartFn method as a variable, or make it a function:
func Max(c string) hw.Part { return maxSpec.NewPart(c) }

// MakePart example with a custom Max
func ExampleMakePart() {
	var a, b uint64
	var out string
	c, err := hw.NewCircuit("Top",
		[]hw.WireSpec{{Name: "a", Width: 100}, {Name: "b", Width: 100}, {Name: "max", Width: 100}},
		nil,
		hw.Parts{
			hl.Input(func(v *bitvec.Value) { v.SetUint64(a) })("out=a"),
			hl.Input(func(v *bitvec.Value) { v.SetUint64(b) })("out=b"),
			Max("a=a, b=b, max=max"),
			hl.Output(func(v *bitvec.Value) { out = v.String() })("in=max"),
		})
	if err != nil {
		panic(err)
	}

	a, b = 1, 15
	c.Step(1)
	fmt.Printf("max(%d, %d) = %s\n", a, b, out)
	a = 42
	c.Step(1)
	fmt.Printf("max(%d, %d) = %s\n", a, b, out)

	// Output:
	// max(1, 15) = 15
	// max(42, 15) = 42
}
