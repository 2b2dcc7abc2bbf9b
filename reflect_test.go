package hwprobe_test

import (
	"testing"

	hw "github.com/db47h/hwprobe"
	"github.com/db47h/hwprobe/bitvec"
	hl "github.com/db47h/hwprobe/hwlib"
	"github.com/db47h/hwprobe/hwtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testMux struct {
	A   *bitvec.Value `hw:"in"`
	B   *bitvec.Value `hw:"in"`
	Sel *bitvec.Value `hw:"in"`
	Out *bitvec.Value `hw:"out"`
}

func (m *testMux) Eval(*hw.Circuit) {
	if m.Sel.IsZero() {
		m.Out.Copy(m.A)
	} else {
		m.Out.Copy(m.B)
	}
}

func Test_MakePart(t *testing.T) {
	p := hw.MakePart((*testMux)(nil))
	assert.Equal(t, "testMux", p.Name)
	assert.Equal(t, []string{"a", "b", "sel"}, p.Inputs)
	assert.Equal(t, []string{"out"}, p.Outputs)

	widths := hwtest.Widths(130, "a", "b", "out")
	widths["sel"] = 2
	hwtest.ComparePart(t, widths, hl.Mux, p.NewPart)
}

// testROM is a memory with a clocked read port.
//
type testROM struct {
	M    *hw.Mem       `hw:"mem,rom"`
	Addr *bitvec.Value `hw:"in"`
	Data *bitvec.Value `hw:"out"`
	next *bitvec.Value
}

func (r *testROM) Eval(*hw.Circuit) {
	if r.next == nil {
		r.next = bitvec.New(r.Data.Width())
	}
	r.next.Copy(r.M.CellAt(r.Addr))
}

func (r *testROM) Commit(*hw.Circuit) { r.Data.Copy(r.next) }

func Test_MakePartCommitter(t *testing.T) {
	p := hw.MakePart((*testROM)(nil))
	assert.Equal(t, []string{"rom"}, p.Memories)
	c, err := hw.NewCircuit("Top",
		[]hw.WireSpec{{Name: "addr", Width: 3}, {Name: "data", Width: 8}},
		[]hw.MemSpec{{Name: "rom", Width: 8, Depth: 8}},
		hw.Parts{p.NewPart("rom=rom, addr=addr, data=data")})
	require.NoError(t, err)
	c.Mem("rom").Cells[2].SetUint64(0x55)
	c.Wire("addr").SetUint64(2)
	c.ClockLo(false)
	assert.True(t, c.Wire("data").IsZero())
	c.ClockHi(false)
	assert.Equal(t, uint64(0x55), c.Wire("data").Uint64())
}

type badTag struct {
	A *bitvec.Value `hw:"inout"`
}

func (*badTag) Eval(*hw.Circuit) {}

type badType struct {
	A int `hw:"in"`
}

func (*badType) Eval(*hw.Circuit) {}

type badMem struct {
	M *bitvec.Value `hw:"mem"`
}

func (*badMem) Eval(*hw.Circuit) {}

func Test_MakePartErrors(t *testing.T) {
	assert.Panics(t, func() { hw.MakePart((*badTag)(nil)) })
	assert.Panics(t, func() { hw.MakePart((*badType)(nil)) })
	assert.Panics(t, func() { hw.MakePart((*badMem)(nil)) })
}
