package hwtest_test

import (
	"strings"
	"testing"

	hw "github.com/db47h/hwprobe"
	"github.com/db47h/hwprobe/api"
	"github.com/db47h/hwprobe/bitvec"
	hl "github.com/db47h/hwprobe/hwlib"
	"github.com/db47h/hwprobe/hwtest"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// xorImpl is Xor built from And, Or and Not.
//
type xorImpl struct {
	A   *bitvec.Value `hw:"in"`
	B   *bitvec.Value `hw:"in"`
	Out *bitvec.Value `hw:"out"`
}

func (x *xorImpl) Eval(*hw.Circuit) {
	na := bitvec.New(x.A.Width()).Not(x.A)
	nb := bitvec.New(x.B.Width()).Not(x.B)
	na.And(na, x.B)
	nb.And(nb, x.A)
	x.Out.Or(na, nb)
}

func TestComparePart(t *testing.T) {
	hwtest.ComparePart(t, hwtest.Widths(70, "a", "b", "out"), hl.Xor, hw.MakePart((*xorImpl)(nil)).NewPart)
}

func TestParseScript(t *testing.T) {
	cmds, want, err := hwtest.ParseScript("# comment\n\n> a\n1\n> poke x\n\n> quit\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "poke x", "quit"}, cmds)
	assert.Equal(t, []string{"1", ""}, want)

	for _, s := range []string{
		"> a\n> b\n1\n",
		"1\n",
		"> a\n",
	} {
		_, _, err := hwtest.ParseScript(s)
		assert.Error(t, err, s)
	}
}

func TestRunScript(t *testing.T) {
	c, err := hw.NewCircuit("Top", []hw.WireSpec{{Name: "in", Width: 8}, {Name: "sub.r", Width: 8}}, nil, hw.Parts{
		hl.Reg("5")("in=in, out=sub.r"),
	})
	require.NoError(t, err)
	log, _ := test.NewNullLogger()
	hwtest.RunScript(t, api.NewInterpreter(c, log), strings.Join([]string{
		"> list_wires",
		"Top.in Top.sub.r",
		"> reset",
		"1",
		"> wire_peek Top.sub.r",
		"5",
		"> wire_poke Top.in 0x2a",
		"true",
		"> clock 1",
		"1",
		"> wire_peek Top.sub.r",
		"42",
		"> quit",
	}, "\n"))

	// nothing to run
	hwtest.RunScript(t, api.NewInterpreter(c, log), "# empty\n\n")
	hwtest.RunScript(t, api.NewInterpreter(c, log), "")
}
