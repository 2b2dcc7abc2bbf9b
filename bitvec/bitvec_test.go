package bitvec_test

import (
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"testing"
	"testing/quick"

	"github.com/db47h/hwprobe/bitvec"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWidths = []int{1, 3, 8, 31, 63, 64, 65, 100, 128, 129, 200}

// toBig converts v to a big.Int.
func toBig(v *bitvec.Value) *big.Int {
	r := new(big.Int)
	ws := v.Bits()
	for i := len(ws) - 1; i >= 0; i-- {
		r.Lsh(r, bitvec.WordBits)
		r.Or(r, new(big.Int).SetUint64(ws[i]))
	}
	return r
}

// fromBig returns a Value of the given width set to x mod 2**width.
func fromBig(x *big.Int, width int) *bitvec.Value {
	v, err := bitvec.Parse("x"+modW(x, width).Text(16), width)
	if err != nil {
		panic(err)
	}
	return v
}

func modW(x *big.Int, width int) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), uint(width))
	return new(big.Int).Mod(x, m)
}

func requireBig(t *testing.T, want, got *big.Int, msgAndArgs ...interface{}) {
	t.Helper()
	require.Equal(t, want.String(), got.String(), msgAndArgs...)
}

func randBig(r *rand.Rand, width int) *big.Int {
	x := new(big.Int)
	for i := 0; i < bitvec.Words(width)+1; i++ {
		x.Lsh(x, 64)
		x.Or(x, new(big.Int).SetUint64(r.Uint64()))
	}
	return modW(x, width)
}

func TestNew(t *testing.T) {
	for _, w := range testWidths {
		v := bitvec.New(w)
		assert.Equal(t, w, v.Width())
		assert.Len(t, v.Bits(), (w+63)/64)
		assert.True(t, v.IsZero())
	}
	assert.Panics(t, func() { bitvec.New(0) })
}

func TestZeroValue(t *testing.T) {
	var v bitvec.Value
	assert.Equal(t, 0, v.Width())
	assert.Equal(t, uint64(0), v.Uint64())
	assert.True(t, v.IsUint64())
	assert.True(t, v.IsZero())
	assert.Equal(t, "0", v.String())
	assert.Equal(t, "bitvec.Value{0:0x0}", v.GoString())
	assert.True(t, v.Equal(&bitvec.Value{}))
}

func TestGoString(t *testing.T) {
	assert.Equal(t, "bitvec.Value{8:0x2a}", fmt.Sprintf("%#v", bitvec.MustParse("42", 8)))
	assert.Equal(t, "bitvec.Value{100:0x10000000000000000}", bitvec.MustParse("h1_0000_0000_0000_0000", 100).GoString())
}

func TestMake(t *testing.T) {
	vs := bitvec.Make(65, 4)
	require.Len(t, vs, 4)
	vs[1].SetUint64(42)
	// elements must not share words
	vs[2].Not(&vs[2])
	assert.Equal(t, "42", vs[1].String())
	assert.True(t, vs[0].IsZero())
	assert.True(t, vs[3].IsZero())
}

func TestSetUint64Truncates(t *testing.T) {
	v := bitvec.New(4)
	v.SetUint64(0xff)
	assert.Equal(t, uint64(0xf), v.Uint64())
	v = bitvec.New(100)
	v.Not(v)
	v.SetUint64(7)
	assert.Equal(t, "7", v.String())
	assert.True(t, v.IsUint64())
}

func TestWidthMismatchPanics(t *testing.T) {
	a, b := bitvec.New(8), bitvec.New(9)
	assert.Panics(t, func() { a.Copy(b) })
	assert.Panics(t, func() { a.Add(a, b) })
}

func TestArith(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, w := range testWidths {
		for i := 0; i < 200; i++ {
			x, y := randBig(r, w), randBig(r, w)
			s := r.Uint64()
			a, b := fromBig(x, w), fromBig(y, w)

			sum := bitvec.New(w).Add(a, b)
			requireBig(t, modW(new(big.Int).Add(x, y), w), toBig(sum), "w=%d %v + %v", w, x, y)

			diff := bitvec.New(w).Sub(a, b)
			requireBig(t, modW(new(big.Int).Sub(x, y), w), toBig(diff), "w=%d %v - %v", w, x, y)

			prod := bitvec.New(w).MulWord(a, s)
			requireBig(t, modW(new(big.Int).Mul(x, new(big.Int).SetUint64(s)), w), toBig(prod), "w=%d %v * %v", w, x, s)

			if s == 0 {
				s = 3
			}
			q := a.Clone()
			rem := q.QuoWord(q, s)
			bq, br := new(big.Int).QuoRem(x, new(big.Int).SetUint64(s), new(big.Int))
			requireBig(t, bq, toBig(q))
			require.Equal(t, br.Uint64(), rem)

			not := bitvec.New(w).Not(a)
			requireBig(t, modW(new(big.Int).Not(x), w), toBig(not))
		}
	}
}

func TestAddAliasing(t *testing.T) {
	v := bitvec.MustParse("x_ffff_ffff_ffff_ffff", 70)
	v.Add(v, v)
	assert.Equal(t, "1fffffffffffffffe", v.Text(16))
}

func TestSetString(t *testing.T) {
	td := []struct {
		in    string
		width int
		out   string
	}{
		{"", 8, "0"},
		{"0", 8, "0"},
		{"31", 8, "31"},
		{"d31", 8, "31"},
		{"D31", 8, "31"},
		{"h1f", 8, "31"},
		{"H1F", 8, "31"},
		{"x1F", 8, "31"},
		{"0x1f", 8, "31"},
		{"0X1f", 8, "31"},
		{"0h1f", 8, "31"},
		{"b11111", 8, "31"},
		{"0b1_1111", 8, "31"},
		{"1_000", 16, "1000"},
		{"256", 8, "0"},
		{"257", 8, "1"},
		{"xfff", 8, "255"},
		{"h", 8, "0"},
		{"18446744073709551616", 65, "18446744073709551616"},
		{"x1_0000_0000_0000_0000_0000_0000_0000_0001", 128, "1"},
		{"x1_0000_0000_0000_0000_0000_0000_0000_0001", 129, "340282366920938463463374607431768211457"},
	}
	for _, d := range td {
		t.Run(d.in, func(t *testing.T) {
			v, err := bitvec.Parse(d.in, d.width)
			require.NoError(t, err)
			assert.Equal(t, d.out, v.String())
		})
	}
}

func TestSetStringErrors(t *testing.T) {
	td := []struct {
		in  string
		pos string
	}{
		{"12a", "position 2"},
		{"x1g", "position 2"},
		{"b102", "position 3"},
		{"b2", "position 1"},  // digit equal to the radix
		{"10a", "position 2"}, // 'a' is 10
		{"1 2", "position 1"},
		{"-1", "position 0"},
		{"0x-1", "position 2"},
	}
	for _, d := range td {
		t.Run(d.in, func(t *testing.T) {
			v := bitvec.New(16).SetUint64(1234)
			err := v.SetString(d.in)
			require.Error(t, err)
			assert.Equal(t, bitvec.ErrSyntax, errors.Cause(err))
			assert.Contains(t, err.Error(), d.pos)
			// failed parses do not commit
			assert.Equal(t, "1234", v.String())
		})
	}
}

func TestText(t *testing.T) {
	v := bitvec.MustParse("340282366920938463463374607431768211455", 128)
	assert.Equal(t, strings.Repeat("f", 32), v.Text(16))
	assert.Equal(t, strings.Repeat("1", 128), v.Text(2))
	assert.Equal(t, "340282366920938463463374607431768211455", v.String())
	assert.Equal(t, "3777777777777777777777777777777777777777777", v.Text(8))

	v = bitvec.MustParse("x1_0000_0000_0000_0000", 65)
	assert.Equal(t, "18446744073709551616", v.Text(10))
	assert.Equal(t, "10000000000000000", v.Text(16))
	assert.Equal(t, "1"+strings.Repeat("0", 64), v.Text(2))

	assert.Panics(t, func() { v.Text(1) })
}

// parse then render must give back the input value modulo 2**width.
func TestRoundTrip(t *testing.T) {
	radixes := []struct {
		radix  int
		prefix []string
	}{
		{2, []string{"b", "0b", "B"}},
		{10, []string{"", "d"}},
		{16, []string{"h", "x", "0x", "0h", "X"}},
	}
	for _, w := range testWidths {
		w := w
		for _, rd := range radixes {
			rd := rd
			f := func(seed int64, sep bool) bool {
				r := rand.New(rand.NewSource(seed))
				x := randBig(r, w+10) // overflow the width on purpose
				s := x.Text(rd.radix)
				if sep && len(s) > 1 {
					s = s[:1] + "_" + s[1:]
				}
				s = rd.prefix[r.Intn(len(rd.prefix))] + s
				v, err := bitvec.Parse(s, w)
				if err != nil {
					t.Log(err)
					return false
				}
				back, err := bitvec.Parse(v.String(), w)
				if err != nil {
					t.Log(err)
					return false
				}
				return toBig(v).Cmp(modW(x, w)) == 0 && back.Equal(v)
			}
			if err := quick.Check(f, &quick.Config{MaxCount: 50}); err != nil {
				t.Errorf("width %d radix %d: %v", w, rd.radix, err)
			}
		}
	}
}

func TestBitAndEqual(t *testing.T) {
	v := bitvec.MustParse("b1010", 70)
	assert.Equal(t, uint(0), v.Bit(0))
	assert.Equal(t, uint(1), v.Bit(1))
	assert.Equal(t, uint(1), v.Bit(3))
	assert.Equal(t, uint(0), v.Bit(100))
	assert.True(t, v.Equal(bitvec.MustParse("10", 70)))
	assert.False(t, v.Equal(bitvec.MustParse("10", 71)))

	a, b := bitvec.MustParse("b1100", 4), bitvec.MustParse("b1010", 4)
	assert.Equal(t, "1000", bitvec.New(4).And(a, b).Text(2))
	assert.Equal(t, "1110", bitvec.New(4).Or(a, b).Text(2))
	assert.Equal(t, "110", bitvec.New(4).Xor(a, b).Text(2))
}

func TestCmp(t *testing.T) {
	const w = 130
	val := func(ws [3]uint64) *bitvec.Value {
		x := new(big.Int)
		for i := len(ws) - 1; i >= 0; i-- {
			x.Lsh(x, 64).Or(x, new(big.Int).SetUint64(ws[i]))
		}
		return fromBig(x, w)
	}
	f := func(x, y [3]uint64) bool {
		a, b := val(x), val(y)
		return a.Cmp(b) == toBig(a).Cmp(toBig(b)) && a.Cmp(a) == 0
	}
	require.NoError(t, quick.Check(f, nil))
	assert.Panics(t, func() { bitvec.New(3).Cmp(bitvec.New(4)) })
}
