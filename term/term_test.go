package term

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListBuilders(t *testing.T) {
	l := List(NewInt(1), NewInt(2))
	c, ok := l.(*Cons)
	assert.True(t, ok)
	assert.True(t, Equal(c.Car, NewInt(1)))

	rest, ok := c.Cdr.(*Cons)
	assert.True(t, ok)
	assert.True(t, Equal(rest.Car, NewInt(2)))
	assert.Equal(t, TypeEmpty, rest.Cdr.Type())

	assert.Equal(t, TypeEmpty, List().Type())

	d := DottedList(Symbol("tail"), NewInt(1))
	dc, ok := d.(*Cons)
	assert.True(t, ok)
	assert.Equal(t, TypeSymbol, dc.Cdr.Type())
}

func TestStringList(t *testing.T) {
	assert.True(t, Equal(
		StringList("ab"),
		List(NewInt(97), NewInt(98)),
	))
	assert.Equal(t, TypeEmpty, StringList("").Type())
}

func TestEqual(t *testing.T) {
	testCases := []struct {
		A    Term
		B    Term
		Want bool
	}{
		{Symbol("abc"), Symbol("abc"), true},
		{Symbol("abc"), Symbol("abd"), false},
		{NewInt(42), NewInt(42), true},
		{NewInt(42), Float(42), false},
		{Float(1.5), Float(1.5), true},
		{Nil, Nil, true},
		{Nil, List(NewInt(1)), false},
		{List(NewInt(1), NewInt(2)), List(NewInt(1), NewInt(2)), true},
		{List(NewInt(1)), DottedList(NewInt(2), NewInt(1)), false},
		{Vector{NewInt(1)}, Vector{NewInt(1)}, true},
		{Vector{NewInt(1)}, Vector{NewInt(1), NewInt(2)}, false},
		{NewBits([]byte{0xff}, 8), NewBits([]byte{0xff}, 8), true},
		{NewBits([]byte{0xff}, 8), NewBits([]byte{0xff}, 7), false},
		{Opaque{Value: "x"}, Opaque{Value: "x"}, true},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Want, Equal(tc.A, tc.B), "%v vs %v", tc.A, tc.B)
	}
}

func TestEqualBitsSignificantBytesOnly(t *testing.T) {
	// hand-built values need not have canonical slice lengths
	long := &Bits{Data: []byte{0x01, 0x02}, Size: 8}
	short := &Bits{Data: []byte{0x01}, Size: 8}
	empty := &Bits{Data: nil, Size: 8}

	assert.True(t, Equal(long, short))
	assert.True(t, Equal(short, long))
	assert.False(t, Equal(long, NewBits([]byte{0x02}, 8)))
	assert.False(t, Equal(empty, short))
	assert.True(t, Equal(empty, &Bits{Data: []byte{0x00}, Size: 8}))
}

func TestNewBitsMasksDeadBits(t *testing.T) {
	// 0b111 in the high bits plus garbage below
	b := NewBits([]byte{0xff}, 3)
	assert.Equal(t, []byte{0xe0}, b.Data)
	assert.True(t, Equal(b, NewBits([]byte{0xe0}, 3)))
}

func TestParseNumber(t *testing.T) {
	testCases := []struct {
		In   string
		Want Term
		OK   bool
	}{
		{"0", NewInt(0), true},
		{"123", NewInt(123), true},
		{"-42", NewInt(-42), true},
		{"+7", NewInt(7), true},
		{"1.5", Float(1.5), true},
		{"-0.25", Float(-0.25), true},
		{"1.5e3", Float(1500), true},
		{"1e6", Float(1e6), true},
		{"2E-2", Float(0.02), true},
		{"", nil, false},
		{"abc", nil, false},
		{"1.", nil, false},
		{".5", nil, false},
		{"1e", nil, false},
		{"+", nil, false},
		{"-", nil, false},
		{"1x2", nil, false},
		{"1 2", nil, false},
	}

	for _, tc := range testCases {
		got, ok := ParseNumber(tc.In)
		assert.Equal(t, tc.OK, ok, "%q", tc.In)
		if tc.OK {
			assert.True(t, Equal(tc.Want, got), "%q -> %v", tc.In, got)
		}
	}
}

func TestParseNumberBig(t *testing.T) {
	in := "123456789012345678901234567890"
	got, ok := ParseNumber(in)
	assert.True(t, ok)

	want, _ := new(big.Int).SetString(in, 10)
	assert.True(t, Equal(NewBigInt(want), got))
}

func TestFormatFloat(t *testing.T) {
	testCases := []struct {
		In   float64
		Want string
	}{
		{1.5, "1.5"},
		{1, "1.0"},
		{-2, "-2.0"},
		{1e21, "1e+21"},
		{0.0001, "0.0001"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Want, FormatFloat(tc.In))
	}
}
