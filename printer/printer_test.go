package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zaphar/lfe/term"
)

func TestPrintAtoms(t *testing.T) {
	testCases := []struct {
		In   term.Term
		Want string
	}{
		{term.Symbol("abc"), "abc"},
		{term.Symbol("with space"), "|with space|"},
		{term.Symbol("123"), "|123|"},
		{term.Symbol(""), "||"},
		{term.NewInt(42), "42"},
		{term.NewInt(-7), "-7"},
		{term.Float(2.5), "2.5"},
		{term.Float(1), "1.0"},
		{term.Nil, "()"},
		{term.Opaque{Value: 42}, "42"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Want, Print(tc.In))
	}
}

func TestPrintLists(t *testing.T) {
	testCases := []struct {
		In   term.Term
		Want string
	}{
		{term.List(term.NewInt(1), term.NewInt(2), term.NewInt(3)), "(1 2 3)"},
		{term.DottedList(term.Symbol("b"), term.Symbol("a")), "(a . b)"},
		{term.DottedList(term.NewInt(3), term.NewInt(1), term.NewInt(2)), "(1 2 . 3)"},
		{term.List(term.List(term.Symbol("a")), term.Nil), "((a) ())"},
		{term.Vector{}, "#()"},
		{term.Vector{term.NewInt(1), term.NewInt(2)}, "#(1 2)"},
		{term.Vector{term.List(term.Symbol("a")), term.Vector{term.NewInt(1)}}, "#((a) #(1))"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Want, Print(tc.In))
	}
}

func TestPrintShorthand(t *testing.T) {
	quoted := func(name string, arg term.Term) term.Term {
		return term.List(term.Symbol(name), arg)
	}

	testCases := []struct {
		In   term.Term
		Want string
	}{
		{quoted("quote", term.Symbol("x")), "'x"},
		{quoted("backquote", term.Symbol("x")), "`x"},
		{quoted("unquote", term.Symbol("x")), ",x"},
		{quoted("unquote-splicing", term.Symbol("x")), ",@x"},
		{quoted("quote", term.List(term.Symbol("a"), term.Symbol("b"))), "'(a b)"},
		{quoted("quote", quoted("quote", term.Symbol("x"))), "''x"},
		// three elements is not the shorthand shape
		{term.List(term.Symbol("quote"), term.Symbol("x"), term.Symbol("y")), "(quote x y)"},
		// nor is a dotted pair
		{term.DottedList(term.Symbol("x"), term.Symbol("quote")), "(quote . x)"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Want, Print(tc.In))
	}
}

func TestPrintDepth(t *testing.T) {
	nested := term.List(
		term.NewInt(1),
		term.List(term.NewInt(2), term.List(term.NewInt(3), term.NewInt(4))),
	)

	testCases := []struct {
		Depth int
		Want  string
	}{
		{0, "..."},
		{1, "(...)"},
		{2, "(1 ...)"},
		{3, "(1 (...))"},
		{4, "(1 (2 (...)))"},
		{-1, "(1 (2 (3 4)))"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Want, PrintDepth(nested, tc.Depth), "depth %d", tc.Depth)
	}

	// the third level is truncated, not expanded
	got := PrintDepth(nested, 2)
	assert.NotContains(t, got, "3")
	assert.Contains(t, got, "...")
}

func TestPrintDepthAtoms(t *testing.T) {
	assert.Equal(t, "...", PrintDepth(term.Symbol("abc"), 0))
	assert.Equal(t, "...", PrintDepth(term.NewInt(1), 0))
	assert.Equal(t, "...", PrintDepth(term.Vector{}, 0))
	assert.Equal(t, "...", PrintDepth(term.NewBits([]byte{0xff}, 8), 0))
	assert.Equal(t, "abc", PrintDepth(term.Symbol("abc"), 1))
}

func TestPrintDepthVector(t *testing.T) {
	v := term.Vector{term.NewInt(1), term.Vector{term.NewInt(2)}, term.NewInt(3)}

	testCases := []struct {
		Depth int
		Want  string
	}{
		{1, "{...}"},
		{2, "#(1 ...)"},
		{3, "#(1 {...} ...)"},
		{-1, "#(1 #(2) 3)"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Want, PrintDepth(v, tc.Depth), "depth %d", tc.Depth)
	}
}

func TestPrintDepthBoundsListLength(t *testing.T) {
	l := term.List(
		term.Symbol("a"), term.Symbol("b"), term.Symbol("c"),
		term.Symbol("d"), term.Symbol("e"),
	)
	assert.Equal(t, "(a b ...)", PrintDepth(l, 3))
	assert.Equal(t, "(a b c d e)", PrintDepth(l, 10))
}

func TestPrintShorthandKeepsDepth(t *testing.T) {
	// the shorthand prefix does not consume a depth level
	inner := term.List(term.Symbol("a"), term.Symbol("b"))
	quoted := term.List(term.Symbol("quote"), inner)

	assert.Equal(t, "'(a b)", PrintDepth(quoted, 3))
	assert.Equal(t, PrintDepth(quoted, 3), "'"+PrintDepth(inner, 3))
}

func TestPrintBits(t *testing.T) {
	testCases := []struct {
		In   *term.Bits
		Want string
	}{
		{term.NewBits(nil, 0), "#B()"},
		{term.NewBits([]byte{0xff}, 8), "#B(255)"},
		{term.NewBits([]byte{0xff, 0x01}, 16), "#B(255 1)"},
		{term.NewBits([]byte{0xff, 0x80}, 10), "#B(255 (2 bitstring (size 2)))"},
		{term.NewBits([]byte{0xe0}, 3), "#B((7 bitstring (size 3)))"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Want, Print(tc.In))
	}
}

func TestPrintDeepListIterates(t *testing.T) {
	// a long proper list must not grow the stack per element
	elems := make([]term.Term, 200000)
	for i := range elems {
		elems[i] = term.NewInt(int64(i % 10))
	}
	out := Print(term.List(elems...))
	assert.True(t, strings.HasPrefix(out, "(0 1 2"))
	assert.True(t, strings.HasSuffix(out, ")"))
}

func TestFprint(t *testing.T) {
	var sb strings.Builder
	err := Fprint(&sb, term.List(term.Symbol("a"), term.NewInt(1)))
	assert.NoError(t, err)
	assert.Equal(t, "(a 1)", sb.String())
}
