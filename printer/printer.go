// Package printer converts terms into canonical re-readable text. The
// printer is depth bounded: a non-negative depth limits how much
// structure is expanded before a truncation marker is substituted, and
// -1 means unlimited.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/zaphar/lfe/term"
)

// Print renders t with unlimited depth
func Print(t term.Term) string {
	return PrintDepth(t, -1)
}

// Fprint renders t with unlimited depth to a sink
func Fprint(w io.Writer, t term.Term) error {
	_, err := io.WriteString(w, Print(t))
	return err
}

// PrintDepth renders t expanding at most depth nesting levels; -1 means
// unlimited. Depth 0 yields the bare truncation marker regardless of
// shape. Opaque values fall back to the fmt package's %v rendering.
func PrintDepth(t term.Term, depth int) string {
	var sb strings.Builder
	printTerm(&sb, t, depth)
	return sb.String()
}

func printTerm(sb *strings.Builder, t term.Term, d int) {
	if d == 0 {
		sb.WriteString("...")
		return
	}

	switch x := t.(type) {

	case term.Symbol:
		sb.WriteString(EncodeSymbol(string(x)))

	case term.Int:
		sb.WriteString(x.String())

	case term.Float:
		sb.WriteString(term.FormatFloat(float64(x)))

	case term.Empty:
		sb.WriteString("()")

	case *term.Cons:
		// Reader-macro shorthands print before generic list handling
		// and intentionally keep the caller's depth.
		if prefix, arg, ok := shorthandForm(x); ok {
			sb.WriteString(prefix)
			printTerm(sb, arg, d)
			return
		}
		if d == 1 {
			sb.WriteString("(...)")
			return
		}
		sb.WriteByte('(')
		printTerm(sb, x.Car, d-1)
		printTail(sb, x.Cdr, d-1)
		sb.WriteByte(')')

	case term.Vector:
		if d == 1 {
			sb.WriteString("{...}")
			return
		}
		if len(x) == 0 {
			sb.WriteString("#()")
			return
		}
		sb.WriteString("#(")
		printTerm(sb, x[0], d-1)
		printSliceTail(sb, x[1:], d-1)
		sb.WriteByte(')')

	case *term.Bits:
		sb.WriteString("#B(")
		sb.WriteString(EncodeBits(x))
		sb.WriteByte(')')

	case term.Opaque:
		fmt.Fprintf(sb, "%v", x.Value)

	default:
		fmt.Fprintf(sb, "%v", t)
	}
}

// printTail renders the remainder of a list. Iterative so that long
// proper lists cost constant stack; each element spends one unit of
// depth, and the boundary renders as " ...".
func printTail(sb *strings.Builder, t term.Term, d int) {
	for {
		if _, ok := t.(term.Empty); ok {
			return
		}
		if d == 1 {
			sb.WriteString(" ...")
			return
		}
		c, ok := t.(*term.Cons)
		if !ok {
			sb.WriteString(" . ")
			printTerm(sb, t, d-1)
			return
		}
		sb.WriteByte(' ')
		printTerm(sb, c.Car, d-1)
		t = c.Cdr
		d--
	}
}

func printSliceTail(sb *strings.Builder, elems []term.Term, d int) {
	for _, e := range elems {
		if d == 1 {
			sb.WriteString(" ...")
			return
		}
		sb.WriteByte(' ')
		printTerm(sb, e, d-1)
		d--
	}
}

var shorthandPrefixes = map[term.Symbol]string{
	"quote":            "'",
	"backquote":        "`",
	"unquote":          ",",
	"unquote-splicing": ",@",
}

// shorthandForm matches a two-element list headed by one of the reader
// macro symbols.
func shorthandForm(c *term.Cons) (string, term.Term, bool) {
	head, ok := c.Car.(term.Symbol)
	if !ok {
		return "", nil, false
	}
	prefix, ok := shorthandPrefixes[head]
	if !ok {
		return "", nil, false
	}
	rest, ok := c.Cdr.(*term.Cons)
	if !ok {
		return "", nil, false
	}
	if _, ok := rest.Cdr.(term.Empty); !ok {
		return "", nil, false
	}
	return prefix, rest.Car, true
}
