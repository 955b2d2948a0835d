package term

import (
	"math/big"
)

// Type represents the shape of a term
type Type uint8

// List of term shapes
const (
	TypeInvalid Type = iota
	TypeSymbol
	TypeInt
	TypeFloat
	TypeEmpty
	TypeCons
	TypeVector
	TypeBits
	TypeOpaque
)

var typeNames = map[Type]string{
	TypeInvalid: "invalid",
	TypeSymbol:  "symbol",
	TypeInt:     "int",
	TypeFloat:   "float",
	TypeEmpty:   "empty",
	TypeCons:    "cons",
	TypeVector:  "vector",
	TypeBits:    "bits",
	TypeOpaque:  "opaque",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return typeNames[TypeInvalid]
}

// Term is a printable and readable value. The set of shapes is closed:
// anything outside it travels as Opaque.
type Term interface {
	Type() Type
}

// Symbol is an identifier-like atom
type Symbol string

func (s Symbol) Type() Type {
	return TypeSymbol
}

// Int is an arbitrary-precision signed integer
type Int struct {
	*big.Int
}

// NewInt creates an integer term from a machine integer
func NewInt(v int64) Int {
	return Int{big.NewInt(v)}
}

// NewBigInt creates an integer term from a big integer
func NewBigInt(v *big.Int) Int {
	return Int{v}
}

func (i Int) Type() Type {
	return TypeInt
}

// Float is an IEEE double
type Float float64

func (f Float) Type() Type {
	return TypeFloat
}

// Empty is the empty list
type Empty struct{}

func (e Empty) Type() Type {
	return TypeEmpty
}

// Nil is the canonical empty list value
var Nil = Empty{}

// Cons is a pair. A chain of pairs whose final Cdr is Nil is a proper
// list; any other final Cdr makes the list improper (dotted).
type Cons struct {
	Car Term
	Cdr Term
}

func (c *Cons) Type() Type {
	return TypeCons
}

// NewCons creates a pair
func NewCons(car Term, cdr Term) *Cons {
	return &Cons{Car: car, Cdr: cdr}
}

// Vector is an ordered fixed sequence of terms
type Vector []Term

func (v Vector) Type() Type {
	return TypeVector
}

// Bits is an ordered sequence of Size bits stored MSB-first in Data.
// The final partial group, if any, lives in the high bits of the last
// byte.
type Bits struct {
	Data []byte
	Size int
}

func (b *Bits) Type() Type {
	return TypeBits
}

// NewBits creates a bit sequence of size bits backed by data. Dead bits
// after the end of the sequence are cleared so equal sequences compare
// equal.
func NewBits(data []byte, size int) *Bits {
	n := (size + 7) / 8
	cp := make([]byte, n)
	copy(cp, data)
	if rem := size % 8; rem != 0 && n > 0 {
		cp[n-1] &= byte(0xff) << (8 - rem)
	}
	return &Bits{Data: cp, Size: size}
}

// Opaque carries a host value outside the closed shape set
type Opaque struct {
	Value any
}

func (o Opaque) Type() Type {
	return TypeOpaque
}

// List builds a proper list from the given terms
func List(terms ...Term) Term {
	var out Term = Nil
	for i := len(terms) - 1; i >= 0; i-- {
		out = &Cons{Car: terms[i], Cdr: out}
	}
	return out
}

// DottedList builds a list of the given terms ending in tail
func DottedList(tail Term, terms ...Term) Term {
	out := tail
	for i := len(terms) - 1; i >= 0; i-- {
		out = &Cons{Car: terms[i], Cdr: out}
	}
	return out
}

// StringList builds the proper list of character codes that a string
// literal denotes.
func StringList(s string) Term {
	runes := []rune(s)
	terms := make([]Term, len(runes))
	for i, r := range runes {
		terms[i] = NewInt(int64(r))
	}
	return List(terms...)
}

// Equal reports structural equality of two terms. Floats compare with
// the host's float equality; opaque values with ==.
func Equal(a Term, b Term) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type() != b.Type() {
		return false
	}

	switch x := a.(type) {
	case Symbol:
		return x == b.(Symbol)
	case Int:
		return x.Cmp(b.(Int).Int) == 0
	case Float:
		return x == b.(Float)
	case Empty:
		return true
	case *Cons:
		y := b.(*Cons)
		return Equal(x.Car, y.Car) && Equal(x.Cdr, y.Cdr)
	case Vector:
		y := b.(Vector)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case *Bits:
		y := b.(*Bits)
		if x.Size != y.Size {
			return false
		}
		// only the (Size+7)/8 leading bytes are significant; the
		// slices may be hand-built with any length
		for i := 0; i < (x.Size+7)/8; i++ {
			if byteAt(x.Data, i) != byteAt(y.Data, i) {
				return false
			}
		}
		return true
	case Opaque:
		return x.Value == b.(Opaque).Value
	}

	return false
}

func byteAt(data []byte, i int) byte {
	if i < len(data) {
		return data[i]
	}
	return 0
}
