// Package parser consumes a token sequence and produces one structured
// term plus the unconsumed remainder. It distinguishes "incomplete,
// more input could resolve this" from all other malformed-input errors;
// the incremental reader depends on that distinction.
package parser

import (
	"fmt"

	"github.com/zaphar/lfe/lexer"
	"github.com/zaphar/lfe/term"
)

type parser struct {
	toks []lexer.Token
	pos  int
}

// One parses exactly one expression from the front of toks. It returns
// the term, the line its first token starts on, and the unconsumed
// token remainder. On failure the remainder is returned as-is so the
// caller can decide whether to retry with more tokens appended.
func One(toks []lexer.Token) (term.Term, int, []lexer.Token, error) {
	if len(toks) == 0 {
		return nil, 0, toks, ErrIncomplete
	}

	p := &parser{toks: toks}
	line := toks[0].Line()

	t, err := p.expr()
	if err != nil {
		return nil, line, toks, err
	}
	return t, line, toks[p.pos:], nil
}

func (p *parser) peek() (lexer.Token, bool) {
	if p.pos >= len(p.toks) {
		return lexer.Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) next() (lexer.Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

func errorAt(err error, tok lexer.Token) error {
	return fmt.Errorf("line %d: %w: %q", tok.Line(), err, tok.Text())
}

func (p *parser) expr() (term.Term, error) {
	tok, ok := p.next()
	if !ok {
		return nil, ErrIncomplete
	}

	switch tok.Type() {

	case lexer.TokenInt, lexer.TokenFloat:
		n, ok := term.ParseNumber(tok.Text())
		if !ok {
			return nil, errorAt(ErrUnexpectedToken, tok)
		}
		return n, nil

	case lexer.TokenSymbol:
		return term.Symbol(tok.Text()), nil

	case lexer.TokenString:
		return term.StringList(tok.Text()), nil

	case lexer.TokenQuote:
		return p.shorthand("quote")
	case lexer.TokenBackquote:
		return p.shorthand("backquote")
	case lexer.TokenUnquote:
		return p.shorthand("unquote")
	case lexer.TokenUnquoteSplicing:
		return p.shorthand("unquote-splicing")

	case lexer.TokenLeftParen:
		return p.list(lexer.TokenRightParen)
	case lexer.TokenLeftBracket:
		return p.list(lexer.TokenRightBracket)

	case lexer.TokenVectorOpen:
		return p.vector()

	case lexer.TokenBinaryOpen:
		return p.binary()
	}

	return nil, errorAt(ErrUnexpectedToken, tok)
}

// shorthand expands a reader-macro prefix into its two-element list
// form.
func (p *parser) shorthand(name string) (term.Term, error) {
	sub, err := p.expr()
	if err != nil {
		return nil, err
	}
	return term.List(term.Symbol(name), sub), nil
}

// list parses the elements of a list whose opener is already consumed,
// up to the matching closer. A dot introduces an improper tail: exactly
// one expression followed by the closer.
func (p *parser) list(close lexer.TokenType) (term.Term, error) {
	elems := []term.Term{}

	for {
		tok, ok := p.peek()
		if !ok {
			return nil, ErrIncomplete
		}

		switch {
		case tok.Is(close):
			p.next()
			return term.List(elems...), nil

		case tok.Is(lexer.TokenRightParen), tok.Is(lexer.TokenRightBracket):
			// mismatched closing delimiter
			return nil, errorAt(ErrUnexpectedToken, tok)

		case tok.Is(lexer.TokenDot):
			if len(elems) == 0 {
				return nil, errorAt(ErrBadDotted, tok)
			}
			p.next()

			tail, err := p.expr()
			if err != nil {
				return nil, err
			}
			end, ok := p.peek()
			if !ok {
				return nil, ErrIncomplete
			}
			if !end.Is(close) {
				return nil, errorAt(ErrBadDotted, end)
			}
			p.next()
			return term.DottedList(tail, elems...), nil
		}

		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
}

func (p *parser) vector() (term.Term, error) {
	elems := term.Vector{}

	for {
		tok, ok := p.peek()
		if !ok {
			return nil, ErrIncomplete
		}
		if tok.Is(lexer.TokenRightParen) {
			p.next()
			return elems, nil
		}
		if tok.Is(lexer.TokenRightBracket) {
			return nil, errorAt(ErrUnexpectedToken, tok)
		}

		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
}

// binary parses the body of a "#B(" form: byte values 0-255 and
// segment forms "(N bitstring (size K))" contributing the low K bits
// of N.
func (p *parser) binary() (term.Term, error) {
	w := bitWriter{}

	for {
		tok, ok := p.peek()
		if !ok {
			return nil, ErrIncomplete
		}
		if tok.Is(lexer.TokenRightParen) {
			p.next()
			return term.NewBits(w.data, w.size), nil
		}

		e, err := p.expr()
		if err != nil {
			return nil, err
		}

		switch x := e.(type) {
		case term.Int:
			if !x.IsInt64() || x.Int64() < 0 || x.Int64() > 255 {
				return nil, errorAt(ErrBadBinary, tok)
			}
			w.writeBits(uint64(x.Int64()), 8)

		case *term.Cons:
			v, size, ok := binarySegment(x)
			if !ok {
				return nil, errorAt(ErrBadBinary, tok)
			}
			w.writeBits(v, size)

		default:
			return nil, errorAt(ErrBadBinary, tok)
		}
	}
}

// binarySegment matches the printed form of a partial byte group:
// (N bitstring (size K)).
func binarySegment(t term.Term) (uint64, int, bool) {
	elems, ok := listElems(t)
	if !ok || len(elems) != 3 {
		return 0, 0, false
	}

	n, ok := elems[0].(term.Int)
	if !ok || !n.IsInt64() || n.Int64() < 0 {
		return 0, 0, false
	}
	if s, ok := elems[1].(term.Symbol); !ok || s != "bitstring" {
		return 0, 0, false
	}

	sz, ok := listElems(elems[2])
	if !ok || len(sz) != 2 {
		return 0, 0, false
	}
	if s, ok := sz[0].(term.Symbol); !ok || s != "size" {
		return 0, 0, false
	}
	k, ok := sz[1].(term.Int)
	if !ok || !k.IsInt64() || k.Int64() < 1 || k.Int64() > 64 {
		return 0, 0, false
	}

	return uint64(n.Int64()), int(k.Int64()), true
}

// listElems flattens a proper list into a slice; it fails on improper
// lists.
func listElems(t term.Term) ([]term.Term, bool) {
	elems := []term.Term{}
	for {
		switch x := t.(type) {
		case term.Empty:
			return elems, true
		case *term.Cons:
			elems = append(elems, x.Car)
			t = x.Cdr
		default:
			return nil, false
		}
	}
}

// bitWriter accumulates a bit sequence MSB-first
type bitWriter struct {
	data []byte
	size int
}

func (w *bitWriter) writeBits(v uint64, n int) {
	for i := n - 1; i >= 0; i-- {
		if w.size%8 == 0 {
			w.data = append(w.data, 0)
		}
		if v>>uint(i)&1 != 0 {
			w.data[len(w.data)-1] |= 1 << (7 - uint(w.size%8))
		}
		w.size++
	}
}
