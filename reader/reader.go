// Package reader drives the tokenizer and the expression parser across
// successive input lines until one complete expression is available, and
// provides whole-file parsing on top of the same collaborators.
package reader

import (
	"bufio"
	"errors"
	"io"

	"github.com/zaphar/lfe/lexer"
	"github.com/zaphar/lfe/parser"
	"github.com/zaphar/lfe/term"
)

// LineSource supplies one line of input per call. cont reports whether
// a partially read expression is pending, so interactive sources can
// switch to a continuation prompt. End of input is io.EOF.
type LineSource interface {
	ReadLine(cont bool) (string, error)
}

type scannerSource struct {
	sc *bufio.Scanner
}

func (s *scannerSource) ReadLine(cont bool) (string, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.sc.Text(), nil
}

// Lines adapts any io.Reader into a LineSource
func Lines(r io.Reader) LineSource {
	return &scannerSource{sc: bufio.NewScanner(r)}
}

// Reader reads expressions one at a time from a line source. It keeps a
// running line count so token positions stay correct across calls, but
// no token carries over from one Read to the next.
type Reader struct {
	src  LineSource
	line int
}

// New creates a Reader over a line source
func New(src LineSource) *Reader {
	return &Reader{src: src, line: 1}
}

// NewScanner creates a Reader over an io.Reader
func NewScanner(r io.Reader) *Reader {
	return New(Lines(r))
}

// Read accumulates lines until they parse as one complete expression
// and returns it. Blank and comment-only lines are skipped. A parse
// that only needs more input keeps the loop going; any other tokenizer
// or parser error aborts the call, discarding the accumulated tokens.
// Tokens left over on the line that completed the expression are
// discarded, not retained for a later Read. End of input with nothing
// accumulated returns io.EOF.
func (r *Reader) Read() (term.Term, error) {
	buf := []lexer.Token{}

	for {
		line, err := r.src.ReadLine(len(buf) > 0)
		if err == io.EOF {
			if len(buf) == 0 {
				return nil, io.EOF
			}
			t, _, _, perr := parser.One(buf)
			if perr != nil {
				return nil, perr
			}
			return t, nil
		}
		if err != nil {
			return nil, err
		}

		toks, next, terr := lexer.Tokenize(line, r.line)
		r.line = next + 1
		if terr != nil {
			return nil, terr
		}
		if len(toks) == 0 {
			continue
		}
		buf = append(buf, toks...)

		t, _, _, perr := parser.One(buf)
		if perr == nil {
			return t, nil
		}
		if errors.Is(perr, parser.ErrIncomplete) {
			continue
		}
		return nil, perr
	}
}
