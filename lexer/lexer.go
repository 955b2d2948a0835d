// Package lexer turns raw text into a flat sequence of lexical units
// annotated with line and column numbers. It is line oriented: the
// incremental reader tokenizes one line at a time and the returned end
// line keeps positions correct across calls.
package lexer

import (
	"errors"
	"fmt"

	"github.com/zaphar/lfe/term"
)

// Lexical errors
var (
	ErrUnterminatedString = errors.New("unterminated string")
	ErrUnterminatedSymbol = errors.New("unterminated quoted symbol")
	ErrBadHashForm        = errors.New("illegal # form")
	ErrBadEscape          = errors.New("illegal escape sequence")
	ErrBadChar            = errors.New("illegal character")
)

type lexState func(*Lexer) lexState

// Lexer represents a lexical analyzer over a fixed chunk of text
type Lexer struct {
	in  []rune
	pos int

	line int
	col  int

	markLine int
	markCol  int

	toks    []Token
	lastErr error
}

// New initializes a Lexer for text, with positions counted from
// startLine.
func New(text string, startLine int) *Lexer {
	return &Lexer{
		in:   []rune(text),
		line: startLine,
		col:  1,
		toks: []Token{},
	}
}

// Tokenize scans text and returns its tokens along with the line number
// scanning ended on. Blank and comment-only text yields zero tokens and
// no error.
func Tokenize(text string, startLine int) ([]Token, int, error) {
	lx := New(text, startLine)

	for state := lexAny; state != nil; {
		state = state(lx)
	}

	if lx.lastErr != nil {
		return nil, lx.line, lx.lastErr
	}
	return lx.toks, lx.line, nil
}

func (lx *Lexer) eof() bool {
	return lx.pos >= len(lx.in)
}

func (lx *Lexer) peek() rune {
	if lx.eof() {
		return 0
	}
	return lx.in[lx.pos]
}

func (lx *Lexer) next() rune {
	r := lx.in[lx.pos]
	lx.pos++
	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return r
}

// mark records the position the token about to be scanned starts at
func (lx *Lexer) mark() {
	lx.markLine = lx.line
	lx.markCol = lx.col
}

func (lx *Lexer) emit(tt TokenType, text string) {
	lx.toks = append(lx.toks, NewToken(tt, text, lx.markLine, lx.markCol))
}

func lexErrorState(err error, line int) lexState {
	return func(lx *Lexer) lexState {
		lx.lastErr = fmt.Errorf("line %d: %w", line, err)
		return nil
	}
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' || r == '\v'
}

func lexAny(lx *Lexer) lexState {
	for !lx.eof() && isWhitespace(lx.peek()) {
		lx.next()
	}
	if lx.eof() {
		return nil
	}

	lx.mark()
	r := lx.next()

	switch r {
	case ';':
		return lexComment

	case '(':
		lx.emit(TokenLeftParen, "(")
	case ')':
		lx.emit(TokenRightParen, ")")
	case '[':
		lx.emit(TokenLeftBracket, "[")
	case ']':
		lx.emit(TokenRightBracket, "]")

	case '\'':
		lx.emit(TokenQuote, "'")
	case '`':
		lx.emit(TokenBackquote, "`")
	case ',':
		if lx.peek() == '@' {
			lx.next()
			lx.emit(TokenUnquoteSplicing, ",@")
		} else {
			lx.emit(TokenUnquote, ",")
		}

	case '#':
		return lexHash

	case '"':
		return lexQuoted(TokenString, '"', ErrUnterminatedString)
	case '|':
		return lexQuoted(TokenSymbol, '|', ErrUnterminatedSymbol)

	default:
		if IsSymbolStartChar(r) {
			return lexAtom(r)
		}
		return lexErrorState(ErrBadChar, lx.markLine)
	}

	return lexAny
}

func lexComment(lx *Lexer) lexState {
	for !lx.eof() {
		if lx.next() == '\n' {
			break
		}
	}
	return lexAny
}

// lexHash scans the forms that may follow "#": a vector opener "#(" or
// a bit sequence opener "#B(" / "#b(".
func lexHash(lx *Lexer) lexState {
	switch lx.peek() {
	case '(':
		lx.next()
		lx.emit(TokenVectorOpen, "#(")
		return lexAny
	case 'B', 'b':
		lx.next()
		if lx.peek() != '(' {
			return lexErrorState(ErrBadHashForm, lx.markLine)
		}
		lx.next()
		lx.emit(TokenBinaryOpen, "#B(")
		return lexAny
	}
	return lexErrorState(ErrBadHashForm, lx.markLine)
}

// lexAtom collects a bare atom and classifies it as a number, the
// standalone dot, or a symbol.
func lexAtom(first rune) lexState {
	return func(lx *Lexer) lexState {
		buf := []rune{first}
		for !lx.eof() && IsSymbolChar(lx.peek()) {
			buf = append(buf, lx.next())
		}
		text := string(buf)

		if text == "." {
			lx.emit(TokenDot, text)
			return lexAny
		}
		if n, ok := term.ParseNumber(text); ok {
			if n.Type() == term.TypeFloat {
				lx.emit(TokenFloat, text)
			} else {
				lx.emit(TokenInt, text)
			}
			return lexAny
		}
		lx.emit(TokenSymbol, text)
		return lexAny
	}
}

// lexQuoted collects a delimited literal ("..." or |...|), resolving
// escape sequences as it goes.
func lexQuoted(tt TokenType, quote rune, unterminated error) lexState {
	return func(lx *Lexer) lexState {
		buf := []rune{}
		for {
			if lx.eof() {
				return lexErrorState(unterminated, lx.markLine)
			}
			r := lx.next()
			if r == quote {
				lx.emit(tt, string(buf))
				return lexAny
			}
			if r != '\\' {
				buf = append(buf, r)
				continue
			}

			if lx.eof() {
				return lexErrorState(unterminated, lx.markLine)
			}
			e := lx.next()
			switch e {
			case 'n':
				buf = append(buf, '\n')
			case 'r':
				buf = append(buf, '\r')
			case 't':
				buf = append(buf, '\t')
			case 'v':
				buf = append(buf, '\v')
			case 'b':
				buf = append(buf, '\b')
			case 'f':
				buf = append(buf, '\f')
			case 'e':
				buf = append(buf, 0x1b)
			case 'd':
				buf = append(buf, 0x7f)
			case 'x':
				r, err := lx.scanHexEscape()
				if err != nil {
					return lexErrorState(err, lx.markLine)
				}
				buf = append(buf, r)
			default:
				// any other escaped character denotes itself
				buf = append(buf, e)
			}
		}
	}
}

// scanHexEscape reads the digits of a "\xHH...;" escape, the leading
// "\x" already consumed.
func (lx *Lexer) scanHexEscape() (rune, error) {
	var v rune
	digits := 0
	for {
		if lx.eof() {
			return 0, ErrBadEscape
		}
		r := lx.next()
		if r == ';' {
			if digits == 0 {
				return 0, ErrBadEscape
			}
			return v, nil
		}
		d := hexDigit(r)
		if d < 0 {
			return 0, ErrBadEscape
		}
		v = v<<4 | rune(d)
		digits++
		if digits > 6 {
			return 0, ErrBadEscape
		}
	}
}

func hexDigit(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}
	return -1
}
