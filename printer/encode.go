package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zaphar/lfe/lexer"
	"github.com/zaphar/lfe/term"
)

// SymbolNeedsQuoting decides whether a symbol's text must be wrapped
// and escaped as |...| to be read back unambiguously: empty text, text
// that reads back as a number, and text carrying characters outside the
// bare-symbol set all need quoting. A handful of characters are valid
// inside a bare symbol but not at its start.
func SymbolNeedsQuoting(name string) bool {
	if name == "" {
		return true
	}
	// a bare dot would read back as the dotted-pair marker
	if name == "." {
		return true
	}
	if _, ok := term.ParseNumber(name); ok {
		return true
	}

	runes := []rune(name)
	if !lexer.IsSymbolStartChar(runes[0]) {
		return true
	}
	for _, r := range runes[1:] {
		if !lexer.IsSymbolChar(r) {
			return true
		}
	}
	return false
}

// EncodeSymbol renders a symbol's text, quoting it only when needed
func EncodeSymbol(name string) string {
	if SymbolNeedsQuoting(name) {
		return EncodeString(name, '|')
	}
	return name
}

// EncodeString wraps s in the given quote character, escaping every
// character that needs it.
func EncodeString(s string, quote rune) string {
	var sb strings.Builder
	sb.WriteRune(quote)
	for _, r := range s {
		encodeChar(&sb, r, quote)
	}
	sb.WriteRune(quote)
	return sb.String()
}

var charEscapes = map[rune]string{
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
	'\v': `\v`,
	'\b': `\b`,
	'\f': `\f`,
	0x1b: `\e`,
	0x7f: `\d`,
}

func encodeChar(sb *strings.Builder, r rune, quote rune) {
	switch {
	case r == quote:
		sb.WriteByte('\\')
		sb.WriteRune(quote)
	case r == '\\':
		sb.WriteString(`\\`)
	case r >= ' ' && r <= '~':
		sb.WriteRune(r)
	case r >= 0xA0 && r <= 0xFF:
		sb.WriteRune(r)
	default:
		if esc, ok := charEscapes[r]; ok {
			sb.WriteString(esc)
			return
		}
		fmt.Fprintf(sb, `\x%02x;`, r)
	}
}

// EncodeBits formats a bit sequence in full
func EncodeBits(b *term.Bits) string {
	return EncodeBitsLimit(b, -1)
}

// EncodeBitsLimit formats a bit sequence as whitespace-separated byte
// values, spending one unit of limit per byte; -1 means unlimited and 0
// renders the ellipsis immediately. A final partial group of 1-7 bits
// renders as (N bitstring (size K)).
func EncodeBitsLimit(b *term.Bits, limit int) string {
	var sb strings.Builder

	full := b.Size / 8
	rem := b.Size % 8
	n := limit

	for i := 0; ; i++ {
		if n == 0 {
			sb.WriteString("...")
			return sb.String()
		}
		left := full - i
		if left == 0 {
			break
		}
		if left == 1 && rem == 0 {
			// last group, no trailing separator
			sb.WriteString(strconv.Itoa(int(b.Data[i])))
			return sb.String()
		}
		sb.WriteString(strconv.Itoa(int(b.Data[i])))
		sb.WriteByte(' ')
		n--
	}

	if rem == 0 {
		return sb.String()
	}
	v := b.Data[full] >> (8 - uint(rem))
	fmt.Fprintf(&sb, "(%d bitstring (size %d))", v, rem)
	return sb.String()
}
