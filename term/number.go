package term

import (
	"math/big"
	"strconv"
	"strings"
)

// ParseNumber parses text under the numeric literal grammar shared by
// the tokenizer and the symbol quoting policy: an optionally signed
// decimal integer, or a float carrying a fraction, an exponent, or
// both. Anything else is not a number.
func ParseNumber(text string) (Term, bool) {
	if !scanNumber(text) {
		return nil, false
	}
	if strings.ContainsAny(text, ".eE") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, false
		}
		return Float(f), true
	}
	i, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, false
	}
	return Int{i}, true
}

// scanNumber validates [+-]?digits(.digits)?([eE][+-]?digits)?
func scanNumber(s string) bool {
	i, n := 0, len(s)
	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < n && isDigit(s[i]) {
		i++
	}
	if i == start {
		return false
	}
	if i < n && s[i] == '.' {
		i++
		start = i
		for i < n && isDigit(s[i]) {
			i++
		}
		if i == start {
			return false
		}
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		start = i
		for i < n && isDigit(s[i]) {
			i++
		}
		if i == start {
			return false
		}
	}
	return i == n
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// FormatFloat renders a float so that reading the text back yields a
// float again: shortest round-trip form, with ".0" appended when the
// result carries neither point nor exponent.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
