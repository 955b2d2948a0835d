package lfe

import (
	"github.com/zaphar/lfe/lexer"
	"github.com/zaphar/lfe/parser"
	"github.com/zaphar/lfe/printer"
	"github.com/zaphar/lfe/reader"
	"github.com/zaphar/lfe/term"
)

// ReadString parses the first expression in s
func ReadString(s string) (term.Term, error) {
	toks, _, err := lexer.Tokenize(s, 1)
	if err != nil {
		return nil, err
	}
	t, _, _, err := parser.One(toks)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Print renders a term with unlimited depth
func Print(t term.Term) string {
	return printer.Print(t)
}

// ParseFile parses every expression in a file, keeping starting lines
func ParseFile(path string) ([]reader.Form, error) {
	return reader.ParseFile(path)
}

// ReadFile parses every expression in a file
func ReadFile(path string) ([]term.Term, error) {
	return reader.ReadFile(path)
}
