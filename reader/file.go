package reader

import (
	"io"
	"os"

	"github.com/zaphar/lfe/lexer"
	"github.com/zaphar/lfe/parser"
	"github.com/zaphar/lfe/term"
)

// Form is a parsed expression together with the line it starts on
type Form struct {
	Term term.Term
	Line int
}

// ParseFile parses every expression in the file at path, in order,
// keeping each expression's starting line. The first failure aborts the
// whole operation; there is no partial success.
func ParseFile(path string) ([]Form, error) {
	toks, err := tokenizeFile(path)
	if err != nil {
		return nil, err
	}

	forms := []Form{}
	for len(toks) > 0 {
		t, line, rest, err := parser.One(toks)
		if err != nil {
			return nil, err
		}
		forms = append(forms, Form{Term: t, Line: line})
		toks = rest
	}
	return forms, nil
}

// ReadFile parses every expression in the file at path, in order
func ReadFile(path string) ([]term.Term, error) {
	forms, err := ParseFile(path)
	if err != nil {
		return nil, err
	}

	terms := make([]term.Term, len(forms))
	for i := range forms {
		terms[i] = forms[i].Term
	}
	return terms, nil
}

// tokenizeFile obtains a file's complete token stream in one request.
// The handle is released on every exit path.
func tokenizeFile(path string) ([]lexer.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	toks, _, err := lexer.Tokenize(string(data), 1)
	if err != nil {
		return nil, err
	}
	return toks, nil
}
