// Command lfe-repl reads s-expressions interactively and prints each
// one back in canonical form. With file arguments it parses each file
// instead, printing every expression with its starting line.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/peterh/liner"

	"github.com/zaphar/lfe/printer"
	"github.com/zaphar/lfe/reader"
)

const (
	prompt     = "lfe> "
	contPrompt = "... "
)

// linerSource adapts liner to the reader's line source contract,
// switching to the continuation prompt while an expression is pending.
type linerSource struct {
	l *liner.State
}

func (s *linerSource) ReadLine(cont bool) (string, error) {
	p := prompt
	if cont {
		p = contPrompt
	}
	line, err := s.l.Prompt(p)
	if err == liner.ErrPromptAborted {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	if line != "" {
		s.l.AppendHistory(line)
	}
	return line, nil
}

func repl() error {
	l := liner.NewLiner()
	defer l.Close()
	l.SetCtrlCAborts(true)

	r := reader.New(&linerSource{l: l})
	for {
		t, err := r.Read()
		if err == io.EOF {
			fmt.Println()
			return nil
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Println(printer.Print(t))
	}
}

func parseFiles(paths []string) error {
	for _, path := range paths {
		forms, err := reader.ParseFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for _, form := range forms {
			fmt.Printf("%s:%d: %s\n", path, form.Line, printer.Print(form.Term))
		}
	}
	return nil
}

func main() {
	var err error
	if len(os.Args) > 1 {
		err = parseFiles(os.Args[1:])
	} else {
		err = repl()
	}
	if err != nil && !errors.Is(err, io.EOF) {
		log.Fatal(err)
	}
}
