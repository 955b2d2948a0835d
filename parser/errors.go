package parser

import (
	"errors"
)

// Parse errors. ErrIncomplete is the only recoverable one: it means the
// tokens form a valid prefix of some expression and more input could
// complete it. Everything else is malformed input that no amount of
// further input can repair.
var (
	ErrIncomplete      = errors.New("incomplete expression")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrBadDotted       = errors.New("malformed dotted list")
	ErrBadBinary       = errors.New("malformed bit sequence element")
)
