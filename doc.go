// Package lfe implements a textual codec for Lisp-style s-expressions:
// symbols, numbers, proper and improper lists, vectors and bit-level
// byte sequences.
//
// The write path converts in-memory terms into canonical, re-readable
// text through a depth-bounded printer that quotes symbols and escapes
// characters only when the result would otherwise read back
// differently. The read path tokenizes text and parses one expression
// at a time; for interactive input it accumulates lines until a
// complete expression is available.
//
// The subpackages do the work: term holds the value model, lexer and
// parser implement the reading collaborators, printer implements the
// write path, and reader drives incremental and whole-file reads. This
// package is a thin facade over them.
package lfe
