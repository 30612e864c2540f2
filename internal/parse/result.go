// Package parse implements the parser-combinator layer over
// internal/lexer: ParseResult-returning functions (Parser[Tok, V]) and the
// combinators that compose them, following the value-semantics,
// clone-to-backtrack contract of the Lexer they're built on.
package parse

import (
	"fmt"

	"github.com/tephra-go/tephra/internal/lexer"
	"github.com/tephra-go/tephra/internal/perror"
	"github.com/tephra-go/tephra/internal/span"
)

// Success is the result of a parse that consumed (or chose not to
// consume) some prefix of the lexer's remaining text.
type Success[Tok, V any] struct {
	Lexer *lexer.Lexer[Tok]
	Value V
}

// MapValue returns a Success with the same lexer and a transformed value.
func MapValue[Tok, V, W any](s Success[Tok, V], f func(V) W) Success[Tok, W] {
	return Success[Tok, W]{Lexer: s.Lexer, Value: f(s.Value)}
}

// Failure is the result of a parse that did not succeed. It carries the
// lexer at the point of failure (which may have consumed some input
// before failing) so that recovery combinators can resume scanning from
// there, and the underlying typed error describing what went wrong.
type Failure[Tok any] struct {
	Lexer *lexer.Lexer[Tok]
	Err   error
}

// Error implements the error interface.
func (f *Failure[Tok]) Error() string { return f.Err.Error() }

// Unwrap exposes the underlying error to errors.Is/As.
func (f *Failure[Tok]) Unwrap() error { return f.Err }

// ParseSpan returns the span of the parse when the failure occurred, if
// the underlying error reports one.
func (f *Failure[Tok]) ParseSpan() (span.Span, bool) {
	if pe, ok := f.Err.(perror.ParseError); ok {
		return pe.ParseSpan()
	}
	return span.Span{}, false
}

// NewFailure wraps err with the lexer state at the point of failure.
func NewFailure[Tok any](l *lexer.Lexer[Tok], err error) *Failure[Tok] {
	return &Failure[Tok]{Lexer: l, Err: err}
}

// Parser is a parse step: given a lexer, it either succeeds, returning a
// new lexer state and a value, or fails, returning a *Failure[Tok] in the
// error position. Every combinator in this package is a function that
// takes and/or returns a Parser.
type Parser[Tok, V any] func(l *lexer.Lexer[Tok]) (Success[Tok, V], error)

// asFailure extracts the *Failure[Tok] carried by err, panicking if err is
// some other error type — every error returned by a Parser in this
// package is a *Failure[Tok]; anything else is a programming error.
func asFailure[Tok any](err error) *Failure[Tok] {
	f, ok := err.(*Failure[Tok])
	if !ok {
		panic(fmt.Sprintf("parse: non-Failure error escaped a Parser: %v", err))
	}
	return f
}
