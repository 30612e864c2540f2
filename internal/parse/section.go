package parse

import (
	"github.com/tephra-go/tephra/internal/lexer"
	"github.com/tephra-go/tephra/internal/perror"
)

// Section runs p and, on failure, wraps the error with name and kind
// describing the enclosing grammar construct (e.g. kind "expression", name
// "operand"). On success the lexer is simply passed through.
func Section[Tok, V any](name, kind string, p Parser[Tok, V]) Parser[Tok, V] {
	return func(l *lexer.Lexer[Tok]) (Success[Tok, V], error) {
		s, err := p(l)
		if err == nil {
			return s, nil
		}
		fail := asFailure[Tok](err)
		sp := fail.Lexer.ParseSpan()
		if ps, ok := fail.ParseSpan(); ok {
			sp = ps
		}
		wrapped := &perror.SectionError{Name: name, Kind: kind, Span: sp, Cause: fail.Err}
		return Success[Tok, V]{}, NewFailure(fail.Lexer, wrapped)
	}
}

// Atomic is Section combined with no-consume semantics: if p fails without
// having advanced the lexer's cursor at all, the failure is treated as
// benign and Atomic succeeds with a nil value instead of propagating it.
// A failure that consumed input is still a contextual failure.
func Atomic[Tok, V any](name, kind string, p Parser[Tok, V]) Parser[Tok, *V] {
	sectioned := Section(name, kind, p)
	return func(l *lexer.Lexer[Tok]) (Success[Tok, *V], error) {
		start := l.CursorPos()
		s, err := sectioned(l)
		if err != nil {
			fail := asFailure[Tok](err)
			if fail.Lexer.CursorPos() == start {
				return Success[Tok, *V]{Lexer: l}, nil
			}
			return Success[Tok, *V]{}, err
		}
		v := s.Value
		return Success[Tok, *V]{Lexer: s.Lexer, Value: &v}, nil
	}
}
