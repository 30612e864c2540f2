package parse

import (
	"github.com/tephra-go/tephra/internal/lexer"
	"github.com/tephra-go/tephra/internal/span"
)

// Pair is the value produced by Both: the results of running two parsers
// in sequence.
type Pair[L, R any] struct {
	Left  L
	Right R
}

// Both runs left then right, threading the lexer between them, and
// returns both values.
func Both[Tok, L, R any](left Parser[Tok, L], right Parser[Tok, R]) Parser[Tok, Pair[L, R]] {
	return func(l *lexer.Lexer[Tok]) (Success[Tok, Pair[L, R]], error) {
		ls, err := left(l)
		if err != nil {
			return Success[Tok, Pair[L, R]]{}, err
		}
		rs, err := right(ls.Lexer)
		if err != nil {
			return Success[Tok, Pair[L, R]]{}, err
		}
		return Success[Tok, Pair[L, R]]{Lexer: rs.Lexer, Value: Pair[L, R]{Left: ls.Value, Right: rs.Value}}, nil
	}
}

// Left runs left then right and keeps only left's value.
func Left[Tok, L, R any](left Parser[Tok, L], right Parser[Tok, R]) Parser[Tok, L] {
	both := Both(left, right)
	return func(l *lexer.Lexer[Tok]) (Success[Tok, L], error) {
		s, err := both(l)
		if err != nil {
			return Success[Tok, L]{}, err
		}
		return Success[Tok, L]{Lexer: s.Lexer, Value: s.Value.Left}, nil
	}
}

// Right runs left then right and keeps only right's value.
func Right[Tok, L, R any](left Parser[Tok, L], right Parser[Tok, R]) Parser[Tok, R] {
	both := Both(left, right)
	return func(l *lexer.Lexer[Tok]) (Success[Tok, R], error) {
		s, err := both(l)
		if err != nil {
			return Success[Tok, R]{}, err
		}
		return Success[Tok, R]{Lexer: s.Lexer, Value: s.Value.Right}, nil
	}
}

// Center runs open, x, close in sequence and keeps only x's value.
func Center[Tok, O, X, C any](open Parser[Tok, O], x Parser[Tok, X], close Parser[Tok, C]) Parser[Tok, X] {
	return func(l *lexer.Lexer[Tok]) (Success[Tok, X], error) {
		os, err := open(l)
		if err != nil {
			return Success[Tok, X]{}, err
		}
		xs, err := x(os.Lexer)
		if err != nil {
			return Success[Tok, X]{}, err
		}
		cs, err := close(xs.Lexer)
		if err != nil {
			return Success[Tok, X]{}, err
		}
		return Success[Tok, X]{Lexer: cs.Lexer, Value: xs.Value}, nil
	}
}

// Text runs p and replaces its value with the raw source text consumed
// between entry and the resulting lexer's cursor.
func Text[Tok, V any](p Parser[Tok, V]) Parser[Tok, string] {
	return func(l *lexer.Lexer[Tok]) (Success[Tok, string], error) {
		start := l.CursorPos()
		s, err := p(l)
		if err != nil {
			return Success[Tok, string]{}, err
		}
		text := span.NewEnclosing(l.Source(), start, s.Lexer.CursorPos()).Text()
		return Success[Tok, string]{Lexer: s.Lexer, Value: text}, nil
	}
}

// Spanned runs p in a sub-lexer starting exactly at the entry cursor, and
// pairs its value with the resulting parse span (independent of whatever
// span the caller had already accumulated).
type SpannedValue[V any] struct {
	Value V
	Span  span.Span
}

func Spanned[Tok, V any](p Parser[Tok, V]) Parser[Tok, SpannedValue[V]] {
	return func(l *lexer.Lexer[Tok]) (Success[Tok, SpannedValue[V]], error) {
		sub := l.Sublexer(span.NewEnclosing(l.Source(), l.CursorPos(), l.Source().EndPosition()))
		sub.StartSpan()
		s, err := p(sub)
		if err != nil {
			f := asFailure[Tok](err)
			return Success[Tok, SpannedValue[V]]{}, NewFailure(l, f.Err)
		}
		sp := s.Lexer.ParseSpan()
		l.AdvanceTo(sp.End)
		return Success[Tok, SpannedValue[V]]{Lexer: l, Value: SpannedValue[V]{Value: s.Value, Span: sp}}, nil
	}
}

// Discard runs p and drops its value, returning struct{} on success.
func Discard[Tok, V any](p Parser[Tok, V]) Parser[Tok, struct{}] {
	return func(l *lexer.Lexer[Tok]) (Success[Tok, struct{}], error) {
		s, err := p(l)
		if err != nil {
			return Success[Tok, struct{}]{}, err
		}
		return Success[Tok, struct{}]{Lexer: s.Lexer}, nil
	}
}
