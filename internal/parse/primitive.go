package parse

import (
	"fmt"

	"github.com/tephra-go/tephra/internal/lexer"
	"github.com/tephra-go/tephra/internal/perror"
)

// Empty parses the empty string: it always succeeds, consuming nothing.
func Empty[Tok any](l *lexer.Lexer[Tok]) (Success[Tok, struct{}], error) {
	return Success[Tok, struct{}]{Lexer: l}, nil
}

// unexpectedTokenFailure builds the UnexpectedTokenError failure a
// primitive raises when it consumes (or finds) a token that didn't match
// what was expected.
func unexpectedTokenFailure[Tok any](l *lexer.Lexer[Tok], expected string, found Tok, hasFound bool) *Failure[Tok] {
	err := &perror.UnexpectedTokenError[Tok]{
		Expected:       expected,
		Found:          found,
		HasFound:       hasFound,
		TokenSpanValue: l.TokenSpan(),
		ParseSpanValue: l.ParseSpan(),
	}
	return NewFailure(l, err)
}

// Fail parses any token and fails. It is used to unconditionally fail a
// branch, e.g. when a peeked token doesn't match any expected alternative.
func Fail[Tok any](l *lexer.Lexer[Tok]) (Success[Tok, struct{}], error) {
	tok, ok := l.Next()
	if ok {
		return Success[Tok, struct{}]{}, unexpectedTokenFailure(l, "nothing", tok, true)
	}
	var zero Tok
	return Success[Tok, struct{}]{}, unexpectedTokenFailure(l, "nothing", zero, false)
}

// EndOfText succeeds iff the lexer has no remaining nonfiltered tokens.
func EndOfText[Tok any](l *lexer.Lexer[Tok]) (Success[Tok, struct{}], error) {
	if l.IsEmpty() {
		return Success[Tok, struct{}]{Lexer: l}, nil
	}
	tok, _ := l.Peek()
	return Success[Tok, struct{}]{}, unexpectedTokenFailure(l, "end of text", tok, true)
}

// One returns a Parser that consumes a single token equal to want.
func One[Tok comparable](want Tok) Parser[Tok, Tok] {
	return func(l *lexer.Lexer[Tok]) (Success[Tok, Tok], error) {
		if l.IsEmpty() {
			var zero Tok
			return Success[Tok, Tok]{}, unexpectedTokenFailure(l, fmt.Sprintf("%v", want), zero, false)
		}
		tok, ok := l.Next()
		if !ok {
			return Success[Tok, Tok]{}, NewFailure[Tok](l, &perror.UnrecognizedTokenError{SpanValue: l.TokenSpan()})
		}
		if tok != want {
			return Success[Tok, Tok]{}, unexpectedTokenFailure(l, fmt.Sprintf("%v", want), tok, true)
		}
		return Success[Tok, Tok]{Lexer: l, Value: tok}, nil
	}
}

// Any returns a Parser that tries each of tokens in order, succeeding on
// the first match. All other tokens are non-destructive: each attempt
// starts from a clone, so only the winning attempt's consumption sticks.
func Any[Tok comparable](tokens []Tok) Parser[Tok, Tok] {
	return func(l *lexer.Lexer[Tok]) (Success[Tok, Tok], error) {
		for _, want := range tokens {
			attempt := l.Clone()
			tok, ok := attempt.Next()
			if ok && tok == want {
				return Success[Tok, Tok]{Lexer: attempt, Value: tok}, nil
			}
		}
		found, hasFound := l.Peek()
		return Success[Tok, Tok]{}, unexpectedTokenFailure(l, describeList(tokens), found, hasFound)
	}
}

// Seq returns a Parser that consumes exactly tokens, in order, failing on
// the first mismatch (consuming nothing on failure).
func Seq[Tok comparable](tokens []Tok) Parser[Tok, []Tok] {
	return func(l *lexer.Lexer[Tok]) (Success[Tok, []Tok], error) {
		attempt := l.Clone()
		found := make([]Tok, 0, len(tokens))
		for _, want := range tokens {
			if attempt.IsEmpty() {
				var zero Tok
				return Success[Tok, []Tok]{}, unexpectedTokenFailure(l, fmt.Sprintf("%v", want), zero, false)
			}
			tok, ok := attempt.Next()
			if !ok {
				return Success[Tok, []Tok]{}, NewFailure[Tok](l, &perror.UnrecognizedTokenError{SpanValue: attempt.TokenSpan()})
			}
			if tok != want {
				return Success[Tok, []Tok]{}, unexpectedTokenFailure(l, fmt.Sprintf("%v", want), tok, true)
			}
			found = append(found, tok)
		}
		return Success[Tok, []Tok]{Lexer: attempt, Value: found}, nil
	}
}

// Maybe converts any failure of p into a successful None, with the lexer
// rewound to its state before p was attempted.
func Maybe[Tok, V any](p Parser[Tok, V]) Parser[Tok, *V] {
	return func(l *lexer.Lexer[Tok]) (Success[Tok, *V], error) {
		initial := l.Clone()
		succ, err := p(initial)
		if err != nil {
			return Success[Tok, *V]{Lexer: l}, nil
		}
		v := succ.Value
		return Success[Tok, *V]{Lexer: succ.Lexer, Value: &v}, nil
	}
}

func zeroOf[T any]() T {
	var zero T
	return zero
}

func describeList[Tok any](tokens []Tok) string {
	s := "one of "
	for i, t := range tokens {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%v", t)
	}
	return s
}
