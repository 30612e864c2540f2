package parse

import "github.com/tephra-go/tephra/internal/lexer"

// FilterWith runs p with the lexer's token filter temporarily replaced by
// f, restoring the previous filter afterward regardless of whether p
// succeeds or fails.
func FilterWith[Tok, V any](f func(Tok) bool, p Parser[Tok, V]) Parser[Tok, V] {
	return func(l *lexer.Lexer[Tok]) (Success[Tok, V], error) {
		prev := l.TakeFilter()
		l.SetFilter(f)
		s, err := p(l)
		if err != nil {
			fail := asFailure[Tok](err)
			fail.Lexer.SetFilter(prev)
			return Success[Tok, V]{}, err
		}
		s.Lexer.SetFilter(prev)
		return s, nil
	}
}

// Exact runs p with no token filter at all, so tokens that would
// otherwise be skipped (whitespace, comments) are visible to it.
func Exact[Tok, V any](p Parser[Tok, V]) Parser[Tok, V] {
	return FilterWith[Tok, V](nil, p)
}
