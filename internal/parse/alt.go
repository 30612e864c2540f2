package parse

import "github.com/tephra-go/tephra/internal/lexer"

// Either tries left; if left fails, tries right from a fresh clone of the
// entry lexer. If both fail, the right branch's failure is returned
// unmerged — we don't attempt to report "both branches failed" as a
// combined error, matching the behavior this combinator was distilled
// from.
func Either[Tok, V any](left Parser[Tok, V], right Parser[Tok, V]) Parser[Tok, V] {
	return func(l *lexer.Lexer[Tok]) (Success[Tok, V], error) {
		attempt := l.Clone()
		s, err := left(attempt)
		if err == nil {
			return s, nil
		}
		return right(l.Clone())
	}
}
