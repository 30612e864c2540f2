package parse

import (
	"github.com/tephra-go/tephra/internal/lexer"
	"github.com/tephra-go/tephra/internal/perror"
)

// DelimitedListBoundedDefault parses between low and high (Unbounded for
// no upper bound) instances of item separated by sep, stopping at
// end-of-text or any token in abortTokens. A failed item is recovered by
// skipping forward to the next separator or abort token and substituting
// def in its place, so one bad element doesn't abort the whole list;
// recovery is routed through ctx so a caller without an installed sink
// sees it as fatal.
func DelimitedListBoundedDefault[Tok comparable, V any](
	ctx *Context[Tok],
	low, high int,
	item Parser[Tok, V],
	sep Tok,
	abortTokens []Tok,
	def V,
) Parser[Tok, []V] {
	if high != Unbounded && high < low {
		panic("parse.DelimitedListBoundedDefault: high < low")
	}

	isAbort := func(tok Tok) bool {
		for _, a := range abortTokens {
			if tok == a {
				return true
			}
		}
		return tok == sep
	}

	return func(l *lexer.Lexer[Tok]) (Success[Tok, []V], error) {
		if high == 0 {
			return Success[Tok, []V]{Lexer: l, Value: nil}, nil
		}

		cur := l
		var items []V

		for {
			if high != Unbounded && len(items) >= high {
				break
			}
			tok, ok := cur.Peek()
			if !ok || isAbortToken(tok, abortTokens) {
				if len(items) > 0 {
					items = append(items, def)
				}
				break
			}

			start := cur.ParseSpan()
			s, err := item(cur)
			if err != nil {
				fail := asFailure[Tok](err)
				if sendErr := ctx.SendError(fail); sendErr != nil {
					return Success[Tok, []V]{}, NewFailure(cur, sendErr)
				}
				fail.Lexer.AdvanceToRecover(isAbort)
				items = append(items, def)
				cur = fail.Lexer
			} else {
				items = append(items, s.Value)
				cur = s.Lexer
			}
			_ = start

			probe := cur.Clone()
			if _, sepErr := One(sep)(probe); sepErr != nil {
				break
			}
			cur = probe
		}

		if len(items) < low {
			err := &perror.RepeatCountError{
				ParseSpanValue: cur.ParseSpan(),
				Found:          len(items),
				ExpectedMin:    low,
				ExpectedMax:    high,
			}
			fail := NewFailure(cur, err)
			if sendErr := ctx.SendError(fail); sendErr != nil {
				return Success[Tok, []V]{}, NewFailure[Tok](cur, sendErr)
			}
		}

		return Success[Tok, []V]{Lexer: cur, Value: items}, nil
	}
}

func isAbortToken[Tok comparable](tok Tok, abortTokens []Tok) bool {
	for _, a := range abortTokens {
		if tok == a {
			return true
		}
	}
	return false
}
