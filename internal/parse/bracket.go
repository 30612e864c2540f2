package parse

import (
	"github.com/tephra-go/tephra/internal/lexer"
	"github.com/tephra-go/tephra/internal/perror"
	"github.com/tephra-go/tephra/internal/span"
)

type bracketStackEntry struct {
	index int
	span  span.Span
}

// MatchNestedBrackets scans a clone of l for the first balanced bracket
// pair, where openTokens[i] pairs with closeTokens[i]. It returns the
// lexer positioned just past the matched closing bracket and the span of
// the interior (exclusive of both brackets). abortPred, if non-nil, is
// checked against every token seen before the first open bracket is
// found; a match there ends the search early with NoneFound, so scanning
// doesn't run past content that obviously isn't going to contain the
// bracketed construct.
func MatchNestedBrackets[Tok comparable](
	l *lexer.Lexer[Tok],
	openTokens, closeTokens []Tok,
	abortPred func(Tok) bool,
) (*lexer.Lexer[Tok], span.Span, error) {
	attempt := l.Clone()
	var stack []bracketStackEntry
	var interiorStart span.Span
	found := false

	indexOf := func(tokens []Tok, tok Tok) int {
		for i, t := range tokens {
			if t == tok {
				return i
			}
		}
		return -1
	}

	for {
		if attempt.IsEmpty() {
			if len(stack) == 0 {
				return nil, span.Span{}, &perror.MatchBracketError{
					Kind:          perror.NoneFound,
					ExpectedStart: span.New(attempt.Source(), attempt.CursorPos()),
				}
			}
			return nil, span.Span{}, &perror.MatchBracketError{
				Kind:       perror.Unclosed,
				FoundStart: stack[0].span,
			}
		}

		beforeCursor := attempt.CursorPos()
		tok, ok := attempt.Next()
		if !ok {
			return nil, span.Span{}, &perror.MatchBracketError{
				Kind:          perror.NoneFound,
				ExpectedStart: span.New(attempt.Source(), beforeCursor),
			}
		}
		tokSpan := attempt.TokenSpan()

		if oi := indexOf(openTokens, tok); oi >= 0 {
			if !found {
				found = true
				interiorStart = tokSpan
			}
			stack = append(stack, bracketStackEntry{index: oi, span: tokSpan})
			continue
		}

		if ci := indexOf(closeTokens, tok); ci >= 0 {
			if len(stack) == 0 {
				return nil, span.Span{}, &perror.MatchBracketError{
					Kind:     perror.Unopened,
					FoundEnd: tokSpan,
				}
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.index != ci {
				return nil, span.Span{}, &perror.MatchBracketError{
					Kind:       perror.Mismatch,
					FoundStart: top.span,
					FoundEnd:   tokSpan,
				}
			}
			if len(stack) == 0 {
				interior := span.NewEnclosing(attempt.Source(), interiorStart.End, tokSpan.Start)
				return attempt, interior, nil
			}
			continue
		}

		if !found && abortPred != nil && abortPred(tok) {
			return nil, span.Span{}, &perror.MatchBracketError{
				Kind:          perror.NoneFound,
				ExpectedStart: tokSpan,
			}
		}
	}
}

// BracketDefaultIndex locates a balanced bracket pair via
// MatchNestedBrackets, then runs content over the interior as a
// sub-lexer. A failure of content is routed through ctx: if recovered, def
// is substituted and parsing continues past the closing bracket;
// otherwise the failure is fatal. Panics at construction if the open/close
// token lists are empty, of unequal length, or overlap.
func BracketDefaultIndex[Tok comparable, V any](
	ctx *Context[Tok],
	openTokens []Tok,
	content Parser[Tok, V],
	closeTokens []Tok,
	abortPred func(Tok) bool,
	def V,
) Parser[Tok, V] {
	if len(openTokens) == 0 || len(openTokens) != len(closeTokens) {
		panic("parse.BracketDefaultIndex: open/close token lists must be equal length and non-empty")
	}
	for _, o := range openTokens {
		for _, c := range closeTokens {
			if o == c {
				panic("parse.BracketDefaultIndex: open/close token sets must be disjoint")
			}
		}
	}

	return func(l *lexer.Lexer[Tok]) (Success[Tok, V], error) {
		after, interior, err := MatchNestedBrackets(l, openTokens, closeTokens, abortPred)
		if err != nil {
			return Success[Tok, V]{}, NewFailure[Tok](l, err)
		}

		sub := l.Sublexer(interior)
		s, perr := content(sub)
		if perr != nil {
			fail := asFailure[Tok](perr)
			if sendErr := ctx.SendError(fail); sendErr != nil {
				return Success[Tok, V]{}, NewFailure(after, sendErr)
			}
			return Success[Tok, V]{Lexer: after, Value: def}, nil
		}
		return Success[Tok, V]{Lexer: after, Value: s.Value}, nil
	}
}
