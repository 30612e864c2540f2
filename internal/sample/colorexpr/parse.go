package colorexpr

import (
	"github.com/tephra-go/tephra/internal/lexer"
	"github.com/tephra-go/tephra/internal/parse"
	"github.com/tephra-go/tephra/internal/source"
)

// Parse lexes and parses a complete color expression from text, failing if
// anything is left over once the expression ends.
func Parse(text string) (Expr, error) {
	src := source.New(text)
	l := lexer.New[Token](src, &Scanner{}, lexer.WithFilter(SkipWs))
	ctx := parse.NewContext[Token]()

	s, err := ParseExpr(ctx)(l)
	if err != nil {
		return Expr{}, err
	}
	if _, err := parse.EndOfText[Token](s.Lexer); err != nil {
		fail := err.(*parse.Failure[Token])
		return Expr{}, parse.NewFailure(fail.Lexer, &TrailingInputError{SpanValue: fail.Lexer.PeekTokenSpan()})
	}
	return s.Value, nil
}
