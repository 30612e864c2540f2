package parse

import (
	"github.com/tephra-go/tephra/internal/lexer"
	"github.com/tephra-go/tephra/internal/position"
	"github.com/tephra-go/tephra/internal/source"
)

// charScanner classifies each rune of the input as itself, giving the
// combinators in this package a minimal token stream to exercise without
// pulling in a real grammar.
func charScanner(src source.Text, base position.Position) (rune, position.Position, bool) {
	end := src.EndPosition()
	if base.Byte >= end.Byte {
		return 0, position.Position{}, false
	}
	next, ok := src.NextPosition(base)
	if !ok {
		return 0, position.Position{}, false
	}
	return []rune(src.Slice(base, next))[0], next, true
}

func isSpace(r rune) bool { return r == ' ' }

func newCharLexer(text string) *lexer.Lexer[rune] {
	return lexer.New[rune](source.New(text), lexer.ScannerFunc[rune](charScanner))
}

func newFilteredCharLexer(text string) *lexer.Lexer[rune] {
	return lexer.New[rune](source.New(text), lexer.ScannerFunc[rune](charScanner), lexer.WithFilter(isSpace))
}
