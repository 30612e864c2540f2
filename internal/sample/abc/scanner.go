// Package abc is a small driving grammar exercising the combinators in
// internal/parse: three token patterns ("abc", "bxx", "xyc") over a tiny
// fixed alphabet, used by this module's tests and by cmd/tephra's demo
// subcommands.
package abc

import (
	"strings"
	"unicode/utf8"

	"github.com/tephra-go/tephra/internal/lexer"
	"github.com/tephra-go/tephra/internal/position"
	"github.com/tephra-go/tephra/internal/source"
)

// Token is the abc grammar's token alphabet.
type Token uint8

const (
	A Token = iota
	B
	C
	D
	Ws
	Comma
	Semicolon
	OpenBracket
	CloseBracket
	Invalid
)

// IsPattern reports whether t can appear in one of the grammar's three
// patterns.
func (t Token) IsPattern() bool {
	switch t {
	case A, B, C, D:
		return true
	default:
		return false
	}
}

func (t Token) String() string {
	switch t {
	case A:
		return "'a'"
	case B:
		return "'b'"
	case C:
		return "'c'"
	case D:
		return "'d'"
	case Ws:
		return "whitespace"
	case Comma:
		return "','"
	case Semicolon:
		return "';'"
	case OpenBracket:
		return "'['"
	case CloseBracket:
		return "']'"
	default:
		return "invalid token"
	}
}

// Scanner recognizes Token out of a byte stream: single-character tokens
// for the letters a-d, the punctuation ',', ';', '[', ']', a single Ws
// token for any run of whitespace, and Invalid for anything else.
type Scanner struct{}

var _ lexer.Scanner[Token] = Scanner{}

// Clone implements lexer.Scanner. Scanner carries no state, so the zero
// value is already an independent copy.
func (s Scanner) Clone() lexer.Scanner[Token] { return s }

func (Scanner) Scan(src source.Text, base position.Position) (Token, position.Position, bool) {
	if base.Byte >= src.EndPosition().Byte {
		return 0, position.Position{}, false
	}

	rest := src.Slice(base, src.EndPosition())
	single := func(tok Token) (Token, position.Position, bool) {
		next, _ := src.NextPosition(base)
		return tok, next, true
	}

	switch {
	case strings.HasPrefix(rest, ","):
		return single(Comma)
	case strings.HasPrefix(rest, ";"):
		return single(Semicolon)
	case strings.HasPrefix(rest, "]"):
		return single(CloseBracket)
	case strings.HasPrefix(rest, "["):
		return single(OpenBracket)
	case strings.HasPrefix(rest, "a"):
		return single(A)
	case strings.HasPrefix(rest, "b"):
		return single(B)
	case strings.HasPrefix(rest, "c"):
		return single(C)
	case strings.HasPrefix(rest, "d"):
		return single(D)
	}

	if r, _ := utf8.DecodeRuneInString(rest); isSpace(r) {
		cur := base
		for {
			next, ok := src.NextPosition(cur)
			if !ok {
				break
			}
			r, _ := utf8.DecodeRuneInString(src.Slice(cur, next))
			if !isSpace(r) {
				break
			}
			cur = next
		}
		return Ws, cur, true
	}

	return single(Invalid)
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

// SkipWs is the filter predicate that makes a Lexer[Token] skip whitespace
// transparently, the way the grammar's tests expect.
func SkipWs(tok Token) bool { return tok == Ws }
