// Package colorexpr is a driving example grammar built on internal/parse's
// combinators: a small S-expression-like language for color functions
// ("rgb(255, 0, 0)", "lighten(#ff8800, 0.2)"), used to exercise sub-lexing,
// spans, and bracket-matching recovery the way a real consumer of this
// module's core packages would.
package colorexpr

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tephra-go/tephra/internal/lexer"
	"github.com/tephra-go/tephra/internal/position"
	"github.com/tephra-go/tephra/internal/source"
)

// Token is the color-expression grammar's token alphabet.
type Token uint8

const (
	Ws Token = iota
	Ident
	Float
	Uint
	Hash
	HexDigits
	OpenParen
	CloseParen
	Comma
	Plus
	Minus
	Invalid
)

func (t Token) String() string {
	switch t {
	case Ws:
		return "whitespace"
	case Ident:
		return "identifier"
	case Float:
		return "floating-point number"
	case Uint:
		return "integer"
	case Hash:
		return "'#'"
	case HexDigits:
		return "hex digits"
	case OpenParen:
		return "'('"
	case CloseParen:
		return "')'"
	case Comma:
		return "','"
	case Plus:
		return "'+'"
	case Minus:
		return "'-'"
	default:
		return "invalid token"
	}
}

// Scanner recognizes a call-oriented expression grammar over a tiny
// numeric/color token alphabet. It is stateful only in the sense that a
// Hash token changes what the immediately following run of hex digits is
// classified as; HexDigits is otherwise indistinguishable from an
// identifier's trailing characters.
type Scanner struct {
	afterHash bool
}

var _ lexer.Scanner[Token] = &Scanner{}

// Clone implements lexer.Scanner, copying afterHash into a new Scanner so
// a clone's hash-prefix tracking evolves independently of the original's.
func (s *Scanner) Clone() lexer.Scanner[Token] {
	clone := *s
	return &clone
}

func (s *Scanner) Scan(src source.Text, base position.Position) (Token, position.Position, bool) {
	end := src.EndPosition()
	if base.Byte >= end.Byte {
		return 0, position.Position{}, false
	}
	rest := src.Slice(base, end)

	single := func(tok Token) (Token, position.Position, bool) {
		next, _ := src.NextPosition(base)
		s.afterHash = tok == Hash
		return tok, next, true
	}

	switch {
	case strings.HasPrefix(rest, "("):
		return single(OpenParen)
	case strings.HasPrefix(rest, ")"):
		return single(CloseParen)
	case strings.HasPrefix(rest, ","):
		return single(Comma)
	case strings.HasPrefix(rest, "+"):
		return single(Plus)
	case strings.HasPrefix(rest, "-"):
		return single(Minus)
	case strings.HasPrefix(rest, "#"):
		return single(Hash)
	}

	if r, _ := utf8.DecodeRuneInString(rest); isSpace(r) {
		return s.scanRun(src, base, end, isSpace, Ws)
	}

	if s.afterHash {
		if r, _ := utf8.DecodeRuneInString(rest); isHexDigit(r) {
			s.afterHash = false
			return s.scanRun(src, base, end, isHexDigit, HexDigits)
		}
		s.afterHash = false
	}

	if r, _ := utf8.DecodeRuneInString(rest); unicode.IsDigit(r) {
		return s.scanNumber(src, base, end)
	}

	if r, _ := utf8.DecodeRuneInString(rest); isIdentStart(r) {
		return s.scanRun(src, base, end, isIdentCont, Ident)
	}

	return single(Invalid)
}

// scanRun consumes the maximal run of runes satisfying pred starting at
// base, classifying it as tok.
func (s *Scanner) scanRun(src source.Text, base, end position.Position, pred func(rune) bool, tok Token) (Token, position.Position, bool) {
	cur := base
	for cur.Byte < end.Byte {
		next, ok := src.NextPosition(cur)
		if !ok {
			break
		}
		r, _ := utf8.DecodeRuneInString(src.Slice(cur, next))
		if !pred(r) {
			break
		}
		cur = next
	}
	s.afterHash = false
	return tok, cur, true
}

// scanNumber consumes a run of digits, optionally followed by a decimal
// point and more digits, classifying the result as Uint or Float.
func (s *Scanner) scanNumber(src source.Text, base, end position.Position) (Token, position.Position, bool) {
	cur := base
	sawDot := false
	for cur.Byte < end.Byte {
		next, ok := src.NextPosition(cur)
		if !ok {
			break
		}
		r, _ := utf8.DecodeRuneInString(src.Slice(cur, next))
		if unicode.IsDigit(r) {
			cur = next
			continue
		}
		if r == '.' && !sawDot {
			sawDot = true
			cur = next
			continue
		}
		break
	}
	s.afterHash = false
	if sawDot {
		return Float, cur, true
	}
	return Uint, cur, true
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentCont(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

// SkipWs is the filter predicate that makes a Lexer[Token] skip whitespace
// transparently.
func SkipWs(tok Token) bool { return tok == Ws }
