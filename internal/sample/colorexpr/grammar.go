package colorexpr

import (
	"strconv"

	"github.com/tephra-go/tephra/internal/lexer"
	"github.com/tephra-go/tephra/internal/parse"
	"github.com/tephra-go/tephra/internal/perror"
	"github.com/tephra-go/tephra/internal/span"
)

// callAbortTokens are the tokens DelimitedListBoundedDefault treats as
// synchronization points when an argument fails to parse: it skips forward
// to the next comma or the closing paren and substitutes a placeholder
// argument rather than abandoning the whole call.
var callAbortTokens = []Token{CloseParen}

// placeholderArg is substituted for an argument that failed to parse and
// could not be recovered cleanly.
var placeholderArg = Expr{Kind: ExprIdent, Text: "<error>"}

// ParseExpr parses a unary expression: an optional leading '-' applied to a
// primary expression.
func ParseExpr(ctx *parse.Context[Token]) parse.Parser[Token, Expr] {
	return func(l *lexer.Lexer[Token]) (parse.Success[Token, Expr], error) {
		if _, ok := l.NextIf(func(t Token) bool { return t == Minus }); ok {
			opStart := l.TokenStartPos()
			s, err := parsePrimary(ctx)(l)
			if err != nil {
				return parse.Success[Token, Expr]{}, err
			}
			full := span.NewEnclosing(l.Source(), opStart, s.Lexer.CursorPos())
			operand := s.Value
			return parse.Success[Token, Expr]{
				Lexer: s.Lexer,
				Value: Expr{Kind: ExprNegate, Span: full, Operand: &operand},
			}, nil
		}
		return parsePrimary(ctx)(l)
	}
}

// parsePrimary parses an identifier, a call, a number literal, or a hex
// color, in that order of dispatch on the lookahead token.
func parsePrimary(ctx *parse.Context[Token]) parse.Parser[Token, Expr] {
	return func(l *lexer.Lexer[Token]) (parse.Success[Token, Expr], error) {
		tok, ok := l.Peek()
		if !ok {
			return parse.Success[Token, Expr]{}, parse.NewFailure[Token](l, &perror.UnexpectedTokenError[Token]{
				Expected:       "an expression",
				ParseSpanValue: l.ParseSpan(),
			})
		}

		switch tok {
		case Hash:
			return parseHexColor(l)
		case Float:
			return parseNumber(l, ExprFloat)
		case Uint:
			return parseNumber(l, ExprUint)
		case Ident:
			return parseIdentOrCall(ctx)(l)
		default:
			return parse.Success[Token, Expr]{}, parse.NewFailure[Token](l, &perror.UnexpectedTokenError[Token]{
				Expected:       "an expression",
				Found:          tok,
				HasFound:       true,
				TokenSpanValue: l.PeekTokenSpan(),
				ParseSpanValue: l.ParseSpan(),
			})
		}
	}
}

// parseNumber consumes a single Uint or Float token, verbatim, as kind.
func parseNumber(l *lexer.Lexer[Token], kind ExprKind) (parse.Success[Token, Expr], error) {
	tok, ok := l.Next()
	if !ok {
		return parse.Success[Token, Expr]{}, parse.NewFailure[Token](l, &perror.UnexpectedTokenError[Token]{
			Expected:       "a number",
			ParseSpanValue: l.ParseSpan(),
		})
	}
	_ = tok
	sp := l.TokenSpan()
	text := sp.Text()
	val, _ := strconv.ParseFloat(text, 64)
	return parse.Success[Token, Expr]{Lexer: l, Value: Expr{Kind: kind, Span: sp, Text: text, Number: val}}, nil
}

// parseHexColor consumes a '#' immediately followed by a run of hex digits.
func parseHexColor(l *lexer.Lexer[Token]) (parse.Success[Token, Expr], error) {
	hs, err := parse.One(Hash)(l)
	if err != nil {
		return parse.Success[Token, Expr]{}, err
	}
	hashSpan := hs.Lexer.TokenSpan()

	ds, err := parse.One(HexDigits)(hs.Lexer)
	if err != nil {
		return parse.Success[Token, Expr]{}, err
	}
	full := hashSpan.Enclose(ds.Lexer.TokenSpan())
	return parse.Success[Token, Expr]{
		Lexer: ds.Lexer,
		Value: Expr{Kind: ExprHexColor, Span: full, Text: full.Text()},
	}, nil
}

// parseIdentOrCall consumes an identifier, then, if immediately followed by
// '(', a comma-separated argument list up to ')', making it a call.
func parseIdentOrCall(ctx *parse.Context[Token]) parse.Parser[Token, Expr] {
	return func(l *lexer.Lexer[Token]) (parse.Success[Token, Expr], error) {
		s, err := parse.One(Ident)(l)
		if err != nil {
			return parse.Success[Token, Expr]{}, err
		}
		name := s.Lexer.TokenSpan().Text()
		nameSpan := s.Lexer.TokenSpan()
		cur := s.Lexer

		if tok, ok := cur.Peek(); !ok || tok != OpenParen {
			return parse.Success[Token, Expr]{Lexer: cur, Value: Expr{Kind: ExprIdent, Span: nameSpan, Text: name}}, nil
		}

		args := parse.DelimitedListBoundedDefault[Token, Expr](
			ctx, 0, parse.Unbounded, ParseExpr(ctx), Comma, callAbortTokens, placeholderArg,
		)
		call := parse.BracketDefaultIndex[Token, []Expr](
			ctx, []Token{OpenParen}, args, []Token{CloseParen}, nil, nil,
		)
		cs, err := call(cur)
		if err != nil {
			return parse.Success[Token, Expr]{}, err
		}
		full := nameSpan.Enclose(cs.Lexer.TokenSpan())
		return parse.Success[Token, Expr]{
			Lexer: cs.Lexer,
			Value: Expr{Kind: ExprCall, Span: full, Callee: name, Args: cs.Value},
		}, nil
	}
}
