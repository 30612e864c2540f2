package abc

import (
	"github.com/tephra-go/tephra/internal/lexer"
	"github.com/tephra-go/tephra/internal/parse"
	"github.com/tephra-go/tephra/internal/source"
	"github.com/tephra-go/tephra/internal/span"
)

// PatternKind identifies which of the grammar's three alternatives matched.
type PatternKind uint8

const (
	PatternAbc PatternKind = iota
	PatternBxx
	PatternXyc
)

func (k PatternKind) String() string {
	switch k {
	case PatternAbc:
		return "abc"
	case PatternBxx:
		return "bxx"
	default:
		return "xyc"
	}
}

// Pattern is the result of successfully matching one of the grammar's
// three token-triples.
type Pattern struct {
	Kind PatternKind
	Text string
	Span span.Span
}

var patternTokens = []Token{A, B, C, D}

// Abc matches the literal sequence 'a' 'b' 'c'.
func Abc(l *lexer.Lexer[Token]) (parse.Success[Token, [3]Token], error) {
	s, err := parse.Seq(patternTokens[:3])(l)
	if err != nil {
		return parse.Success[Token, [3]Token]{}, err
	}
	return parse.Success[Token, [3]Token]{
		Lexer: s.Lexer,
		Value: [3]Token{s.Value[0], s.Value[1], s.Value[2]},
	}, nil
}

// Bxx matches 'b' followed by any pattern token x, followed by another
// instance of that same token x.
func Bxx(l *lexer.Lexer[Token]) (parse.Success[Token, [3]Token], error) {
	bx := parse.Both(parse.One(B), parse.Any(patternTokens))
	s, err := bx(l)
	if err != nil {
		return parse.Success[Token, [3]Token]{}, err
	}
	x, y := s.Value.Left, s.Value.Right
	zs, err := parse.One(y)(s.Lexer)
	if err != nil {
		return parse.Success[Token, [3]Token]{}, err
	}
	return parse.Success[Token, [3]Token]{Lexer: zs.Lexer, Value: [3]Token{x, y, zs.Value}}, nil
}

// Xyc matches any two pattern tokens followed by a literal 'c'.
func Xyc(l *lexer.Lexer[Token]) (parse.Success[Token, [3]Token], error) {
	p := parse.Both(parse.Both(parse.Any(patternTokens), parse.Any(patternTokens)), parse.One(C))
	s, err := p(l)
	if err != nil {
		return parse.Success[Token, [3]Token]{}, err
	}
	xy := s.Value.Left
	return parse.Success[Token, [3]Token]{Lexer: s.Lexer, Value: [3]Token{xy.Left, xy.Right, s.Value.Right}}, nil
}

func tripleText(p parse.Parser[Token, [3]Token]) parse.Parser[Token, string] {
	return parse.Text(p)
}

// ParsePattern tries Abc, then Bxx, then Xyc in order, each restarting from
// a clone of the entry lexer. If all three fail, the xyc branch's failure
// is reported, widened to cover any pattern-token span it consumed, as a
// ParsePatternError.
func ParsePattern(l *lexer.Lexer[Token]) (parse.Success[Token, Pattern], error) {
	if s, err := parse.Spanned(tripleText(Abc))(l.Clone()); err == nil {
		return spannedPattern(PatternAbc, s), nil
	}
	if s, err := parse.Spanned(tripleText(Bxx))(l.Clone()); err == nil {
		return spannedPattern(PatternBxx, s), nil
	}

	s, err := parse.Spanned(tripleText(Xyc))(l)
	if err != nil {
		fail := err.(*parse.Failure[Token])
		parseSpan := fail.Lexer.ParseSpan()
		if ps, ok := fail.ParseSpan(); ok {
			parseSpan = ps
		}
		tokenSpan, hasToken := fail.Lexer.PeekTokenSpan(), true
		if _, ok := fail.Lexer.Peek(); !ok {
			hasToken = false
		}
		return parse.Success[Token, Pattern]{}, parse.NewFailure(fail.Lexer, &ParsePatternError{
			ParseSpanValue: parseSpan,
			TokenSpanValue: tokenSpan,
			HasTokenSpan:   hasToken,
		})
	}
	return spannedPattern(PatternXyc, s), nil
}

func spannedPattern(kind PatternKind, s parse.Success[Token, parse.SpannedValue[string]]) parse.Success[Token, Pattern] {
	return parse.Success[Token, Pattern]{
		Lexer: s.Lexer,
		Value: Pattern{Kind: kind, Text: s.Value.Value, Span: s.Value.Span},
	}
}

// listAbortTokens are the tokens DelimitedListBoundedDefault treats as
// synchronization points when a pattern fails to parse inside a list: it
// skips forward to the next comma or the closing bracket and substitutes
// placeholderPattern rather than abandoning the whole list.
var listAbortTokens = []Token{CloseBracket}

// placeholderPattern is substituted for a list element that failed to
// parse and could not be recovered cleanly.
var placeholderPattern = Pattern{Kind: PatternAbc, Text: ""}

// ParseList parses a bracketed, comma-separated list of patterns:
// '[' pattern (',' pattern)* ']'. A malformed pattern is recovered by
// skipping to the next comma or the closing bracket and substituting
// placeholderPattern, provided ctx has an error sink installed (see
// parse.Context.WithSink); with no sink, a malformed pattern is fatal. An
// unbalanced bracket is always fatal, regardless of ctx, since it is
// detected before the list content is ever parsed.
func ParseList(ctx *parse.Context[Token]) parse.Parser[Token, []Pattern] {
	items := parse.DelimitedListBoundedDefault[Token, Pattern](
		ctx, 0, parse.Unbounded, ParsePattern, Comma, listAbortTokens, placeholderPattern,
	)
	return parse.BracketDefaultIndex[Token, []Pattern](
		ctx, []Token{OpenBracket}, items, []Token{CloseBracket}, nil, nil,
	)
}

// ParseListText lexes and parses a complete bracketed pattern list from
// text. A malformed element is recovered and reported through onError
// rather than failing the whole list; pass a nil onError to make any
// malformed element fatal instead.
func ParseListText(text string, onError func(err error)) ([]Pattern, error) {
	src := source.New(text)
	l := lexer.New[Token](src, Scanner{}, lexer.WithFilter(SkipWs))
	ctx := parse.NewContext[Token]()
	if onError != nil {
		ctx = ctx.WithSink(func(f *parse.Failure[Token]) error {
			onError(f)
			return nil
		})
	}
	s, err := ParseList(ctx)(l)
	if err != nil {
		return nil, err
	}
	return s.Value, nil
}
