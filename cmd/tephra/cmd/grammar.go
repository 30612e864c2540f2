package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tephra-go/tephra/internal/lexer"
	"github.com/tephra-go/tephra/internal/perror"
	"github.com/tephra-go/tephra/internal/sample/abc"
	"github.com/tephra-go/tephra/internal/sample/colorexpr"
	"github.com/tephra-go/tephra/internal/source"
	"github.com/tephra-go/tephra/internal/span"
)

// grammarNames lists the sample grammars the CLI can drive. tephra itself
// commits to no single surface grammar; these exist to exercise the lexer
// and combinator layers end to end.
var grammarNames = []string{"abc", "colorexpr"}

// tokenSpan pairs a token's printable name with the span it occupies, the
// common shape lex prints regardless of which grammar's token type
// produced it.
type tokenSpan struct {
	name string
	span span.Span
}

// lexGrammar tokenizes input under the named grammar.
func lexGrammar(grammar, input string) ([]tokenSpan, error) {
	switch grammar {
	case "abc":
		l := lexer.New[abc.Token](source.New(input), abc.Scanner{}, lexer.WithFilter(abc.SkipWs))
		return iterTokens[abc.Token](l), nil
	case "colorexpr":
		l := lexer.New[colorexpr.Token](source.New(input), &colorexpr.Scanner{}, lexer.WithFilter(colorexpr.SkipWs))
		return iterTokens[colorexpr.Token](l), nil
	default:
		return nil, unknownGrammarError(grammar)
	}
}

func iterTokens[T fmt.Stringer](l *lexer.Lexer[T]) []tokenSpan {
	var out []tokenSpan
	it := l.IterWithSpans()
	for {
		tok, sp, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, tokenSpan{name: tok.String(), span: sp})
	}
	return out
}

// parseGrammar parses input under the named grammar and returns a
// one-line-per-node dump of the result, or the error the parse failed
// with.
func parseGrammar(grammar, input string) (string, error) {
	switch grammar {
	case "abc":
		if strings.HasPrefix(strings.TrimSpace(input), "[") {
			return parseAbcList(input)
		}
		l := lexer.New[abc.Token](source.New(input), abc.Scanner{}, lexer.WithFilter(abc.SkipWs))
		s, err := abc.ParsePattern(l)
		if err != nil {
			return "", err
		}
		p := s.Value
		return fmt.Sprintf("%s %q @ %s", p.Kind, p.Text, p.Span), nil
	case "colorexpr":
		e, err := colorexpr.Parse(input)
		if err != nil {
			return "", err
		}
		var b []byte
		b = dumpColorExpr(b, e, 0)
		return string(b), nil
	default:
		return "", unknownGrammarError(grammar)
	}
}

// parseAbcList parses a bracketed pattern list under the abc grammar,
// recovering malformed elements rather than failing the whole list, and
// dumps one line per pattern plus one line per recovered error.
func parseAbcList(input string) (string, error) {
	var recovered []error
	onError := func(err error) { recovered = append(recovered, err) }
	patterns, err := abc.ParseListText(input, onError)
	if err != nil {
		return "", err
	}
	var b []byte
	for _, p := range patterns {
		b = append(b, fmt.Sprintf("%s %q @ %s\n", p.Kind, p.Text, p.Span)...)
	}
	for _, e := range recovered {
		b = append(b, fmt.Sprintf("recovered: %v\n", e)...)
	}
	return string(b), nil
}

func dumpColorExpr(b []byte, e colorexpr.Expr, indent int) []byte {
	for i := 0; i < indent; i++ {
		b = append(b, "  "...)
	}
	switch e.Kind {
	case colorexpr.ExprCall:
		b = append(b, fmt.Sprintf("%s %s/%d\n", e.Kind, e.Callee, len(e.Args))...)
		for _, arg := range e.Args {
			b = dumpColorExpr(b, arg, indent+1)
		}
	case colorexpr.ExprNegate:
		b = append(b, fmt.Sprintf("%s\n", e.Kind)...)
		b = dumpColorExpr(b, *e.Operand, indent+1)
	default:
		b = append(b, fmt.Sprintf("%s %q\n", e.Kind, e.Text)...)
	}
	return b
}

func unknownGrammarError(grammar string) error {
	return fmt.Errorf("unknown grammar %q (want one of %v)", grammar, grammarNames)
}

// renderParseFailure unwraps a parse.Failure (or any Unwrap-able error)
// down to the typed error underneath, and renders it as a diagnostic
// against src if the typed error knows how; otherwise it falls back to the
// bare error message.
func renderParseFailure(err error, src source.Text, color bool) string {
	cause := err
	for {
		u, ok := cause.(interface{ Unwrap() error })
		if !ok {
			break
		}
		next := u.Unwrap()
		if next == nil {
			break
		}
		cause = next
	}
	if se, ok := perror.Convert(cause, src); ok {
		return se.WithColor(color).Error()
	}
	return err.Error()
}

// readInput resolves a lex/parse/render command's input: the -e flag, a
// file argument, or stdin if neither is given.
func readInput(evalExpr string, args []string) (text, name string, err error) {
	switch {
	case evalExpr != "":
		return evalExpr, "<eval>", nil
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), "<stdin>", nil
	}
}
