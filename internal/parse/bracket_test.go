package parse

import (
	"testing"

	"github.com/tephra-go/tephra/internal/perror"
)

func TestMatchNestedBracketsFindsInterior(t *testing.T) {
	l := newCharLexer("(ab)c")
	after, interior, err := MatchNestedBrackets(l, []rune{'('}, []rune{')'}, nil)
	if err != nil {
		t.Fatalf("MatchNestedBrackets failed: %v", err)
	}
	if interior.Text() != "ab" {
		t.Errorf("interior = %q, want %q", interior.Text(), "ab")
	}
	if tok, ok := after.Peek(); !ok || tok != 'c' {
		t.Error("the returned lexer should be positioned just past the closing bracket")
	}
}

func TestMatchNestedBracketsNested(t *testing.T) {
	l := newCharLexer("(a(b)c)")
	_, interior, err := MatchNestedBrackets(l, []rune{'('}, []rune{')'}, nil)
	if err != nil {
		t.Fatalf("MatchNestedBrackets failed: %v", err)
	}
	if interior.Text() != "a(b)c" {
		t.Errorf("interior = %q, want %q", interior.Text(), "a(b)c")
	}
}

func TestMatchNestedBracketsUnclosed(t *testing.T) {
	_, _, err := MatchNestedBrackets(newCharLexer("(ab"), []rune{'('}, []rune{')'}, nil)
	if err == nil {
		t.Fatal("expected an Unclosed error")
	}
	if mbe, ok := err.(*perror.MatchBracketError); !ok || mbe.Kind != perror.Unclosed {
		t.Errorf("got %#v, want Unclosed", err)
	}
}

func TestMatchNestedBracketsNoneFound(t *testing.T) {
	_, _, err := MatchNestedBrackets(newCharLexer("abc"), []rune{'('}, []rune{')'}, nil)
	if err == nil {
		t.Fatal("expected a NoneFound error")
	}
	if mbe, ok := err.(*perror.MatchBracketError); !ok || mbe.Kind != perror.NoneFound {
		t.Errorf("got %#v, want NoneFound", err)
	}
}

func TestBracketDefaultIndexParsesInterior(t *testing.T) {
	ctx := NewContext[rune]()
	content := RepeatCount(0, Unbounded, One[rune]('a'))
	p := BracketDefaultIndex[rune, int](ctx, []rune{'('}, content, []rune{')'}, nil, -1)
	s, err := p(newCharLexer("(aaa)z"))
	if err != nil {
		t.Fatalf("BracketDefaultIndex failed: %v", err)
	}
	if s.Value != 3 {
		t.Errorf("interior count = %d, want 3", s.Value)
	}
	if tok, ok := s.Lexer.Peek(); !ok || tok != 'z' {
		t.Error("should resume after the closing bracket")
	}
}

func TestBracketDefaultIndexRecoversContentFailure(t *testing.T) {
	ctx := NewContext[rune]().WithSink(func(f *Failure[rune]) error { return nil })
	content := One[rune]('x')
	p := BracketDefaultIndex[rune, rune](ctx, []rune{'('}, content, []rune{')'}, nil, '?')
	s, err := p(newCharLexer("(ab)z"))
	if err != nil {
		t.Fatalf("a recovering sink should absorb the content failure: %v", err)
	}
	if s.Value != '?' {
		t.Errorf("got %q, want the default value", s.Value)
	}
	if tok, ok := s.Lexer.Peek(); !ok || tok != 'z' {
		t.Error("should still resume after the closing bracket on recovery")
	}
}
