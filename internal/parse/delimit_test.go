package parse

import "testing"

func TestDelimitedListBoundedDefault(t *testing.T) {
	ctx := NewContext[rune]()
	item := One[rune]('a')
	p := DelimitedListBoundedDefault(ctx, 0, Unbounded, item, ',', []rune{')'}, 'X')
	s, err := p(newCharLexer("a,a,a)"))
	if err != nil {
		t.Fatalf("DelimitedListBoundedDefault failed: %v", err)
	}
	if len(s.Value) != 3 {
		t.Fatalf("got %d items, want 3", len(s.Value))
	}
	if tok, ok := s.Lexer.Peek(); !ok || tok != ')' {
		t.Error("should stop before the abort token")
	}
}

func TestDelimitedListBoundedDefaultRecoversWithSink(t *testing.T) {
	ctx := NewContext[rune]().WithSink(func(f *Failure[rune]) error { return nil })
	item := One[rune]('a')
	p := DelimitedListBoundedDefault(ctx, 0, Unbounded, item, ',', []rune{')'}, 'X')
	s, err := p(newCharLexer("a,b,a)"))
	if err != nil {
		t.Fatalf("a recovering sink should absorb the bad item: %v", err)
	}
	if len(s.Value) != 3 || s.Value[1] != 'X' {
		t.Errorf("got %v, want [a X a]", s.Value)
	}
}

func TestDelimitedListBoundedDefaultFatalWithoutSink(t *testing.T) {
	ctx := NewContext[rune]()
	item := One[rune]('a')
	p := DelimitedListBoundedDefault(ctx, 0, Unbounded, item, ',', []rune{')'}, 'X')
	if _, err := p(newCharLexer("a,b,a)")); err == nil {
		t.Error("a bad item should be fatal when no sink is installed")
	}
}

func TestDelimitedListBoundedDefaultBelowLowFails(t *testing.T) {
	ctx := NewContext[rune]()
	item := One[rune]('a')
	p := DelimitedListBoundedDefault(ctx, 2, Unbounded, item, ',', []rune{')'}, 'X')
	if _, err := p(newCharLexer(")")); err == nil {
		t.Error("expected a RepeatCountError when fewer than low items were parsed")
	}
}

func TestDelimitedListBoundedDefaultHighZero(t *testing.T) {
	ctx := NewContext[rune]()
	item := One[rune]('a')
	p := DelimitedListBoundedDefault(ctx, 0, 0, item, ',', []rune{')'}, 'X')
	s, err := p(newCharLexer("a,a)"))
	if err != nil {
		t.Fatalf("high == 0 should succeed trivially: %v", err)
	}
	if s.Value != nil {
		t.Error("high == 0 should return a nil slice without consuming")
	}
}
