package parse

import "testing"

func TestRepeatBounds(t *testing.T) {
	s, err := Repeat(0, Unbounded, One[rune]('a'))(newCharLexer("aaab"))
	if err != nil {
		t.Fatalf("Repeat failed: %v", err)
	}
	if len(s.Value) != 3 {
		t.Errorf("got %d items, want 3", len(s.Value))
	}
	if tok, ok := s.Lexer.Peek(); !ok || tok != 'b' {
		t.Error("Repeat should stop before the first non-matching token")
	}

	if _, err := Repeat(2, Unbounded, One[rune]('a'))(newCharLexer("a")); err == nil {
		t.Error("Repeat should fail when fewer than low items are found")
	}

	zero, err := Repeat(0, 0, One[rune]('a'))(newCharLexer("aaa"))
	if err != nil {
		t.Fatalf("Repeat(0, 0) failed: %v", err)
	}
	if zero.Value != nil {
		t.Error("Repeat(0, 0) should return an empty result without consuming")
	}
}

func TestIntersperseWithSeparator(t *testing.T) {
	p := Intersperse(1, Unbounded, One[rune]('a'), One[rune](','))
	s, err := p(newCharLexer("a,a,a"))
	if err != nil {
		t.Fatalf("Intersperse failed: %v", err)
	}
	if len(s.Value) != 3 {
		t.Errorf("got %d items, want 3", len(s.Value))
	}

	trailing, err := p(newCharLexer("a,a,"))
	if err != nil {
		t.Fatalf("Intersperse with trailing separator failed: %v", err)
	}
	if len(trailing.Value) != 2 {
		t.Errorf("got %d items, want 2 (trailing separator with no item shouldn't commit)", len(trailing.Value))
	}
}

func TestRepeatUntilStopsAtSentinel(t *testing.T) {
	p := RepeatUntil(0, Unbounded, One[rune]('a'), One[rune](';'))
	s, err := p(newCharLexer("aa;"))
	if err != nil {
		t.Fatalf("RepeatUntil failed: %v", err)
	}
	if len(s.Value) != 2 {
		t.Errorf("got %d items, want 2", len(s.Value))
	}
	if tok, ok := s.Lexer.Peek(); !ok || tok != ';' {
		t.Error("RepeatUntil should leave the stop token unconsumed")
	}
}

func TestRepeatCountProjectsLength(t *testing.T) {
	s, err := RepeatCount(0, Unbounded, One[rune]('a'))(newCharLexer("aaa"))
	if err != nil {
		t.Fatalf("RepeatCount failed: %v", err)
	}
	if s.Value != 3 {
		t.Errorf("RepeatCount = %d, want 3", s.Value)
	}
}
