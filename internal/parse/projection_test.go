package parse

import "testing"

func TestBothAndLeftRight(t *testing.T) {
	p := Both(One[rune]('a'), One[rune]('b'))
	s, err := p(newCharLexer("ab"))
	if err != nil {
		t.Fatalf("Both failed: %v", err)
	}
	if s.Value.Left != 'a' || s.Value.Right != 'b' {
		t.Errorf("Both = %v", s.Value)
	}

	left, err := Left(One[rune]('a'), One[rune]('b'))(newCharLexer("ab"))
	if err != nil || left.Value != 'a' {
		t.Errorf("Left = %v, %v", left, err)
	}
	right, err := Right(One[rune]('a'), One[rune]('b'))(newCharLexer("ab"))
	if err != nil || right.Value != 'b' {
		t.Errorf("Right = %v, %v", right, err)
	}
}

func TestCenterKeepsMiddleValue(t *testing.T) {
	p := Center(One[rune]('('), One[rune]('x'), One[rune](')'))
	s, err := p(newCharLexer("(x)"))
	if err != nil {
		t.Fatalf("Center failed: %v", err)
	}
	if s.Value != 'x' {
		t.Errorf("Center value = %q, want 'x'", s.Value)
	}
}

func TestTextCapturesConsumedSource(t *testing.T) {
	p := Text(Seq([]rune{'a', 'b'}))
	s, err := p(newCharLexer("abc"))
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	if s.Value != "ab" {
		t.Errorf("Text value = %q, want %q", s.Value, "ab")
	}
}

func TestDiscardDropsValue(t *testing.T) {
	s, err := Discard(One[rune]('a'))(newCharLexer("a"))
	if err != nil {
		t.Fatalf("Discard failed: %v", err)
	}
	if s.Value != (struct{}{}) {
		t.Error("Discard should produce struct{}")
	}
}
