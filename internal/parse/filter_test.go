package parse

import "testing"

func TestExactSeesFilteredTokens(t *testing.T) {
	l := newFilteredCharLexer("a b")
	if tok, ok := l.Peek(); !ok || tok != 'a' {
		t.Fatalf("expected the filter to skip to 'a', got (%v, %v)", tok, ok)
	}

	p := Exact(Seq([]rune{'a', ' ', 'b'}))
	s, err := p(l)
	if err != nil {
		t.Fatalf("Exact failed: %v", err)
	}
	if len(s.Value) != 3 {
		t.Errorf("got %d tokens, want 3 (space should be visible under Exact)", len(s.Value))
	}

	// Outside of Exact, the filter still skips the space.
	if tok, ok := s.Lexer.Peek(); ok {
		t.Errorf("expected exhaustion, got %v", tok)
	}
}

func TestPeekDoesNotCommitSkippedFilteredTokens(t *testing.T) {
	l := newFilteredCharLexer("a b")
	if _, ok := l.Next(); !ok {
		t.Fatal("Next failed")
	}
	// The lexer now sits right before the space. Peek must skip it to
	// report 'b' without committing the skip to the cursor.
	if tok, ok := l.Peek(); !ok || tok != 'b' {
		t.Fatalf("expected Peek to skip the space and return 'b', got (%v, %v)", tok, ok)
	}
	p := Exact(Seq([]rune{' ', 'b'}))
	s, err := p(l)
	if err != nil {
		t.Fatalf("Exact failed: %v", err)
	}
	if len(s.Value) != 2 {
		t.Errorf("got %d tokens, want 2 (the space Peek skipped over should still be visible under Exact)", len(s.Value))
	}
}

func TestFilterWithRestoresPreviousFilter(t *testing.T) {
	l := newCharLexer("a b")
	onlySpace := func(r rune) bool { return r == ' ' }
	p := FilterWith(onlySpace, One[rune]('a'))
	s, err := p(l)
	if err != nil {
		t.Fatalf("FilterWith failed: %v", err)
	}
	// The previous (nil) filter should be restored: nothing is skipped.
	if tok, ok := s.Lexer.Peek(); !ok || tok != ' ' {
		t.Errorf("expected the space token to be visible again, got (%v, %v)", tok, ok)
	}
}
