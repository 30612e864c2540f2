package parse

import (
	"fmt"
	"testing"

	"github.com/tephra-go/tephra/internal/perror"
)

func TestEitherPrefersLeft(t *testing.T) {
	p := Either(One[rune]('a'), One[rune]('b'))
	s, err := p(newCharLexer("a"))
	if err != nil {
		t.Fatalf("Either failed: %v", err)
	}
	if s.Value != 'a' {
		t.Errorf("Either value = %q, want 'a'", s.Value)
	}
}

func TestEitherFallsBackToRight(t *testing.T) {
	p := Either(One[rune]('a'), One[rune]('b'))
	s, err := p(newCharLexer("b"))
	if err != nil {
		t.Fatalf("Either failed: %v", err)
	}
	if s.Value != 'b' {
		t.Errorf("Either value = %q, want 'b'", s.Value)
	}
}

func TestEitherReturnsRightFailureWhenBothFail(t *testing.T) {
	p := Either(One[rune]('a'), One[rune]('b'))
	_, err := p(newCharLexer("c"))
	if err == nil {
		t.Fatal("Either should fail when neither branch matches")
	}
	fail := err.(*Failure[rune])
	ute, ok := fail.Err.(*perror.UnexpectedTokenError[rune])
	if !ok {
		t.Fatalf("unexpected error type: %T", fail.Err)
	}
	if want := fmt.Sprintf("%v", 'b'); ute.Expected != want {
		t.Errorf("Expected = %q, want %q (the right branch's failure)", ute.Expected, want)
	}
}
