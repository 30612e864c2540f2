package parse

import (
	"strings"
	"testing"
)

func TestSectionWrapsFailure(t *testing.T) {
	p := Section("operand", "expression", One[rune]('a'))
	_, err := p(newCharLexer("b"))
	if err == nil {
		t.Fatal("Section should propagate the wrapped parser's failure")
	}
	if !strings.Contains(err.Error(), "operand") {
		t.Errorf("Error() = %q, want it to mention the section name", err.Error())
	}
}

func TestAtomicSwallowsNonConsumingFailure(t *testing.T) {
	p := Atomic("operand", "expression", One[rune]('a'))
	s, err := p(newCharLexer("b"))
	if err != nil {
		t.Fatalf("Atomic should swallow a non-consuming failure: %v", err)
	}
	if s.Value != nil {
		t.Error("Atomic should produce a nil value when the wrapped parser didn't match")
	}
}

func TestAtomicPropagatesConsumingFailure(t *testing.T) {
	p := Atomic("pair", "expression", Seq([]rune{'a', 'b'}))
	if _, err := p(newCharLexer("ac")); err == nil {
		t.Error("Atomic should propagate a failure that consumed input")
	}
}
