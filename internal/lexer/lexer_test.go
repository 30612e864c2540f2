package lexer

import (
	"testing"

	"github.com/tephra-go/tephra/internal/position"
	"github.com/tephra-go/tephra/internal/source"
	"github.com/tephra-go/tephra/internal/span"
)

// charToken classifies a single byte as itself, for tests: 'a'..'z' are
// letters, ' ' is whitespace, anything else is unrecognized.
type charToken byte

const (
	tokLetter charToken = iota
	tokSpace
)

func charScanner(src source.Text, base position.Position) (charToken, position.Position, bool) {
	end := src.EndPosition()
	if base.Byte >= end.Byte {
		return 0, position.Position{}, false
	}
	next, ok := src.NextPosition(base)
	if !ok {
		return 0, position.Position{}, false
	}
	r := src.Slice(base, next)
	if r == " " {
		return tokSpace, next, true
	}
	return tokLetter, next, true
}

func newTestLexer(text string) *Lexer[charToken] {
	return New[charToken](source.New(text), ScannerFunc[charToken](charScanner))
}

func TestLexerNextAndPeek(t *testing.T) {
	l := newTestLexer("ab")
	tok, ok := l.Peek()
	if !ok || tok != tokLetter {
		t.Fatalf("Peek: got (%v, %v)", tok, ok)
	}
	// Peek again without Next must return the same token.
	if tok2, ok2 := l.Peek(); !ok2 || tok2 != tok {
		t.Fatal("repeated Peek changed the result")
	}
	if tok, ok := l.Next(); !ok || tok != tokLetter {
		t.Fatalf("Next: got (%v, %v)", tok, ok)
	}
	if l.TokenSpan().Text() != "a" {
		t.Errorf("TokenSpan().Text() = %q, want %q", l.TokenSpan().Text(), "a")
	}
	if tok, ok := l.Next(); !ok || tok != tokLetter {
		t.Fatalf("second Next: got (%v, %v)", tok, ok)
	}
	if _, ok := l.Next(); ok {
		t.Error("expected exhaustion after consuming all input")
	}
}

func TestLexerFilter(t *testing.T) {
	l := New[charToken](source.New("a b"), ScannerFunc[charToken](charScanner), WithFilter(func(t charToken) bool {
		return t == tokSpace
	}))
	var got []charToken
	for {
		tok, ok := l.Next()
		if !ok {
			break
		}
		got = append(got, tok)
	}
	if len(got) != 2 {
		t.Fatalf("got %d tokens, want 2 (whitespace filtered)", len(got))
	}
}

func TestLexerCloneIsIndependent(t *testing.T) {
	l := newTestLexer("ab")
	clone := l.Clone()
	clone.Next()
	if l.CursorPos() == clone.CursorPos() {
		t.Error("advancing the clone should not affect the original")
	}
}

// toggleScanner classifies every byte as tokLetter or tokSpace based on a
// flag that flips on every scan, a minimal stand-in for a scanner whose
// classification depends on what came before (colorexpr's Scanner.afterHash
// is the real-world version). Its pointer receiver makes it a vehicle for
// testing that Clone and Sublexer don't share scanner state.
type toggleScanner struct {
	flip bool
}

func (s *toggleScanner) Clone() Scanner[charToken] {
	clone := *s
	return &clone
}

func (s *toggleScanner) Scan(src source.Text, base position.Position) (charToken, position.Position, bool) {
	end := src.EndPosition()
	if base.Byte >= end.Byte {
		return 0, position.Position{}, false
	}
	next, ok := src.NextPosition(base)
	if !ok {
		return 0, position.Position{}, false
	}
	tok := tokLetter
	if s.flip {
		tok = tokSpace
	}
	s.flip = !s.flip
	return tok, next, true
}

func TestLexerCloneIndependentScannerState(t *testing.T) {
	l := New[charToken](source.New("aaaa"), &toggleScanner{})
	if _, ok := l.Next(); !ok {
		t.Fatal("first Next failed")
	}
	clone := l.Clone()
	if _, ok := clone.Next(); !ok {
		t.Fatal("clone Next failed")
	}
	// The clone's scan advanced its own scanner's flip flag; the
	// original's scanner state must be untouched by that call.
	tok, ok := l.Next()
	if !ok {
		t.Fatal("original Next failed")
	}
	if tok != tokSpace {
		t.Errorf("original scanner state affected by clone: got %v, want tokSpace", tok)
	}
}

func TestLexerSublexer(t *testing.T) {
	l := newTestLexer("ab cd")
	l.Next()
	l.Next() // consume "ab"
	spaceStart := l.CursorPos()
	next, _ := l.Source().NextPosition(spaceStart)

	sub := l.Sublexer(span.NewEnclosing(l.Source(), next, l.Source().EndPosition()))
	tok, ok := sub.Next()
	if !ok || tok != tokLetter {
		t.Fatalf("Sublexer: first token = (%v, %v)", tok, ok)
	}
	if sub.TokenSpan().Text() != "c" {
		t.Errorf("Sublexer token text = %q, want %q", sub.TokenSpan().Text(), "c")
	}
}

func TestLexerAdvanceToRecover(t *testing.T) {
	l := newTestLexer("aa ab")
	stop := func(t charToken) bool { return t == tokSpace }
	n := l.AdvanceToRecover(stop)
	if n != 2 {
		t.Errorf("AdvanceToRecover consumed %d tokens, want 2", n)
	}
	tok, ok := l.Peek()
	if !ok || tok != tokSpace {
		t.Errorf("expected the stop token to remain buffered, got (%v, %v)", tok, ok)
	}
}

func TestLexerIterWithSpans(t *testing.T) {
	l := newTestLexer("ab")
	it := l.IterWithSpans()
	count := 0
	for {
		_, sp, ok := it.Next()
		if !ok {
			break
		}
		if sp.IsEmpty() {
			t.Error("token span should not be empty")
		}
		count++
	}
	if count != 2 {
		t.Errorf("got %d tokens, want 2", count)
	}
}
