package source

import "testing"

func TestTextSliceAndPositions(t *testing.T) {
	text := New("hello world")
	end := text.EndPosition()
	if got := text.Slice(text.StartPosition(), end); got != "hello world" {
		t.Errorf("Slice(full) = %q", got)
	}

	next, ok := text.NextPosition(text.StartPosition())
	if !ok || text.Slice(text.StartPosition(), next) != "h" {
		t.Errorf("NextPosition from start did not advance by one rune")
	}
}

func TestTextWithName(t *testing.T) {
	text := New("x")
	if _, ok := text.Name(); ok {
		t.Error("unnamed Text reports a name")
	}
	named := text.WithName("script.cx")
	name, ok := named.Name()
	if !ok || name != "script.cx" {
		t.Errorf("WithName: got (%q, %v), want (script.cx, true)", name, ok)
	}
}

func TestTextClip(t *testing.T) {
	text := New("hello world")
	mid := text.StartPosition()
	for i := 0; i < 5; i++ {
		mid, _ = text.NextPosition(mid)
	}
	clipped := text.Clip(text.StartPosition(), mid)
	if clipped.String() != "hello" {
		t.Errorf("Clip = %q, want %q", clipped.String(), "hello")
	}
	if clipped.StartPosition() != text.StartPosition() {
		t.Errorf("Clip should preserve the absolute start position")
	}
}

func TestTextClipOffsetsSubsequentPositions(t *testing.T) {
	text := New("hello world")
	five := text.StartPosition()
	for i := 0; i < 5; i++ {
		five, _ = text.NextPosition(five)
	}
	tail := text.Clip(five, text.EndPosition())
	if tail.String() != " world" {
		t.Errorf("Clip tail = %q, want %q", tail.String(), " world")
	}
	if tail.StartPosition() != five {
		t.Errorf("Clip tail start = %v, want %v", tail.StartPosition(), five)
	}
}

func TestTextIsEmpty(t *testing.T) {
	if !New("").IsEmpty() {
		t.Error("New(\"\").IsEmpty() = false")
	}
	if New("x").IsEmpty() {
		t.Error("New(\"x\").IsEmpty() = true")
	}
}
