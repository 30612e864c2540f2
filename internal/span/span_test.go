package span

import (
	"testing"

	"github.com/tephra-go/tephra/internal/position"
	"github.com/tephra-go/tephra/internal/source"
)

func TestSpanText(t *testing.T) {
	src := source.New("hello world")
	sp := NewEnclosing(src, src.StartPosition(), src.EndPosition())
	if sp.Text() != "hello world" {
		t.Errorf("Text() = %q", sp.Text())
	}
}

func TestSpanIsEmpty(t *testing.T) {
	src := source.New("x")
	if !New(src, src.StartPosition()).IsEmpty() {
		t.Error("New() span should be empty")
	}
	full := Full(src)
	if full.IsEmpty() {
		t.Error("Full() span should not be empty for nonempty text")
	}
	if !full.IsFull() {
		t.Error("Full() span should report IsFull")
	}
}

func TestSpanEnclose(t *testing.T) {
	src := source.New("0123456789")
	a := NewEnclosing(src, posAt(src, 2), posAt(src, 4))
	b := NewEnclosing(src, posAt(src, 6), posAt(src, 8))
	enclosed := a.Enclose(b)
	if enclosed.Start != a.Start || enclosed.End != b.End {
		t.Errorf("Enclose: got [%v, %v], want [%v, %v]", enclosed.Start, enclosed.End, a.Start, b.End)
	}
}

func TestSpanIntersectsAndAdjacent(t *testing.T) {
	src := source.New("0123456789")
	a := NewEnclosing(src, posAt(src, 0), posAt(src, 4))
	b := NewEnclosing(src, posAt(src, 4), posAt(src, 8))
	if a.Intersects(b) == false {
		t.Error("spans sharing a boundary point should intersect")
	}
	if !a.Adjacent(b) {
		t.Error("spans sharing only a boundary point should be adjacent")
	}
	c := NewEnclosing(src, posAt(src, 5), posAt(src, 6))
	if a.Intersects(c) {
		t.Error("disjoint spans should not intersect")
	}
}

func TestSpanMinus(t *testing.T) {
	src := source.New("0123456789")
	whole := NewEnclosing(src, posAt(src, 0), posAt(src, 10))
	middle := NewEnclosing(src, posAt(src, 3), posAt(src, 6))
	parts := whole.Minus(middle)
	if len(parts) != 2 {
		t.Fatalf("got %d parts, want 2", len(parts))
	}
	if parts[0].Text() != "012" || parts[1].Text() != "6789" {
		t.Errorf("got %q / %q, want %q / %q", parts[0].Text(), parts[1].Text(), "012", "6789")
	}
}

func TestSpanSplitLines(t *testing.T) {
	src := source.New("ab\ncd\nef")
	full := Full(src)
	lines := full.SplitLines()
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	want := []string{"ab", "cd", "ef"}
	for i, w := range want {
		if lines[i].Text() != w {
			t.Errorf("line %d: got %q, want %q", i, lines[i].Text(), w)
		}
	}
}

// posAt walks n runes forward from the start of src's text.
func posAt(src source.Text, n int) position.Position {
	pos := src.StartPosition()
	for i := 0; i < n; i++ {
		next, ok := src.NextPosition(pos)
		if !ok {
			break
		}
		pos = next
	}
	return pos
}
