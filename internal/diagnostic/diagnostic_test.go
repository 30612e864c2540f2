package diagnostic

import (
	"strings"
	"testing"

	"github.com/tephra-go/tephra/internal/position"
	"github.com/tephra-go/tephra/internal/source"
	"github.com/tephra-go/tephra/internal/span"
)

func TestCodeDisplayWriteNoColor(t *testing.T) {
	src := source.New("let x = ").WithName("snippet")
	sp := span.NewEnclosing(src, posAt(src, 8), posAt(src, 8))
	d := NewCodeDisplay("unexpected end of text").
		WithColor(false).
		WithSpanDisplay(NewErrorHighlight(src, sp, "expected an expression here"))

	var b strings.Builder
	if err := d.Write(&b, src); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := b.String()

	for _, want := range []string{"error: unexpected end of text", "snippet", "expected an expression here"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("WithColor(false) should not emit ANSI escapes")
	}
}

func TestCodeDisplayWriteWithNote(t *testing.T) {
	src := source.New("x")
	d := NewCodeDisplay("bad thing").WithColor(false).WithNote(NewNote("try something else"))
	var b strings.Builder
	if err := d.Write(&b, src); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(b.String(), "note: try something else") {
		t.Errorf("rendered output missing the note, got:\n%s", b.String())
	}
}

func TestHighlightIsMultiline(t *testing.T) {
	src := source.New("ab\ncd")
	sameLine := span.NewEnclosing(src, posAt(src, 0), posAt(src, 2))
	if NewHighlight(sameLine, "").IsMultiline() {
		t.Error("a same-line span should not be reported multiline")
	}
	acrossLines := span.NewEnclosing(src, posAt(src, 0), posAt(src, 4))
	if !NewHighlight(acrossLines, "").IsMultiline() {
		t.Error("a span crossing a line boundary should be reported multiline")
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
