// Package span implements Span, the closed byte/page interval over a
// source.Text that every lexer token, parse result, and diagnostic
// highlight is ultimately described by.
package span

import (
	"fmt"

	"github.com/tephra-go/tephra/internal/position"
	"github.com/tephra-go/tephra/internal/source"
)

// Span is a closed interval [Start, End] within a source.Text. The
// invariant Start <= End holds for every Span produced by this package;
// callers constructing one directly (e.g. in tests) must preserve it.
type Span struct {
	Source source.Text
	Start  position.Position
	End    position.Position
}

// New returns an empty span positioned at pos within src.
func New(src source.Text, pos position.Position) Span {
	return Span{Source: src, Start: pos, End: pos}
}

// NewEnclosing returns the span [a, b] within src. Panics if b precedes a,
// since every constructor in this package must preserve Start <= End.
func NewEnclosing(src source.Text, a, b position.Position) Span {
	if b.Less(a) {
		panic(fmt.Sprintf("span.NewEnclosing: end %v precedes start %v", b, a))
	}
	return Span{Source: src, Start: a, End: b}
}

// Full returns the span covering the entirety of src.
func Full(src source.Text) Span {
	return NewEnclosing(src, src.StartPosition(), src.EndPosition())
}

// IsEmpty reports whether the span covers zero bytes.
func (s Span) IsEmpty() bool { return s.Start.Byte == s.End.Byte }

// IsFull reports whether the span covers the entirety of its source text.
func (s Span) IsFull() bool {
	return s.Start == s.Source.StartPosition() && s.End == s.Source.EndPosition()
}

// Text returns the spanned source text.
func (s Span) Text() string {
	return s.Source.Slice(s.Start, s.End)
}

// Contains reports whether pos lies within [Start, End] inclusive.
func (s Span) Contains(pos position.Position) bool {
	return s.Start.LessEqual(pos) && pos.LessEqual(s.End)
}

// Intersects reports whether s and other overlap, including at a shared
// boundary point.
func (s Span) Intersects(other Span) bool {
	return s.Contains(other.Start) || s.Contains(other.End) ||
		other.Contains(s.Start) || other.Contains(s.End)
}

// Adjacent reports whether s and other share a boundary point without
// overlapping (one's end equals the other's start).
func (s Span) Adjacent(other Span) bool {
	return s.Start == other.End || s.End == other.Start
}

// Enclose returns the smallest span covering both s and other. Enclose is
// commutative and idempotent.
func (s Span) Enclose(other Span) Span {
	start := s.Start
	if other.Start.Less(start) {
		start = other.Start
	}
	end := s.End
	if end.Less(other.End) {
		end = other.End
	}
	return NewEnclosing(s.Source, start, end)
}

// Union returns the smallest set of spans covering s and other: one span
// if they intersect, otherwise both spans unchanged.
func (s Span) Union(other Span) []Span {
	if s.Intersects(other) {
		return []Span{s.Enclose(other)}
	}
	return []Span{s, other}
}

// Intersect returns the overlapping portion of s and other, or (zero,
// false) if they are non-overlapping and non-adjacent.
func (s Span) Intersect(other Span) (Span, bool) {
	var start position.Position
	switch {
	case s.Contains(other.Start) && other.Contains(s.Start):
		start = s.Start
	case s.Contains(other.Start):
		start = other.Start
	case other.Contains(s.Start):
		start = s.Start
	default:
		return Span{}, false
	}

	var end position.Position
	switch {
	case s.Contains(other.End) && other.Contains(s.End):
		end = s.End
	case s.Contains(other.End):
		end = other.End
	case other.Contains(s.End):
		end = s.End
	default:
		return Span{}, false
	}

	return NewEnclosing(s.Source, start, end), true
}

// Minus returns s with other's overlap removed: zero, one, or two disjoint
// spans.
func (s Span) Minus(other Span) []Span {
	var result []Span
	if s.Start.Less(other.Start) {
		result = append(result, NewEnclosing(s.Source, s.Start, other.Start))
	}
	if other.End.Less(s.End) {
		result = append(result, NewEnclosing(s.Source, other.End, s.End))
	}
	return result
}

// WidenToLine extends both ends of s to the enclosing line boundaries,
// unless s already covers the whole source.
func (s Span) WidenToLine() Span {
	if s.IsFull() {
		return s
	}
	return NewEnclosing(s.Source, s.Source.LineStartPosition(s.Start), s.Source.LineEndPosition(s.End))
}

// SplitLines returns one span per line number covered by s: always at
// least one span, and a single empty span at the cursor for an empty s.
// The returned slice is produced eagerly (Go has no lazy fused iterators
// without extra machinery; callers iterating a huge span line-by-line
// should call Lines instead for a stream).
func (s Span) SplitLines() []Span {
	var lines []Span
	it := s.Lines()
	for {
		sp, ok := it.Next()
		if !ok {
			break
		}
		lines = append(lines, sp)
	}
	return lines
}

// LineSplitter is a finite, non-restartable iterator over the per-line
// sub-spans of a Span, mirroring the source's fused SplitLines iterator.
type LineSplitter struct {
	source source.Text
	start  position.Position
	end    position.Position
	done   bool
}

// Lines returns a LineSplitter over s's lines. The splitter is exhausted
// after End's line has been produced; calling Next again always returns
// (zero, false).
func (s Span) Lines() *LineSplitter {
	return &LineSplitter{source: s.Source, start: s.Start, end: s.End}
}

// Next returns the next line's span, or (zero, false) once exhausted.
func (it *LineSplitter) Next() (Span, bool) {
	if it.done {
		return Span{}, false
	}
	if it.start.Page.Line > it.end.Page.Line {
		it.done = true
		return Span{}, false
	}
	if it.start.Page.Line == it.end.Page.Line {
		res := NewEnclosing(it.source, it.start, it.end)
		it.start.Page.Line++
		it.done = true
		return res, true
	}
	lineEnd := it.source.LineEndPosition(it.start)
	res := NewEnclosing(it.source, it.start, lineEnd)
	next, ok := it.source.NextPosition(lineEnd)
	if !ok {
		it.done = true
		return res, true
	}
	it.start = next
	return res, true
}

func (s Span) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("%s, byte %d", s.Start.Page, s.Start.Byte)
	}
	return fmt.Sprintf("%s, bytes %d-%d", s.Start.Page, s.Start.Byte, s.End.Byte)
}
