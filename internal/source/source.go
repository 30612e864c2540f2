// Package source implements SourceText, a positioned window over a borrowed
// string: an optional name, a ColumnMetrics, and an absolute offset that
// lets a clipped substring (a sub-lexer's input, say) still report
// positions relative to the original document.
package source

import (
	"fmt"

	"github.com/tephra-go/tephra/internal/position"
)

// Text is a borrowed section of source text together with the metrics
// needed to translate it into positions, and the absolute offset at which
// it begins within some larger document.
type Text struct {
	text    string
	name    string
	hasName bool
	metrics position.ColumnMetrics
	offset  position.Position
}

// New constructs a Text starting at position.Zero with default metrics and
// no name.
func New(text string) Text {
	return Text{text: text, metrics: position.DefaultMetrics(), offset: position.Zero}
}

// WithName returns a copy of t carrying the given source name (e.g. a file
// path), used only for diagnostic rendering.
func (t Text) WithName(name string) Text {
	t.name = name
	t.hasName = true
	return t
}

// WithColumnMetrics returns a copy of t using the given metrics.
func (t Text) WithColumnMetrics(m position.ColumnMetrics) Text {
	t.metrics = m
	return t
}

// WithStartPosition returns a copy of t whose text begins at the given
// absolute position instead of position.Zero.
func (t Text) WithStartPosition(offset position.Position) Text {
	t.offset = offset
	return t
}

// Len returns the byte length of the text.
func (t Text) Len() int { return len(t.text) }

// IsEmpty reports whether the text is empty.
func (t Text) IsEmpty() bool { return len(t.text) == 0 }

// Name returns the source name and whether one was set.
func (t Text) Name() (string, bool) { return t.name, t.hasName }

// String returns the raw underlying text.
func (t Text) String() string { return t.text }

// ColumnMetrics returns the metrics used to compute positions over this text.
func (t Text) ColumnMetrics() position.ColumnMetrics { return t.metrics }

// StartPosition returns the absolute position of the first byte of the text.
func (t Text) StartPosition() position.Position { return t.offset }

// EndPosition returns the absolute position just past the last byte of the
// text, computed by scanning from the offset through the metrics.
func (t Text) EndPosition() position.Position {
	localEnd := t.metrics.EndPosition(t.text, position.Zero)
	return t.offset.Add(localEnd)
}

func (t Text) posInBounds(p position.Position) bool {
	end := t.EndPosition()
	return p.Byte >= t.offset.Byte && p.Byte <= end.Byte &&
		p.Page.Compare(t.offset.Page) >= 0 &&
		p.Page.Compare(end.Page) <= 0
}

// local translates an absolute position into a byte index within t.text.
func (t Text) local(p position.Position) int {
	return p.Byte - t.offset.Byte
}

// absolute translates a position whose byte index is local to t.text (byte
// 0 at t.offset) and whose page is already absolute back into an absolute
// position. The positional queries below pass the caller's absolute page
// through the metrics, so only the byte index is shifted here.
func (t Text) absolute(local position.Position) position.Position {
	return position.Position{Byte: t.offset.Byte + local.Byte, Page: local.Page}
}

// NextPosition returns the next column-aligned position after base, or
// (zero, false) at the end of text.
func (t Text) NextPosition(base position.Position) (position.Position, bool) {
	local := position.Position{Byte: t.local(base), Page: base.Page}
	next, ok := t.metrics.NextPosition(t.text, local)
	if !ok {
		return position.Position{}, false
	}
	return t.absolute(position.Position{Byte: next.Byte, Page: next.Page}), true
}

// PreviousPosition returns the previous column-aligned position before
// base, or (zero, false) at the start of text.
func (t Text) PreviousPosition(base position.Position) (position.Position, bool) {
	local := position.Position{Byte: t.local(base), Page: base.Page}
	prev, ok := t.metrics.PreviousPosition(t.text, local)
	if !ok {
		return position.Position{}, false
	}
	return t.absolute(prev), true
}

// IsLineBreak reports whether a line break begins at the given absolute
// byte offset.
func (t Text) IsLineBreak(byteOffset int) bool {
	return t.metrics.IsLineBreak(t.text, byteOffset-t.offset.Byte)
}

// LineStartPosition returns the start of the line containing base.
func (t Text) LineStartPosition(base position.Position) position.Position {
	local := position.Position{Byte: t.local(base), Page: base.Page}
	start := t.metrics.LineStartPosition(t.text, local)
	if start.Byte == 0 {
		return t.offset
	}
	return t.absolute(start)
}

// LineEndPosition returns the end of the line containing base.
func (t Text) LineEndPosition(base position.Position) position.Position {
	local := position.Position{Byte: t.local(base), Page: base.Page}
	return t.absolute(t.metrics.LineEndPosition(t.text, local))
}

// Slice returns the raw substring between two absolute positions. Both
// positions must lie within [StartPosition, EndPosition].
func (t Text) Slice(start, end position.Position) string {
	return t.text[t.local(start):t.local(end)]
}

// Clip returns a new Text whose offset is start and whose underlying text
// is the slice of t between start and end. Both positions must lie within
// t's bounds; violating this is a programming error.
func (t Text) Clip(start, end position.Position) Text {
	if !t.posInBounds(start) || !t.posInBounds(end) {
		panic(fmt.Sprintf("source.Text.Clip: span [%v, %v] is out of bounds [%v, %v]",
			start, end, t.offset, t.EndPosition()))
	}
	return Text{
		text:    t.text[t.local(start):t.local(end)],
		name:    t.name,
		hasName: t.hasName,
		metrics: t.metrics,
		offset:  start,
	}
}
