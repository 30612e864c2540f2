package position

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// LineEnding is the line-ending convention a ColumnMetrics measures against.
type LineEnding uint8

const (
	// LF is the default line ending ("\n").
	LF LineEnding = iota
	// CR is a bare carriage return ("\r").
	CR
	// CRLF is a carriage-return/line-feed pair ("\r\n").
	CRLF
)

// DefaultTabWidth is the column advance used for a tab character when no
// explicit tab width is configured.
const DefaultTabWidth = 4

// String returns the literal line-ending text.
func (le LineEnding) String() string {
	switch le {
	case CR:
		return "\r"
	case CRLF:
		return "\r\n"
	default:
		return "\n"
	}
}

// ColumnMetrics is the sole authority on column widths: every higher layer
// (Span, Lexer, diagnostic rendering) asks it for the next or previous
// column-aligned position rather than measuring runes itself.
type ColumnMetrics struct {
	LineEnding LineEnding
	TabWidth   uint8
}

// DefaultMetrics returns the LF, 4-column-tab metrics used when a caller
// does not configure anything else.
func DefaultMetrics() ColumnMetrics {
	return ColumnMetrics{LineEnding: LF, TabWidth: DefaultTabWidth}
}

// WithLineEnding returns a copy of m using the given line-ending convention.
func (m ColumnMetrics) WithLineEnding(le LineEnding) ColumnMetrics {
	m.LineEnding = le
	return m
}

// WithTabWidth returns a copy of m using the given tab width.
func (m ColumnMetrics) WithTabWidth(tw uint8) ColumnMetrics {
	m.TabWidth = tw
	return m
}

func (m ColumnMetrics) tabWidth() int {
	if m.TabWidth == 0 {
		return DefaultTabWidth
	}
	return int(m.TabWidth)
}

// IsLineBreak reports whether the text at the given byte offset starts
// with the configured line-ending literal.
func (m ColumnMetrics) IsLineBreak(text string, byteOffset int) bool {
	le := m.LineEnding.String()
	if byteOffset < 0 || byteOffset+len(le) > len(text) {
		return false
	}
	return text[byteOffset:byteOffset+len(le)] == le
}

// runeColumnWidth returns the number of columns a rune advances, per §4.1:
// width-0 characters (combining marks, formatting characters) count as
// zero columns, East-Asian wide/fullwidth characters count as two, and
// everything else counts as one.
func runeColumnWidth(r rune) int {
	if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || unicode.Is(unicode.Cf, r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// NextPosition returns the next column-aligned position after base within
// text, or (zero, false) if base is already at the end of text.
func (m ColumnMetrics) NextPosition(text string, base Position) (Position, bool) {
	if base.Byte >= len(text) {
		return Position{}, false
	}

	le := m.LineEnding.String()
	if m.IsLineBreak(text, base.Byte) {
		return New(base.Byte+len(le), base.Page.Line+1, 0), true
	}

	r, size := utf8.DecodeRuneInString(text[base.Byte:])
	if r == '\t' {
		tab := m.tabWidth()
		tabStop := tab - (base.Page.Column % tab)
		return New(base.Byte+1, base.Page.Line, base.Page.Column+tabStop), true
	}

	return New(base.Byte+size, base.Page.Line, base.Page.Column+runeColumnWidth(r)), true
}

// PreviousPosition returns the previous column-aligned position before
// base within text, or (zero, false) if base is at the start of text.
func (m ColumnMetrics) PreviousPosition(text string, base Position) (Position, bool) {
	if base.Byte <= 0 {
		return Position{}, false
	}

	le := m.LineEnding.String()
	if len(le) <= base.Byte && text[base.Byte-len(le):base.Byte] == le {
		prevEnd := New(base.Byte-len(le), base.Page.Line-1, 0)
		return m.LineEndPosition(text, m.LineStartPosition(text, prevEnd)), true
	}

	prefix := text[:base.Byte]
	r, size := utf8.DecodeLastRuneInString(prefix)
	if r == '\t' {
		// Tabs are column-aligned relative to the line start, so the only
		// reliable way to find a tab's start column is to walk forward
		// from the line start until we reach the position just before base.
		cur := m.LineStartPosition(text, base)
		for cur.Byte < base.Byte-1 {
			next, ok := m.NextPosition(text, cur)
			if !ok {
				break
			}
			cur = next
		}
		return cur, true
	}

	return New(base.Byte-size, base.Page.Line, base.Page.Column-runeColumnWidth(r)), true
}

// LineStartPosition returns the position of the start of the line
// containing base.
func (m ColumnMetrics) LineStartPosition(text string, base Position) Position {
	start := base.Byte
	for start > 0 {
		for start > 0 && !utf8.RuneStart(text[start-1]) {
			start--
		}
		if m.IsLineBreak(text, start-len(m.LineEnding.String())) {
			break
		}
		start--
	}
	return New(start, base.Page.Line, 0)
}

// LineEndPosition returns the position of the end of the line containing
// base (i.e. just before the line-ending sequence, or at the end of text).
func (m ColumnMetrics) LineEndPosition(text string, base Position) Position {
	end := base
	for end.Byte < len(text) {
		if m.IsLineBreak(text, end.Byte) {
			break
		}
		next, ok := m.NextPosition(text, end)
		if !ok {
			break
		}
		end = next
	}
	return end
}

// PreviousLineEndPosition returns the end position of the line before the
// one containing base, or (zero, false) at the start of text.
func (m ColumnMetrics) PreviousLineEndPosition(text string, base Position) (Position, bool) {
	return m.PreviousPosition(text, m.LineStartPosition(text, base))
}

// NextLineStartPosition returns the start position of the line after the
// one containing base, or (zero, false) at the end of text.
func (m ColumnMetrics) NextLineStartPosition(text string, base Position) (Position, bool) {
	return m.NextPosition(text, m.LineEndPosition(text, base))
}

// StartPosition walks backward from end to the start of text.
func (m ColumnMetrics) StartPosition(text string, end Position) Position {
	start := end
	for start.Byte > 0 {
		prev, ok := m.PreviousPosition(text, start)
		if !ok {
			break
		}
		start = prev
	}
	return start
}

// EndPosition walks forward from start to the end of text.
func (m ColumnMetrics) EndPosition(text string, start Position) Position {
	end := start
	for end.Byte < len(text) {
		next, ok := m.NextPosition(text, end)
		if !ok {
			break
		}
		end = next
	}
	return end
}

// PositionAfterStr returns the position just past an exact match of
// pattern starting at start, or (zero, false) if text does not begin with
// pattern at that position.
func (m ColumnMetrics) PositionAfterStr(text string, start Position, pattern string) (Position, bool) {
	end := start
	for {
		adv, ok := m.NextPosition(text, end)
		if !ok {
			break
		}
		if pattern[end.Byte-start.Byte:adv.Byte-start.Byte] != text[end.Byte:adv.Byte] {
			break
		}
		if adv.Byte-start.Byte >= len(pattern) {
			return adv, true
		}
		end = adv
	}
	return Position{}, false
}

// PositionAfterCharsMatching returns the position after the maximal run of
// characters satisfying pred starting at start, or (zero, false) if no
// characters matched.
func (m ColumnMetrics) PositionAfterCharsMatching(text string, start Position, pred func(rune) bool) (Position, bool) {
	end := start
	for {
		adv, ok := m.NextPosition(text, end)
		if !ok {
			break
		}
		allMatch := true
		for _, r := range text[end.Byte:adv.Byte] {
			if !pred(r) {
				allMatch = false
				break
			}
		}
		if !allMatch {
			break
		}
		end = adv
	}
	if end == start {
		return Position{}, false
	}
	return end, true
}

// NextPositionAfterCharsMatching returns the position just past the next
// single character if it satisfies pred, or (zero, false) otherwise.
func (m ColumnMetrics) NextPositionAfterCharsMatching(text string, start Position, pred func(rune) bool) (Position, bool) {
	adv, ok := m.NextPosition(text, start)
	if !ok {
		return Position{}, false
	}
	for _, r := range text[start.Byte:adv.Byte] {
		if !pred(r) {
			return Position{}, false
		}
	}
	return adv, true
}
