package diagnostic

import (
	"fmt"
	"strings"

	"github.com/tephra-go/tephra/internal/span"
)

// Highlight marks a sub-span of a SpanDisplay's text with an underline (or,
// for a span crossing multiple lines, a continuation riser) and an
// optional trailing message.
type Highlight struct {
	Span      span.Span
	Message   string
	Type      MessageType
	riserChar byte
}

// NewHighlight returns an info-type Highlight over sp carrying message.
func NewHighlight(sp span.Span, message string) Highlight {
	return Highlight{Span: sp, Message: message, Type: Info}
}

// WithErrorType returns the highlight marked as an error (red underline).
func (h Highlight) WithErrorType() Highlight {
	h.Type = Error
	return h
}

// WithWarningType returns the highlight marked as a warning.
func (h Highlight) WithWarningType() Highlight {
	h.Type = Warning
	return h
}

// IsMultiline reports whether the highlight's span crosses a line boundary.
func (h Highlight) IsMultiline() bool {
	return h.Span.Start.Page.Line != h.Span.End.Page.Line
}

// underlineChar is the rune repeated under a single-line highlight's span:
// '^' for an error (pointing at the exact fault), '-' otherwise.
func (h Highlight) underlineChar() byte {
	if h.Type == Error {
		return '^'
	}
	return '-'
}

// writeUnderline writes the underline (or riser continuation) for the
// portion of h's span that falls on the given source line, given the
// line's own start/end columns and the highlighted start/end columns on
// that line.
func (h Highlight) writeUnderline(out *strings.Builder, gutterWidth int, lineStartCol, lineEndCol, hlStartCol, hlEndCol int, color bool) {
	writeGutter(out, "", gutterWidth, color)
	if hlStartCol > lineStartCol {
		out.WriteString(strings.Repeat(" ", hlStartCol-lineStartCol))
	}
	width := hlEndCol - hlStartCol
	if width < 1 {
		width = 1
	}
	mark := string(h.underlineChar())
	if color {
		fmt.Fprintf(out, "%s%s%s", h.Type.ansiColor(), strings.Repeat(mark, width), ansiReset)
	} else {
		out.WriteString(strings.Repeat(mark, width))
	}
	if h.Message != "" {
		out.WriteString(" ")
		out.WriteString(h.Message)
	}
	out.WriteString("\n")
}

// Note is a free-standing remark appended after a SpanDisplay's highlights
// or after a CodeDisplay's spans (e.g. "note: brackets must match").
type Note struct {
	Type    MessageType
	Message string
}

// NewNote returns a note-type Note with the given message.
func NewNote(message string) Note {
	return Note{Type: NoteType, Message: message}
}

// WithHelpType returns the note marked as a help message.
func (n Note) WithHelpType() Note {
	n.Type = Help
	return n
}

func (n Note) write(out *strings.Builder, color bool) {
	out.WriteString(n.Type.write(color))
	out.WriteString(": ")
	out.WriteString(n.Message)
}
