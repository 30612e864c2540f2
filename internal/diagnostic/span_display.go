package diagnostic

import (
	"fmt"
	"strings"

	"github.com/tephra-go/tephra/internal/source"
	"github.com/tephra-go/tephra/internal/span"
)

// SpanDisplay renders a window of source text (widened to whole lines)
// annotated with zero or more Highlights and trailing Notes.
type SpanDisplay struct {
	SourceName  string
	hasName     bool
	Span        span.Span
	Highlights  []Highlight
	Notes       []Note
	gutterWidth int
}

// NewSpanDisplay returns a SpanDisplay covering sp's lines within src, with
// no highlights yet attached.
func NewSpanDisplay(src source.Text, sp span.Span) SpanDisplay {
	widened := sp.WidenToLine()
	name, hasName := src.Name()
	return SpanDisplay{
		SourceName:  name,
		hasName:     hasName,
		Span:        widened,
		gutterWidth: gutterWidthFor(widened),
	}
}

// NewErrorHighlight returns a SpanDisplay over sp with a single error-type
// highlight spanning all of sp and carrying message.
func NewErrorHighlight(src source.Text, sp span.Span, message string) SpanDisplay {
	return NewSpanDisplay(src, sp).WithHighlight(NewHighlight(sp, message).WithErrorType())
}

func gutterWidthFor(sp span.Span) int {
	w := len(fmt.Sprintf("%d", sp.End.Page.Line+1))
	if w < 1 {
		return 1
	}
	return w
}

// WithHighlight attaches a highlight to the display.
func (d SpanDisplay) WithHighlight(h Highlight) SpanDisplay {
	d.Highlights = append(d.Highlights, h)
	return d
}

// WithNote attaches a trailing note to the display.
func (d SpanDisplay) WithNote(n Note) SpanDisplay {
	d.Notes = append(d.Notes, n)
	return d
}

func writeGutter(out *strings.Builder, value any, width int, color bool) {
	text := fmt.Sprintf("%v", value)
	pad := width - len(text)
	if pad > 0 {
		out.WriteString(strings.Repeat(" ", pad))
	}
	if color {
		fmt.Fprintf(out, "\033[1;34m%s |\033[0m ", text)
	} else {
		fmt.Fprintf(out, "%s | ", text)
	}
}

// riserColumn computes, for the given source line, the riser glyph to
// print for each multiline highlight (in highlight order), or a space when
// the highlight doesn't touch this line.
func riserColumn(highlights []Highlight, line int) string {
	var b strings.Builder
	for _, h := range highlights {
		if !h.IsMultiline() {
			continue
		}
		switch {
		case line == h.Span.Start.Page.Line:
			b.WriteByte('/')
		case line == h.Span.End.Page.Line:
			b.WriteByte('\\')
		case line > h.Span.Start.Page.Line && line < h.Span.End.Page.Line:
			b.WriteByte('|')
		default:
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func (d SpanDisplay) anyMultiline() bool {
	for _, h := range d.Highlights {
		if h.IsMultiline() {
			return true
		}
	}
	return false
}

// write renders the display into out against src, which must be the source
// text the span was constructed against (or a text sharing its positions).
func (d SpanDisplay) write(out *strings.Builder, src source.Text, color bool) {
	sep := ""
	if d.hasName {
		sep = ":"
	}
	if color {
		fmt.Fprintf(out, "%*s\033[1;34m-->\033[0m %s%s(%s)\n", d.gutterWidth, "", d.SourceName, sep, d.Span)
	} else {
		fmt.Fprintf(out, "%*s--> %s%s(%s)\n", d.gutterWidth, "", d.SourceName, sep, d.Span)
	}
	writeGutter(out, "", d.gutterWidth, color)
	out.WriteString("\n")

	multiline := d.anyMultiline()
	lines := d.Span.Lines()
	for {
		lineSpan, ok := lines.Next()
		if !ok {
			break
		}
		current := lineSpan.Start.Page.Line

		writeGutter(out, current, d.gutterWidth, color)
		if multiline {
			out.WriteString(riserColumn(d.Highlights, current))
			out.WriteString(" ")
		}
		out.WriteString(lineSpan.Text())
		out.WriteString("\n")

		for _, h := range d.Highlights {
			if h.IsMultiline() {
				continue
			}
			if h.Span.Start.Page.Line != current {
				continue
			}
			h.writeUnderline(out, d.gutterWidth, lineSpan.Start.Page.Column, lineSpan.End.Page.Column,
				h.Span.Start.Page.Column, h.Span.End.Page.Column, color)
		}
		for _, h := range d.Highlights {
			if h.IsMultiline() && h.Span.End.Page.Line == current && h.Message != "" {
				writeGutter(out, "", d.gutterWidth, color)
				out.WriteString(riserColumn(d.Highlights, current))
				out.WriteString(" ")
				out.WriteString(h.Message)
				out.WriteString("\n")
			}
		}
	}

	for _, n := range d.Notes {
		writeGutter(out, "", d.gutterWidth, color)
		out.WriteString("= ")
		n.write(out, color)
		out.WriteString("\n")
	}
}
