package diagnostic

import (
	"io"
	"strings"

	"github.com/tephra-go/tephra/internal/source"
)

// CodeDisplay is a complete rendered diagnostic: a headline message, its
// severity, and zero or more source-anchored SpanDisplays and trailing
// free-standing Notes.
type CodeDisplay struct {
	Message      string
	Type         MessageType
	CodeID       string
	SpanDisplays []SpanDisplay
	Notes        []Note
	ColorEnabled bool
}

// NewCodeDisplay returns an error-type CodeDisplay with the given headline
// message and color enabled.
func NewCodeDisplay(message string) CodeDisplay {
	return CodeDisplay{Message: message, Type: Error, ColorEnabled: true}
}

// WithColor returns the display with color enablement set explicitly.
func (d CodeDisplay) WithColor(enabled bool) CodeDisplay {
	d.ColorEnabled = enabled
	return d
}

// WithCodeID attaches a short error code (e.g. "E0308") printed after the
// severity label.
func (d CodeDisplay) WithCodeID(id string) CodeDisplay {
	d.CodeID = id
	return d
}

// WithSpanDisplay attaches a source-anchored span to the diagnostic.
func (d CodeDisplay) WithSpanDisplay(s SpanDisplay) CodeDisplay {
	d.SpanDisplays = append(d.SpanDisplays, s)
	return d
}

// WithNote attaches a trailing, non-source-anchored note.
func (d CodeDisplay) WithNote(n Note) CodeDisplay {
	d.Notes = append(d.Notes, n)
	return d
}

// Write renders the diagnostic against src, the source text its spans were
// constructed from, to out. Within this module it is only used to render
// into an in-memory buffer (SourceError.Error, tests, snapshot
// comparisons); cmd/tephra prints the resulting string itself.
func (d CodeDisplay) Write(out io.Writer, src source.Text) error {
	var b strings.Builder
	d.write(&b, src, d.ColorEnabled)
	_, err := io.WriteString(out, b.String())
	return err
}

func (d CodeDisplay) write(out *strings.Builder, src source.Text, color bool) {
	out.WriteString(d.Type.write(color))
	if d.CodeID != "" {
		out.WriteString("[")
		out.WriteString(d.CodeID)
		out.WriteString("]")
	}
	out.WriteString(": ")
	if color {
		out.WriteString(ansiBold)
		out.WriteString(d.Message)
		out.WriteString(ansiReset)
	} else {
		out.WriteString(d.Message)
	}
	out.WriteString("\n")

	for _, sd := range d.SpanDisplays {
		sd.write(out, src, color)
	}
	for _, n := range d.Notes {
		n.write(out, color)
		out.WriteString("\n")
	}
}

// String renders the diagnostic without color, using the empty source text.
// Prefer Write with the originating source.Text for a fully accurate
// rendering of span text.
func (d CodeDisplay) String() string {
	var b strings.Builder
	d.write(&b, source.New(""), false)
	return b.String()
}
