package perror

import (
	"fmt"

	"github.com/tephra-go/tephra/internal/diagnostic"
	"github.com/tephra-go/tephra/internal/source"
	"github.com/tephra-go/tephra/internal/span"
)

// SectionError wraps an inner error with the name and kind of the
// enclosing grammar section it occurred in (e.g. kind "expression", name
// "right-hand side"), so a deeply nested failure still reports which
// higher-level construct it derailed.
type SectionError struct {
	Name  string
	Kind  string
	Span  span.Span
	Cause error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("in %s %s: %v", e.Kind, e.Name, e.Cause)
}

// Unwrap exposes the wrapped error to errors.Is/As.
func (e *SectionError) Unwrap() error { return e.Cause }

// ParseSpan implements ParseError.
func (e *SectionError) ParseSpan() (span.Span, bool) { return e.Span, true }

// IntoSourceError renders the error as a diagnostic CodeDisplay against
// src, preferring the cause's own rendering (with a note identifying the
// section) when the cause knows how to render itself.
func (e *SectionError) IntoSourceError(src source.Text) *SourceError {
	if inner, ok := Convert(e.Cause, src); ok {
		return inner.WithNote(diagnostic.NewNote(fmt.Sprintf("while parsing %s %s", e.Kind, e.Name)))
	}
	sd := diagnostic.NewErrorHighlight(src, e.Span, fmt.Sprintf("error in %s %s", e.Kind, e.Name))
	return NewSourceError(src, e.Error()).WithSpanDisplay(sd).WithCause(e)
}
