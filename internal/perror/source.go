package perror

import (
	"strings"

	"github.com/tephra-go/tephra/internal/diagnostic"
	"github.com/tephra-go/tephra/internal/source"
	"github.com/tephra-go/tephra/internal/span"
)

// SourceError is a general-purpose parse error carrying a rendered
// diagnostic.CodeDisplay and, optionally, the typed error it was built
// from. Every typed error in this package converts into one via its
// IntoSourceError method; Convert does the same generically for callers
// that only hold an error interface value.
type SourceError struct {
	source  source.Text
	display diagnostic.CodeDisplay
	cause   error
}

// NewSourceError constructs a SourceError with the given headline message,
// rendered against src.
func NewSourceError(src source.Text, message string) *SourceError {
	return &SourceError{
		source:  src,
		display: diagnostic.NewCodeDisplay(message),
	}
}

// WithCause attaches the underlying typed error that produced this
// SourceError, available via Unwrap.
func (e *SourceError) WithCause(cause error) *SourceError {
	e.cause = cause
	return e
}

// WithColor returns the error with color enablement set on its rendering.
func (e *SourceError) WithColor(enabled bool) *SourceError {
	e.display = e.display.WithColor(enabled)
	return e
}

// WithNote attaches a trailing note to the rendered diagnostic.
func (e *SourceError) WithNote(n diagnostic.Note) *SourceError {
	e.display = e.display.WithNote(n)
	return e
}

// WithSpanDisplay attaches a source-anchored span to the rendered
// diagnostic.
func (e *SourceError) WithSpanDisplay(sd diagnostic.SpanDisplay) *SourceError {
	e.display = e.display.WithSpanDisplay(sd)
	return e
}

// Message returns the error's headline message.
func (e *SourceError) Message() string { return e.display.Message }

// Error implements the error interface by rendering the full diagnostic.
func (e *SourceError) Error() string {
	var b strings.Builder
	_ = e.display.Write(&b, e.source)
	return strings.TrimSuffix(b.String(), "\n")
}

// Unwrap exposes the underlying typed error, if any, to errors.Is/As.
func (e *SourceError) Unwrap() error { return e.cause }

// ParseSpan implements ParseError by delegating to the cause, if it is
// itself a ParseError.
func (e *SourceError) ParseSpan() (span.Span, bool) {
	if pe, ok := e.cause.(ParseError); ok {
		return pe.ParseSpan()
	}
	return span.Span{}, false
}

// sourceErrorConverter is implemented by every typed error in this package
// that knows how to render itself against a source.Text.
type sourceErrorConverter interface {
	IntoSourceError(src source.Text) *SourceError
}

// Convert renders any typed error this package defines into a SourceError
// against src. A *SourceError is returned as is, with true. Any other
// error type of this package is converted and returned with true. For
// every other error the result is (nil, false).
func Convert(err error, src source.Text) (*SourceError, bool) {
	if se, ok := err.(*SourceError); ok {
		return se, true
	}
	if c, ok := err.(sourceErrorConverter); ok {
		return c.IntoSourceError(src), true
	}
	return nil, false
}
