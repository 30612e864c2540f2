package perror

import (
	"fmt"

	"github.com/tephra-go/tephra/internal/diagnostic"
	"github.com/tephra-go/tephra/internal/source"
	"github.com/tephra-go/tephra/internal/span"
)

// UnexpectedTokenError is raised when a combinator expected one of a set of
// tokens and the scanner produced something else (or the text ended). T is
// the scanner's token type.
type UnexpectedTokenError[T any] struct {
	// Expected describes what was wanted, e.g. "identifier" or "')'".
	Expected string
	// Found is the token that was actually present, if any.
	Found T
	// HasFound is false when the failure occurred at the end of text.
	HasFound bool
	// TokenSpanValue is the span of the unexpected token, or the empty span
	// at the cursor if HasFound is false.
	TokenSpanValue span.Span
	// ParseSpanValue is the span of the parse up to the failure.
	ParseSpanValue span.Span
}

func (e *UnexpectedTokenError[T]) Error() string {
	if !e.HasFound {
		return fmt.Sprintf("expected %s; found end of text", e.Expected)
	}
	return fmt.Sprintf("expected %s; found %v", e.Expected, e.Found)
}

// ParseSpan implements ParseError.
func (e *UnexpectedTokenError[T]) ParseSpan() (span.Span, bool) {
	return e.ParseSpanValue, true
}

// IntoSourceError renders the error as a diagnostic CodeDisplay against src.
func (e *UnexpectedTokenError[T]) IntoSourceError(src source.Text) *SourceError {
	message := "unexpected token"
	if !e.HasFound {
		message = "unexpected end of text"
	}
	sd := diagnostic.NewErrorHighlight(src, e.TokenSpanValue, e.Error())
	return NewSourceError(src, message).WithSpanDisplay(sd).WithCause(e)
}

// UnrecognizedTokenError is raised when a Scanner cannot recognize any
// token starting at the given position.
type UnrecognizedTokenError struct {
	SpanValue span.Span
}

func (e *UnrecognizedTokenError) Error() string {
	return fmt.Sprintf("unrecognized token at %s", e.SpanValue.Start)
}

// ParseSpan implements ParseError.
func (e *UnrecognizedTokenError) ParseSpan() (span.Span, bool) {
	return e.SpanValue, true
}

// IntoSourceError renders the error as a diagnostic CodeDisplay against src.
func (e *UnrecognizedTokenError) IntoSourceError(src source.Text) *SourceError {
	sd := diagnostic.NewErrorHighlight(src, e.SpanValue, "unrecognized token")
	return NewSourceError(src, "unrecognized token").WithSpanDisplay(sd).WithCause(e)
}
