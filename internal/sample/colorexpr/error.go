package colorexpr

import (
	"github.com/tephra-go/tephra/internal/diagnostic"
	"github.com/tephra-go/tephra/internal/perror"
	"github.com/tephra-go/tephra/internal/source"
	"github.com/tephra-go/tephra/internal/span"
)

// TrailingInputError is raised when Parse consumes a full expression but
// text remains afterward.
type TrailingInputError struct {
	SpanValue span.Span
}

func (e *TrailingInputError) Error() string { return "unexpected trailing input" }

// ParseSpan implements perror.ParseError.
func (e *TrailingInputError) ParseSpan() (span.Span, bool) { return e.SpanValue, true }

// IntoSourceError renders the error as a diagnostic CodeDisplay against src.
func (e *TrailingInputError) IntoSourceError(src source.Text) *perror.SourceError {
	sd := diagnostic.NewErrorHighlight(src, e.SpanValue, "expected end of input here")
	return perror.NewSourceError(src, "unexpected trailing input").WithSpanDisplay(sd).WithCause(e)
}
