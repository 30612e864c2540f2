package abc

import (
	"github.com/tephra-go/tephra/internal/diagnostic"
	"github.com/tephra-go/tephra/internal/perror"
	"github.com/tephra-go/tephra/internal/source"
	"github.com/tephra-go/tephra/internal/span"
)

// ParsePatternError is raised when none of a pattern's three alternatives
// (abc, bxx, xyc) matched at the current position.
type ParsePatternError struct {
	ParseSpanValue span.Span
	TokenSpanValue span.Span
	HasTokenSpan   bool
}

func (e *ParsePatternError) Error() string { return "expected pattern" }

// ParseSpan implements perror.ParseError.
func (e *ParsePatternError) ParseSpan() (span.Span, bool) { return e.ParseSpanValue, true }

// IntoSourceError renders the error as a diagnostic CodeDisplay against src.
func (e *ParsePatternError) IntoSourceError(src source.Text) *perror.SourceError {
	highlightSpan := e.ParseSpanValue
	if e.HasTokenSpan {
		highlightSpan = highlightSpan.Enclose(e.TokenSpanValue)
	}
	sd := diagnostic.NewErrorHighlight(src, highlightSpan, "expected 'ABC', 'BXX', or 'XYC' pattern")
	return perror.NewSourceError(src, "expected pattern").WithSpanDisplay(sd).WithCause(e)
}
