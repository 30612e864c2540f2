package perror

import (
	"fmt"

	"github.com/tephra-go/tephra/internal/diagnostic"
	"github.com/tephra-go/tephra/internal/position"
	"github.com/tephra-go/tephra/internal/source"
	"github.com/tephra-go/tephra/internal/span"
)

// ParseBoundaryError is raised when a successful parse does not consume as
// much text as the caller required (typically: all of it).
type ParseBoundaryError struct {
	// ParseSpanValue is the span of the successful parse.
	ParseSpanValue span.Span
	// ExpectedEnd is the position the parse was required to reach.
	ExpectedEnd position.Position
}

// FullSpan returns the span of the parsed and unexpected text together.
func (e *ParseBoundaryError) FullSpan() span.Span {
	return span.NewEnclosing(e.ParseSpanValue.Source, e.ParseSpanValue.Start, e.ExpectedEnd)
}

// UnparsedSpan returns the span of the unexpected trailing text.
func (e *ParseBoundaryError) UnparsedSpan() span.Span {
	return span.NewEnclosing(e.ParseSpanValue.Source, e.ParseSpanValue.End, e.ExpectedEnd)
}

func (e *ParseBoundaryError) Error() string {
	return fmt.Sprintf("incomplete parse: unexpected text at %s", e.UnparsedSpan())
}

// ParseSpan implements ParseError.
func (e *ParseBoundaryError) ParseSpan() (span.Span, bool) {
	return e.ParseSpanValue, true
}

// IntoSourceError renders the error as a diagnostic CodeDisplay against src.
func (e *ParseBoundaryError) IntoSourceError(src source.Text) *SourceError {
	sd := diagnostic.NewSpanDisplay(src, e.FullSpan()).
		WithHighlight(diagnostic.NewHighlight(e.UnparsedSpan(), "unexpected text").WithErrorType())
	return NewSourceError(src, "incomplete parse").WithSpanDisplay(sd).WithCause(e)
}

// MatchBracketErrorKind distinguishes the ways a bracket-matching
// combinator can fail.
type MatchBracketErrorKind uint8

const (
	// NoneFound means no open bracket was present where one was expected.
	NoneFound MatchBracketErrorKind = iota
	// Unclosed means an open bracket was found with no matching close.
	Unclosed
	// Unopened means a close bracket was found with no matching open.
	Unopened
	// Mismatch means an open and close bracket were found but their kinds
	// don't correspond (e.g. "(" closed by "]").
	Mismatch
)

// MatchBracketError is raised by the bracket-matching combinators.
type MatchBracketError struct {
	Kind MatchBracketErrorKind
	// ExpectedStart is set for NoneFound: where the open bracket was
	// expected.
	ExpectedStart span.Span
	// FoundStart is set for Unclosed and Mismatch: the open bracket found.
	FoundStart span.Span
	// FoundEnd is set for Unopened and Mismatch: the close bracket found.
	FoundEnd span.Span
}

// FullSpan returns the span covering the whole error.
func (e *MatchBracketError) FullSpan() span.Span {
	switch e.Kind {
	case NoneFound:
		return e.ExpectedStart
	case Unclosed:
		return e.FoundStart
	case Unopened:
		return e.FoundEnd
	default:
		return e.FoundStart.Enclose(e.FoundEnd)
	}
}

func (e *MatchBracketError) Error() string {
	switch e.Kind {
	case NoneFound:
		return fmt.Sprintf("bracket error: expected open bracket at %s", e.ExpectedStart)
	case Unclosed:
		return fmt.Sprintf("bracket error: unmatched open bracket at %s", e.FoundStart)
	case Unopened:
		return fmt.Sprintf("bracket error: unmatched close bracket at %s", e.FoundEnd)
	default:
		return fmt.Sprintf("bracket error: mismatched brackets at %s and %s", e.FoundStart, e.FoundEnd)
	}
}

// ParseSpan implements ParseError.
func (e *MatchBracketError) ParseSpan() (span.Span, bool) {
	return e.FullSpan(), true
}

// IntoSourceError renders the error as a diagnostic CodeDisplay against src.
func (e *MatchBracketError) IntoSourceError(src source.Text) *SourceError {
	switch e.Kind {
	case NoneFound:
		sd := diagnostic.NewErrorHighlight(src, e.ExpectedStart, "bracket expected here")
		return NewSourceError(src, "expected open bracket").WithSpanDisplay(sd).WithCause(e)

	case Unclosed:
		sd := diagnostic.NewErrorHighlight(src, e.FoundStart, "this bracket is not closed")
		return NewSourceError(src, "unmatched open bracket").WithSpanDisplay(sd).WithCause(e)

	case Unopened:
		sd := diagnostic.NewErrorHighlight(src, e.FoundEnd, "this bracket has no matching open")
		return NewSourceError(src, "unmatched close bracket").WithSpanDisplay(sd).WithCause(e)

	default:
		sd := diagnostic.NewSpanDisplay(src, e.FoundStart.Enclose(e.FoundEnd)).
			WithHighlight(diagnostic.NewHighlight(e.FoundStart, "the bracket here").WithErrorType()).
			WithHighlight(diagnostic.NewHighlight(e.FoundEnd, "... does not match the closing bracket here").WithErrorType())
		return NewSourceError(src, "mismatched brackets").WithSpanDisplay(sd).WithCause(e)
	}
}

// RepeatCountError is raised when a repetition combinator parses a number
// of items outside its required [min, max] bound.
type RepeatCountError struct {
	ParseSpanValue span.Span
	Found          int
	ExpectedMin    int
	// ExpectedMax is -1 for an unbounded repetition.
	ExpectedMax int
}

func (e *RepeatCountError) expectedDescription() string {
	plural := func(n int) string {
		if n == 1 {
			return ""
		}
		return "s"
	}
	if e.Found < e.ExpectedMin {
		return fmt.Sprintf("expected %d item%s; found %d", e.ExpectedMin, plural(e.ExpectedMin), e.Found)
	}
	if e.ExpectedMax >= 0 && e.ExpectedMax != e.ExpectedMin {
		return fmt.Sprintf("expected %d to %d items; found %d", e.ExpectedMin, e.ExpectedMax, e.Found)
	}
	max := e.ExpectedMax
	if max < 0 {
		max = e.ExpectedMin
	}
	return fmt.Sprintf("expected %d item%s; found %d", max, plural(max), e.Found)
}

func (e *RepeatCountError) Error() string {
	return fmt.Sprintf("invalid item count: %s", e.expectedDescription())
}

// ParseSpan implements ParseError.
func (e *RepeatCountError) ParseSpan() (span.Span, bool) {
	return e.ParseSpanValue, true
}

// IntoSourceError renders the error as a diagnostic CodeDisplay against src.
func (e *RepeatCountError) IntoSourceError(src source.Text) *SourceError {
	sd := diagnostic.NewSpanDisplay(src, e.ParseSpanValue).
		WithHighlight(diagnostic.NewHighlight(e.ParseSpanValue, e.expectedDescription()).WithErrorType())
	return NewSourceError(src, "invalid item count").WithSpanDisplay(sd).WithCause(e)
}
