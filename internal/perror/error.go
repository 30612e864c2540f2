// Package perror defines the typed parse-error taxonomy combinators and
// scanners raise, and the machinery for turning any of them into a
// SourceError rendered against the originating text.
package perror

import "github.com/tephra-go/tephra/internal/span"

// ParseError is implemented by every error type this package defines. It
// lets a combinator recover the span a failure occurred at without knowing
// the concrete error type, and lets SourceError absorb any of them as a
// cause.
type ParseError interface {
	error

	// ParseSpan returns the span of the parse in progress when the failure
	// occurred, and whether one is available.
	ParseSpan() (span.Span, bool)
}
