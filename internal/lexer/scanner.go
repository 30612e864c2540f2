// Package lexer implements the buffered, filter-aware, recovery-capable
// cursor over source text described by the core: a Lexer[T] drives a
// user-supplied Scanner[T], exposes a one-token peek, transparently skips
// filtered tokens, and supports sub-lexing and bounded forward advance for
// error recovery.
package lexer

import (
	"github.com/tephra-go/tephra/internal/position"
	"github.com/tephra-go/tephra/internal/source"
)

// Scanner recognizes the next token starting at base within source,
// returning the token and the position strictly after the consumed text.
// A Scanner may carry state between calls (e.g. an unclosed raw-string
// nesting depth); that state is threaded through Next and preserved across
// Peek via the lexer's buffer. Returning (zero, false) without consuming
// text signals "no recognizable token here" — the lexer surfaces this as
// an unrecognized-token error rather than looping.
//
// A Scanner that loops forever without advancing the returned position is
// a programming error; this package does not defend against it, matching
// the source's behavior.
//
// Clone returns an independent copy of the scanner, with its own state if
// any. Lexer.Clone and Lexer.Sublexer call it rather than copying the
// Scanner value directly, so a stateful, pointer-receiver scanner doesn't
// end up sharing mutable state with the lexer it was cloned from.
type Scanner[T any] interface {
	Scan(src source.Text, base position.Position) (tok T, next position.Position, ok bool)
	Clone() Scanner[T]
}

// ScannerFunc adapts a plain function to the Scanner interface, for
// scanners that need no state of their own.
type ScannerFunc[T any] func(src source.Text, base position.Position) (T, position.Position, bool)

// Scan implements Scanner.
func (f ScannerFunc[T]) Scan(src source.Text, base position.Position) (T, position.Position, bool) {
	return f(src, base)
}

// Clone implements Scanner. A ScannerFunc carries no state of its own, so
// the function value itself is already independent of any caller.
func (f ScannerFunc[T]) Clone() Scanner[T] { return f }
