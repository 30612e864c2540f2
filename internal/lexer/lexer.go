package lexer

import (
	"fmt"
	"strings"

	"github.com/tephra-go/tephra/internal/position"
	"github.com/tephra-go/tephra/internal/source"
	"github.com/tephra-go/tephra/internal/span"
)

// bufferedToken caches the result of the most recent scan so that Peek
// never re-scans and Next, when a buffered token is present, only has to
// commit the cursor instead of calling the scanner again.
type bufferedToken[T any] struct {
	tok   T
	start position.Position
	next  position.Position
}

// Lexer is a buffered, filter-aware cursor over a source.Text, driven by a
// user-supplied Scanner. It tracks three positions into the text:
//
//	parseStart <= tokenStart <= cursor
//
// parseStart is the start of the current parse frame (reset by calling
// StartSpan), tokenStart is the start of the most recently returned token,
// and cursor is the position the next scan begins from. Peek scans ahead
// without moving tokenStart or cursor past the peeked token; Next commits
// it.
type Lexer[T any] struct {
	source source.Text
	scan   Scanner[T]

	filter func(T) bool

	buffer *bufferedToken[T]

	parseStart position.Position
	tokenStart position.Position
	cursor     position.Position
}

// Option configures a Lexer at construction time.
type Option[T any] func(*Lexer[T])

// WithFilter returns an Option that sets a predicate for tokens to skip
// transparently: Peek and Next never return a token for which skip
// reports true, though the skipped text still advances the cursor.
func WithFilter[T any](skip func(T) bool) Option[T] {
	return func(l *Lexer[T]) { l.filter = skip }
}

// New constructs a Lexer over src driven by sc, starting at src's start
// position.
func New[T any](src source.Text, sc Scanner[T], opts ...Option[T]) *Lexer[T] {
	start := src.StartPosition()
	l := &Lexer[T]{
		source:     src,
		scan:       sc,
		parseStart: start,
		tokenStart: start,
		cursor:     start,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Source returns the text the lexer reads from.
func (l *Lexer[T]) Source() source.Text { return l.source }

// Clone returns an independent copy of l: combinators that need to try a
// parse and roll back on failure (Maybe, Either, bracket/delimited-list
// lookahead) clone before attempting rather than mutating and restoring,
// matching the value-semantics backtracking the scanner contract assumes.
func (l *Lexer[T]) Clone() *Lexer[T] {
	clone := *l
	clone.scan = l.scan.Clone()
	return &clone
}

// SetFilter installs a token-skip predicate, replacing any previous one.
// Any already-buffered peeked token is discarded so the new filter applies
// from the next Peek or Next.
func (l *Lexer[T]) SetFilter(skip func(T) bool) {
	l.filter = skip
	l.buffer = nil
}

// TakeFilter removes and returns the current filter, or nil if none is set.
// Buffered lookahead is discarded so the lexer re-scans without the old
// filter.
func (l *Lexer[T]) TakeFilter() func(T) bool {
	f := l.filter
	l.filter = nil
	l.buffer = nil
	return f
}

// IsEmpty reports whether no token is buffered and nothing but filtered
// tokens lies between the cursor and the end of the source text. It scans
// with a clone of the scanner, so the lexer's state is left unchanged.
func (l *Lexer[T]) IsEmpty() bool {
	if l.buffer != nil {
		return false
	}
	end := l.source.EndPosition().Byte
	scan := l.scan.Clone()
	cur := l.cursor
	for cur.Byte < end {
		tok, next, ok := scan.Scan(l.source, cur)
		if !ok || l.filter == nil || !l.filter(tok) {
			return false
		}
		cur = next
	}
	return true
}

func (l *Lexer[T]) hasNonfiltered() bool {
	_, ok := l.peekRaw()
	return ok
}

// CursorPos returns the absolute position the next scan will begin from.
func (l *Lexer[T]) CursorPos() position.Position { return l.cursor }

// TokenStartPos returns the start position of the most recently returned
// token.
func (l *Lexer[T]) TokenStartPos() position.Position { return l.tokenStart }

// TokenSpan returns the span from the start of the most recently returned
// token up to the cursor.
func (l *Lexer[T]) TokenSpan() span.Span {
	return span.NewEnclosing(l.source, l.tokenStart, l.cursor)
}

// ParseSpan returns the span from the start of the current parse frame up
// to the cursor.
func (l *Lexer[T]) ParseSpan() span.Span {
	return span.NewEnclosing(l.source, l.parseStart, l.cursor)
}

// StartSpan resets the parse frame to begin at the cursor's current
// position, returning the position it was reset to. Combinators call this
// at the start of a parse to make ParseSpan describe only what follows.
func (l *Lexer[T]) StartSpan() position.Position {
	l.parseStart = l.cursor
	return l.parseStart
}

// EndSpan returns the span from the current parse frame's start to the
// cursor without resetting the frame, equivalent to ParseSpan.
func (l *Lexer[T]) EndSpan() span.Span { return l.ParseSpan() }

// peekRaw scans (if needed) and returns the next nonfiltered token without
// committing it, populating the buffer as a side effect. Filtered tokens
// are skipped over using a local cursor that is never written back to
// l.cursor; only Next, AdvanceTo, AdvanceUpTo, and AdvanceToRecover ever
// move the committed cursor, so a Peek (direct or via IsEmpty,
// PeekTokenSpan, NextIf's failed branch) can never advance past text a
// caller hasn't consumed.
func (l *Lexer[T]) peekRaw() (T, bool) {
	if l.buffer != nil {
		return l.buffer.tok, true
	}
	cur := l.cursor
	for {
		tok, next, ok := l.scan.Scan(l.source, cur)
		if !ok {
			var zero T
			return zero, false
		}
		if l.filter != nil && l.filter(tok) {
			cur = next
			continue
		}
		l.buffer = &bufferedToken[T]{tok: tok, start: cur, next: next}
		return tok, true
	}
}

// Peek returns the next nonfiltered token without consuming it. Calling
// Peek repeatedly without an intervening Next returns the same token.
func (l *Lexer[T]) Peek() (T, bool) {
	return l.peekRaw()
}

// PeekTokenSpan returns the span the next Peek'd or Next'd token would
// occupy, or the empty span at the cursor if no token remains.
func (l *Lexer[T]) PeekTokenSpan() span.Span {
	if l.buffer == nil {
		l.peekRaw()
	}
	if l.buffer == nil {
		return span.New(l.source, l.cursor)
	}
	return span.NewEnclosing(l.source, l.buffer.start, l.buffer.next)
}

// Next scans, filters, and commits the next token: tokenStart moves to
// wherever the token actually starts (past any filtered tokens skipped to
// reach it) and cursor moves past the token's text. Returns (zero, false)
// at the end of text or when the scanner fails to recognize anything
// starting at the cursor.
func (l *Lexer[T]) Next() (T, bool) {
	tok, ok := l.peekRaw()
	if !ok {
		return tok, false
	}
	l.tokenStart = l.buffer.start
	l.cursor = l.buffer.next
	l.buffer = nil
	return tok, true
}

// NextIf consumes and returns the next token if pred reports true for it,
// otherwise leaves the lexer unchanged.
func (l *Lexer[T]) NextIf(pred func(T) bool) (T, bool) {
	tok, ok := l.peekRaw()
	if !ok || !pred(tok) {
		var zero T
		return zero, false
	}
	return l.Next()
}

// AdvanceTo moves the cursor directly to pos, bypassing the scanner. pos
// must not precede the current cursor. This is used by bracket-matching
// and delimited-list combinators to jump past a failed region once a
// closing delimiter has been located by other means.
func (l *Lexer[T]) AdvanceTo(pos position.Position) {
	l.buffer = nil
	l.cursor = pos
}

// AdvanceUpTo scans and discards tokens until the cursor reaches pos or
// the scanner can no longer produce a token not exceeding it, whichever
// comes first. It returns the number of tokens discarded.
func (l *Lexer[T]) AdvanceUpTo(pos position.Position) int {
	n := 0
	for l.cursor.Byte < pos.Byte {
		tok, next, ok := l.scan.Scan(l.source, l.cursor)
		_ = tok
		if !ok || next.Byte > pos.Byte {
			break
		}
		l.buffer = nil
		l.cursor = next
		n++
	}
	return n
}

// AdvanceToRecover scans and discards tokens, without applying any filter,
// until stop reports true for a scanned token or the text is exhausted.
// The token stop matched is left buffered rather than consumed, so the
// next Peek or Next observes it; this is how a parser recovers to a
// well-known synchronization token (e.g. a statement terminator) after an
// error. Returns the number of tokens discarded.
func (l *Lexer[T]) AdvanceToRecover(stop func(T) bool) int {
	n := 0
	for {
		if l.buffer == nil {
			tok, next, ok := l.scan.Scan(l.source, l.cursor)
			if !ok {
				return n
			}
			l.buffer = &bufferedToken[T]{tok: tok, start: l.cursor, next: next}
		}
		if stop(l.buffer.tok) {
			return n
		}
		l.cursor = l.buffer.next
		l.buffer = nil
		n++
	}
}

// Sublexer returns a new Lexer reading only the text within span, using a
// clone of this lexer's scanner and the same filter, with an independent
// cursor. This is
// how a combinator descends into a delimited region (a bracketed group, a
// quoted interpolation) with its own parse frame.
func (l *Lexer[T]) Sublexer(sp span.Span) *Lexer[T] {
	clipped := l.source.Clip(sp.Start, sp.End)
	return New(clipped, l.scan.Clone(), Option[T](func(sub *Lexer[T]) {
		sub.filter = l.filter
	}))
}

// IterWithSpans returns a finite iterator yielding every remaining
// nonfiltered token paired with its span, in order, consuming the lexer as
// it goes.
func (l *Lexer[T]) IterWithSpans() *TokenIterator[T] {
	return &TokenIterator[T]{lexer: l}
}

// TokenIterator is a one-shot forward iterator over a Lexer's remaining
// tokens.
type TokenIterator[T any] struct {
	lexer *Lexer[T]
}

// Next returns the next token and its span, or (zero, zero, false) once
// the lexer is exhausted.
func (it *TokenIterator[T]) Next() (T, span.Span, bool) {
	tok, ok := it.lexer.Next()
	if !ok {
		var zero T
		return zero, span.Span{}, false
	}
	return tok, it.lexer.TokenSpan(), true
}

// String renders a one-line tracing snapshot of the lexer's state: the
// source name (if any), the cursor position, and, when a peeked token is
// buffered, the position where that token ends. The token span and the
// parse span are not shown, and nothing is underlined.
func (l *Lexer[T]) String() string {
	var b strings.Builder
	if name, ok := l.source.Name(); ok {
		fmt.Fprintf(&b, "%s: ", name)
	}
	fmt.Fprintf(&b, "cursor at %s", l.cursor)
	if l.buffer != nil {
		fmt.Fprintf(&b, ", peeked token ending at %s", l.buffer.next)
	}
	return b.String()
}
