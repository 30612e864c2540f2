package parse

import "github.com/tephra-go/tephra/internal/lexer"

// Unbounded is passed as high to Intersperse/Repeat and their variants to
// mean "no upper bound".
const Unbounded = -1

// Intersperse parses one p, then sep-then-p repeatedly, between low and
// high times inclusive (high == Unbounded for no upper bound). Panics at
// construction if high is bounded and less than low. If high == 0, it
// returns an empty slice without attempting p at all. Below low
// successful parses, the last failure is propagated; at or above low, a
// failure of sep-then-p simply ends the repetition without consuming the
// failed attempt (the lexer reflects only the last committed success).
func Intersperse[Tok, V, S any](low, high int, p Parser[Tok, V], sep Parser[Tok, S]) Parser[Tok, []V] {
	if high != Unbounded && high < low {
		panic("parse.Intersperse: high < low")
	}
	return func(l *lexer.Lexer[Tok]) (Success[Tok, []V], error) {
		if high == 0 {
			return Success[Tok, []V]{Lexer: l, Value: nil}, nil
		}

		items := make([]V, 0, maxInt(low, 1))
		first, err := p(l)
		if err != nil {
			if low > 0 {
				return Success[Tok, []V]{}, err
			}
			return Success[Tok, []V]{Lexer: l, Value: nil}, nil
		}
		items = append(items, first.Value)
		cur := first.Lexer

		for high == Unbounded || len(items) < high {
			attempt := cur.Clone()
			_, err := sep(attempt)
			if err != nil {
				if len(items) < low {
					return Success[Tok, []V]{}, err
				}
				break
			}
			ps, err := p(attempt)
			if err != nil {
				if len(items) < low {
					return Success[Tok, []V]{}, err
				}
				break
			}
			items = append(items, ps.Value)
			cur = ps.Lexer
		}
		return Success[Tok, []V]{Lexer: cur, Value: items}, nil
	}
}

// Repeat parses p between low and high times with no separator.
func Repeat[Tok, V any](low, high int, p Parser[Tok, V]) Parser[Tok, []V] {
	return Intersperse(low, high, p, Empty[Tok])
}

// stopBefore wraps p so that, before each attempt, stop is tried from a
// clone; if stop succeeds the repetition ends without consuming it or
// attempting p.
func stopBefore[Tok, V, S any](p Parser[Tok, V], stop Parser[Tok, S]) Parser[Tok, V] {
	return func(l *lexer.Lexer[Tok]) (Success[Tok, V], error) {
		probe := l.Clone()
		if _, err := stop(probe); err == nil {
			return Success[Tok, V]{}, NewFailure[Tok](l, stopSentinel{})
		}
		return p(l)
	}
}

// stopSentinel is the internal error Intersperse/Repeat see when a _until
// variant's stop parser matches. Once at least `low` items have been
// parsed it simply ends the repetition; if stop matches before then, the
// failure carrying it is what the caller receives.
type stopSentinel struct{}

func (stopSentinel) Error() string { return "stop token reached" }

// IntersperseUntil is Intersperse, but before each item (including the
// first) it tries stop from a clone; a stop match ends the repetition
// (without consuming the stop token) exactly as running out of
// successful parses would.
func IntersperseUntil[Tok, V, S, U any](low, high int, p Parser[Tok, V], sep Parser[Tok, S], stop Parser[Tok, U]) Parser[Tok, []V] {
	return Intersperse(low, high, stopBefore(p, stop), sep)
}

// RepeatUntil is Repeat with a stop parser tested before each item.
func RepeatUntil[Tok, V, U any](low, high int, p Parser[Tok, V], stop Parser[Tok, U]) Parser[Tok, []V] {
	return Repeat(low, high, stopBefore(p, stop))
}

// RepeatCount is Repeat, projected to the number of items parsed.
func RepeatCount[Tok, V any](low, high int, p Parser[Tok, V]) Parser[Tok, int] {
	rep := Repeat(low, high, p)
	return func(l *lexer.Lexer[Tok]) (Success[Tok, int], error) {
		s, err := rep(l)
		if err != nil {
			return Success[Tok, int]{}, err
		}
		return Success[Tok, int]{Lexer: s.Lexer, Value: len(s.Value)}, nil
	}
}

// IntersperseCount is Intersperse, projected to the number of items parsed.
func IntersperseCount[Tok, V, S any](low, high int, p Parser[Tok, V], sep Parser[Tok, S]) Parser[Tok, int] {
	rep := Intersperse(low, high, p, sep)
	return func(l *lexer.Lexer[Tok]) (Success[Tok, int], error) {
		s, err := rep(l)
		if err != nil {
			return Success[Tok, int]{}, err
		}
		return Success[Tok, int]{Lexer: s.Lexer, Value: len(s.Value)}, nil
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
