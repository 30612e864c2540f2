package parse

import "github.com/tephra-go/tephra/internal/lexer"

// Implies attempts left via Maybe; if left produced no value, the overall
// result is a value-less success without attempting right. If left
// succeeded, right is required to succeed too (its failure propagates).
func Implies[Tok, L, R any](left Parser[Tok, L], right Parser[Tok, R]) Parser[Tok, Pair[*L, *R]] {
	return func(l *lexer.Lexer[Tok]) (Success[Tok, Pair[*L, *R]], error) {
		ls, err := Maybe(left)(l)
		if err != nil {
			// Maybe never fails.
			return Success[Tok, Pair[*L, *R]]{}, err
		}
		if ls.Value == nil {
			return Success[Tok, Pair[*L, *R]]{Lexer: ls.Lexer, Value: Pair[*L, *R]{Left: nil, Right: nil}}, nil
		}
		rs, err := right(ls.Lexer)
		if err != nil {
			return Success[Tok, Pair[*L, *R]]{}, err
		}
		return Success[Tok, Pair[*L, *R]]{Lexer: rs.Lexer, Value: Pair[*L, *R]{Left: ls.Value, Right: &rs.Value}}, nil
	}
}

// Antecedent projects an Implies result to left's value.
func Antecedent[Tok, L, R any](left Parser[Tok, L], right Parser[Tok, R]) Parser[Tok, *L] {
	p := Implies(left, right)
	return func(l *lexer.Lexer[Tok]) (Success[Tok, *L], error) {
		s, err := p(l)
		if err != nil {
			return Success[Tok, *L]{}, err
		}
		return Success[Tok, *L]{Lexer: s.Lexer, Value: s.Value.Left}, nil
	}
}

// Consequent projects an Implies result to right's value.
func Consequent[Tok, L, R any](left Parser[Tok, L], right Parser[Tok, R]) Parser[Tok, *R] {
	p := Implies(left, right)
	return func(l *lexer.Lexer[Tok]) (Success[Tok, *R], error) {
		s, err := p(l)
		if err != nil {
			return Success[Tok, *R]{}, err
		}
		return Success[Tok, *R]{Lexer: s.Lexer, Value: s.Value.Right}, nil
	}
}

// Cond attempts p only if pred is true, otherwise succeeding with no
// value and no consumption.
func Cond[Tok, V any](pred bool, p Parser[Tok, V]) Parser[Tok, *V] {
	return func(l *lexer.Lexer[Tok]) (Success[Tok, *V], error) {
		if !pred {
			return Success[Tok, *V]{Lexer: l}, nil
		}
		s, err := p(l)
		if err != nil {
			return Success[Tok, *V]{}, err
		}
		v := s.Value
		return Success[Tok, *V]{Lexer: s.Lexer, Value: &v}, nil
	}
}

// CondImplies runs left, then requires right to succeed only if pred,
// applied to left's value, is true.
func CondImplies[Tok, L, R any](left Parser[Tok, L], pred func(L) bool, right Parser[Tok, R]) Parser[Tok, Pair[L, *R]] {
	return func(l *lexer.Lexer[Tok]) (Success[Tok, Pair[L, *R]], error) {
		ls, err := left(l)
		if err != nil {
			return Success[Tok, Pair[L, *R]]{}, err
		}
		if !pred(ls.Value) {
			return Success[Tok, Pair[L, *R]]{Lexer: ls.Lexer, Value: Pair[L, *R]{Left: ls.Value}}, nil
		}
		rs, err := right(ls.Lexer)
		if err != nil {
			return Success[Tok, Pair[L, *R]]{}, err
		}
		return Success[Tok, Pair[L, *R]]{Lexer: rs.Lexer, Value: Pair[L, *R]{Left: ls.Value, Right: &rs.Value}}, nil
	}
}
