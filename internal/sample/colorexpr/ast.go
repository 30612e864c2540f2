package colorexpr

import "github.com/tephra-go/tephra/internal/span"

// Expr is the color-expression grammar's untyped syntax tree: a single
// sum type with one variant per production, the way AstExpr's call/unary/
// primary layers were flattened in the grammar this package adapts.
// Consumers recover a richer typed meaning from it via the Match* helpers
// in match.go rather than via exhaustive type switches everywhere.
type Expr struct {
	Kind ExprKind
	Span span.Span

	// Ident, HexColor: the literal text.
	Text string
	// Uint, Float: the parsed numeric value.
	Number float64
	// Negate: the negated operand.
	Operand *Expr
	// Call: the callee name and argument list.
	Callee string
	Args   []Expr
}

// ExprKind discriminates Expr's variants.
type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprUint
	ExprFloat
	ExprHexColor
	ExprNegate
	ExprCall
)

func (k ExprKind) String() string {
	switch k {
	case ExprIdent:
		return "identifier"
	case ExprUint:
		return "integer"
	case ExprFloat:
		return "float"
	case ExprHexColor:
		return "hex color"
	case ExprNegate:
		return "negation"
	default:
		return "call"
	}
}
