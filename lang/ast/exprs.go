package ast

import "github.com/mna/cminic/lang/token"

type (
	// IntegerLiteral is a decimal integer constant.
	IntegerLiteral struct {
		exprBase
		Start token.Position
		Value int64
	}

	// FloatingLiteral is a decimal floating-point constant.
	FloatingLiteral struct {
		exprBase
		Start token.Position
		Value float64
	}

	// DeclRefExpr references a previously declared name: a variable when
	// IsCall is false, or the callee of a CallExpr when IsCall is true.
	DeclRefExpr struct {
		exprBase
		Start  token.Position
		Name   string
		IsCall bool
	}

	// CastExpr is a type cast, semantically identity at this stage of the
	// pipeline (spec.md §4.3: "Cast is semantically identity at this
	// stage").
	CastExpr struct {
		exprBase
		Start      token.Position
		TargetType string
		Sub        Expr
	}

	// BinaryOperator is a binary expression lhs Kind rhs.
	BinaryOperator struct {
		exprBase
		Kind     token.Kind // PLUS, MINUS, STAR, SLASH, LESS, LE, GREATER, GE, EQUAL
		Lhs, Rhs Expr
	}

	// UnaryOperator is a unary expression Kind sub (only MINUS is
	// meaningful in this dialect: numeric negation).
	UnaryOperator struct {
		exprBase
		Kind token.Kind
		Sub  Expr
	}

	// ParenExpr is a parenthesized sub-expression.
	ParenExpr struct {
		exprBase
		Lparen, Rparen token.Position
		Sub            Expr
	}

	// CallExpr calls CalleeName with Args in left-to-right order.
	CallExpr struct {
		exprBase
		Start      token.Position
		CalleeName string
		Args       []Expr
		End        token.Position
	}
)

func (*IntegerLiteral) exprNode()  {}
func (*FloatingLiteral) exprNode() {}
func (*DeclRefExpr) exprNode()     {}
func (*CastExpr) exprNode()        {}
func (*BinaryOperator) exprNode()  {}
func (*UnaryOperator) exprNode()   {}
func (*ParenExpr) exprNode()       {}
func (*CallExpr) exprNode()        {}

func (n *IntegerLiteral) Span() (token.Position, token.Position)  { return n.Start, n.Start }
func (n *IntegerLiteral) Walk(Visitor)                            {}
func (n *FloatingLiteral) Span() (token.Position, token.Position) { return n.Start, n.Start }
func (n *FloatingLiteral) Walk(Visitor)                           {}
func (n *DeclRefExpr) Span() (token.Position, token.Position)     { return n.Start, n.Start }
func (n *DeclRefExpr) Walk(Visitor)                               {}

func (n *CastExpr) Span() (token.Position, token.Position) {
	_, end := n.Sub.Span()
	return n.Start, end
}
func (n *CastExpr) Walk(v Visitor) { Walk(v, n.Sub) }

func (n *BinaryOperator) Span() (token.Position, token.Position) {
	start, _ := n.Lhs.Span()
	_, end := n.Rhs.Span()
	return start, end
}
func (n *BinaryOperator) Walk(v Visitor) {
	Walk(v, n.Lhs)
	Walk(v, n.Rhs)
}

func (n *UnaryOperator) Span() (token.Position, token.Position) {
	start, end := n.Sub.Span()
	return start, end
}
func (n *UnaryOperator) Walk(v Visitor) { Walk(v, n.Sub) }

func (n *ParenExpr) Span() (token.Position, token.Position) { return n.Lparen, n.Rparen }
func (n *ParenExpr) Walk(v Visitor)                         { Walk(v, n.Sub) }

func (n *CallExpr) Span() (token.Position, token.Position) { return n.Start, n.End }
func (n *CallExpr) Walk(v Visitor) {
	for _, a := range n.Args {
		Walk(v, a)
	}
}
