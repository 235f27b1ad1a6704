// Package ast defines the abstract syntax tree node families of spec.md §3:
// declarations, expressions and statements, behind a common Node interface
// with a Visitor-based Walk, and the pair of "generate_ir(target)"
// capabilities (quaternion and low-level IR) that the IR generators
// implement as external, match-driven visitors rather than virtual node
// methods (see spec.md §9: "best modeled as a tagged-variant AST with a
// match-driven visitor").
//
// Parsing is out of scope (spec.md §1): nothing in this package builds a
// tree from tokens. Callers (a parser, or a test) construct Node values
// directly.
package ast

import "github.com/mna/cminic/lang/token"

// Node is implemented by every AST node.
type Node interface {
	// Span reports the node's start and end source position.
	Span() (start, end token.Position)

	// Walk visits the node's direct children in left-to-right,
	// depth-first order.
	Walk(v Visitor)
}

// Decl is implemented by declaration nodes.
type Decl interface {
	Node
	declNode()
}

// Expr is implemented by expression nodes. Every expression carries a
// Place, set by the IR generators during code generation: the name (a
// symbol-table entry or compiler temporary) by which later instructions
// can reference this expression's computed value.
type Expr interface {
	Node
	exprNode()
	Place() string
	SetPlace(string)
}

// Stmt is implemented by statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// exprBase factors out the Place bookkeeping shared by every Expr.
type exprBase struct {
	place string
}

func (e *exprBase) Place() string     { return e.place }
func (e *exprBase) SetPlace(p string) { e.place = p }
