package ast

import "github.com/mna/cminic/lang/token"

type (
	// CompoundStmt is a brace-delimited sequence of statements; it
	// introduces a new lexical scope.
	CompoundStmt struct {
		Lbrace, Rbrace token.Position
		Body           []Stmt
	}

	// DeclStmt wraps one or more declarations appearing as a statement.
	DeclStmt struct {
		Decls []*VarDecl
	}

	// IfStmt is a conditional with an optional else branch.
	IfStmt struct {
		Start      token.Position
		Cond       Expr
		Then       Stmt
		Else       Stmt // nil if absent
	}

	// WhileStmt is a pre-tested loop.
	WhileStmt struct {
		Start token.Position
		Cond  Expr
		Body  Stmt
	}

	// ReturnStmt returns from the enclosing function, with an optional
	// value.
	ReturnStmt struct {
		Start token.Position
		Value Expr // nil for a bare "return;"
	}

	// ValueStmt is an expression used as a statement (e.g. a bare call).
	ValueStmt struct {
		Expr Expr
	}
)

func (*CompoundStmt) stmtNode() {}
func (*DeclStmt) stmtNode()     {}
func (*IfStmt) stmtNode()       {}
func (*WhileStmt) stmtNode()    {}
func (*ReturnStmt) stmtNode()   {}
func (*ValueStmt) stmtNode()    {}

func (n *CompoundStmt) Span() (token.Position, token.Position) { return n.Lbrace, n.Rbrace }
func (n *CompoundStmt) Walk(v Visitor) {
	for _, s := range n.Body {
		Walk(v, s)
	}
}

func (n *DeclStmt) Span() (token.Position, token.Position) {
	if len(n.Decls) == 0 {
		return token.Position{}, token.Position{}
	}
	start, _ := n.Decls[0].Span()
	_, end := n.Decls[len(n.Decls)-1].Span()
	return start, end
}
func (n *DeclStmt) Walk(v Visitor) {
	for _, d := range n.Decls {
		Walk(v, d)
	}
}

func (n *IfStmt) Span() (token.Position, token.Position) {
	if n.Else != nil {
		_, end := n.Else.Span()
		return n.Start, end
	}
	_, end := n.Then.Span()
	return n.Start, end
}
func (n *IfStmt) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Then)
	if n.Else != nil {
		Walk(v, n.Else)
	}
}

func (n *WhileStmt) Span() (token.Position, token.Position) {
	_, end := n.Body.Span()
	return n.Start, end
}
func (n *WhileStmt) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Body)
}

func (n *ReturnStmt) Span() (token.Position, token.Position) {
	if n.Value != nil {
		_, end := n.Value.Span()
		return n.Start, end
	}
	return n.Start, n.Start
}
func (n *ReturnStmt) Walk(v Visitor) {
	if n.Value != nil {
		Walk(v, n.Value)
	}
}

func (n *ValueStmt) Span() (token.Position, token.Position) { return n.Expr.Span() }
func (n *ValueStmt) Walk(v Visitor)                         { Walk(v, n.Expr) }
