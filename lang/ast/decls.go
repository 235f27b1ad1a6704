package ast

import "github.com/mna/cminic/lang/token"

type (
	// TranslationUnit is the root node: an ordered list of top-level
	// declarations.
	TranslationUnit struct {
		Decls []Decl
	}

	// VarDecl declares a variable of Type named Name, optionally with an
	// initializer expression.
	VarDecl struct {
		Start       token.Position
		Name        string
		Type        string // one of "int", "float", "char", "void"
		Initialized bool
		Init        Expr // nil unless Initialized
	}

	// Param is a single function parameter.
	Param struct {
		Start token.Position
		Name  string
		Type  string
	}

	// FunctionDecl declares (Body == nil, a forward declaration) or defines
	// (Body != nil) a function.
	FunctionDecl struct {
		Start      token.Position
		Name       string
		ReturnType string // "void", "int" or "float"
		Params     []*Param
		Body       *CompoundStmt // nil for a forward declaration
		End        token.Position
	}
)

func (*TranslationUnit) declNode() {}
func (*VarDecl) declNode()         {}
func (*FunctionDecl) declNode()    {}

func (n *TranslationUnit) Span() (token.Position, token.Position) {
	if len(n.Decls) == 0 {
		return token.Position{}, token.Position{}
	}
	start, _ := n.Decls[0].Span()
	_, end := n.Decls[len(n.Decls)-1].Span()
	return start, end
}
func (n *TranslationUnit) Walk(v Visitor) {
	for _, d := range n.Decls {
		Walk(v, d)
	}
}

func (n *VarDecl) Span() (token.Position, token.Position) {
	if n.Init != nil {
		_, end := n.Init.Span()
		return n.Start, end
	}
	return n.Start, n.Start
}
func (n *VarDecl) Walk(v Visitor) {
	if n.Init != nil {
		Walk(v, n.Init)
	}
}

func (n *FunctionDecl) Span() (token.Position, token.Position) {
	if n.Body != nil {
		_, end := n.Body.Span()
		return n.Start, end
	}
	return n.Start, n.End
}
func (n *FunctionDecl) Walk(v Visitor) {
	if n.Body != nil {
		Walk(v, n.Body)
	}
}
