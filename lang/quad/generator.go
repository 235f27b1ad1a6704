// Package quad implements the quaternion (three-address code) IR generator
// of spec.md §4.3: it walks a typed AST, resolves names over a chained
// scope stack, synthesizes compiler temporaries, and emits quaternions with
// tagged operand variants.
package quad

import (
	"fmt"
	"strings"

	"github.com/mna/cminic/lang/ast"
	"github.com/mna/cminic/lang/diagnostics"
	"github.com/mna/cminic/lang/scope"
	"github.com/mna/cminic/lang/token"
)

// frame pairs an active scope with the running allocation width spec.md §3
// assigns to it; lang/scope stays domain-agnostic, so the width bookkeeping
// lives here rather than in the scope package itself.
type frame struct {
	sc    *scope.Scope[*Entry]
	width int
}

// Generator produces quaternions and a function table from a translation
// unit. Unlike the reference's process-wide singleton (spec.md §9's
// documented design smell), a Generator is an ordinary value: construct one
// per compilation with New and discard it when done.
type Generator struct {
	quads   []Quad
	funcs   []FuncEntry
	diags   diagnostics.List
	tempSeq int
	frames  []*frame
	width   int
}

// New constructs an empty Generator. Disassemble pads fields to 10
// columns by default; call SetWidth to match internal/config's
// QuaternionWidth setting.
func New() *Generator { return &Generator{width: 10} }

// SetWidth overrides the column width Disassemble pads each field to. A
// non-positive width is ignored, leaving the current width (10 unless set
// earlier) unchanged.
func (g *Generator) SetWidth(w int) {
	if w > 0 {
		g.width = w
	}
}

// Diagnostics returns the list of diagnostics accumulated by Generate.
func (g *Generator) Diagnostics() *diagnostics.List { return &g.diags }

// Quads returns the emitted quaternion list. Indices into it are stable:
// nothing in this package ever reorders or removes an emitted Quad.
func (g *Generator) Quads() []Quad { return g.quads }

// Funcs returns the function table in definition order.
func (g *Generator) Funcs() []FuncEntry { return g.funcs }

func typeWidth(t string) int {
	switch t {
	case "int", "float":
		return 4
	case "char":
		return 1
	default:
		return 0
	}
}

func (g *Generator) pushScope() {
	var sc *scope.Scope[*Entry]
	if len(g.frames) == 0 {
		sc = scope.New[*Entry]()
	} else {
		sc = g.frames[len(g.frames)-1].sc.Push()
	}
	g.frames = append(g.frames, &frame{sc: sc})
}

// popScope restores the enclosing scope as current. The Generator keeps no
// reference to the popped scope node afterwards, so exited scopes cannot be
// looked up again; only the Entry values that emitted quaternions point at
// outlive it.
func (g *Generator) popScope() {
	g.frames = g.frames[:len(g.frames)-1]
}

func (g *Generator) curFrame() *frame { return g.frames[len(g.frames)-1] }

// enter inserts a new entry into the current scope, failing on a
// same-scope duplicate (spec.md §4.3's "enter").
func (g *Generator) enter(name, typ string) (*Entry, bool) {
	f := g.curFrame()
	e := &Entry{Name: name, Type: typ, Offset: f.width}
	if _, ok := f.sc.Declare(name, e); !ok {
		return nil, false
	}
	f.width += typeWidth(typ)
	return e, true
}

// lookup walks the scope chain outward from the current scope.
func (g *Generator) lookup(name string) (*Entry, bool) {
	se, ok := g.curFrame().sc.Lookup(name)
	if !ok {
		return nil, false
	}
	return se.Payload, true
}

// newTemp allocates a fresh @T<id> entry with a globally monotonic id
// (spec.md §3's "every compiler-synthesized temporary has a unique name").
func (g *Generator) newTemp(typ string) *Entry {
	id := g.tempSeq
	g.tempSeq++
	name := fmt.Sprintf("@T%d", id)
	e, _ := g.enter(name, typ)
	return e
}

func (g *Generator) emit(op Op, a1, a2, result Operand) int {
	g.quads = append(g.quads, Quad{Op: op, Arg1: a1, Arg2: a2, Result: result})
	return len(g.quads) - 1
}

func (g *Generator) patch(idx, target int) {
	g.quads[idx].Result = CodeAddrOperand(target)
}

// Generate walks tu and emits quaternions. ok reports whether generation
// completed without a fatal diagnostic; err summarizes any fatal
// diagnostics raised along the way. Partial output before a failure is
// retained in Quads/Funcs, per spec.md §7.
func (g *Generator) Generate(tu *ast.TranslationUnit) (ok bool, err error) {
	g.pushScope()
	g.genDecls(tu.Decls)
	return !g.diags.HasFatal(), g.diags.Err()
}

func (g *Generator) genDecls(decls []ast.Decl) bool {
	for _, d := range decls {
		if !g.genDecl(d) {
			return false
		}
	}
	return true
}

func (g *Generator) genDecl(d ast.Decl) bool {
	switch n := d.(type) {
	case *ast.VarDecl:
		return g.genVarDecl(n)
	case *ast.FunctionDecl:
		return g.genFunctionDecl(n)
	default:
		g.diags.Add(diagnostics.InternalInvariant, token.Position{}, "unrecognized declaration node %T", d)
		return false
	}
}

func (g *Generator) genVarDecl(n *ast.VarDecl) bool {
	e, ok := g.enter(n.Name, n.Type)
	if !ok {
		g.diags.Add(diagnostics.Redeclaration, n.Start, "redeclaration of %q in this scope", n.Name)
		return false
	}
	if n.Initialized && n.Init != nil {
		if !g.genExpr(n.Init) {
			return false
		}
		initEntry, ok := g.lookup(n.Init.Place())
		if !ok {
			g.diags.Add(diagnostics.InternalInvariant, n.Start, "place %q not found after generating initializer of %q", n.Init.Place(), n.Name)
			return false
		}
		g.emit(OpAssign, EntryOperand(initEntry), Nil, EntryOperand(e))
	}
	return true
}

func (g *Generator) genFunctionDecl(n *ast.FunctionDecl) bool {
	for _, fe := range g.funcs {
		if fe.Name == n.Name {
			g.diags.Add(diagnostics.RedefinitionFunction, n.Start, "function %q already defined", n.Name)
			return false
		}
	}
	g.funcs = append(g.funcs, FuncEntry{Name: n.Name, EntryIndex: len(g.quads)})

	g.pushScope()
	defer g.popScope()

	for _, p := range n.Params {
		if _, ok := g.enter(p.Name, p.Type); !ok {
			g.diags.Add(diagnostics.Redeclaration, p.Start, "redeclaration of parameter %q", p.Name)
			return false
		}
	}
	if n.Body != nil {
		if !g.genStmt(n.Body) {
			return false
		}
	}
	return true
}

func (g *Generator) genStmt(s ast.Stmt) bool {
	switch n := s.(type) {
	case *ast.CompoundStmt:
		g.pushScope()
		defer g.popScope()
		for _, body := range n.Body {
			if !g.genStmt(body) {
				return false
			}
		}
		return true
	case *ast.DeclStmt:
		for _, vd := range n.Decls {
			if !g.genVarDecl(vd) {
				return false
			}
		}
		return true
	case *ast.IfStmt:
		return g.genIf(n)
	case *ast.WhileStmt:
		return g.genWhile(n)
	case *ast.ReturnStmt:
		return g.genReturn(n)
	case *ast.ValueStmt:
		return g.genExpr(n.Expr)
	default:
		g.diags.Add(diagnostics.InternalInvariant, token.Position{}, "unrecognized statement node %T", s)
		return false
	}
}

func (g *Generator) genIf(n *ast.IfStmt) bool {
	if !g.genExpr(n.Cond) {
		return false
	}
	condEntry, ok := g.lookup(n.Cond.Place())
	if !ok {
		g.diags.Add(diagnostics.InternalInvariant, n.Start, "place %q not found for if condition", n.Cond.Place())
		return false
	}
	ifFalseIdx := g.emit(OpIfFalse, EntryOperand(condEntry), Nil, CodeAddrOperand(-1))

	if !g.genStmt(n.Then) {
		return false
	}
	if n.Else != nil {
		jmpIdx := g.emit(OpJmp, Nil, Nil, CodeAddrOperand(-1))
		g.patch(ifFalseIdx, len(g.quads))
		if !g.genStmt(n.Else) {
			return false
		}
		g.patch(jmpIdx, len(g.quads))
	} else {
		g.patch(ifFalseIdx, len(g.quads))
	}
	return true
}

func (g *Generator) genWhile(n *ast.WhileStmt) bool {
	loopStart := len(g.quads)
	if !g.genExpr(n.Cond) {
		return false
	}
	condEntry, ok := g.lookup(n.Cond.Place())
	if !ok {
		g.diags.Add(diagnostics.InternalInvariant, n.Start, "place %q not found for while condition", n.Cond.Place())
		return false
	}
	ifFalseIdx := g.emit(OpIfFalse, EntryOperand(condEntry), Nil, CodeAddrOperand(-1))
	if !g.genStmt(n.Body) {
		return false
	}
	g.emit(OpJmp, Nil, Nil, CodeAddrOperand(loopStart))
	g.patch(ifFalseIdx, len(g.quads))
	return true
}

func (g *Generator) genReturn(n *ast.ReturnStmt) bool {
	if n.Value == nil {
		g.emit(OpReturn, Nil, Nil, Nil)
		return true
	}
	if !g.genExpr(n.Value) {
		return false
	}
	valEntry, ok := g.lookup(n.Value.Place())
	if !ok {
		g.diags.Add(diagnostics.InternalInvariant, n.Start, "place %q not found for return value", n.Value.Place())
		return false
	}
	g.emit(OpReturn, EntryOperand(valEntry), Nil, Nil)
	return true
}

func (g *Generator) genExpr(e ast.Expr) bool {
	switch n := e.(type) {
	case *ast.IntegerLiteral:
		t := g.newTemp("int")
		g.emit(OpAssign, IntValueOperand(n.Value), Nil, EntryOperand(t))
		n.SetPlace(t.Name)
		return true

	case *ast.FloatingLiteral:
		t := g.newTemp("float")
		g.emit(OpAssign, FloatValueOperand(n.Value), Nil, EntryOperand(t))
		n.SetPlace(t.Name)
		return true

	case *ast.DeclRefExpr:
		entry, ok := g.lookup(n.Name)
		if !ok {
			g.diags.Add(diagnostics.Undeclared, n.Start, "undeclared identifier %q", n.Name)
			return false
		}
		n.SetPlace(entry.Name)
		return true

	case *ast.CastExpr:
		if !g.genExpr(n.Sub) {
			return false
		}
		n.SetPlace(n.Sub.Place())
		return true

	case *ast.ParenExpr:
		if !g.genExpr(n.Sub) {
			return false
		}
		n.SetPlace(n.Sub.Place())
		return true

	case *ast.BinaryOperator:
		return g.genBinaryOperator(n)

	case *ast.UnaryOperator:
		return g.genUnaryOperator(n)

	case *ast.CallExpr:
		return g.genCallExpr(n)

	default:
		g.diags.Add(diagnostics.InternalInvariant, token.Position{}, "unrecognized expression node %T", e)
		return false
	}
}

func binaryOp(k token.Kind) Op {
	switch k {
	case token.PLUS:
		return OpAdd
	case token.MINUS:
		return OpSub
	case token.STAR:
		return OpMul
	case token.SLASH:
		return OpDiv
	case token.LESS:
		return OpLess
	case token.LE:
		return OpLessEqual
	case token.GREATER:
		return OpGreater
	case token.GE:
		return OpGreaterEqual
	case token.EQUAL:
		return OpEqual
	default:
		return OpInvalid
	}
}

func (g *Generator) genBinaryOperator(n *ast.BinaryOperator) bool {
	if !g.genExpr(n.Lhs) || !g.genExpr(n.Rhs) {
		return false
	}
	lhsEntry, lok := g.lookup(n.Lhs.Place())
	rhsEntry, rok := g.lookup(n.Rhs.Place())
	if !lok || !rok {
		g.diags.Add(diagnostics.InternalInvariant, token.Position{}, "operand place not found for binary operator")
		return false
	}
	// spec.md §4.3 literally calls for an int temp regardless of operand
	// type; preserved as specified rather than widened to the operand type.
	t := g.newTemp("int")
	g.emit(binaryOp(n.Kind), EntryOperand(lhsEntry), EntryOperand(rhsEntry), EntryOperand(t))
	n.SetPlace(t.Name)
	return true
}

func (g *Generator) genUnaryOperator(n *ast.UnaryOperator) bool {
	if !g.genExpr(n.Sub) {
		return false
	}
	subEntry, ok := g.lookup(n.Sub.Place())
	if !ok {
		g.diags.Add(diagnostics.InternalInvariant, token.Position{}, "operand place not found for unary operator")
		return false
	}
	var op Op
	switch n.Kind {
	case token.MINUS:
		op = OpNeg
	default:
		g.diags.Add(diagnostics.UnsupportedType, token.Position{}, "unsupported unary operator %s", n.Kind)
		return false
	}
	t := g.newTemp("int")
	g.emit(op, EntryOperand(subEntry), Nil, EntryOperand(t))
	n.SetPlace(t.Name)
	return true
}

func (g *Generator) genCallExpr(n *ast.CallExpr) bool {
	for _, a := range n.Args {
		if !g.genExpr(a) {
			return false
		}
		argEntry, ok := g.lookup(a.Place())
		if !ok {
			g.diags.Add(diagnostics.InternalInvariant, n.Start, "argument place not found in call to %q", n.CalleeName)
			return false
		}
		g.emit(OpParam, EntryOperand(argEntry), Nil, Nil)
	}
	callee := &Entry{Name: n.CalleeName, Type: "function"}
	t := g.newTemp("int")
	g.emit(OpCall, EntryOperand(callee), IntValueOperand(int64(len(n.Args))), EntryOperand(t))
	n.SetPlace(t.Name)
	return true
}

// Disassemble renders the quaternion list in the text format of spec.md §6:
// one "%4d: (%-10s, %-10s, %-10s, %-10s)" record per line, with each
// function's entry index preceded by a "<name>:" annotation line.
func (g *Generator) Disassemble() string {
	funcAt := make(map[int]string, len(g.funcs))
	for _, fe := range g.funcs {
		funcAt[fe.EntryIndex] = fe.Name
	}
	format := fmt.Sprintf("%%4d: (%%-%[1]ds, %%-%[1]ds, %%-%[1]ds, %%-%[1]ds)\n", g.width)
	var b strings.Builder
	for i, q := range g.quads {
		if name, ok := funcAt[i]; ok {
			fmt.Fprintf(&b, "%s:\n", name)
		}
		fmt.Fprintf(&b, format, i, q.Op.String(), q.Arg1.Name(), q.Arg2.Name(), q.Result.Name())
	}
	return b.String()
}
