// Package llir implements the low-level, SSA-style IR generator of spec.md
// §4.4: it lowers a typed AST into a structured Module of Functions, each
// with typed stack allocations gathered into its entry block and a
// dedicated return block holding the function's single ret instruction.
package llir

import (
	"os"

	"github.com/mna/cminic/lang/ast"
	"github.com/mna/cminic/lang/diagnostics"
	"github.com/mna/cminic/lang/scope"
	"github.com/mna/cminic/lang/token"
)

// Generator lowers a translation unit into a Module. Like lang/quad.Generator
// it is an ordinary value rather than the reference's process-wide
// singleton (spec.md §9).
type Generator struct {
	module *Module
	diags  diagnostics.List

	frames []*scope.Scope[*Alloca]

	// cur and curFn track the basic block and function currently receiving
	// emitted instructions; both are nil outside function body generation.
	cur   *BasicBlock
	curFn *Function
}

// New constructs a Generator producing a module named "LCC_LLVMIRGenerator",
// per spec.md §4.4.
func New() *Generator {
	return &Generator{module: &Module{Name: "LCC_LLVMIRGenerator"}}
}

// Module returns the module built so far.
func (g *Generator) Module() *Module { return g.module }

// Diagnostics returns the diagnostics accumulated by Generate.
func (g *Generator) Diagnostics() *diagnostics.List { return &g.diags }

func (g *Generator) pushScope() {
	var sc *scope.Scope[*Alloca]
	if len(g.frames) == 0 {
		sc = scope.New[*Alloca]()
	} else {
		sc = g.frames[len(g.frames)-1].Push()
	}
	g.frames = append(g.frames, sc)
}

func (g *Generator) popScope() {
	g.frames = g.frames[:len(g.frames)-1]
}

func (g *Generator) curScope() *scope.Scope[*Alloca] { return g.frames[len(g.frames)-1] }

func (g *Generator) bind(name string, a *Alloca) bool {
	_, ok := g.curScope().Declare(name, a)
	return ok
}

func (g *Generator) lookup(name string) (*Alloca, bool) {
	e, ok := g.curScope().Lookup(name)
	if !ok {
		return nil, false
	}
	return e.Payload, true
}

// Generate lowers tu into g.Module(). ok reports whether generation
// completed without a fatal diagnostic.
func (g *Generator) Generate(tu *ast.TranslationUnit) (ok bool, err error) {
	g.pushScope()
	for _, d := range tu.Decls {
		if !g.genDecl(d) {
			break
		}
	}
	return !g.diags.HasFatal(), g.diags.Err()
}

func (g *Generator) genDecl(d ast.Decl) bool {
	switch n := d.(type) {
	case *ast.FunctionDecl:
		return g.genFunctionDecl(n)
	case *ast.VarDecl:
		return g.genVarDecl(n)
	default:
		g.diags.Add(diagnostics.InternalInvariant, token.Position{}, "unrecognized declaration node %T", d)
		return false
	}
}

// genFunctionDecl implements the ten lowering steps of spec.md §4.4.
func (g *Generator) genFunctionDecl(n *ast.FunctionDecl) bool {
	retType, ok := returnTypeFromSource(n.ReturnType)
	if !ok {
		g.diags.Add(diagnostics.UnsupportedType, n.Start, "unsupported return type %q for function %q", n.ReturnType, n.Name)
		return false
	}

	params := make([]Param, len(n.Params))
	for i, p := range n.Params {
		pt, ok := typeFromSource(p.Type)
		if !ok {
			g.diags.Add(diagnostics.UnsupportedType, p.Start, "unsupported parameter type %q for %q", p.Type, p.Name)
			return false
		}
		params[i] = Param{Name: p.Name, Type: pt}
	}

	fn := g.module.findFunc(n.Name)
	if fn != nil {
		if !fn.Declared {
			g.diags.Add(diagnostics.RedefinitionFunction, n.Start, "redefinition of function %q", n.Name)
			return false
		}
		if fn.ReturnType != retType {
			g.diags.Add(diagnostics.SignatureMismatch, n.Start, "function %q redeclared with a different return type", n.Name)
			return false
		}
		// A forward declaration with an empty parameter list accepts a
		// definition of any arity; a non-empty one must match exactly.
		if len(fn.Params) != 0 && len(fn.Params) != len(params) {
			g.diags.Add(diagnostics.SignatureMismatch, n.Start, "function %q definition doesn't match its declaration's arity", n.Name)
			return false
		}
		fn.Params = params
	} else {
		fn = &Function{Name: n.Name, ReturnType: retType, Params: params}
		g.module.Funcs = append(g.module.Funcs, fn)
	}
	fn.Declared = n.Body == nil

	if n.Body == nil {
		return true // forward declaration: step 6
	}

	entry := &BasicBlock{Name: "entry"}
	ret := &BasicBlock{Name: "return"}
	fn.Entry, fn.Return = entry, ret
	fn.Blocks = []*BasicBlock{entry, ret}

	if retType != TypeVoid {
		slot := &Alloca{Name: fn.newAllocaName("retval"), Type: retType}
		fn.ReturnSlot = slot
		entry.emit("%s = alloca %s", slot.Name, slot.Type)
		retVal := "0"
		if retType == TypeF32 {
			retVal = "0.0"
		}
		entry.emit("store %s %s, %s", slot.Type, retVal, slot.Name)
		ret.emit("ret %s %s", slot.Type, slot.Name)
	} else {
		ret.emit("ret void")
	}

	prevFn, prevCur := g.curFn, g.cur
	g.curFn, g.cur = fn, entry
	g.pushScope()

	for _, p := range fn.Params {
		slot := &Alloca{Name: fn.newAllocaName(p.Name), Type: p.Type}
		entry.emit("%s = alloca %s", slot.Name, slot.Type)
		entry.emit("store %s %%%s, %s", slot.Type, p.Name, slot.Name)
		if !g.bind(p.Name, slot) {
			g.diags.Add(diagnostics.Redeclaration, n.Start, "duplicate parameter %q", p.Name)
			g.popScope()
			g.curFn, g.cur = prevFn, prevCur
			return false
		}
	}

	ok = g.genStmt(n.Body)
	g.cur.emit("br label %%%s", ret.Name)

	g.popScope()
	g.curFn, g.cur = prevFn, prevCur
	return ok
}

// genVarDecl implements spec.md §4.4's "Variable lowering".
func (g *Generator) genVarDecl(n *ast.VarDecl) bool {
	if g.cur != nil && g.curFn != nil {
		irType, ok := typeFromSource(n.Type)
		if !ok {
			g.diags.Add(diagnostics.UnsupportedType, n.Start, "unsupported local variable type %q", n.Type)
			return false
		}
		slot := &Alloca{Name: g.curFn.newAllocaName(n.Name), Type: irType}
		g.curFn.Entry.emit("%s = alloca %s", slot.Name, slot.Type)
		if !g.bind(n.Name, slot) {
			g.diags.Add(diagnostics.Redeclaration, n.Start, "redeclaration of %q in this scope", n.Name)
			return false
		}
		if n.Initialized && n.Init != nil {
			val, ok := g.genExpr(n.Init)
			if !ok {
				return false
			}
			if val != "" {
				g.cur.emit("store %s %s, %s", slot.Type, val, slot.Name)
			}
		}
		return true
	}

	if n.Type != "int" {
		g.diags.Add(diagnostics.UnsupportedType, n.Start, "unsupported global variable type %q (only int is supported)", n.Type)
		return false
	}
	if g.module.findGlobal(n.Name) != nil {
		g.diags.Add(diagnostics.Redeclaration, n.Start, "duplicate global %q", n.Name)
		return false
	}
	g.module.Globals = append(g.module.Globals, &Global{Name: n.Name, Type: TypeI32})
	return true
}

func (g *Generator) genStmt(s ast.Stmt) bool {
	switch n := s.(type) {
	case *ast.CompoundStmt:
		g.pushScope()
		defer g.popScope()
		for _, stmt := range n.Body {
			if !g.genStmt(stmt) {
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
	case *ast.IfStmt, *ast.WhileStmt, *ast.ReturnStmt, *ast.ValueStmt:
		// Recognized but unimplemented per spec.md §4.4's explicit stub
		// set: return success without emitting anything. The function's
		// single exit path is already wired through the return block
		// created in genFunctionDecl, independent of these nodes.
		return true
	default:
		g.diags.Add(diagnostics.InternalInvariant, token.Position{}, "unrecognized statement node %T", s)
		return false
	}
}

// genExpr implements spec.md §4.4's "Literal lowering" for the two literal
// node kinds, and the explicit stub set for every other expression kind
// (DeclRefExpr, CastExpr, BinaryOperator, UnaryOperator, ParenExpr,
// CallExpr): ok is true and value is "" for a stub, meaning the caller
// recognizes the node but has no concrete IR value to consume.
func (g *Generator) genExpr(e ast.Expr) (value string, ok bool) {
	switch n := e.(type) {
	case *ast.IntegerLiteral:
		return itoa(n.Value), true
	case *ast.FloatingLiteral:
		return ftoa(n.Value), true
	case *ast.DeclRefExpr, *ast.CastExpr, *ast.BinaryOperator, *ast.UnaryOperator, *ast.ParenExpr, *ast.CallExpr:
		return "", true
	default:
		g.diags.Add(diagnostics.InternalInvariant, token.Position{}, "unrecognized expression node %T", e)
		return "", false
	}
}

// Dump writes the module's text representation to path.
func (g *Generator) Dump(path string) error {
	return os.WriteFile(path, []byte(g.module.String()), 0o644)
}

// Print writes the module's text representation to stdout.
func (g *Generator) Print() { g.module.Print() }
