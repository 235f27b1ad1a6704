package llir

import (
	"fmt"
	"strings"
)

// Alloca is a named, typed stack slot: the payload stored in lang/scope for
// this generator, per spec.md §4.4 ("the stored payload is an IR allocation
// handle").
type Alloca struct {
	Name string
	Type Type
}

// Param is one function parameter, already lowered to its IR type.
type Param struct {
	Name string
	Type Type
}

// Global is a module-level variable. Only int globals are supported,
// always zero-initialized with external linkage, per spec.md §4.4's
// "Variable lowering".
type Global struct {
	Name string
	Type Type
}

// BasicBlock is an ordered list of pre-rendered IR instruction lines. The
// textual instruction format is this generator's own choice: spec.md §6
// explicitly leaves low-level IR text compatibility to the consuming
// backend, not to this spec.
type BasicBlock struct {
	Name   string
	Instrs []string
}

func (b *BasicBlock) emit(format string, args ...any) {
	b.Instrs = append(b.Instrs, fmt.Sprintf(format, args...))
}

// Function is one entry in a Module: a return type, lowered parameters, an
// entry block holding every stack allocation regardless of where the
// source declaration appears, and a dedicated return block holding the
// function's single ret instruction.
type Function struct {
	Name       string
	ReturnType Type
	Params     []Param

	// Declared is true when this Function has no body yet (a forward
	// declaration per spec.md §4.4 step 6).
	Declared bool

	Entry      *BasicBlock
	Return     *BasicBlock
	ReturnSlot *Alloca // nil for a void return type
	Blocks     []*BasicBlock

	allocaSeq int
}

// newAllocaName returns a fresh, function-unique stack slot name derived
// from hint, always suffixed with the function's running allocation count.
func (f *Function) newAllocaName(hint string) string {
	f.allocaSeq++
	return fmt.Sprintf("%%%s.%d", hint, f.allocaSeq)
}

func (f *Function) String() string {
	var b strings.Builder
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = fmt.Sprintf("%s %%%s", p.Type, p.Name)
	}
	if f.Declared {
		fmt.Fprintf(&b, "declare external %s @%s(%s)\n", f.ReturnType, f.Name, strings.Join(params, ", "))
		return b.String()
	}
	fmt.Fprintf(&b, "define external %s @%s(%s) {\n", f.ReturnType, f.Name, strings.Join(params, ", "))
	for _, blk := range f.Blocks {
		fmt.Fprintf(&b, "%s:\n", blk.Name)
		for _, instr := range blk.Instrs {
			fmt.Fprintf(&b, "  %s\n", instr)
		}
	}
	b.WriteString("}\n")
	return b.String()
}

// Module is the named container of function definitions produced by
// Generate, spec.md §4.4's "LCC_LLVMIRGenerator".
type Module struct {
	Name    string
	Funcs   []*Function
	Globals []*Global
}

func (m *Module) findFunc(name string) *Function {
	for _, f := range m.Funcs {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func (m *Module) findGlobal(name string) *Global {
	for _, g := range m.Globals {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// String renders the whole module as text, globals first in declaration
// order, then every function.
func (m *Module) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "; module %s\n", m.Name)
	for _, g := range m.Globals {
		fmt.Fprintf(&b, "@%s = global %s zeroinitializer, external\n", g.Name, g.Type)
	}
	for _, f := range m.Funcs {
		b.WriteString(f.String())
	}
	return b.String()
}

// Print writes the module's text representation to stdout.
func (m *Module) Print() { fmt.Print(m.String()) }
