package llir_test

import (
	"testing"

	"github.com/mna/cminic/internal/testsupport"
	"github.com/mna/cminic/lang/ast"
	"github.com/mna/cminic/lang/llir"
	"github.com/stretchr/testify/require"
)

func TestModuleStringGolden(t *testing.T) {
	tu := &ast.TranslationUnit{
		Decls: []ast.Decl{
			&ast.VarDecl{Name: "g", Type: "int"},
			&ast.FunctionDecl{
				Name:       "f",
				ReturnType: "void",
				Params:     []*ast.Param{{Name: "a", Type: "int"}},
				Body: &ast.CompoundStmt{
					Body: []ast.Stmt{
						&ast.DeclStmt{Decls: []*ast.VarDecl{{Name: "b", Type: "int"}}},
					},
				},
			},
		},
	}
	g := llir.New()
	ok, err := g.Generate(tu)
	require.True(t, ok)
	require.NoError(t, err)
	testsupport.DiffGolden(t, "testdata", "basic.ll.want", g.Module().String())
}

func TestForwardDeclarationThenDefinitionSucceeds(t *testing.T) {
	tu := &ast.TranslationUnit{
		Decls: []ast.Decl{
			&ast.FunctionDecl{Name: "f", ReturnType: "int"},
			&ast.FunctionDecl{
				Name:       "f",
				ReturnType: "int",
				Params:     []*ast.Param{{Name: "a", Type: "int"}},
				Body:       &ast.CompoundStmt{},
			},
		},
	}
	g := llir.New()
	ok, err := g.Generate(tu)
	require.True(t, ok)
	require.NoError(t, err)

	require.Len(t, g.Module().Funcs, 1)
	fn := g.Module().Funcs[0]
	require.Equal(t, "f", fn.Name)
	require.Len(t, fn.Params, 1)
	require.False(t, fn.Declared)
}

func TestThirdDeclarationSignatureMismatchFails(t *testing.T) {
	tu := &ast.TranslationUnit{
		Decls: []ast.Decl{
			&ast.FunctionDecl{Name: "f", ReturnType: "int"},
			&ast.FunctionDecl{
				Name:       "f",
				ReturnType: "int",
				Params:     []*ast.Param{{Name: "a", Type: "int"}},
				Body:       &ast.CompoundStmt{},
			},
			&ast.FunctionDecl{Name: "f", ReturnType: "float"},
		},
	}
	g := llir.New()
	ok, err := g.Generate(tu)
	require.False(t, ok)
	require.Error(t, err)
}

func TestArityMismatchFails(t *testing.T) {
	tu := &ast.TranslationUnit{
		Decls: []ast.Decl{
			&ast.FunctionDecl{
				Name:       "f",
				ReturnType: "int",
				Params:     []*ast.Param{{Name: "a", Type: "int"}, {Name: "b", Type: "int"}},
			},
			&ast.FunctionDecl{
				Name:       "f",
				ReturnType: "int",
				Params:     []*ast.Param{{Name: "a", Type: "int"}},
				Body:       &ast.CompoundStmt{},
			},
		},
	}
	g := llir.New()
	ok, err := g.Generate(tu)
	require.False(t, ok)
	require.Error(t, err)
}

func TestCharParameterLowersToFloat(t *testing.T) {
	tu := &ast.TranslationUnit{
		Decls: []ast.Decl{
			&ast.FunctionDecl{
				Name:       "f",
				ReturnType: "void",
				Params:     []*ast.Param{{Name: "c", Type: "char"}},
				Body:       &ast.CompoundStmt{},
			},
		},
	}
	g := llir.New()
	ok, err := g.Generate(tu)
	require.True(t, ok)
	require.NoError(t, err)
	require.Equal(t, llir.TypeF32, g.Module().Funcs[0].Params[0].Type)
}

func TestVoidFunctionHasNoReturnSlot(t *testing.T) {
	tu := &ast.TranslationUnit{
		Decls: []ast.Decl{
			&ast.FunctionDecl{Name: "f", ReturnType: "void", Body: &ast.CompoundStmt{}},
		},
	}
	g := llir.New()
	ok, _ := g.Generate(tu)
	require.True(t, ok)
	require.Nil(t, g.Module().Funcs[0].ReturnSlot)
	require.Contains(t, g.Module().Funcs[0].Return.Instrs[0], "ret void")
}

func TestNonVoidFunctionAllocatesReturnSlot(t *testing.T) {
	tu := &ast.TranslationUnit{
		Decls: []ast.Decl{
			&ast.FunctionDecl{Name: "f", ReturnType: "int", Body: &ast.CompoundStmt{}},
		},
	}
	g := llir.New()
	ok, _ := g.Generate(tu)
	require.True(t, ok)
	require.NotNil(t, g.Module().Funcs[0].ReturnSlot)
}

func TestBodyBranchesToReturnBlock(t *testing.T) {
	tu := &ast.TranslationUnit{
		Decls: []ast.Decl{
			&ast.FunctionDecl{Name: "f", ReturnType: "void", Body: &ast.CompoundStmt{}},
		},
	}
	g := llir.New()
	g.Generate(tu)
	entry := g.Module().Funcs[0].Entry
	require.Contains(t, entry.Instrs[len(entry.Instrs)-1], "br label %return")
}

func TestLocalVariableAllocatedInEntryBlock(t *testing.T) {
	tu := &ast.TranslationUnit{
		Decls: []ast.Decl{
			&ast.FunctionDecl{
				Name:       "f",
				ReturnType: "void",
				Body: &ast.CompoundStmt{
					Body: []ast.Stmt{
						&ast.DeclStmt{Decls: []*ast.VarDecl{
							{Name: "a", Type: "int", Initialized: true, Init: &ast.IntegerLiteral{Value: 5}},
						}},
					},
				},
			},
		},
	}
	g := llir.New()
	ok, err := g.Generate(tu)
	require.True(t, ok)
	require.NoError(t, err)

	entry := g.Module().Funcs[0].Entry
	found := false
	for _, instr := range entry.Instrs {
		if len(instr) > 0 && instr[0] == '%' {
			found = true
		}
	}
	require.True(t, found)
}

func TestDuplicateGlobalFails(t *testing.T) {
	tu := &ast.TranslationUnit{
		Decls: []ast.Decl{
			&ast.VarDecl{Name: "g", Type: "int"},
			&ast.VarDecl{Name: "g", Type: "int"},
		},
	}
	g := llir.New()
	ok, err := g.Generate(tu)
	require.False(t, ok)
	require.Error(t, err)
}

func TestGlobalNonIntTypeFails(t *testing.T) {
	tu := &ast.TranslationUnit{
		Decls: []ast.Decl{
			&ast.VarDecl{Name: "g", Type: "float"},
		},
	}
	g := llir.New()
	ok, _ := g.Generate(tu)
	require.False(t, ok)
}

func TestModuleNamedPerSpec(t *testing.T) {
	g := llir.New()
	require.Equal(t, "LCC_LLVMIRGenerator", g.Module().Name)
}

func TestModuleStringIncludesFunctionsAndGlobals(t *testing.T) {
	tu := &ast.TranslationUnit{
		Decls: []ast.Decl{
			&ast.VarDecl{Name: "g", Type: "int"},
			&ast.FunctionDecl{Name: "f", ReturnType: "void", Body: &ast.CompoundStmt{}},
		},
	}
	g := llir.New()
	g.Generate(tu)
	s := g.Module().String()
	require.Contains(t, s, "@g")
	require.Contains(t, s, "@f")
}
