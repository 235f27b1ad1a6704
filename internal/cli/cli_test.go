package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mna/mainer"
	"github.com/stretchr/testify/require"

	"github.com/mna/cminic/internal/cli"
	"github.com/mna/cminic/lang/ast"
	"github.com/mna/cminic/lang/token"
)

func stdio(stdin *bytes.Buffer) (mainer.Stdio, *bytes.Buffer, *bytes.Buffer) {
	if stdin == nil {
		stdin = &bytes.Buffer{}
	}
	var out, errb bytes.Buffer
	return mainer.Stdio{Stdin: stdin, Stdout: &out, Stderr: &errb}, &out, &errb
}

func TestValidateRequiresExactlyOnePath(t *testing.T) {
	c := &cli.Cmd{}
	c.SetArgs(nil)
	require.Error(t, c.Validate())

	c.SetArgs([]string{"a.c", "b.c"})
	require.Error(t, c.Validate())
}

func TestValidateHelpBypassesArgCheck(t *testing.T) {
	c := &cli.Cmd{Help: true}
	c.SetArgs(nil)
	require.NoError(t, c.Validate())
}

func TestValidateRejectsASTFlagsWithoutParser(t *testing.T) {
	c := &cli.Cmd{PrintAST: true}
	c.SetArgs([]string{"a.c"})
	require.Error(t, c.Validate())
}

func TestValidateAcceptsASTFlagsWithParser(t *testing.T) {
	c := &cli.Cmd{
		PrintAST: true,
		Parse: func(toks []token.Token) (*ast.TranslationUnit, error) {
			return &ast.TranslationUnit{}, nil
		},
	}
	c.SetArgs([]string{"a.c"})
	require.NoError(t, c.Validate())
}

func TestMainHelpPrintsUsage(t *testing.T) {
	c := &cli.Cmd{}
	s, out, _ := stdio(nil)
	code := c.Main([]string{"cminic", "-h"}, s)
	require.Equal(t, mainer.Success, code)
	require.Contains(t, out.String(), "usage: cminic")
}

func TestMainDumpTokensWritesJSONSchema(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.c")
	require.NoError(t, os.WriteFile(src, []byte("int a;\n"), 0o644))
	tokOut := filepath.Join(dir, "tokens.json")

	c := &cli.Cmd{}
	s, _, errb := stdio(nil)
	code := c.Main([]string{"cminic", "--dump-tokens", tokOut, src}, s)
	require.Equal(t, mainer.Success, code, errb.String())

	b, err := os.ReadFile(tokOut)
	require.NoError(t, err)

	var got []struct {
		ID       int    `json:"id"`
		Type     string `json:"type"`
		Content  string `json:"content"`
		Position [2]int `json:"position"`
	}
	require.NoError(t, json.Unmarshal(b, &got))
	require.NotEmpty(t, got)
	require.Equal(t, "KW_INT", got[0].Type)
	require.Equal(t, "int", got[0].Content)
	require.Equal(t, [2]int{1, 1}, got[0].Position)

	// "int a;" third token is the ';' punctuator: its JSON "type" must be a
	// discriminant name, distinct from the literal spelling in "content".
	require.Equal(t, "PUNCT_SEMI", got[2].Type)
	require.Equal(t, ";", got[2].Content)
}

func TestMainMissingFileFails(t *testing.T) {
	c := &cli.Cmd{}
	s, out, _ := stdio(nil)
	code := c.Main([]string{"cminic", "/nonexistent/path.c"}, s)
	require.Equal(t, mainer.Failure, code)
	require.Contains(t, out.String(), "Fatal error:")
}
