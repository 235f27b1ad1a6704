// Package cli implements the command-line surface of spec.md §6: a single
// executable that reads one input path and writes the artifacts selected
// by its flags. The flag/Validate/Main shape follows the teacher's
// internal/maincmd package; unlike that package's multi-subcommand
// dispatch, this CLI has exactly one action (compile one file), so there is
// no reflection-based command table to build.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/mattn/go-isatty"
	"github.com/mna/mainer"

	"github.com/mna/cminic/internal/config"
	"github.com/mna/cminic/lang/ast"
	"github.com/mna/cminic/lang/diagnostics"
	"github.com/mna/cminic/lang/lexer"
	"github.com/mna/cminic/lang/llir"
	"github.com/mna/cminic/lang/quad"
	"github.com/mna/cminic/lang/reader"
	"github.com/mna/cminic/lang/token"
)

// isTerminal reports whether w is a terminal-backed *os.File, the same
// check lang/diagnostics.Fprint uses before enabling color.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

const binName = "cminic"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] <path>
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] <path>
       %[1]s -h|--help

Compiles a single C-subset source file and emits the artifacts selected by
the options below.

Valid flag options are:
       -h --help                 Show this help and exit.
       --dump-tokens <path>      Write the token stream as a JSON array.
       --dump-ast <path>         Write the AST as JSON.
       --print-ast               Pretty-print the AST to stdout.
       --emit-quaternions        Print three-address code to stdout.
       --emit-ir <path>          Write the low-level IR to <path>.
       --config <path>           Load project settings from a YAML file.
`, binName)
)

// ParseFunc builds the AST for a tokenized source file. It is injected
// rather than called directly because the parser is outside this project's
// scope (spec.md §1): Cmd only orchestrates the stages it owns.
type ParseFunc func(toks []token.Token) (*ast.TranslationUnit, error)

// Cmd is the mainer.Parser target for the cminic executable.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help bool `flag:"h,help"`

	DumpTokens       string `flag:"dump-tokens"`
	DumpAST          string `flag:"dump-ast"`
	PrintAST         bool   `flag:"print-ast"`
	EmitQuaternions  bool   `flag:"emit-quaternions"`
	EmitIR           string `flag:"emit-ir"`
	ConfigPath       string `flag:"config"`

	// Parse is called once the lexer has produced a token stream.
	// cmd/cminic leaves it unset; while it is nil, Validate rejects any
	// operation that needs an AST.
	Parse ParseFunc

	args  []string
	flags map[string]bool
}

// SetArgs implements mainer.Parser's argument injection.
func (c *Cmd) SetArgs(args []string) { c.args = args }

// SetFlags implements mainer.Parser's flag-presence injection.
func (c *Cmd) SetFlags(flags map[string]bool) { c.flags = flags }

// Validate checks the parsed flags for internal consistency.
func (c *Cmd) Validate() error {
	if c.Help {
		return nil
	}
	if len(c.args) != 1 {
		return fmt.Errorf("exactly one input path is required, got %d", len(c.args))
	}
	needsAST := c.DumpAST != "" || c.PrintAST || c.EmitQuaternions || c.EmitIR != ""
	if needsAST && c.Parse == nil {
		return fmt.Errorf("internal error: no parser wired in for an AST-consuming flag")
	}
	return nil
}

// Main runs the compiler end to end, dispatched by mainer from os.Args.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   true,
		EnvPrefix: binName + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	if c.Help {
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.run(ctx, stdio); err != nil {
		fmt.Fprintf(stdio.Stdout, "Fatal error: %s\n", err)
		return mainer.Failure
	}
	return mainer.Success
}

func (c *Cmd) run(_ context.Context, stdio mainer.Stdio) error {
	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	printDiags := func(l *diagnostics.List) {
		if cfg.ColorOutput != nil {
			diagnostics.FprintForce(stdio.Stdout, l, *cfg.ColorOutput)
		} else {
			diagnostics.Fprint(stdio.Stdout, l)
		}
	}

	path := c.args[0]
	r, err := reader.Open(path)
	if err != nil {
		return err
	}

	toks := lexer.New(r, lexer.Options{ElideLayout: false, ExtraKeywords: cfg.ExtraKeywords}).Run()

	if c.DumpTokens != "" {
		if err := writeTokenJSON(c.DumpTokens, toks); err != nil {
			return fmt.Errorf("dumping tokens: %w", err)
		}
	}

	var tu *ast.TranslationUnit
	if c.DumpAST != "" || c.PrintAST || c.EmitQuaternions || c.EmitIR != "" {
		filtered := make([]token.Token, 0, len(toks))
		for _, t := range toks {
			if t.Kind == token.WHITESPACE || t.Kind == token.NEWLINE {
				continue
			}
			filtered = append(filtered, t)
		}
		tu, err = c.Parse(filtered)
		if err != nil {
			return fmt.Errorf("parsing: %w", err)
		}
	}

	if c.DumpAST != "" {
		b, err := json.MarshalIndent(tu, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling ast: %w", err)
		}
		if err := os.WriteFile(c.DumpAST, b, 0o644); err != nil {
			return fmt.Errorf("dumping ast: %w", err)
		}
	}

	if c.PrintAST {
		pp.ColoringEnabled = isTerminal(stdio.Stdout)
		pp.Fprintln(stdio.Stdout, tu)
	}

	if c.EmitQuaternions {
		g := quad.New()
		g.SetWidth(cfg.QuaternionWidth)
		ok, genErr := g.Generate(tu)
		fmt.Fprint(stdio.Stdout, g.Disassemble())
		if !ok {
			printDiags(g.Diagnostics())
			return genErr
		}
	}

	if c.EmitIR != "" {
		g := llir.New()
		ok, genErr := g.Generate(tu)
		if dumpErr := g.Dump(c.EmitIR); dumpErr != nil {
			return fmt.Errorf("emitting ir: %w", dumpErr)
		}
		if !ok {
			printDiags(g.Diagnostics())
			return genErr
		}
	}

	return nil
}

type jsonToken struct {
	ID       int    `json:"id"`
	Type     string `json:"type"`
	Content  string `json:"content"`
	Position [2]int `json:"position"`
}

// writeTokenJSON writes toks in the schema of spec.md §6: whitespace,
// newline and invalid tokens elided, content carrying the literal spelling
// for identifiers/numbers/strings/chars and the canonical spelling for
// keywords/punctuators.
func writeTokenJSON(path string, toks []token.Token) error {
	out := make([]jsonToken, 0, len(toks))
	for _, t := range toks {
		if t.Kind == token.WHITESPACE || t.Kind == token.NEWLINE || t.Kind == token.INVALID {
			continue
		}
		out = append(out, jsonToken{
			ID:       t.Seq,
			Type:     t.Kind.String(),
			Content:  t.Spelling(),
			Position: [2]int{t.Pos.Line, t.Pos.Col},
		})
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
