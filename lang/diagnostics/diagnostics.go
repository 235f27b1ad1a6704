// Package diagnostics implements the error taxonomy and reporting surface
// of spec.md §7: a positioned, sortable error list in the style of
// go/scanner.ErrorList, extended with the fatal/warning/info severities the
// CLI prints in distinct colors.
package diagnostics

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"golang.org/x/exp/slices"

	"github.com/mna/cminic/lang/token"
)

// Kind classifies a Diagnostic per the taxonomy of spec.md §7.
type Kind int

// List of diagnostic kinds.
const (
	LexicalInvalid Kind = iota
	Redeclaration
	Undeclared
	RedefinitionFunction
	SignatureMismatch
	UnsupportedType
	InternalInvariant
)

var kindNames = [...]string{
	LexicalInvalid:       "lexical-invalid",
	Redeclaration:        "redeclaration",
	Undeclared:           "undeclared",
	RedefinitionFunction: "redefinition",
	SignatureMismatch:    "signature-mismatch",
	UnsupportedType:      "unsupported-type",
	InternalInvariant:    "internal",
}

func (k Kind) String() string { return kindNames[k] }

// Severity distinguishes a diagnostic that aborts compilation from one that
// is merely reported.
type Severity int

// List of severities.
const (
	SeverityFatal Severity = iota
	SeverityWarning
	SeverityInfo
)

// Diagnostic is a single positioned error, warning or informational note.
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	Pos      token.Position
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: [%s] %s", d.Pos, d.Kind, d.Message)
}

// List aggregates diagnostics in the order they were added until sorted,
// mirroring go/scanner.ErrorList's Add/Sort/Err trio.
type List struct {
	items []Diagnostic
}

// Add appends a fatal diagnostic to the list.
func (l *List) Add(kind Kind, pos token.Position, format string, args ...any) {
	l.add(kind, SeverityFatal, pos, format, args...)
}

// Warn appends a warning diagnostic to the list.
func (l *List) Warn(kind Kind, pos token.Position, format string, args ...any) {
	l.add(kind, SeverityWarning, pos, format, args...)
}

// Info appends an informational diagnostic to the list.
func (l *List) Info(kind Kind, pos token.Position, format string, args ...any) {
	l.add(kind, SeverityInfo, pos, format, args...)
}

func (l *List) add(kind Kind, sev Severity, pos token.Position, format string, args ...any) {
	l.items = append(l.items, Diagnostic{
		Kind:     kind,
		Severity: sev,
		Pos:      pos,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Len reports the number of diagnostics in the list.
func (l *List) Len() int { return len(l.items) }

// Items returns the diagnostics currently in the list, in their current
// order. The returned slice must not be mutated.
func (l *List) Items() []Diagnostic { return l.items }

// HasFatal reports whether any diagnostic in the list is a fatal error.
func (l *List) HasFatal() bool {
	for _, d := range l.items {
		if d.Severity == SeverityFatal {
			return true
		}
	}
	return false
}

// Sort orders the list by position, then by severity, then by insertion
// order, so that repeated runs over the same input produce an identical
// report regardless of which generator phase raised which diagnostic first.
func (l *List) Sort() {
	slices.SortStableFunc(l.items, func(a, b Diagnostic) int {
		if a.Pos.Line != b.Pos.Line {
			return a.Pos.Line - b.Pos.Line
		}
		if a.Pos.Col != b.Pos.Col {
			return a.Pos.Col - b.Pos.Col
		}
		return int(a.Severity) - int(b.Severity)
	})
}

// Err returns an error summarizing the list's fatal diagnostics, or nil if
// there are none, matching go/scanner.ErrorList.Err's "nil for an empty
// list" contract.
func (l *List) Err() error {
	if !l.HasFatal() {
		return nil
	}
	return &listError{items: l.items}
}

type listError struct{ items []Diagnostic }

func (e *listError) Error() string {
	var b strings.Builder
	for i, d := range e.items {
		if d.Severity != SeverityFatal {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(d.String())
		_ = i
	}
	return b.String()
}

// Fprint writes every diagnostic in the list to w, one per line. Fatal
// errors print with a "Fatal error:" prefix, warnings with "warning:", info
// lines with "info:", matching the CLI's output contract in spec.md §6.
// When w is an *os.File attached to a terminal, the three are colorized red,
// yellow and cyan respectively through a colorable.NewColorable writer, so
// the escape codes also render correctly on Windows consoles; any other
// writer (a file, a bytes.Buffer in tests) gets plain, uncolored text.
func Fprint(w io.Writer, l *List) {
	color := false
	out := w
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		out, color = colorable.NewColorable(f), true
	}
	fprint(out, l, color)
}

// FprintForce writes l like Fprint, but color is forced on or off rather
// than auto-detected from w, for callers honoring internal/config's
// ColorOutput override. When color is true and w is an *os.File, output
// still goes through colorable.NewColorable so escapes render on Windows
// consoles; for any other writer a forced-on color just emits raw ANSI
// codes into w.
func FprintForce(w io.Writer, l *List, color bool) {
	out := w
	if color {
		if f, ok := w.(*os.File); ok {
			out = colorable.NewColorable(f)
		}
	}
	fprint(out, l, color)
}

func fprint(out io.Writer, l *List, color bool) {
	for _, d := range l.items {
		prefix, c := "info:", cyan
		switch d.Severity {
		case SeverityFatal:
			prefix, c = "Fatal error:", red
		case SeverityWarning:
			prefix, c = "warning:", yellow
		}
		if color {
			fmt.Fprintf(out, "%s%s %s%s\n", c, prefix, d.String(), reset)
		} else {
			fmt.Fprintf(out, "%s %s\n", prefix, d.String())
		}
	}
}

const (
	red    = "\x1b[31m"
	yellow = "\x1b[33m"
	cyan   = "\x1b[36m"
	reset  = "\x1b[0m"
)
