// Package reader implements the byte-level source access layer described
// in spec.md §4.1: a file-backed cursor with line/column tracking and a
// single-character pushback ("ungot") register. It deliberately does not
// implement a general seek or a multi-slot undo ring: the lexer only ever
// needs to retract the single most-recently-read byte.
package reader

import (
	"fmt"
	"os"

	"github.com/mna/cminic/lang/token"
)

// EOF is the sentinel byte value returned past the end of input.
const EOF = -1

// Reader exposes byte-level access to a source file with 1-character
// pushback and line/column position tracking.
type Reader struct {
	name string
	src  []byte
	off  int // offset of the next unread byte

	line, col int

	ungot    bool // true if a retract is pending
	ungotVal int  // the byte (or EOF) to redeliver on the next NextChar
}

// New constructs a Reader over an in-memory source buffer. name is used
// only for diagnostics.
func New(name string, src []byte) *Reader {
	return &Reader{name: name, src: src, line: 1, col: 1}
}

// Open reads the named file and constructs a Reader over its contents.
// Construction fails if the file cannot be opened, per spec.md §4.1.
func Open(name string) (*Reader, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reader: open %s: %w", name, err)
	}
	return New(name, b), nil
}

// Name returns the source file name.
func (r *Reader) Name() string { return r.name }

// Position returns the current 1-based line and column, i.e. the position
// that the next call to NextChar will report for the byte it returns.
func (r *Reader) Position() token.Position {
	return token.Position{Line: r.line, Col: r.col}
}

// NextChar advances the cursor by one byte and returns it, or EOF once the
// input is exhausted. Column is advanced by one on every call, including
// at end of file.
func (r *Reader) NextChar() int {
	if r.ungot {
		r.ungot = false
		r.col++
		return r.ungotVal
	}
	if r.off >= len(r.src) {
		r.col++
		return EOF
	}
	b := int(r.src[r.off])
	r.off++
	r.col++
	return b
}

// PeekChar returns the byte that NextChar would return next, without
// consuming it or moving the cursor.
func (r *Reader) PeekChar() int {
	if r.ungot {
		return r.ungotVal
	}
	if r.off >= len(r.src) {
		return EOF
	}
	return int(r.src[r.off])
}

// RetractChar moves the cursor back by exactly one byte. Only a single
// pushback slot is maintained: calling RetractChar twice in a row without
// an intervening NextChar is a usage error and panics, since the lexer
// never needs to retract more than the byte it just consumed.
func (r *Reader) RetractChar(b int) {
	if r.ungot {
		panic("reader: RetractChar called twice without an intervening NextChar")
	}
	r.ungot = true
	r.ungotVal = b
	r.col--
}

// NextLine increments the line counter and resets the column to 1. The
// lexer must call this after it has consumed a '\n' byte.
func (r *Reader) NextLine() {
	r.line++
	r.col = 1
}

