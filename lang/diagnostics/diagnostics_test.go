package diagnostics_test

import (
	"bytes"
	"testing"

	"github.com/mna/cminic/lang/diagnostics"
	"github.com/mna/cminic/lang/token"
	"github.com/stretchr/testify/require"
)

func TestErrNilWhenNoFatal(t *testing.T) {
	var l diagnostics.List
	l.Warn(diagnostics.Undeclared, token.Position{Line: 1, Col: 1}, "just a warning")
	require.NoError(t, l.Err())
}

func TestErrNonNilWithFatal(t *testing.T) {
	var l diagnostics.List
	l.Add(diagnostics.Redeclaration, token.Position{Line: 2, Col: 3}, "x already declared")
	require.Error(t, l.Err())
	require.Contains(t, l.Err().Error(), "x already declared")
}

func TestSortOrdersByPosition(t *testing.T) {
	var l diagnostics.List
	l.Add(diagnostics.Undeclared, token.Position{Line: 5, Col: 1}, "b")
	l.Add(diagnostics.Undeclared, token.Position{Line: 1, Col: 9}, "a")
	l.Sort()

	items := l.Items()
	require.Equal(t, "a", items[0].Message)
	require.Equal(t, "b", items[1].Message)
}

func TestFprintPlainWriter(t *testing.T) {
	var l diagnostics.List
	l.Add(diagnostics.Undeclared, token.Position{Line: 1, Col: 1}, "oops")

	var buf bytes.Buffer
	diagnostics.Fprint(&buf, &l)
	require.Contains(t, buf.String(), "Fatal error:")
	require.Contains(t, buf.String(), "oops")
	require.NotContains(t, buf.String(), "\x1b[")
}

func TestFprintForceColorOnNonFileWriter(t *testing.T) {
	var l diagnostics.List
	l.Add(diagnostics.Undeclared, token.Position{Line: 1, Col: 1}, "oops")

	var buf bytes.Buffer
	diagnostics.FprintForce(&buf, &l, true)
	require.Contains(t, buf.String(), "\x1b[")
	require.Contains(t, buf.String(), "oops")
}

func TestFprintForceColorOffIsPlain(t *testing.T) {
	var l diagnostics.List
	l.Add(diagnostics.Undeclared, token.Position{Line: 1, Col: 1}, "oops")

	var buf bytes.Buffer
	diagnostics.FprintForce(&buf, &l, false)
	require.NotContains(t, buf.String(), "\x1b[")
}

func TestHasFatal(t *testing.T) {
	var l diagnostics.List
	require.False(t, l.HasFatal())
	l.Info(diagnostics.Undeclared, token.Position{Line: 1, Col: 1}, "note")
	require.False(t, l.HasFatal())
	l.Add(diagnostics.Undeclared, token.Position{Line: 1, Col: 1}, "fatal")
	require.True(t, l.HasFatal())
}
