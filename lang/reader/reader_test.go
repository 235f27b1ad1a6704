package reader_test

import (
	"testing"

	"github.com/mna/cminic/lang/reader"
	"github.com/mna/cminic/lang/token"
	"github.com/stretchr/testify/require"
)

func TestNextPeekRetract(t *testing.T) {
	r := reader.New("t", []byte("ab\nc"))

	require.Equal(t, int('a'), r.PeekChar())
	require.Equal(t, int('a'), r.NextChar())
	require.Equal(t, token.Position{Line: 1, Col: 2}, r.Position())

	require.Equal(t, int('b'), r.NextChar())
	r.RetractChar('b')
	require.Equal(t, token.Position{Line: 1, Col: 2}, r.Position())
	require.Equal(t, int('b'), r.NextChar())

	require.Equal(t, int('\n'), r.NextChar())
	r.NextLine()
	require.Equal(t, token.Position{Line: 2, Col: 1}, r.Position())

	require.Equal(t, int('c'), r.NextChar())
	require.Equal(t, reader.EOF, r.NextChar())
	require.Equal(t, reader.EOF, r.PeekChar())
}

func TestRetractTwiceInARowPanics(t *testing.T) {
	r := reader.New("t", []byte("a"))
	r.NextChar()
	r.RetractChar('a')
	require.Panics(t, func() { r.RetractChar('a') })
}

func TestOpenMissingFile(t *testing.T) {
	_, err := reader.Open("/nonexistent/path/does-not-exist.c")
	require.Error(t, err)
}
