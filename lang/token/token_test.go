package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	for k := Kind(0); k < maxKind; k++ {
		require.NotEmpty(t, k.String(), "missing string representation of kind %d", k)
	}
}

func TestLookupKeyword(t *testing.T) {
	for k := Kind(0); k < maxKind; k++ {
		if !IsKeyword(k) {
			require.Equal(t, IDENT, LookupKeyword(k.String()))
			continue
		}
		require.Equal(t, k, LookupKeyword(keywordSpelling[k]))
	}
}

func TestHasContent(t *testing.T) {
	for _, k := range []Kind{IDENT, INTEGER, FLOAT, CHAR, STRING} {
		require.True(t, HasContent(k))
	}
	for _, k := range []Kind{KW_INT, LBRACE, ASSIGN, EOF, WHITESPACE} {
		require.False(t, HasContent(k))
	}
}

func TestTokenSpelling(t *testing.T) {
	tok := Token{Kind: IDENT, Content: "x"}
	require.Equal(t, "x", tok.Spelling())

	tok = Token{Kind: KW_IF}
	require.Equal(t, "if", tok.Spelling())
}

func TestPunctuatorTypeDistinctFromSpelling(t *testing.T) {
	tok := Token{Kind: SEMI}
	require.Equal(t, "PUNCT_SEMI", tok.Kind.String())
	require.Equal(t, ";", tok.Spelling())

	tok = Token{Kind: ASSIGN}
	require.Equal(t, "OP_ASSIGN", tok.Kind.String())
	require.Equal(t, "=", tok.Spelling())
}
