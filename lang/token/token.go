package token

import "fmt"

// Kind identifies the lexical category of a Token. Keywords, punctuators
// and operators are distinct kinds, never merged into a single bucket, so
// that the lexer and its consumers can switch on a kind directly.
type Kind int8

//nolint:revive
const (
	INVALID Kind = iota
	EOF
	WHITESPACE
	NEWLINE

	// literals
	IDENT
	INTEGER
	FLOAT
	CHAR
	STRING

	// keywords
	KW_INT
	KW_FLOAT
	KW_CHAR
	KW_VOID
	KW_IF
	KW_ELSE
	KW_WHILE
	KW_RETURN

	// KW_EXTRA is a project-configured keyword spelling added beyond the
	// built-in table (internal/config's ExtraKeywords); every extra
	// spelling maps to this one kind rather than a dedicated kind of its
	// own, content carries the actual spelling.
	KW_EXTRA

	// punctuators
	LBRACE // {
	RBRACE // }
	LBRACK // [
	RBRACK // ]
	LPAREN // (
	RPAREN // )
	SEMI   // ;
	COMMA  // ,

	// operators
	ASSIGN // =
	EQUAL  // ==
	LESS   // <
	LE     // <=
	GREATER
	GE    // >=
	PLUS  // +
	MINUS // -
	STAR  // *
	SLASH // /

	maxKind
)

func (k Kind) String() string { return kindNames[k] }

// GoString quotes punctuator and operator spellings, the way %#v renders
// them in error messages.
func (k Kind) GoString() string {
	if k >= LBRACE && k < maxKind {
		return "'" + punctSpelling[k] + "'"
	}
	return kindNames[k]
}

var kindNames = [...]string{
	INVALID:    "TOKEN_INVALID",
	EOF:        "TOKEN_EOF",
	WHITESPACE: "TOKEN_WHITESPACE",
	NEWLINE:    "TOKEN_NEWLINE",
	IDENT:      "TOKEN_IDENTIFIER",
	INTEGER:    "TOKEN_INTEGER",
	FLOAT:      "TOKEN_FLOAT",
	CHAR:       "TOKEN_CHAR",
	STRING:     "TOKEN_STRING",
	KW_INT:     "KW_INT",
	KW_FLOAT:   "KW_FLOAT",
	KW_CHAR:    "KW_CHAR",
	KW_VOID:    "KW_VOID",
	KW_IF:      "KW_IF",
	KW_ELSE:    "KW_ELSE",
	KW_WHILE:   "KW_WHILE",
	KW_RETURN:  "KW_RETURN",
	KW_EXTRA:   "KW_EXTRA",
	LBRACE:     "PUNCT_LBRACE",
	RBRACE:     "PUNCT_RBRACE",
	LBRACK:     "PUNCT_LBRACK",
	RBRACK:     "PUNCT_RBRACK",
	LPAREN:     "PUNCT_LPAREN",
	RPAREN:     "PUNCT_RPAREN",
	SEMI:       "PUNCT_SEMI",
	COMMA:      "PUNCT_COMMA",
	ASSIGN:     "OP_ASSIGN",
	EQUAL:      "OP_EQUAL",
	LESS:       "OP_LESS",
	LE:         "OP_LE",
	GREATER:    "OP_GREATER",
	GE:         "OP_GE",
	PLUS:       "OP_PLUS",
	MINUS:      "OP_MINUS",
	STAR:       "OP_STAR",
	SLASH:      "OP_SLASH",
}

// punctSpelling holds the literal source spelling of punctuator and
// operator kinds, kept separate from kindNames's discriminant name
// returned by String(). Mirrors original_source/src/Utils.cpp's
// jsonifyTokens, whose keyword/punctuator X-macro branch sets
// j["type"] = #name (the enum identifier) and j["content"] = disc (the
// spelling) as two always-distinct fields.
var punctSpelling = [...]string{
	LBRACE:  "{",
	RBRACE:  "}",
	LBRACK:  "[",
	RBRACK:  "]",
	LPAREN:  "(",
	RPAREN:  ")",
	SEMI:    ";",
	COMMA:   ",",
	ASSIGN:  "=",
	EQUAL:   "==",
	LESS:    "<",
	LE:      "<=",
	GREATER: ">",
	GE:      ">=",
	PLUS:    "+",
	MINUS:   "-",
	STAR:    "*",
	SLASH:   "/",
}

// keywords maps a spelling to its keyword Kind. Built once at package
// initialization so the lexer never walks this table linearly.
var keywords = map[string]Kind{
	"int":    KW_INT,
	"float":  KW_FLOAT,
	"char":   KW_CHAR,
	"void":   KW_VOID,
	"if":     KW_IF,
	"else":   KW_ELSE,
	"while":  KW_WHILE,
	"return": KW_RETURN,
}

// LookupKeyword returns the keyword Kind for lit, or IDENT if lit is not a
// keyword spelling. Identifier classification always precedes this lookup:
// the caller accumulates the full identifier-shaped run first and consults
// this table only once the spelling is known.
func LookupKeyword(lit string) Kind {
	if k, ok := keywords[lit]; ok {
		return k
	}
	return IDENT
}

// keywordSpelling is the reverse of keywords, used to recover a keyword's
// canonical source spelling (e.g. "int") from its Kind, since Kind.String()
// returns the schema type name ("KW_INT") instead.
var keywordSpelling = func() map[Kind]string {
	m := make(map[Kind]string, len(keywords))
	for lit, k := range keywords {
		m[k] = lit
	}
	return m
}()

// IsKeyword reports whether k is one of the reserved keyword kinds.
func IsKeyword(k Kind) bool { return k >= KW_INT && k <= KW_RETURN }

// HasContent reports whether tokens of kind k carry a meaningful Content
// string (identifiers, numeric/char/string literals, and KW_EXTRA, whose
// Content is its spelling).
func HasContent(k Kind) bool {
	switch k {
	case IDENT, INTEGER, FLOAT, CHAR, STRING, KW_EXTRA:
		return true
	default:
		return false
	}
}

// Token is the unit produced by the lexer: a kind, its source position, a
// monotonic sequence number within the file, and optional literal content.
type Token struct {
	Kind     Kind
	Pos      Position
	Seq      int
	Content  string // meaningful only for IDENT, INTEGER, FLOAT, CHAR, STRING, KW_EXTRA
}

func (t Token) String() string {
	if HasContent(t.Kind) {
		return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Content, t.Pos)
	}
	return fmt.Sprintf("%s@%s", t.Kind, t.Pos)
}

// Spelling returns the canonical text of the token: Content for literals,
// the reserved word for keywords, and the fixed symbol for punctuators and
// operators.
func (t Token) Spelling() string {
	switch {
	case HasContent(t.Kind):
		return t.Content
	case IsKeyword(t.Kind):
		return keywordSpelling[t.Kind]
	default:
		return punctSpelling[t.Kind]
	}
}
