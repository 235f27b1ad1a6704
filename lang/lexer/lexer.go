// Package lexer implements the tokenizer described in spec.md §4.2: it
// classifies bytes from a lang/reader.Reader into lang/token.Token values,
// handling comments, multi-character operators, identifiers over extended
// byte ranges, numeric literals, and string/char literals with escapes.
//
// The lexer never fails. Malformed input produces a token.INVALID token and
// scanning continues; error reporting is left entirely to downstream
// stages, per spec.md §7.
package lexer

import (
	"github.com/mna/cminic/lang/reader"
	"github.com/mna/cminic/lang/token"
)

// Options controls optional lexer behavior.
type Options struct {
	// ElideLayout removes WHITESPACE and NEWLINE tokens from the stream
	// returned by Run, matching the parser-facing view described in
	// spec.md §4.2. When false, every token (including layout) is kept.
	ElideLayout bool

	// ExtraKeywords adds project-configured spellings (internal/config)
	// that classify as token.KW_EXTRA instead of token.IDENT, checked
	// before the built-in keyword table.
	ExtraKeywords []string
}

// spaceLike bytes per spec.md §4.2 step 3: ' ', '\t', '\f', '\v'.
func isSpaceLike(b int) bool {
	return b == ' ' || b == '\t' || b == '\f' || b == '\v'
}

func isDigit(b int) bool { return b >= '0' && b <= '9' }

func isLetter(b int) bool {
	return b == '_' || b == '$' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') ||
		(b >= 0x80 && b <= 0xFD)
}

func isIdentCont(b int) bool { return isLetter(b) || isDigit(b) }

// Lexer tokenizes a single source file.
type Lexer struct {
	r      *reader.Reader
	opts   Options
	extras map[string]bool
}

// New constructs a Lexer over r.
func New(r *reader.Reader, opts Options) *Lexer {
	l := &Lexer{r: r, opts: opts}
	if len(opts.ExtraKeywords) > 0 {
		l.extras = make(map[string]bool, len(opts.ExtraKeywords))
		for _, kw := range opts.ExtraKeywords {
			l.extras[kw] = true
		}
	}
	return l
}

// Run produces every token in order, terminating with a single EOF token.
// Sequence numbers are assigned densely, in order of appearance, over
// exactly the tokens returned (so eliding layout tokens still yields a
// dense, monotonically increasing sequence).
func (l *Lexer) Run() []token.Token {
	var out []token.Token
	for {
		tok := l.next()
		if l.opts.ElideLayout && (tok.Kind == token.WHITESPACE || tok.Kind == token.NEWLINE) {
			continue
		}
		tok.Seq = len(out)
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

// next implements one iteration of the per-token algorithm in spec.md §4.2.
func (l *Lexer) next() token.Token {
	if inv, ok := l.consumeComment(); ok {
		return inv
	}

	pos := l.r.Position()

	if isSpaceLike(l.r.PeekChar()) {
		for isSpaceLike(l.r.PeekChar()) {
			l.r.NextChar()
		}
		return token.Token{Kind: token.WHITESPACE, Pos: pos}
	}

	c := l.r.NextChar()
	switch {
	case c == '\n':
		l.r.NextLine()
		return token.Token{Kind: token.NEWLINE, Pos: pos}

	case isLetter(c):
		return l.identifier(pos, c)

	case isDigit(c):
		return l.number(pos, c)

	case c == '"':
		return l.quoted(pos, '"', token.STRING)

	case c == '\'':
		return l.quoted(pos, '\'', token.CHAR)

	case c == '=':
		if l.r.PeekChar() == '=' {
			l.r.NextChar()
			return token.Token{Kind: token.EQUAL, Pos: pos}
		}
		return token.Token{Kind: token.ASSIGN, Pos: pos}

	case c == '<':
		if l.r.PeekChar() == '=' {
			l.r.NextChar()
			return token.Token{Kind: token.LE, Pos: pos}
		}
		return token.Token{Kind: token.LESS, Pos: pos}

	case c == '>':
		if l.r.PeekChar() == '=' {
			l.r.NextChar()
			return token.Token{Kind: token.GE, Pos: pos}
		}
		return token.Token{Kind: token.GREATER, Pos: pos}

	case c == '+':
		return token.Token{Kind: token.PLUS, Pos: pos}
	case c == '-':
		return token.Token{Kind: token.MINUS, Pos: pos}
	case c == '*':
		return token.Token{Kind: token.STAR, Pos: pos}
	case c == '/':
		return token.Token{Kind: token.SLASH, Pos: pos}

	case c == '{':
		return token.Token{Kind: token.LBRACE, Pos: pos}
	case c == '}':
		return token.Token{Kind: token.RBRACE, Pos: pos}
	case c == '[':
		return token.Token{Kind: token.LBRACK, Pos: pos}
	case c == ']':
		return token.Token{Kind: token.RBRACK, Pos: pos}
	case c == '(':
		return token.Token{Kind: token.LPAREN, Pos: pos}
	case c == ')':
		return token.Token{Kind: token.RPAREN, Pos: pos}
	case c == ';':
		return token.Token{Kind: token.SEMI, Pos: pos}
	case c == ',':
		return token.Token{Kind: token.COMMA, Pos: pos}

	case c == reader.EOF:
		return token.Token{Kind: token.EOF, Pos: pos}

	default:
		return token.Token{Kind: token.INVALID, Pos: pos, Content: string(rune(c))}
	}
}

// consumeComment implements spec.md §4.2 step 1. It returns (tok, true) only
// when an unterminated block comment forces a trailing INVALID token at the
// position of the opening "/*"; otherwise it returns (zero, false) meaning
// the caller should proceed with its own token (no comment was present, or
// a well-formed comment was fully consumed and contributes no token).
func (l *Lexer) consumeComment() (token.Token, bool) {
	if l.r.PeekChar() != '/' {
		return token.Token{}, false
	}
	openPos := l.r.Position()
	slash := l.r.NextChar() // tentatively consume '/'

	switch l.r.PeekChar() {
	case '/':
		l.r.NextChar()
		for {
			c := l.r.PeekChar()
			if c == '\n' || c == reader.EOF {
				break
			}
			l.r.NextChar()
		}
		return token.Token{}, false

	case '*':
		l.r.NextChar()
		for {
			c := l.r.NextChar()
			switch {
			case c == reader.EOF:
				return token.Token{Kind: token.INVALID, Pos: openPos}, true
			case c == '\n':
				l.r.NextLine()
			case c == '*' && l.r.PeekChar() == '/':
				l.r.NextChar()
				return token.Token{}, false
			}
		}

	default:
		l.r.RetractChar(slash)
		return token.Token{}, false
	}
}

func (l *Lexer) identifier(pos token.Position, first int) token.Token {
	buf := []byte{byte(first)}
	for isIdentCont(l.r.PeekChar()) {
		buf = append(buf, byte(l.r.NextChar()))
	}
	lit := string(buf)
	if l.extras[lit] {
		return token.Token{Kind: token.KW_EXTRA, Pos: pos, Content: lit}
	}
	kind := token.LookupKeyword(lit)
	if kind == token.IDENT {
		return token.Token{Kind: token.IDENT, Pos: pos, Content: lit}
	}
	return token.Token{Kind: kind, Pos: pos}
}

func (l *Lexer) number(pos token.Position, first int) token.Token {
	buf := []byte{byte(first)}
	for isDigit(l.r.PeekChar()) {
		buf = append(buf, byte(l.r.NextChar()))
	}
	kind := token.INTEGER
	if l.r.PeekChar() == '.' {
		// look ahead one more byte to confirm a fractional part is present;
		// a lone trailing '.' is not part of this dialect's number grammar.
		dot := l.r.NextChar()
		if isDigit(l.r.PeekChar()) {
			kind = token.FLOAT
			buf = append(buf, byte(dot))
			for isDigit(l.r.PeekChar()) {
				buf = append(buf, byte(l.r.NextChar()))
			}
		} else {
			l.r.RetractChar(dot)
		}
	}
	return token.Token{Kind: kind, Pos: pos, Content: string(buf)}
}

// quoted implements string/char literal assembly per spec.md §4.2: accumulate
// bytes until the closing quote, honoring a backslash escape that consumes
// the next byte literally and drops the backslash itself from Content
// (matching original_source/Lexer.cpp's readString/readChar: "c = nextChar();
// buffer.append(c)", never appending the backslash) — including a newline,
// per the deliberately preserved quirk in spec.md §9: a backslash-newline
// inside a literal swallows the newline without calling NextLine,
// desynchronizing line numbers from that point on.
func (l *Lexer) quoted(pos token.Position, closing byte, kind token.Kind) token.Token {
	var buf []byte
	for {
		c := l.r.NextChar()
		switch {
		case c == reader.EOF:
			return token.Token{Kind: token.INVALID, Pos: pos, Content: string(buf)}
		case c == int(closing):
			return token.Token{Kind: kind, Pos: pos, Content: string(buf)}
		case c == '\\':
			esc := l.r.NextChar()
			if esc == reader.EOF {
				return token.Token{Kind: token.INVALID, Pos: pos, Content: string(buf)}
			}
			buf = append(buf, byte(esc))
		default:
			buf = append(buf, byte(c))
		}
	}
}
