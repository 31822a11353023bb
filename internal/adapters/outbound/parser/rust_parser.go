package parser

import (
	"fmt"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/gdnkit/gdnkit/internal/domain"
)

// RustParser implements domain.SyntaxParser by lexing Rust source into
// token trees. It understands just enough of the lexical grammar
// (comments, string/char literals, lifetimes, raw strings, identifiers,
// delimiter nesting) to let the declaration matcher walk real crates.
type RustParser struct{}

func New() *RustParser {
	return &RustParser{}
}

func (p *RustParser) ParseFile(path string) (*domain.SyntaxFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrRead, path, err)
	}

	lex := &lexer{path: path, src: string(data), line: 1}
	toks, err := lex.readTokens(0)
	if err != nil {
		return nil, err
	}

	return &domain.SyntaxFile{Path: path, Tokens: toks}, nil
}

type lexer struct {
	path string
	src  string
	pos  int
	line int
}

func (l *lexer) errorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: %s:%d: %s", domain.ErrParse, l.path, l.line, msg)
}

func (l *lexer) eof() bool { return l.pos >= len(l.src) }

func (l *lexer) peek() byte {
	if l.eof() {
		return 0
	}
	return l.src[l.pos]
}

func (l *lexer) peekAt(off int) byte {
	if l.pos+off >= len(l.src) {
		return 0
	}
	return l.src[l.pos+off]
}

// advance moves past n bytes, tracking line numbers.
func (l *lexer) advance(n int) {
	for i := 0; i < n && l.pos < len(l.src); i++ {
		if l.src[l.pos] == '\n' {
			l.line++
		}
		l.pos++
	}
}

func closerFor(open byte) byte {
	switch open {
	case '(':
		return ')'
	case '{':
		return '}'
	default:
		return ']'
	}
}

func delimFor(open byte) domain.Delim {
	switch open {
	case '(':
		return domain.DelimParen
	case '{':
		return domain.DelimBrace
	default:
		return domain.DelimBracket
	}
}

// readTokens lexes until the given closing delimiter, or until end of
// input when until is zero.
func (l *lexer) readTokens(until byte) ([]domain.Token, error) {
	var toks []domain.Token

	for {
		l.skipWhitespace()

		if l.eof() {
			if until != 0 {
				return nil, l.errorf("unexpected end of file, expected %q", string(until))
			}
			return toks, nil
		}

		c := l.peek()
		line := l.line

		switch {
		case c == '/' && l.peekAt(1) == '/':
			l.skipLineComment()

		case c == '/' && l.peekAt(1) == '*':
			if err := l.skipBlockComment(); err != nil {
				return nil, err
			}

		case c == '(' || c == '{' || c == '[':
			closer := closerFor(c)
			l.advance(1)
			inner, err := l.readTokens(closer)
			if err != nil {
				return nil, err
			}
			toks = append(toks, domain.Token{Kind: domain.TokenGroup, Delim: delimFor(c), Inner: inner, Line: line})

		case c == ')' || c == '}' || c == ']':
			if c != until {
				return nil, l.errorf("unexpected closing delimiter %q", string(c))
			}
			l.advance(1)
			return toks, nil

		case c == '"':
			lit, err := l.readString()
			if err != nil {
				return nil, err
			}
			toks = append(toks, domain.Token{Kind: domain.TokenLiteral, Text: lit, Line: line})

		case c == '\'':
			tok, isLifetime := l.readQuote()
			if !isLifetime && tok.Text == "" {
				return nil, l.errorf("unterminated character literal")
			}
			toks = append(toks, tok)

		case isRawString(l):
			lit, err := l.readRawString()
			if err != nil {
				return nil, err
			}
			toks = append(toks, domain.Token{Kind: domain.TokenLiteral, Text: lit, Line: line})

		case isIdentStart(c):
			toks = append(toks, domain.Token{Kind: domain.TokenIdent, Text: l.readIdent(), Line: line})

		case c >= '0' && c <= '9':
			toks = append(toks, domain.Token{Kind: domain.TokenLiteral, Text: l.readNumber(), Line: line})

		default:
			l.advance(1)
			toks = append(toks, domain.Token{Kind: domain.TokenPunct, Text: string(c), Line: line})
		}
	}
}

func (l *lexer) skipWhitespace() {
	for !l.eof() {
		c := l.peek()
		if c != ' ' && c != '\t' && c != '\r' && c != '\n' {
			return
		}
		l.advance(1)
	}
}

func (l *lexer) skipLineComment() {
	for !l.eof() && l.peek() != '\n' {
		l.advance(1)
	}
}

// skipBlockComment handles nesting, which Rust allows.
func (l *lexer) skipBlockComment() error {
	l.advance(2)
	depth := 1
	for depth > 0 {
		if l.eof() {
			return l.errorf("unterminated block comment")
		}
		switch {
		case l.peek() == '/' && l.peekAt(1) == '*':
			depth++
			l.advance(2)
		case l.peek() == '*' && l.peekAt(1) == '/':
			depth--
			l.advance(2)
		default:
			l.advance(1)
		}
	}
	return nil
}

func (l *lexer) readString() (string, error) {
	start := l.pos
	l.advance(1)
	for {
		if l.eof() {
			return "", l.errorf("unterminated string literal")
		}
		switch l.peek() {
		case '\\':
			l.advance(2)
		case '"':
			l.advance(1)
			return l.src[start:l.pos], nil
		default:
			l.advance(1)
		}
	}
}

// readQuote lexes either a lifetime (returned as a bare quote punct, the
// following identifier is lexed separately) or a character literal.
func (l *lexer) readQuote() (domain.Token, bool) {
	line := l.line
	// 'ident not followed by a closing quote is a lifetime or loop label.
	if isIdentStart(l.peekAt(1)) {
		i := 1
		for isIdentPart(l.peekAt(i)) {
			i++
		}
		if l.peekAt(i) != '\'' {
			l.advance(1)
			return domain.Token{Kind: domain.TokenPunct, Text: "'", Line: line}, true
		}
	}

	start := l.pos
	l.advance(1)
	if l.peek() == '\\' {
		l.advance(2)
	} else if !l.eof() {
		_, size := utf8.DecodeRuneInString(l.src[l.pos:])
		l.advance(size)
	}
	if l.peek() != '\'' {
		return domain.Token{Kind: domain.TokenLiteral, Line: line}, false
	}
	l.advance(1)
	return domain.Token{Kind: domain.TokenLiteral, Text: l.src[start:l.pos], Line: line}, false
}

// isRawString reports whether the lexer sits at r"...", r#"..."#, b"..."
// or a br variant. r#ident raw identifiers are left to readIdent.
func isRawString(l *lexer) bool {
	c := l.peek()
	if c != 'r' && c != 'b' {
		return false
	}
	i := 1
	if c == 'b' && l.peekAt(i) == 'r' {
		i++
	}
	hashes := 0
	for l.peekAt(i+hashes) == '#' {
		hashes++
	}
	return l.peekAt(i+hashes) == '"'
}

func (l *lexer) readRawString() (string, error) {
	start := l.pos
	if l.peek() == 'b' {
		l.advance(1)
	}
	if l.peek() == 'r' {
		l.advance(1)
	}
	hashes := 0
	for l.peek() == '#' {
		hashes++
		l.advance(1)
	}
	if l.peek() != '"' {
		return "", l.errorf("malformed raw string literal")
	}
	l.advance(1)
	for {
		if l.eof() {
			return "", l.errorf("unterminated raw string literal")
		}
		if l.peek() == '"' {
			l.advance(1)
			closed := true
			for i := 0; i < hashes; i++ {
				if l.peek() != '#' {
					closed = false
					break
				}
				l.advance(1)
			}
			if closed {
				return l.src[start:l.pos], nil
			}
			continue
		}
		l.advance(1)
	}
}

func (l *lexer) readIdent() string {
	start := l.pos
	// r#type raw identifier syntax: the ident text is what follows r#.
	if l.peek() == 'r' && l.peekAt(1) == '#' && isIdentStart(l.peekAt(2)) {
		l.advance(2)
		start = l.pos
	}
	for !l.eof() && isIdentPart(l.peek()) {
		l.advance(1)
	}
	return l.src[start:l.pos]
}

func (l *lexer) readNumber() string {
	start := l.pos
	for !l.eof() {
		c := l.peek()
		if isIdentPart(c) || c == '.' {
			l.advance(1)
			continue
		}
		break
	}
	return l.src[start:l.pos]
}

func isIdentStart(c byte) bool {
	return c == '_' || unicode.IsLetter(rune(c))
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
