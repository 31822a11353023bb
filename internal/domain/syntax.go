package domain

// TokenKind identifies the variant of a Token.
type TokenKind int

const (
	// TokenIdent is an identifier or keyword.
	TokenIdent TokenKind = iota
	// TokenPunct is a single punctuation character.
	TokenPunct
	// TokenLiteral is a string, char or numeric literal.
	TokenLiteral
	// TokenGroup is a delimited sequence of tokens.
	TokenGroup
)

// Delim identifies the delimiter of a TokenGroup.
type Delim int

const (
	DelimParen Delim = iota // ( ... )
	DelimBrace              // { ... }
	DelimBracket            // [ ... ]
)

// Token is one node of a lexed source file. The tree is a closed set of
// variants: groups carry nested tokens, all other kinds are leaves.
type Token struct {
	Kind  TokenKind
	Text  string  // ident text, punct char or literal text; empty for groups
	Delim Delim   // delimiter kind, groups only
	Inner []Token // nested tokens, groups only
	Line  int     // 1-based line of the token's first character
}

// SyntaxFile is the lexed form of one source file.
type SyntaxFile struct {
	Path   string
	Tokens []Token
}

// IsIdent reports whether the token is an identifier with the given text.
func (t Token) IsIdent(text string) bool {
	return t.Kind == TokenIdent && t.Text == text
}

// IsPunct reports whether the token is the given punctuation character.
func (t Token) IsPunct(ch string) bool {
	return t.Kind == TokenPunct && t.Text == ch
}
