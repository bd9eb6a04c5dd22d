package lexer

import (
	"fmt"
	"strconv"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	lexeme string

	line int
	col  int
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, lexeme string, line int, col int) *Token {
	return &Token{
		tt:     tt,
		lexeme: lexeme,
		line:   line,
		col:    col,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the line and column of the lexical unit
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

// Text returns the raw text of the lexical unit. String constants are
// returned without their surrounding quotes.
func (t Token) Text() string {
	return t.lexeme
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

// IsKeyword returns true if the token is one of the given keywords.
func (t Token) IsKeyword(kws ...Keyword) bool {
	kw, ok := t.Keyword()
	if !ok {
		return false
	}
	for _, v := range kws {
		if kw == v {
			return true
		}
	}
	return false
}

// IsSymbol returns true if the token is one of the given symbols.
func (t Token) IsSymbol(symbols ...rune) bool {
	s, ok := t.Symbol()
	if !ok {
		return false
	}
	for _, v := range symbols {
		if s == v {
			return true
		}
	}
	return false
}

// Keyword returns the reserved word of a keyword token.
func (t Token) Keyword() (Keyword, bool) {
	if t.tt != TokenKeyword {
		return "", false
	}
	return Keyword(t.lexeme), true
}

// Symbol returns the character of a symbol token.
func (t Token) Symbol() (rune, bool) {
	if t.tt != TokenSymbol || len(t.lexeme) != 1 {
		return 0, false
	}
	return rune(t.lexeme[0]), true
}

// Identifier returns the name of an identifier token.
func (t Token) Identifier() (string, bool) {
	if t.tt != TokenIdentifier {
		return "", false
	}
	return t.lexeme, true
}

// IntValue returns the value of an integer constant token.
func (t Token) IntValue() (int, bool) {
	if t.tt != TokenIntConst {
		return 0, false
	}
	i, err := strconv.Atoi(t.lexeme)
	if err != nil {
		return 0, false
	}
	return i, true
}

// StringValue returns the text of a string constant token.
func (t Token) StringValue() (string, bool) {
	if t.tt != TokenStringConst {
		return "", false
	}
	return t.lexeme, true
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d %d])", t.tt, t.lexeme, t.line, t.col)
}
