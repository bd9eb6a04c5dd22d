package lexer

import (
	"io"
)

var tokenEOF = Token{tt: TokenEOF}

// Tokenizer is a cursor over a finite token stream. The cursor starts before
// the first token; Advance must be called once before Current is meaningful.
type Tokenizer struct {
	tokens []Token
	pos    int
}

// NewTokenizer creates a cursor over the given tokens.
func NewTokenizer(tokens []Token) *Tokenizer {
	return &Tokenizer{
		tokens: tokens,
		pos:    -1,
	}
}

// NewTokenizerFromReader scans r completely and returns a cursor over the
// resulting tokens.
func NewTokenizerFromReader(r io.Reader) (*Tokenizer, error) {
	lx := New(r)
	if err := lx.Scan(); err != nil {
		return nil, err
	}
	return NewTokenizer(lx.Tokens()), nil
}

// HasMore returns true if there are tokens left after the current one.
func (t *Tokenizer) HasMore() bool {
	return t.pos+1 < len(t.tokens)
}

// Advance moves the cursor to the next token.
func (t *Tokenizer) Advance() error {
	if !t.HasMore() {
		t.pos = len(t.tokens)
		return ErrStreamExhausted
	}
	t.pos++
	return nil
}

// Current returns the token under the cursor, or an EOF token if the cursor
// is outside of the stream.
func (t *Tokenizer) Current() Token {
	if t.pos < 0 || t.pos >= len(t.tokens) {
		return tokenEOF
	}
	return t.tokens[t.pos]
}

// Kind returns the type of the token under the cursor.
func (t *Tokenizer) Kind() TokenType {
	return t.Current().Type()
}
