package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/jack-analyzer/lexer"
)

var (
	ErrStreamExhausted = lexer.ErrStreamExhausted
	ErrUnexpectedToken = errors.New("unexpected token")
)

// ParseError describes a grammar violation found at a given token.
type ParseError struct {
	Err      error
	Token    lexer.Token
	Expected string
}

func (e *ParseError) Error() string {
	if e.Token.Is(lexer.TokenEOF) {
		return fmt.Sprintf("%v: expected %s, input is empty", e.Err, e.Expected)
	}
	line, col := e.Token.Pos()
	if errors.Is(e.Err, ErrStreamExhausted) {
		return fmt.Sprintf("%v after %q at line %d, column %d: expected %s", e.Err, e.Token.Text(), line, col, e.Expected)
	}
	return fmt.Sprintf("%v %q at line %d, column %d: expected %s", e.Err, e.Token.Text(), line, col, e.Expected)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
