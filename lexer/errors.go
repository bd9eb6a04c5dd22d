package lexer

import (
	"errors"
)

var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnterminatedString  = errors.New("unterminated string constant")
	ErrUnterminatedComment = errors.New("unterminated comment")
	ErrIntegerOverflow     = errors.New("integer constant out of range")
	ErrStreamExhausted     = errors.New("token stream exhausted")
)
