package lexer

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strconv"
	"text/scanner"
)

type lexState func(*Lexer) lexState

// New initializes a Lexer object
func New(r io.Reader) *Lexer {
	s := &scanner.Scanner{}

	return &Lexer{
		in:     s.Init(r),
		tokens: []Token{},
		buf:    []rune{},
		line:   1,
		col:    1,
		logger: log.New(io.Discard, "", 0),
	}
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in *scanner.Scanner

	tokens  []Token
	lastErr error

	buf []rune

	line int
	col  int

	startLine int
	startCol  int

	logger *log.Logger
}

// SetLogger sets where scanning errors are logged. Errors are discarded by
// default, Scan returns them either way.
func (lx *Lexer) SetLogger(l *log.Logger) {
	lx.logger = l
}

// Tokens returns the tokens detected so far.
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

// Scan reads the whole input and splits it into tokens.
func (lx *Lexer) Scan() error {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}
	return lx.lastErr
}

func (lx *Lexer) mark() {
	lx.startLine, lx.startCol = lx.line, lx.col
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) emit(tt TokenType, lexeme string) {
	lx.tokens = append(lx.tokens, Token{
		tt:     tt,
		lexeme: lexeme,

		line: lx.startLine,
		col:  lx.startCol,
	})
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() (rune, error) {
	r := lx.in.Next()
	if r == scanner.EOF {
		return rune(0), io.EOF
	}

	lx.buf = append(lx.buf, r)

	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return r, nil
}

func (lx *Lexer) errorf(err error) error {
	return fmt.Errorf("%w at line %d, column %d: %q", err, lx.startLine, lx.startCol, string(lx.buf))
}

func lexDefaultState(lx *Lexer) lexState {
	lx.mark()

	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	switch {
	case isWhitespace(r):
		return lexDefaultState

	case r == '/' && lx.peek() == '/':
		return lexLineComment
	case r == '/' && lx.peek() == '*':
		return lexBlockComment

	case isSymbol(r):
		return lexEmit(TokenSymbol)

	case isDigit(r):
		return lexInteger
	case isLetter(r):
		return lexWord
	case r == '"':
		return lexString

	default:
		return lexStateError(lx.errorf(ErrUnexpectedCharacter))
	}
}

func lexLineComment(lx *Lexer) lexState {
	for {
		p := lx.peek()
		if p == '\n' || p == scanner.EOF {
			return lexDefaultState
		}
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
}

func lexBlockComment(lx *Lexer) lexState {
	// opening '*'
	if _, err := lx.next(); err != nil {
		return lexStateError(lx.errorf(ErrUnterminatedComment))
	}
	for {
		r, err := lx.next()
		if err != nil {
			return lexStateError(lx.errorf(ErrUnterminatedComment))
		}
		if r == '*' && lx.peek() == '/' {
			_, _ = lx.next()
			return lexDefaultState
		}
	}
}

func lexString(lx *Lexer) lexState {
	for {
		p := lx.peek()
		if p == '\n' || p == scanner.EOF {
			return lexStateError(lx.errorf(ErrUnterminatedString))
		}
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
		if p == '"' {
			break
		}
	}
	lx.emit(TokenStringConst, string(lx.buf[1:len(lx.buf)-1]))
	return lexDefaultState
}

func lexInteger(lx *Lexer) lexState {
	for isDigit(lx.peek()) {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	i, err := strconv.Atoi(string(lx.buf))
	if err != nil || i > MaxIntConst {
		return lexStateError(lx.errorf(ErrIntegerOverflow))
	}
	return lexEmit(TokenIntConst)
}

func lexWord(lx *Lexer) lexState {
	for isWord(lx.peek()) {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	if _, ok := LookupKeyword(string(lx.buf)); ok {
		return lexEmit(TokenKeyword)
	}
	return lexEmit(TokenIdentifier)
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt, string(lx.buf))
		return lexDefaultState
	}
}

func lexStateError(err error) lexState {
	if err == io.EOF {
		return nil
	}
	return func(lx *Lexer) lexState {
		lx.logger.Printf("lexer error: %v", err)
		lx.lastErr = err
		return nil
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// or an error if a token can't be identified.
func Tokenize(in []byte) ([]Token, error) {
	lx := New(bytes.NewReader(in))
	if err := lx.Scan(); err != nil {
		return nil, err
	}
	return lx.Tokens(), nil
}
