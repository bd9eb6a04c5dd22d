package parser

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xiam/jack-analyzer/ast"
	"github.com/xiam/jack-analyzer/lexer"
)

var (
	binaryOps = []rune("+-*/&|<>=")
	unaryOps  = []rune("-~")
)

// Emitter receives the parse tree as it is recognized: one Open/Close pair
// per grammar rule and one Token per consumed token, in source order.
type Emitter interface {
	Open(nt ast.NodeType) error
	Close(nt ast.NodeType) error
	Token(tok lexer.Token) error
}

// Parser is a recursive descent parser for a single class. Every parse method
// expects the cursor on the first token of its rule and leaves it on the
// first token after it.
type Parser struct {
	tz  *lexer.Tokenizer
	out Emitter
}

// New creates a parser that reads from tz and emits to out.
func New(tz *lexer.Tokenizer, out Emitter) *Parser {
	return &Parser{
		tz:  tz,
		out: out,
	}
}

// Parse consumes the whole token stream as one class.
func (p *Parser) Parse() error {
	if err := p.advance(); err != nil {
		return err
	}
	if err := p.parseClass(); err != nil {
		return err
	}
	if p.tz.HasMore() {
		_ = p.tz.Advance()
		return p.unexpected("end of input")
	}
	return nil
}

func (p *Parser) curr() lexer.Token {
	return p.tz.Current()
}

func (p *Parser) advance() error {
	last := p.tz.Current()
	if err := p.tz.Advance(); err != nil {
		return &ParseError{Err: err, Token: last, Expected: "more tokens"}
	}
	return nil
}

func (p *Parser) unexpected(expected string) error {
	return &ParseError{Err: ErrUnexpectedToken, Token: p.curr(), Expected: expected}
}

func (p *Parser) consume() error {
	if err := p.out.Token(p.curr()); err != nil {
		return err
	}
	return p.advance()
}

func (p *Parser) expectSymbol(r rune) error {
	if !p.curr().IsSymbol(r) {
		return p.unexpected(fmt.Sprintf("%q", r))
	}
	return p.consume()
}

func (p *Parser) expectKeyword(kws ...lexer.Keyword) error {
	if !p.curr().IsKeyword(kws...) {
		return p.unexpected(fmt.Sprintf("one of %v", kws))
	}
	return p.consume()
}

func (p *Parser) expectIdentifier(what string) error {
	if !p.curr().Is(lexer.TokenIdentifier) {
		return p.unexpected(what)
	}
	return p.consume()
}

// type: 'int' | 'char' | 'boolean' | className
func (p *Parser) expectType() error {
	if p.curr().IsKeyword(lexer.KeywordInt, lexer.KeywordChar, lexer.KeywordBoolean) {
		return p.consume()
	}
	return p.expectIdentifier("type")
}

// class: 'class' className '{' classVarDec* subroutineDec* '}'
func (p *Parser) parseClass() error {
	if err := p.out.Open(ast.NodeTypeClass); err != nil {
		return err
	}

	if err := p.expectKeyword(lexer.KeywordClass); err != nil {
		return err
	}
	if err := p.expectIdentifier("class name"); err != nil {
		return err
	}
	if err := p.expectSymbol('{'); err != nil {
		return err
	}

	for p.curr().IsKeyword(lexer.KeywordStatic, lexer.KeywordField) {
		if err := p.parseClassVarDec(); err != nil {
			return err
		}
	}

	for p.curr().IsKeyword(lexer.KeywordConstructor, lexer.KeywordFunction, lexer.KeywordMethod) {
		if err := p.parseSubroutineDec(); err != nil {
			return err
		}
	}

	// The closing brace is the last token of the unit, there's nothing to
	// advance to.
	if !p.curr().IsSymbol('}') {
		return p.unexpected("'}'")
	}
	if err := p.out.Token(p.curr()); err != nil {
		return err
	}

	return p.out.Close(ast.NodeTypeClass)
}

// classVarDec: ('static' | 'field') type varName (',' varName)* ';'
func (p *Parser) parseClassVarDec() error {
	return p.parseDeclaration(ast.NodeTypeClassVarDec, lexer.KeywordStatic, lexer.KeywordField)
}

// varDec: 'var' type varName (',' varName)* ';'
func (p *Parser) parseVarDec() error {
	return p.parseDeclaration(ast.NodeTypeVarDec, lexer.KeywordVar)
}

func (p *Parser) parseDeclaration(nt ast.NodeType, introducers ...lexer.Keyword) error {
	if err := p.out.Open(nt); err != nil {
		return err
	}

	if err := p.expectKeyword(introducers...); err != nil {
		return err
	}
	if err := p.expectType(); err != nil {
		return err
	}
	if err := p.expectIdentifier("variable name"); err != nil {
		return err
	}

	for !p.curr().IsSymbol(';') {
		if !p.curr().IsSymbol(',') {
			return p.unexpected("',' or ';'")
		}
		if err := p.consume(); err != nil {
			return err
		}
		if err := p.expectIdentifier("variable name"); err != nil {
			return err
		}
	}
	if err := p.consume(); err != nil {
		return err
	}

	return p.out.Close(nt)
}

// subroutineDec: ('constructor' | 'function' | 'method') ('void' | type)
// subroutineName '(' parameterList ')' subroutineBody
func (p *Parser) parseSubroutineDec() error {
	if err := p.out.Open(ast.NodeTypeSubroutineDec); err != nil {
		return err
	}

	if err := p.expectKeyword(lexer.KeywordConstructor, lexer.KeywordFunction, lexer.KeywordMethod); err != nil {
		return err
	}
	if p.curr().IsKeyword(lexer.KeywordVoid) {
		if err := p.consume(); err != nil {
			return err
		}
	} else if err := p.expectType(); err != nil {
		return err
	}
	if err := p.expectIdentifier("subroutine name"); err != nil {
		return err
	}
	if err := p.expectSymbol('('); err != nil {
		return err
	}
	if err := p.parseParameterList(); err != nil {
		return err
	}
	if err := p.expectSymbol(')'); err != nil {
		return err
	}
	if err := p.parseSubroutineBody(); err != nil {
		return err
	}

	return p.out.Close(ast.NodeTypeSubroutineDec)
}

// parameterList: ((type varName) (',' type varName)*)?
//
// A type is never a symbol, so any symbol here means the list is empty. The
// closing parenthesis belongs to the caller.
func (p *Parser) parseParameterList() error {
	if err := p.out.Open(ast.NodeTypeParameterList); err != nil {
		return err
	}

	if !p.curr().Is(lexer.TokenSymbol) {
		if err := p.parseParameter(); err != nil {
			return err
		}
		for p.curr().IsSymbol(',') {
			if err := p.consume(); err != nil {
				return err
			}
			if err := p.parseParameter(); err != nil {
				return err
			}
		}
	}

	return p.out.Close(ast.NodeTypeParameterList)
}

func (p *Parser) parseParameter() error {
	if err := p.expectType(); err != nil {
		return err
	}
	return p.expectIdentifier("parameter name")
}

// subroutineBody: '{' varDec* statements '}'
func (p *Parser) parseSubroutineBody() error {
	if err := p.out.Open(ast.NodeTypeSubroutineBody); err != nil {
		return err
	}

	if err := p.expectSymbol('{'); err != nil {
		return err
	}
	for p.curr().IsKeyword(lexer.KeywordVar) {
		if err := p.parseVarDec(); err != nil {
			return err
		}
	}
	if err := p.parseStatements(); err != nil {
		return err
	}
	if err := p.expectSymbol('}'); err != nil {
		return err
	}

	return p.out.Close(ast.NodeTypeSubroutineBody)
}

// statements: statement*
func (p *Parser) parseStatements() error {
	if err := p.out.Open(ast.NodeTypeStatements); err != nil {
		return err
	}

loop:
	for {
		kw, ok := p.curr().Keyword()
		if !ok {
			break
		}

		var err error
		switch kw {
		case lexer.KeywordLet:
			err = p.parseLet()
		case lexer.KeywordIf:
			err = p.parseIf()
		case lexer.KeywordWhile:
			err = p.parseWhile()
		case lexer.KeywordDo:
			err = p.parseDo()
		case lexer.KeywordReturn:
			err = p.parseReturn()
		default:
			break loop
		}
		if err != nil {
			return err
		}
	}

	return p.out.Close(ast.NodeTypeStatements)
}

// letStatement: 'let' varName ('[' expression ']')? '=' expression ';'
func (p *Parser) parseLet() error {
	if err := p.out.Open(ast.NodeTypeLetStatement); err != nil {
		return err
	}

	if err := p.expectKeyword(lexer.KeywordLet); err != nil {
		return err
	}
	if err := p.expectIdentifier("variable name"); err != nil {
		return err
	}
	if p.curr().IsSymbol('[') {
		if err := p.parseIndex(); err != nil {
			return err
		}
	}
	if err := p.expectSymbol('='); err != nil {
		return err
	}
	if err := p.parseExpression(); err != nil {
		return err
	}
	if err := p.expectSymbol(';'); err != nil {
		return err
	}

	return p.out.Close(ast.NodeTypeLetStatement)
}

// ifStatement: 'if' '(' expression ')' '{' statements '}'
// ('else' '{' statements '}')?
func (p *Parser) parseIf() error {
	if err := p.out.Open(ast.NodeTypeIfStatement); err != nil {
		return err
	}

	if err := p.expectKeyword(lexer.KeywordIf); err != nil {
		return err
	}
	if err := p.parseCondition(); err != nil {
		return err
	}
	if err := p.parseBlock(); err != nil {
		return err
	}
	if p.curr().IsKeyword(lexer.KeywordElse) {
		if err := p.consume(); err != nil {
			return err
		}
		if err := p.parseBlock(); err != nil {
			return err
		}
	}

	return p.out.Close(ast.NodeTypeIfStatement)
}

// whileStatement: 'while' '(' expression ')' '{' statements '}'
func (p *Parser) parseWhile() error {
	if err := p.out.Open(ast.NodeTypeWhileStatement); err != nil {
		return err
	}

	if err := p.expectKeyword(lexer.KeywordWhile); err != nil {
		return err
	}
	if err := p.parseCondition(); err != nil {
		return err
	}
	if err := p.parseBlock(); err != nil {
		return err
	}

	return p.out.Close(ast.NodeTypeWhileStatement)
}

// '(' expression ')'
func (p *Parser) parseCondition() error {
	if err := p.expectSymbol('('); err != nil {
		return err
	}
	if err := p.parseExpression(); err != nil {
		return err
	}
	return p.expectSymbol(')')
}

// '{' statements '}'
func (p *Parser) parseBlock() error {
	if err := p.expectSymbol('{'); err != nil {
		return err
	}
	if err := p.parseStatements(); err != nil {
		return err
	}
	return p.expectSymbol('}')
}

// '[' expression ']'
func (p *Parser) parseIndex() error {
	if err := p.expectSymbol('['); err != nil {
		return err
	}
	if err := p.parseExpression(); err != nil {
		return err
	}
	return p.expectSymbol(']')
}

// doStatement: 'do' subroutineCall ';'
//
// Unlike a term, the name after 'do' is followed directly by the call
// suffix; an indexed receiver is rejected.
func (p *Parser) parseDo() error {
	if err := p.out.Open(ast.NodeTypeDoStatement); err != nil {
		return err
	}

	if err := p.expectKeyword(lexer.KeywordDo); err != nil {
		return err
	}
	if err := p.expectIdentifier("subroutine, class or variable name"); err != nil {
		return err
	}
	if _, err := p.parseSubroutineCall(); err != nil {
		return err
	}
	if err := p.expectSymbol(';'); err != nil {
		return err
	}

	return p.out.Close(ast.NodeTypeDoStatement)
}

// returnStatement: 'return' expression? ';'
func (p *Parser) parseReturn() error {
	if err := p.out.Open(ast.NodeTypeReturnStatement); err != nil {
		return err
	}

	if err := p.expectKeyword(lexer.KeywordReturn); err != nil {
		return err
	}
	if !p.curr().IsSymbol(';') {
		if err := p.parseExpression(); err != nil {
			return err
		}
	}
	if err := p.expectSymbol(';'); err != nil {
		return err
	}

	return p.out.Close(ast.NodeTypeReturnStatement)
}

// expression: term (op term)*
func (p *Parser) parseExpression() error {
	if err := p.out.Open(ast.NodeTypeExpression); err != nil {
		return err
	}

	if err := p.parseTerm(); err != nil {
		return err
	}
	for p.curr().IsSymbol(binaryOps...) {
		if err := p.consume(); err != nil {
			return err
		}
		if err := p.parseTerm(); err != nil {
			return err
		}
	}

	return p.out.Close(ast.NodeTypeExpression)
}

// term: integerConstant | stringConstant | keywordConstant | varName |
// varName '[' expression ']' | subroutineCall | '(' expression ')' |
// unaryOp term
func (p *Parser) parseTerm() error {
	if err := p.out.Open(ast.NodeTypeTerm); err != nil {
		return err
	}

	tok := p.curr()
	switch {
	case tok.IsSymbol('('):
		if err := p.consume(); err != nil {
			return err
		}
		if err := p.parseExpression(); err != nil {
			return err
		}
		if err := p.expectSymbol(')'); err != nil {
			return err
		}

	case tok.IsSymbol(unaryOps...):
		if err := p.consume(); err != nil {
			return err
		}
		if err := p.parseTerm(); err != nil {
			return err
		}

	case tok.Is(lexer.TokenIntConst),
		tok.Is(lexer.TokenStringConst),
		tok.IsKeyword(lexer.KeywordTrue, lexer.KeywordFalse, lexer.KeywordNull, lexer.KeywordThis):
		if err := p.consume(); err != nil {
			return err
		}

	case tok.Is(lexer.TokenIdentifier):
		if err := p.consume(); err != nil {
			return err
		}
		// The token after the name tells a variable, an array access and a
		// call apart.
		switch {
		case p.curr().IsSymbol('['):
			if err := p.parseIndex(); err != nil {
				return err
			}
		case p.curr().IsSymbol('(', '.'):
			if _, err := p.parseSubroutineCall(); err != nil {
				return err
			}
		}

	default:
		return p.unexpected("term")
	}

	return p.out.Close(ast.NodeTypeTerm)
}

// subroutineCall, after its leading name: ('.' subroutineName)? '('
// expressionList ')'. Returns the number of arguments.
func (p *Parser) parseSubroutineCall() (int, error) {
	if p.curr().IsSymbol('.') {
		if err := p.consume(); err != nil {
			return 0, err
		}
		if err := p.expectIdentifier("subroutine name"); err != nil {
			return 0, err
		}
	}
	if err := p.expectSymbol('('); err != nil {
		return 0, err
	}
	n, err := p.parseExpressionList()
	if err != nil {
		return 0, err
	}
	if err := p.expectSymbol(')'); err != nil {
		return 0, err
	}
	return n, nil
}

// expressionList: (expression (',' expression)*)?
//
// Ends in front of ')', which belongs to the caller. Returns the number of
// expressions.
func (p *Parser) parseExpressionList() (int, error) {
	if err := p.out.Open(ast.NodeTypeExpressionList); err != nil {
		return 0, err
	}

	n := 0
	if !p.curr().IsSymbol(')') {
		if err := p.parseExpression(); err != nil {
			return 0, err
		}
		n++
		for p.curr().IsSymbol(',') {
			if err := p.consume(); err != nil {
				return 0, err
			}
			if err := p.parseExpression(); err != nil {
				return 0, err
			}
			n++
		}
	}

	if err := p.out.Close(ast.NodeTypeExpressionList); err != nil {
		return 0, err
	}
	return n, nil
}

// ParseTokens parses tokens as one class and emits the tree to out.
func ParseTokens(tokens []lexer.Token, out Emitter) error {
	return New(lexer.NewTokenizer(tokens), out).Parse()
}

// ParseReader tokenizes r, parses the result as one class and emits the tree
// to out.
func ParseReader(r io.Reader, out Emitter) error {
	tz, err := lexer.NewTokenizerFromReader(r)
	if err != nil {
		return err
	}
	return New(tz, out).Parse()
}

// Parse parses the source of one class and returns its tree.
func Parse(in []byte) (*ast.Node, error) {
	b := ast.NewBuilder()
	if err := ParseReader(bytes.NewReader(in), b); err != nil {
		return nil, err
	}
	return b.Root(), nil
}
