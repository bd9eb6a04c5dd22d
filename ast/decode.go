package ast

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xiam/jack-analyzer/lexer"
)

var ErrUnknownTag = errors.New("unknown tag")

var leafTokenTypes = map[NodeType]lexer.TokenType{
	NodeTypeKeyword:         lexer.TokenKeyword,
	NodeTypeSymbol:          lexer.TokenSymbol,
	NodeTypeIdentifier:      lexer.TokenIdentifier,
	NodeTypeIntegerConstant: lexer.TokenIntConst,
	NodeTypeStringConstant:  lexer.TokenStringConst,
}

// DecodeTokens reads text produced by a Writer (a parse tree or a token dump)
// and returns the tokens of its leaves, in order. Positions of the returned
// tokens refer to the element in the input, not to the original source.
// String constants containing characters reserved by the format can't be
// decoded.
func DecodeTokens(r io.Reader) ([]lexer.Token, error) {
	dec := xml.NewDecoder(r)
	tokens := []lexer.Token{}

	for {
		t, err := dec.Token()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}

		start, ok := t.(xml.StartElement)
		if !ok {
			continue
		}

		nt, ok := ParseNodeType(start.Name.Local)
		if !ok {
			return nil, fmt.Errorf("%w: <%s>", ErrUnknownTag, start.Name.Local)
		}
		if nt.IsVector() {
			continue
		}

		line, col := dec.InputPos()

		var text string
		if err := dec.DecodeElement(&text, &start); err != nil {
			return nil, err
		}

		text = strings.TrimPrefix(text, " ")
		text = strings.TrimSuffix(text, " ")

		tokens = append(tokens, *lexer.NewToken(leafTokenTypes[nt], text, line, col))
	}
}
