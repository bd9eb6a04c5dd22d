package ast

import (
	"github.com/xiam/jack-analyzer/lexer"
)

// NodeType represents the type of a node of the parse tree
type NodeType uint16

const (
	nodeTypeValue  NodeType = 128
	nodeTypeVector NodeType = 256
)

// Leaf node types, one per kind of token
const (
	NodeTypeKeyword NodeType = nodeTypeValue + iota + 1
	NodeTypeSymbol
	NodeTypeIdentifier
	NodeTypeIntegerConstant
	NodeTypeStringConstant
)

// Interior node types, one per grammar rule
const (
	NodeTypeClass NodeType = nodeTypeVector + iota + 1
	NodeTypeClassVarDec
	NodeTypeSubroutineDec
	NodeTypeParameterList
	NodeTypeSubroutineBody
	NodeTypeVarDec
	NodeTypeStatements
	NodeTypeLetStatement
	NodeTypeIfStatement
	NodeTypeWhileStatement
	NodeTypeDoStatement
	NodeTypeReturnStatement
	NodeTypeExpression
	NodeTypeTerm
	NodeTypeExpressionList

	// NodeTypeTokens is the root of a flat token dump.
	NodeTypeTokens
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

// IsValue returns true if nodes of this type hold a single token
func (nt NodeType) IsValue() bool {
	return nt&nodeTypeValue > 0
}

// IsVector returns true if nodes of this type hold children
func (nt NodeType) IsVector() bool {
	return nt&nodeTypeVector > 0
}

var nodeTypeName = map[NodeType]string{
	NodeTypeKeyword:         "keyword",
	NodeTypeSymbol:          "symbol",
	NodeTypeIdentifier:      "identifier",
	NodeTypeIntegerConstant: "integerConstant",
	NodeTypeStringConstant:  "stringConstant",

	NodeTypeClass:           "class",
	NodeTypeClassVarDec:     "classVarDec",
	NodeTypeSubroutineDec:   "subroutineDec",
	NodeTypeParameterList:   "parameterList",
	NodeTypeSubroutineBody:  "subroutineBody",
	NodeTypeVarDec:          "varDec",
	NodeTypeStatements:      "statements",
	NodeTypeLetStatement:    "letStatement",
	NodeTypeIfStatement:     "ifStatement",
	NodeTypeWhileStatement:  "whileStatement",
	NodeTypeDoStatement:     "doStatement",
	NodeTypeReturnStatement: "returnStatement",
	NodeTypeExpression:      "expression",
	NodeTypeTerm:            "term",
	NodeTypeExpressionList:  "expressionList",
	NodeTypeTokens:          "tokens",
}

var leafTypes = map[lexer.TokenType]NodeType{
	lexer.TokenKeyword:     NodeTypeKeyword,
	lexer.TokenSymbol:      NodeTypeSymbol,
	lexer.TokenIdentifier:  NodeTypeIdentifier,
	lexer.TokenIntConst:    NodeTypeIntegerConstant,
	lexer.TokenStringConst: NodeTypeStringConstant,
}

// LeafType returns the node type used to render a token of the given type.
func LeafType(tt lexer.TokenType) (NodeType, bool) {
	nt, ok := leafTypes[tt]
	return nt, ok
}

// ParseNodeType returns the node type named by tag.
func ParseNodeType(tag string) (NodeType, bool) {
	for nt, name := range nodeTypeName {
		if name == tag {
			return nt, true
		}
	}
	return 0, false
}
