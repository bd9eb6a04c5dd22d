package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/jack-analyzer/lexer"
)

func TestNode(t *testing.T) {
	token := *lexer.NewToken(lexer.TokenIdentifier, "x", 1, 1)

	node, err := NewLeaf(token)
	require.NoError(t, err)
	assert.Equal(t, NodeTypeIdentifier, node.Type())
	assert.True(t, node.IsValue())

	_, err = node.PushLeaf(token)
	assert.ErrorIs(t, err, ErrNotAVector)
}

func TestNodeList(t *testing.T) {
	token := *lexer.NewToken(lexer.TokenKeyword, "let", 1, 1)

	stmt := NewNode(NodeTypeLetStatement)
	leaf, err := stmt.PushLeaf(token)
	assert.NoError(t, err)
	assert.Equal(t, stmt, leaf.Parent())

	expr, err := stmt.PushNode(NodeTypeExpression)
	assert.NoError(t, err)
	assert.Equal(t, stmt, expr.Parent())

	assert.Len(t, stmt.List(), 2)
	assert.Len(t, stmt.Find(NodeTypeExpression), 1)
	assert.Equal(t, "(letStatement)[2]", stmt.String())
	assert.Equal(t, "(keyword): let", leaf.String())
}

func TestNewLeafInvalid(t *testing.T) {
	_, err := NewLeaf(*lexer.NewToken(lexer.TokenEOF, "", 0, 0))
	assert.ErrorIs(t, err, ErrNotALeafType)
}

func TestNodeTypes(t *testing.T) {
	testCases := []struct {
		NodeType NodeType
		Tag      string
		Vector   bool
	}{
		{NodeTypeClass, "class", true},
		{NodeTypeClassVarDec, "classVarDec", true},
		{NodeTypeSubroutineDec, "subroutineDec", true},
		{NodeTypeParameterList, "parameterList", true},
		{NodeTypeSubroutineBody, "subroutineBody", true},
		{NodeTypeVarDec, "varDec", true},
		{NodeTypeStatements, "statements", true},
		{NodeTypeLetStatement, "letStatement", true},
		{NodeTypeIfStatement, "ifStatement", true},
		{NodeTypeWhileStatement, "whileStatement", true},
		{NodeTypeDoStatement, "doStatement", true},
		{NodeTypeReturnStatement, "returnStatement", true},
		{NodeTypeExpression, "expression", true},
		{NodeTypeTerm, "term", true},
		{NodeTypeExpressionList, "expressionList", true},
		{NodeTypeKeyword, "keyword", false},
		{NodeTypeSymbol, "symbol", false},
		{NodeTypeIdentifier, "identifier", false},
		{NodeTypeIntegerConstant, "integerConstant", false},
		{NodeTypeStringConstant, "stringConstant", false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Tag, tc.NodeType.String())
		assert.Equal(t, tc.Vector, tc.NodeType.IsVector(), tc.Tag)
		assert.Equal(t, !tc.Vector, tc.NodeType.IsValue(), tc.Tag)

		nt, ok := ParseNodeType(tc.Tag)
		assert.True(t, ok)
		assert.Equal(t, tc.NodeType, nt)
	}

	_, ok := ParseNodeType("Class")
	assert.False(t, ok)
}

func TestTokens(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Open(NodeTypeReturnStatement))
	require.NoError(t, b.Token(*lexer.NewToken(lexer.TokenKeyword, "return", 1, 1)))
	require.NoError(t, b.Open(NodeTypeExpression))
	require.NoError(t, b.Open(NodeTypeTerm))
	require.NoError(t, b.Token(*lexer.NewToken(lexer.TokenIdentifier, "x", 1, 8)))
	require.NoError(t, b.Close(NodeTypeTerm))
	require.NoError(t, b.Close(NodeTypeExpression))
	require.NoError(t, b.Token(*lexer.NewToken(lexer.TokenSymbol, ";", 1, 9)))
	require.NoError(t, b.Close(NodeTypeReturnStatement))

	texts := []string{}
	for _, tok := range Tokens(b.Root()) {
		texts = append(texts, tok.Text())
	}
	assert.Equal(t, []string{"return", "x", ";"}, texts)
	assert.Empty(t, Tokens(nil))
}
