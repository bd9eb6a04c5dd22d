package ast

import (
	"errors"
	"fmt"

	"github.com/xiam/jack-analyzer/lexer"
)

var (
	ErrNotAVector   = errors.New("nodes of type value can't accept children")
	ErrNotALeafType = errors.New("token type has no leaf representation")
)

// Node represents an element of the parse tree
type Node struct {
	p *Node

	nt  NodeType
	tok *lexer.Token

	children []*Node
}

func newNode(nt NodeType, tok *lexer.Token) *Node {
	return &Node{
		nt:  nt,
		tok: tok,
	}
}

// NewNode creates and returns an orphaned interior node
func NewNode(nt NodeType) *Node {
	return newNode(nt, nil)
}

// NewLeaf creates and returns an orphaned node that wraps a token
func NewLeaf(tok lexer.Token) (*Node, error) {
	nt, ok := LeafType(tok.Type())
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotALeafType, tok)
	}
	return newNode(nt, &tok), nil
}

// PushNode appends a new interior node to the node
func (n *Node) PushNode(nt NodeType) (*Node, error) {
	node := NewNode(nt)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// PushLeaf appends a new token leaf to the node
func (n *Node) PushLeaf(tok lexer.Token) (*Node, error) {
	node, err := NewLeaf(tok)
	if err != nil {
		return nil, err
	}
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// Push appends a child node to an interior node.
func (n *Node) Push(node *Node) error {
	if !n.IsVector() {
		return ErrNotAVector
	}
	n.children = append(n.children, node)
	node.p = n
	return nil
}

// Token returns the token associated to a leaf node
func (n Node) Token() *lexer.Token {
	return n.tok
}

// Type returns the type of the node
func (n Node) Type() NodeType {
	return n.nt
}

// List returns all the children elements of the node
func (n *Node) List() []*Node {
	return n.children
}

// Find returns the direct children of the given type.
func (n *Node) Find(nt NodeType) []*Node {
	found := []*Node{}
	for _, c := range n.children {
		if c.nt == nt {
			found = append(found, c)
		}
	}
	return found
}

func (n Node) String() string {
	if n.IsVector() {
		return fmt.Sprintf("(%v)[%d]", n.nt, len(n.children))
	}
	return fmt.Sprintf("(%v): %v", n.nt, n.tok.Text())
}

// IsValue returns true if the node wraps a token
func (n *Node) IsValue() bool {
	return n.nt.IsValue()
}

// IsVector returns true if the node has children
func (n *Node) IsVector() bool {
	return n.nt.IsVector()
}

func (n *Node) Parent() *Node {
	return n.p
}

// Tokens returns the tokens of all the leaves under n, in order.
func Tokens(n *Node) []lexer.Token {
	tokens := []lexer.Token{}
	var walk func(*Node)
	walk = func(n *Node) {
		if n.IsValue() {
			tokens = append(tokens, *n.tok)
			return
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	if n != nil {
		walk(n)
	}
	return tokens
}
