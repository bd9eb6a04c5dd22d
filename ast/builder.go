package ast

import (
	"errors"
	"fmt"

	"github.com/xiam/jack-analyzer/lexer"
)

var ErrMultipleRoots = errors.New("tree already has a root")

// Builder collects emitted elements into a tree of nodes.
type Builder struct {
	root  *Node
	stack []*Node
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Root returns the outermost node, or nil if nothing was emitted.
func (b *Builder) Root() *Node {
	return b.root
}

// Open starts a new interior node under the current one.
func (b *Builder) Open(nt NodeType) error {
	node := NewNode(nt)
	if len(b.stack) == 0 {
		if b.root != nil {
			return ErrMultipleRoots
		}
		b.root = node
	} else if err := b.stack[len(b.stack)-1].Push(node); err != nil {
		return err
	}
	b.stack = append(b.stack, node)
	return nil
}

// Close ends the current node, which must be of type nt.
func (b *Builder) Close(nt NodeType) error {
	if len(b.stack) == 0 {
		return fmt.Errorf("%w: </%s>", ErrNoOpenTag, nt)
	}
	if top := b.stack[len(b.stack)-1]; top.nt != nt {
		return fmt.Errorf("%w: <%s> closed by </%s>", ErrTagMismatch, top.nt, nt)
	}
	b.stack = b.stack[:len(b.stack)-1]
	return nil
}

// Token appends a leaf to the current node.
func (b *Builder) Token(tok lexer.Token) error {
	if len(b.stack) == 0 {
		return fmt.Errorf("%w: %v", ErrNoOpenTag, tok)
	}
	_, err := b.stack[len(b.stack)-1].PushLeaf(tok)
	return err
}
