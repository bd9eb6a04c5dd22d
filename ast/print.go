package ast

import (
	"bytes"
	"fmt"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n *Node) {
	printLevel(n, 0)
}

func printLevel(n *Node, level int) {
	if n == nil {
		fmt.Printf(":nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	if n.IsVector() {
		fmt.Printf("%s(%s)[%d]\n", indent, n.Type(), len(n.List()))
		list := n.List()
		for i := range list {
			printLevel(list[i], level+1)
		}
		return
	}
	fmt.Printf("%s(%s): %q (%v)\n", indent, n.Type(), n.Token().Text(), n.Token())
}

// Encode transforms a node into its tagged text representation
func Encode(n *Node) ([]byte, error) {
	return EncodeIndent(n, DefaultIndent)
}

// EncodeIndent is like Encode with a custom indentation unit.
func EncodeIndent(n *Node, indent string) ([]byte, error) {
	var buf bytes.Buffer
	wr := NewWriterIndent(&buf, indent)
	if n != nil {
		if err := encodeNode(wr, n); err != nil {
			return nil, err
		}
	}
	if err := wr.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeNode(wr *Writer, n *Node) error {
	if n.IsValue() {
		return wr.Token(*n.Token())
	}
	if err := wr.Open(n.Type()); err != nil {
		return err
	}
	for _, c := range n.List() {
		if err := encodeNode(wr, c); err != nil {
			return err
		}
	}
	return wr.Close(n.Type())
}
