package main

import (
	"log"

	"github.com/xiam/jack-analyzer/ast"
	"github.com/xiam/jack-analyzer/parser"
)

func main() {
	input := `class Point { field int x, y; method int getX() { return x; } }`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(root)
}
