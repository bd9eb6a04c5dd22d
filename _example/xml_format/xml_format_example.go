package main

import (
	"log"
	"os"
	"strings"

	"github.com/xiam/jack-analyzer/ast"
	"github.com/xiam/jack-analyzer/lexer"
	"github.com/xiam/jack-analyzer/parser"
)

func main() {
	input := `class Main { function void main() { let a[i] = x < (y + 1); return; } }`

	tz, err := lexer.NewTokenizerFromReader(strings.NewReader(input))
	if err != nil {
		log.Fatal("lexer.NewTokenizerFromReader:", err)
	}

	// The tree is written while it is parsed, it never lives in memory.
	w := ast.NewWriterIndent(os.Stdout, "  ")
	if err := parser.New(tz, w).Parse(); err != nil {
		log.Fatal("parser.Parse:", err)
	}
	if err := w.Flush(); err != nil {
		log.Fatal("ast.Writer.Flush:", err)
	}
}
