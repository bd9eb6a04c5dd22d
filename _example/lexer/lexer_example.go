package main

import (
	"fmt"
	"log"

	"github.com/xiam/jack-analyzer/lexer"
)

func main() {
	input := `
		// Prints a greeting.
		class Main {
			function void main() {
				do Output.printString("Hello world!");
				return;
			}
		}
	`

	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		line, col := tok.Pos()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tt, line, col, lexeme)
	}
}
