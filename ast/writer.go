package ast

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xiam/jack-analyzer/lexer"
)

// DefaultIndent is the indentation unit used when none is given.
const DefaultIndent = "    "

var (
	ErrTagMismatch = errors.New("closing tag does not match the open element")
	ErrNoOpenTag   = errors.New("no open element")
)

var symbolEscapes = map[string]string{
	"<":  "&lt;",
	">":  "&gt;",
	"\"": "&quot;",
	"&":  "&amp;",
}

// EscapeSymbol replaces the characters reserved by the output format.
func EscapeSymbol(s string) string {
	if v, ok := symbolEscapes[s]; ok {
		return v
	}
	return s
}

// Writer renders a parse tree as indented tagged text while it is being
// emitted. Each element is written on its own line; leaves are written as
// "<kind> value </kind>".
type Writer struct {
	w      *bufio.Writer
	indent string

	depth int
	open  []NodeType
}

// NewWriter creates a Writer that uses DefaultIndent.
func NewWriter(w io.Writer) *Writer {
	return NewWriterIndent(w, DefaultIndent)
}

// NewWriterIndent creates a Writer with the given indentation unit.
func NewWriterIndent(w io.Writer, indent string) *Writer {
	return &Writer{
		w:      bufio.NewWriter(w),
		indent: indent,
	}
}

// Depth returns the current indentation depth.
func (wr *Writer) Depth() int {
	return wr.depth
}

// Open writes the opening tag of an interior element.
func (wr *Writer) Open(nt NodeType) error {
	if _, err := fmt.Fprintf(wr.w, "%s<%s>\n", wr.prefix(), nt); err != nil {
		return err
	}
	wr.open = append(wr.open, nt)
	wr.depth++
	return nil
}

// Close writes the closing tag of the innermost open element, which must be
// of type nt.
func (wr *Writer) Close(nt NodeType) error {
	if len(wr.open) == 0 {
		return fmt.Errorf("%w: </%s>", ErrNoOpenTag, nt)
	}
	if top := wr.open[len(wr.open)-1]; top != nt {
		return fmt.Errorf("%w: <%s> closed by </%s>", ErrTagMismatch, top, nt)
	}
	wr.open = wr.open[:len(wr.open)-1]
	wr.depth--
	_, err := fmt.Fprintf(wr.w, "%s</%s>\n", wr.prefix(), nt)
	return err
}

// Token writes a leaf element.
func (wr *Writer) Token(tok lexer.Token) error {
	nt, ok := LeafType(tok.Type())
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotALeafType, tok)
	}
	_, err := fmt.Fprintf(wr.w, "%s<%s> %s </%s>\n", wr.prefix(), nt, leafValue(tok), nt)
	return err
}

// Flush writes any buffered data to the underlying writer.
func (wr *Writer) Flush() error {
	return wr.w.Flush()
}

func (wr *Writer) prefix() string {
	return strings.Repeat(wr.indent, wr.depth)
}

func leafValue(tok lexer.Token) string {
	switch tok.Type() {
	case lexer.TokenSymbol:
		return EscapeSymbol(tok.Text())
	case lexer.TokenIntConst:
		if i, ok := tok.IntValue(); ok {
			return strconv.Itoa(i)
		}
	}
	return tok.Text()
}

// WriteTokens writes a flat token dump wrapped in a single <tokens> element.
func WriteTokens(w io.Writer, tokens []lexer.Token) error {
	wr := NewWriterIndent(w, "")
	if err := wr.Open(NodeTypeTokens); err != nil {
		return err
	}
	for i := range tokens {
		if err := wr.Token(tokens[i]); err != nil {
			return err
		}
	}
	if err := wr.Close(NodeTypeTokens); err != nil {
		return err
	}
	return wr.Flush()
}
