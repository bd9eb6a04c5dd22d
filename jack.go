// Package jack analyzes the syntax of Jack programs and writes their parse
// trees as tagged text, one element per grammar rule.
package jack

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xiam/jack-analyzer/ast"
	"github.com/xiam/jack-analyzer/lexer"
	"github.com/xiam/jack-analyzer/parser"
)

// SourceExt is the extension of Jack source files.
const SourceExt = ".jack"

var (
	ErrNoSources       = errors.New("no source files found")
	ErrOverwriteSource = errors.New("output file would overwrite the source")
)

// Result describes the files produced for one source file.
type Result struct {
	Source string
	Tree   string
	Tokens string
}

// Analyze parses one class read from r and writes its tree to w. Nothing is
// written to w unless the whole class parses.
func Analyze(r io.Reader, w io.Writer, cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	tokens, err := tokenize(r, cfg)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := writeTree(&buf, lexer.NewTokenizer(tokens), cfg); err != nil {
		return err
	}
	_, err = buf.WriteTo(w)
	return err
}

func tokenize(r io.Reader, cfg *Config) ([]lexer.Token, error) {
	lx := lexer.New(r)
	lx.SetLogger(cfg.logger())
	if err := lx.Scan(); err != nil {
		return nil, err
	}
	return lx.Tokens(), nil
}

// DumpTokens writes the tokens read from r to w, wrapped in a <tokens>
// element.
func DumpTokens(r io.Reader, w io.Writer) error {
	lx := lexer.New(r)
	if err := lx.Scan(); err != nil {
		return err
	}
	return ast.WriteTokens(w, lx.Tokens())
}

func writeTree(w io.Writer, tz *lexer.Tokenizer, cfg *Config) error {
	wr := ast.NewWriterIndent(w, cfg.Indent)
	if err := parser.New(tz, wr).Parse(); err != nil {
		return err
	}
	return wr.Flush()
}

// AnalyzeFile parses the source file src and writes its tree, and its token
// dump if enabled, next to it or into cfg.OutputDir. No output file is left
// behind when the source is invalid.
func AnalyzeFile(src string, cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.logger()

	res := &Result{
		Source: src,
		Tree:   cfg.outputPath(src, cfg.Extension),
	}
	if cfg.Tokens {
		res.Tokens = cfg.outputPath(src, cfg.TokensSuffix)
	}
	for _, dst := range []string{res.Tree, res.Tokens} {
		if dst != "" && samePath(dst, src) {
			return nil, fmt.Errorf("%s: %w: %s", src, ErrOverwriteSource, dst)
		}
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return nil, err
	}

	tokens, err := tokenize(bytes.NewReader(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}

	if cfg.Tokens {
		err := writeFile(res.Tokens, func(w io.Writer) error {
			return ast.WriteTokens(w, tokens)
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src, err)
		}
		logger.Printf("wrote %s (%d tokens)", res.Tokens, len(tokens))
	}

	err = writeFile(res.Tree, func(w io.Writer) error {
		return writeTree(w, lexer.NewTokenizer(tokens), cfg)
	})
	if err != nil {
		if res.Tokens != "" {
			_ = os.Remove(res.Tokens)
		}
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	logger.Printf("wrote %s", res.Tree)

	return res, nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// writeFile creates dst and passes it to fn. The file is closed on every path
// and removed if anything fails.
func writeFile(dst string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(dst)
		}
	}()
	return fn(f)
}

// Sources returns the source files named by path: path itself if it is a
// file, or the Jack files directly inside it if it is a directory.
func Sources(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	files := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), SourceExt) {
			continue
		}
		files = append(files, filepath.Join(path, entry.Name()))
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoSources, path)
	}
	sort.Strings(files)
	return files, nil
}

// AnalyzePath analyzes a single source file or every source file in a
// directory, one after the other. It stops at the first failure, or before
// the next file once ctx is done.
func AnalyzePath(ctx context.Context, path string, cfg *Config) ([]*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	files, err := Sources(path)
	if err != nil {
		return nil, err
	}

	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return nil, err
		}
	}

	results := make([]*Result, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		cfg.logger().Printf("analyzing %s", file)

		res, err := AnalyzeFile(file, cfg)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// AnalyzeBytes is a convenience wrapper around Analyze for in-memory sources.
func AnalyzeBytes(in []byte, cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := Analyze(bytes.NewReader(in), &buf, cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
