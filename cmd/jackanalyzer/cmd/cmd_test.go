package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	color.NoColor = true
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeSource(t *testing.T, dir string, name string, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestAnalyzeCommand(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "Foo.jack", `class Foo { }`)
	writeSource(t, dir, "Bar.jack", `class Bar { field int x; }`)
	out := filepath.Join(dir, "out")

	stdout, stderr, err := run(t, "analyze", "--tokens", "--out-dir", out, "--indent", "  ", dir)
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "ok "+filepath.Join(dir, "Bar.jack")+" -> "+filepath.Join(out, "Bar.xml"))
	assert.Contains(t, stdout, "ok "+filepath.Join(dir, "Foo.jack")+" -> "+filepath.Join(out, "Foo.xml"))

	tree, err := os.ReadFile(filepath.Join(out, "Foo.xml"))
	require.NoError(t, err)
	assert.Equal(t, "<class>\n  <keyword> class </keyword>\n  <identifier> Foo </identifier>\n  <symbol> { </symbol>\n  <symbol> } </symbol>\n</class>\n", string(tree))

	assert.FileExists(t, filepath.Join(out, "FooT.xml"))
	assert.FileExists(t, filepath.Join(out, "BarT.xml"))
}

func TestAnalyzeCommandConfig(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "Foo.jack", `class Foo { }`)
	cfg := writeSource(t, dir, "jack.toml", "extension = \".tree.xml\"\ntokens = true\n")

	_, _, err := run(t, "--config", cfg, "analyze", filepath.Join(dir, "Foo.jack"))
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "Foo.tree.xml"))
	assert.FileExists(t, filepath.Join(dir, "FooT.xml"))

	// Flags take precedence over the config file.
	require.NoError(t, os.Remove(filepath.Join(dir, "FooT.xml")))
	_, _, err = run(t, "--config", cfg, "analyze", "--tokens=false", filepath.Join(dir, "Foo.jack"))
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "FooT.xml"))
}

func TestAnalyzeCommandVerbose(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "Foo.jack", `class Foo { }`)

	_, stderr, err := run(t, "-v", "analyze", src)
	require.NoError(t, err)
	assert.Contains(t, stderr, "jackanalyzer: analyzing "+src)
}

func TestAnalyzeCommandErrors(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "Foo.jack", "class Foo {\n  function void f() {\n    let x = 1\n  }\n}\n")

	stdout, stderr, err := run(t, "analyze", src)
	require.Error(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "error: ")
	assert.Contains(t, stderr, "unexpected token \"}\" at line 4, column 3")
	assert.NoFileExists(t, filepath.Join(dir, "Foo.xml"))

	_, _, err = run(t, "analyze")
	assert.Error(t, err)

	_, stderr, err = run(t, "analyze", "--indent", "x", src)
	assert.Error(t, err)
	assert.Contains(t, stderr, "invalid configuration")
}

func TestAnalyzeCommandLexerError(t *testing.T) {
	src := writeSource(t, t.TempDir(), "Foo.jack", "class Foo { # }")

	_, stderr, err := run(t, "analyze", src)
	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(stderr, "unexpected character"), stderr)
	assert.NotContains(t, stderr, "lexer error")
}

func TestTokensCommand(t *testing.T) {
	src := writeSource(t, t.TempDir(), "Foo.jack", `class Foo { }`)

	stdout, _, err := run(t, "tokens", src)
	require.NoError(t, err)
	assert.Equal(t, "<tokens>\n<keyword> class </keyword>\n<identifier> Foo </identifier>\n<symbol> { </symbol>\n<symbol> } </symbol>\n</tokens>\n", stdout)

	_, _, err = run(t, "tokens", filepath.Join(t.TempDir(), "missing.jack"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "jackanalyzer v"+Version)
}
