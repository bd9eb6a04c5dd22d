package jack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "    ", cfg.Indent)
	assert.Equal(t, ".xml", cfg.Extension)
	assert.Equal(t, "T.xml", cfg.TokensSuffix)
	assert.False(t, cfg.Tokens)
	assert.Equal(t, filepath.Join("a", "b", "Main.xml"), cfg.outputPath(filepath.Join("a", "b", "Main.jack"), cfg.Extension))

	cfg.OutputDir = "out"
	assert.Equal(t, filepath.Join("out", "MainT.xml"), cfg.outputPath(filepath.Join("a", "Main.jack"), cfg.TokensSuffix))
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeConfig(t, "jack.toml", `
indent = "  "
output_dir = "build"
tokens = true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "  ", cfg.Indent)
	assert.Equal(t, "build", cfg.OutputDir)
	assert.True(t, cfg.Tokens)
	assert.Equal(t, ".xml", cfg.Extension)
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeConfig(t, "jack.yml", `
indent: "\t"
extension: .out.xml
tokens_suffix: .tokens.xml
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "\t", cfg.Indent)
	assert.Equal(t, ".out.xml", cfg.Extension)
	assert.Equal(t, ".tokens.xml", cfg.TokensSuffix)
	assert.Empty(t, cfg.OutputDir)
}

func TestLoadConfigErrors(t *testing.T) {
	testCases := []struct {
		Name    string
		Content string
		Err     error
	}{
		{"jack.json", `{}`, ErrUnknownConfigFormat},
		{"jack.toml", `extension = ""`, ErrInvalidConfig},
		{"jack.yaml", `indent: "xx"`, ErrInvalidConfig},
		{"jack.yaml", `tokens_suffix: .xml`, ErrInvalidConfig},
		{"jack.toml", `extension = ".jack"`, ErrInvalidConfig},
		{"jack.yaml", `extension: .JACK`, ErrInvalidConfig},
		{"jack.yml", `tokens_suffix: .jack`, ErrInvalidConfig},
	}

	for i := range testCases {
		path := writeConfig(t, testCases[i].Name, testCases[i].Content)
		_, err := LoadConfig(path)
		assert.ErrorIs(t, err, testCases[i].Err, "config: %s %q", testCases[i].Name, testCases[i].Content)
	}

	_, err := LoadConfig(writeConfig(t, "jack.toml", `indent = `))
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
