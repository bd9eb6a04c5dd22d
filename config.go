package jack

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/xiam/jack-analyzer/ast"
)

var (
	ErrUnknownConfigFormat = errors.New("unknown configuration format")
	ErrInvalidConfig       = errors.New("invalid configuration")
)

// Config controls where and how the analyzer writes its output.
type Config struct {
	// Indent is the indentation unit of the tagged output.
	Indent string `toml:"indent" yaml:"indent"`

	// Extension replaces the source extension in the name of the tree file.
	Extension string `toml:"extension" yaml:"extension"`

	// TokensSuffix replaces the source extension in the name of the token
	// dump file.
	TokensSuffix string `toml:"tokens_suffix" yaml:"tokens_suffix"`

	// OutputDir is where output files are written. Empty means next to each
	// source file.
	OutputDir string `toml:"output_dir" yaml:"output_dir"`

	// Tokens enables the token dump.
	Tokens bool `toml:"tokens" yaml:"tokens"`

	Logger *log.Logger `toml:"-" yaml:"-"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() *Config {
	return &Config{
		Indent:       ast.DefaultIndent,
		Extension:    ".xml",
		TokensSuffix: "T.xml",
	}
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) file on top of the
// default configuration.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownConfigFormat, path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that output file names can be derived from the
// configuration.
func (c *Config) Validate() error {
	if c.Extension == "" {
		return fmt.Errorf("%w: extension can't be empty", ErrInvalidConfig)
	}
	if c.TokensSuffix == "" {
		return fmt.Errorf("%w: tokens_suffix can't be empty", ErrInvalidConfig)
	}
	if c.Extension == c.TokensSuffix {
		return fmt.Errorf("%w: extension and tokens_suffix must differ", ErrInvalidConfig)
	}
	if strings.EqualFold(c.Extension, SourceExt) {
		return fmt.Errorf("%w: extension can't be %q", ErrInvalidConfig, SourceExt)
	}
	if strings.EqualFold(c.TokensSuffix, SourceExt) {
		return fmt.Errorf("%w: tokens_suffix can't be %q", ErrInvalidConfig, SourceExt)
	}
	if strings.Trim(c.Indent, " \t") != "" {
		return fmt.Errorf("%w: indent must be made of spaces and tabs", ErrInvalidConfig)
	}
	return nil
}

func (c *Config) logger() *log.Logger {
	if c.Logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return c.Logger
}

// outputPath returns the path of the file derived from src with the given
// suffix in place of its extension.
func (c *Config) outputPath(src string, suffix string) string {
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	dir := c.OutputDir
	if dir == "" {
		dir = filepath.Dir(src)
	}
	return filepath.Join(dir, base+suffix)
}
