// Package config loads the settings shared by the CLI, the REPL and the
// language server. Files may be TOML or YAML; the format follows the file
// extension.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

const (
	RenderCanonical = "canonical"
	RenderTree      = "tree"

	EnginePratt   = "pratt"
	EngineGrammar = "grammar"
)

var (
	ErrEmptyPath = errors.New("config file path cannot be empty")
	ErrInvalid   = errors.New("invalid configuration")
)

type Config struct {
	Color  bool      `toml:"color" yaml:"color"`
	Prompt string    `toml:"prompt" yaml:"prompt"`
	Render string    `toml:"render" yaml:"render"`
	Engine string    `toml:"engine" yaml:"engine"`
	Log    LogConfig `toml:"log" yaml:"log"`
}

type LogConfig struct {
	// Verbosity follows commonlog: 0 is errors only, higher is chattier
	Verbosity int `toml:"verbosity" yaml:"verbosity"`
	// File is the log destination; empty means stderr
	File string `toml:"file" yaml:"file"`
}

func Default() *Config {
	return &Config{
		Color:  true,
		Prompt: ">> ",
		Render: RenderCanonical,
		Engine: EnginePratt,
	}
}

// Load reads a config file over the defaults, so keys missing from the file
// keep their default value.
func Load(filePath string) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, ErrEmptyPath
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := parseContent(content, detectFormat(filePath), cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return cfg, nil
}

// LoadOrDefault returns the defaults for an empty path and loads the file otherwise.
func LoadOrDefault(filePath string) (*Config, error) {
	if filePath == "" {
		return Default(), nil
	}
	return Load(filePath)
}

func (c *Config) Validate() error {
	switch c.Render {
	case RenderCanonical, RenderTree:
	default:
		return fmt.Errorf("%w: render must be %q or %q, got %q", ErrInvalid, RenderCanonical, RenderTree, c.Render)
	}

	switch c.Engine {
	case EnginePratt, EngineGrammar:
	default:
		return fmt.Errorf("%w: engine must be %q or %q, got %q", ErrInvalid, EnginePratt, EngineGrammar, c.Engine)
	}

	if c.Log.Verbosity < 0 {
		return fmt.Errorf("%w: log verbosity cannot be negative", ErrInvalid)
	}
	return nil
}

// LogFile returns the log path in the form commonlog.Configure expects.
func (c *Config) LogFile() *string {
	if c.Log.File == "" {
		return nil
	}
	return &c.Log.File
}

// Encode writes the config in the given format.
func (c *Config) Encode(format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return nil, fmt.Errorf("TOML encode error: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return nil, fmt.Errorf("YAML encode error: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	return buf.Bytes(), nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parseContent(content []byte, format Format, cfg *Config) error {
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(content), cfg)
		if err != nil {
			return fmt.Errorf("TOML parse error: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	return nil
}
