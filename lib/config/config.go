// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable that points at a config file.
const EnvVar = "VERMILION_CONFIG"

// Output formats accepted by output.format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCBOR = "cbor"
)

// ColorMode controls terminal highlighting.
type ColorMode string

const (
	// ColorAuto highlights only when stdout is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways highlights unconditionally.
	ColorAlways ColorMode = "always"
	// ColorNever disables highlighting.
	ColorNever ColorMode = "never"
)

// DefaultMaxSize is the default input.max_size: 512 MiB.
const DefaultMaxSize = 512 << 20

// Config is the master configuration for vermilion.
type Config struct {
	// Output configures how dumps and reports are rendered.
	Output OutputConfig `yaml:"output"`

	// Input configures how input files are read.
	Input InputConfig `yaml:"input"`

	// Parse configures container parsing policy.
	Parse ParseConfig `yaml:"parse"`
}

// OutputConfig configures rendering.
type OutputConfig struct {
	// Format is one of text, json, yaml, cbor.
	// Default: text
	Format string `yaml:"format"`

	// Indent is the number of spaces per nesting level in pretty JSON.
	// Default: 2
	Indent int `yaml:"indent"`

	// Color is auto, always, or never.
	// Default: auto
	Color ColorMode `yaml:"color"`

	// Style is the chroma style used to highlight JSON.
	// Default: monokai
	Style string `yaml:"style"`

	// MaxString truncates JSON string values longer than this many
	// display cells. Zero disables truncation.
	MaxString int `yaml:"max_string"`
}

// InputConfig configures input handling.
type InputConfig struct {
	// MaxSize refuses inputs larger than this many bytes, measured
	// after decompression. Zero disables the limit.
	// Default: 512 MiB
	MaxSize int64 `yaml:"max_size"`
}

// ParseConfig configures parsing policy.
type ParseConfig struct {
	// Strict runs conformance validation and turns content errors into
	// a non-zero exit status.
	Strict bool `yaml:"strict"`

	// Lenient accepts JSON with comments and trailing commas in the
	// JSON chunk.
	Lenient bool `yaml:"lenient"`
}

// Default returns the default configuration. Loaded files are merged
// over it, so keys absent from a file keep these values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: FormatText,
			Indent: 2,
			Color:  ColorAuto,
			Style:  "monokai",
		},
		Input: InputConfig{
			MaxSize: DefaultMaxSize,
		},
	}
}

// Resolve returns the configuration selected by an explicit path (the
// --config flag), falling back to [EnvVar], falling back to [Default].
func Resolve(path string) (*Config, error) {
	if path != "" {
		return LoadFile(path)
	}
	if os.Getenv(EnvVar) != "" {
		return Load()
	}
	return Default(), nil
}

// Load loads configuration from the file named by VERMILION_CONFIG.
// It fails if the variable is not set.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvVar)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your vermilion.yaml config file, or use --config flag", EnvVar)
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path and validates
// it.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// loadFile decodes a single YAML file over the current values.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	formats := []string{FormatText, FormatJSON, FormatYAML, FormatCBOR}
	if !slices.Contains(formats, c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format must be one of: %v", formats))
	}

	colors := []ColorMode{ColorAuto, ColorAlways, ColorNever}
	if !slices.Contains(colors, c.Output.Color) {
		errs = append(errs, fmt.Errorf("output.color must be one of: %v", colors))
	}

	if c.Output.Indent < 0 || c.Output.Indent > 16 {
		errs = append(errs, fmt.Errorf("output.indent must be between 0 and 16, got %d", c.Output.Indent))
	}

	if c.Output.Style == "" {
		errs = append(errs, fmt.Errorf("output.style is required"))
	}

	if c.Output.MaxString < 0 {
		errs = append(errs, fmt.Errorf("output.max_string must not be negative"))
	}

	if c.Input.MaxSize < 0 {
		errs = append(errs, fmt.Errorf("input.max_size must not be negative"))
	}

	return errors.Join(errs...)
}
