// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package glb

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/netaka/vermilion/cmd/vermilion/cli"
	"github.com/netaka/vermilion/lib/codec"
	"github.com/netaka/vermilion/lib/config"
)

// OutputFlags holds the rendering flags. Zero values defer to the
// output section of the config file.
type OutputFlags struct {
	Format    string
	Color     string
	Style     string
	Indent    int
	MaxString int
}

// AddFlags registers the output flags on flagSet.
func (f *OutputFlags) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&f.Format, "format", "f", "", "output format: text, json, yaml, cbor (default: output.format)")
	flagSet.StringVar(&f.Color, "color", "", "highlighting: auto, always, never (default: output.color)")
	flagSet.StringVar(&f.Style, "style", "", "chroma style for JSON highlighting (default: output.style)")
	flagSet.IntVar(&f.Indent, "indent", 0, "spaces per JSON nesting level (default: output.indent)")
	flagSet.IntVar(&f.MaxString, "max-string", 0, "truncate JSON strings wider than this many cells (default: output.max_string)")
}

// apply overlays the flags that were set onto cfg and revalidates it,
// so flag values are checked by the same rules as config values.
func (f *OutputFlags) apply(cfg *config.Config) error {
	if f.Format != "" {
		cfg.Output.Format = f.Format
	}
	if f.Color != "" {
		cfg.Output.Color = config.ColorMode(f.Color)
	}
	if f.Style != "" {
		cfg.Output.Style = f.Style
	}
	if f.Indent != 0 {
		cfg.Output.Indent = f.Indent
	}
	if f.MaxString != 0 {
		cfg.Output.MaxString = f.MaxString
	}
	if err := cfg.Validate(); err != nil {
		return cli.Validation("%w", err)
	}
	return nil
}

// colorEnabled decides whether output to w is highlighted. Auto mode
// highlights only terminals, and honors NO_COLOR.
func colorEnabled(mode config.ColorMode, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return os.Getenv("NO_COLOR") == "" && cli.IsTerminal(w)
	}
}

// writeStructured encodes value to w in one of the structured output
// formats. CBOR written to a terminal is shown in diagnostic notation.
func writeStructured(w io.Writer, format string, value any) error {
	switch format {
	case config.FormatJSON:
		return cli.WriteJSON(w, value, false)

	case config.FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		return encoder.Close()

	case config.FormatCBOR:
		if !cli.IsTerminal(w) {
			if err := codec.NewEncoder(w).Encode(value); err != nil {
				return fmt.Errorf("encode CBOR: %w", err)
			}
			return nil
		}
		data, err := codec.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode CBOR: %w", err)
		}
		notation, err := codec.Diagnose(data)
		if err != nil {
			return fmt.Errorf("diagnose CBOR: %w", err)
		}
		_, err = fmt.Fprintln(w, notation)
		return err

	default:
		return cli.Validation("unsupported structured format %q", format)
	}
}
