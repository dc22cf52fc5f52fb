// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package glb

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"github.com/spf13/pflag"

	"github.com/netaka/vermilion/cmd/vermilion/cli"
	"github.com/netaka/vermilion/lib/compress"
	"github.com/netaka/vermilion/lib/config"
	glbfile "github.com/netaka/vermilion/lib/glb"
	"github.com/netaka/vermilion/lib/inspect"
)

// stdinName is the source name reported for input read from stdin.
const stdinName = "-"

// stdin is the reader used when no file argument is given.
var stdin io.Reader = os.Stdin

// InputFlags holds the flags shared by every command that reads a
// container.
type InputFlags struct {
	Hex        bool
	ConfigPath string
	MaxSize    int64
	Verbose    bool
}

// AddFlags registers the input flags on flagSet.
func (f *InputFlags) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.BoolVarP(&f.Hex, "hex", "x", false, "treat input as hex-encoded bytes (whitespace ignored)")
	flagSet.StringVar(&f.ConfigPath, "config", "", "path to a vermilion.yaml config file (default: $"+config.EnvVar+")")
	flagSet.Int64Var(&f.MaxSize, "max-size", 0, "refuse inputs larger than this many bytes after decompression (default: input.max_size)")
	flagSet.BoolVarP(&f.Verbose, "verbose", "v", false, "log parse progress at debug level")
}

// input is a parsed container together with the settings it was read
// under.
type input struct {
	source    inspect.Source
	container *glbfile.Container
	config    *config.Config
	logger    *slog.Logger
}

// load resolves configuration, reads the container named by args (or
// stdin) and parses it. args may hold at most the input path: anything
// else is rejected before stdin is read, so a mistyped path is reported
// as missing rather than parsed from an empty pipe.
func (f *InputFlags) load(command string, args []string, logger *slog.Logger) (*input, error) {
	path, remainingArgs := splitInput(args)
	if err := noExtraArgs(command, remainingArgs); err != nil {
		return nil, err
	}
	return f.open(path, logger)
}

// loadWithArgs is load for commands that take positional arguments
// besides the input path. It returns the args left after removing the
// path.
func (f *InputFlags) loadWithArgs(args []string, logger *slog.Logger) (*input, []string, error) {
	path, remainingArgs := splitInput(args)
	if path == stdinName && len(remainingArgs) > 0 {
		if last := remainingArgs[len(remainingArgs)-1]; looksLikeInputPath(last) {
			return nil, nil, cli.NotFound("input file %q does not exist", last)
		}
	}
	in, err := f.open(path, logger)
	if err != nil {
		return nil, nil, err
	}
	return in, remainingArgs, nil
}

// open resolves configuration, reads path (stdinName for stdin),
// expands compressed input and parses the container.
func (f *InputFlags) open(path string, logger *slog.Logger) (*input, error) {
	cfg, err := config.Resolve(f.ConfigPath)
	if err != nil {
		return nil, err
	}
	if f.Verbose {
		logger = cli.NewCommandLogger(slog.LevelDebug)
	}

	raw, err := readInput(path, f.Hex)
	if err != nil {
		return nil, err
	}

	limit := cfg.Input.MaxSize
	if f.MaxSize > 0 {
		limit = f.MaxSize
	}
	data, format, err := compress.Decompress(raw, limit)
	if errors.Is(err, compress.ErrTooLarge) {
		return nil, cli.Validation("%s: expands past the %d byte input limit", path, limit).
			WithHint("Raise input.max_size in the config file or pass --max-size.")
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if limit > 0 && int64(len(data)) > limit {
		return nil, cli.Validation("%s: %d bytes exceeds the %d byte input limit", path, len(data), limit).
			WithHint("Raise input.max_size in the config file or pass --max-size.")
	}

	source := inspect.Source{Name: path, Size: len(data)}
	if format != compress.FormatNone {
		source.Compression = format.String()
		logger.Debug("decompressed input", "source", path, "compression", source.Compression,
			"compressed_bytes", len(raw), "bytes", len(data))
	}

	container, err := glbfile.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug("parsed header", "source", path,
		"version", container.Header.Version, "length", container.Header.Length)
	for index, chunk := range container.Chunks {
		logger.Debug("parsed chunk", "index", index, "offset", chunk.Offset,
			"length", chunk.Length, "type", chunk.Type.String())
	}

	return &input{source: source, container: container, config: cfg, logger: logger}, nil
}

// splitInput picks the input path out of args: the last element when
// it is "-" or names a regular file on disk, otherwise stdin. It
// returns the path and the args without it.
func splitInput(args []string) (string, []string) {
	length := len(args)
	if length == 0 {
		return stdinName, args
	}
	candidate := args[length-1]
	if candidate == stdinName {
		return stdinName, args[:length-1]
	}
	if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
		return candidate, args[:length-1]
	}
	return stdinName, args
}

// inputExtensions are the file extensions vermilion reads containers
// from, compressed or hex-encoded.
var inputExtensions = []string{".glb", ".vrm", ".zst", ".lz4", ".hex"}

// looksLikeInputPath reports whether a positional argument that is not
// an existing file was meant as one. jq filters start with "." so a
// leading dot only counts as a path when it is "./" or "../".
func looksLikeInputPath(arg string) bool {
	if strings.HasPrefix(arg, ".") && !strings.HasPrefix(arg, "./") && !strings.HasPrefix(arg, "../") {
		return false
	}
	return slices.Contains(inputExtensions, strings.ToLower(filepath.Ext(arg)))
}

// readInput reads path, or stdin for stdinName. When hexMode is true
// the bytes are hex-decoded.
func readInput(path string, hexMode bool) ([]byte, error) {
	var data []byte
	var err error
	if path == stdinName {
		if file, ok := stdin.(*os.File); ok && cli.IsTerminal(file) {
			return nil, cli.Validation("no input: pass a file path or pipe a container on stdin")
		}
		if data, err = io.ReadAll(stdin); err != nil {
			return nil, cli.Internal("read stdin: %w", err)
		}
	} else if data, err = os.ReadFile(path); err != nil {
		return nil, cli.Internal("read %s: %w", path, err)
	}

	if hexMode {
		return decodeHexInput(data)
	}
	return data, nil
}

// decodeHexInput strips whitespace from hex-encoded input and decodes
// it. Whitespace between digit pairs is allowed ("67 6c 54 46").
func decodeHexInput(data []byte) ([]byte, error) {
	cleaned := bytes.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, data)

	if len(cleaned) == 0 {
		return nil, cli.Validation("empty input after stripping whitespace from hex")
	}

	decoded := make([]byte, hex.DecodedLen(len(cleaned)))
	count, err := hex.Decode(decoded, cleaned)
	if err != nil {
		return nil, cli.Validation("decode hex: %w", err)
	}
	return decoded[:count], nil
}

// noExtraArgs rejects positional arguments left after splitInput. A
// single leftover is almost always a mistyped file path.
func noExtraArgs(command string, remainingArgs []string) error {
	switch len(remainingArgs) {
	case 0:
		return nil
	case 1:
		path := remainingArgs[0]
		info, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			return cli.NotFound("input file %q does not exist", path)
		}
		if err == nil && !info.Mode().IsRegular() {
			return cli.Validation("input %q is not a regular file", path)
		}
		return cli.Validation("%s takes an optional file path, got %q", command, path)
	default:
		return cli.Validation("%s takes at most one file path, got %d arguments", command, len(remainingArgs))
	}
}
