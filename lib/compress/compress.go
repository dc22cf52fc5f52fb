// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Format identifies the compression wrapping of an input.
type Format uint8

const (
	// FormatNone indicates the input is not a recognized compressed
	// frame and is used as-is.
	FormatNone Format = iota

	// FormatZstd indicates a zstd frame.
	FormatZstd

	// FormatLZ4 indicates an LZ4 frame (not a raw LZ4 block).
	FormatLZ4
)

// ErrTooLarge is returned when decompressed output would exceed the
// caller's limit.
var ErrTooLarge = errors.New("decompressed input exceeds size limit")

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// String returns the human-readable name of a format.
func (f Format) String() string {
	switch f {
	case FormatNone:
		return "none"
	case FormatZstd:
		return "zstd"
	case FormatLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(f))
	}
}

// Detect returns the compression format indicated by the leading
// bytes of data.
func Detect(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return FormatZstd
	case bytes.HasPrefix(data, lz4Magic):
		return FormatLZ4
	default:
		return FormatNone
	}
}

// Decompress expands data if it is a recognized compressed frame and
// returns the expanded bytes with the detected format. Uncompressed
// input is returned unchanged (no copy) with [FormatNone].
//
// limit caps the decompressed size in bytes; zero or negative means no
// limit. Exceeding it returns [ErrTooLarge].
func Decompress(data []byte, limit int64) ([]byte, Format, error) {
	format := Detect(data)
	switch format {
	case FormatZstd:
		expanded, err := decompressZstd(data, limit)
		return expanded, format, err
	case FormatLZ4:
		expanded, err := decompressLZ4(data, limit)
		return expanded, format, err
	default:
		return data, FormatNone, nil
	}
}

func decompressZstd(data []byte, limit int64) ([]byte, error) {
	options := []zstd.DOption{zstd.WithDecoderConcurrency(1)}
	if limit > 0 {
		options = append(options, zstd.WithDecoderMaxMemory(uint64(limit)))
	}
	decoder, err := zstd.NewReader(nil, options...)
	if err != nil {
		return nil, fmt.Errorf("zstd decoder initialization: %w", err)
	}
	defer decoder.Close()

	expanded, err := decoder.DecodeAll(data, nil)
	if err != nil {
		if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
			return nil, fmt.Errorf("zstd decompress: %w (limit %d bytes)", ErrTooLarge, limit)
		}
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}
	if limit > 0 && int64(len(expanded)) > limit {
		return nil, fmt.Errorf("zstd decompress: %w (limit %d bytes)", ErrTooLarge, limit)
	}
	return expanded, nil
}

func decompressLZ4(data []byte, limit int64) ([]byte, error) {
	var reader io.Reader = lz4.NewReader(bytes.NewReader(data))
	if limit > 0 {
		// Read one byte past the limit to tell "exactly at the limit"
		// from "over it".
		reader = io.LimitReader(reader, limit+1)
	}

	expanded, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress: %w", err)
	}
	if limit > 0 && int64(len(expanded)) > limit {
		return nil, fmt.Errorf("lz4 decompress: %w (limit %d bytes)", ErrTooLarge, limit)
	}
	return expanded, nil
}
