// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package glb

import (
	"fmt"
	"strings"
)

// ChunkType is the raw 4-byte type tag of a chunk.
type ChunkType [4]byte

var (
	// TypeJSON tags the chunk holding the glTF JSON document.
	TypeJSON = ChunkType{'J', 'S', 'O', 'N'}

	// TypeBIN tags the chunk holding the binary buffer. The tag is
	// "BIN" followed by a NUL byte.
	TypeBIN = ChunkType{'B', 'I', 'N', 0}
)

// ChunkKind is the semantic classification of a chunk's payload.
type ChunkKind uint8

const (
	// KindUnknown is any tag other than [TypeJSON] or [TypeBIN]. The
	// payload is opaque and never interpreted.
	KindUnknown ChunkKind = iota

	// KindJSON marks a UTF-8 JSON text payload.
	KindJSON

	// KindBinary marks an opaque binary buffer.
	KindBinary
)

// Kind classifies the tag. This is the single mapping from tags to
// kinds; matching is exact byte comparison.
func (t ChunkType) Kind() ChunkKind {
	switch t {
	case TypeJSON:
		return KindJSON
	case TypeBIN:
		return KindBinary
	default:
		return KindUnknown
	}
}

// String returns the tag as text. Bytes outside printable ASCII are
// written as \xNN escapes, so TypeBIN renders as "BIN\x00".
func (t ChunkType) String() string {
	var builder strings.Builder
	for _, b := range t {
		if b >= 0x20 && b < 0x7f && b != '\\' {
			builder.WriteByte(b)
		} else {
			fmt.Fprintf(&builder, "\\x%02x", b)
		}
	}
	return builder.String()
}

// String returns the lowercase kind name used in reports.
func (k ChunkKind) String() string {
	switch k {
	case KindJSON:
		return "json"
	case KindBinary:
		return "binary"
	case KindUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// MarshalText implements encoding.TextMarshaler so that kinds appear
// by name in JSON, YAML, and CBOR reports.
func (k ChunkKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// MarshalText implements encoding.TextMarshaler using [ChunkType.String].
func (t ChunkType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
