// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"bytes"
	"encoding/binary"
)

// ChunkSpec describes one chunk of a fixture container.
type ChunkSpec struct {
	Type [4]byte
	Data []byte
}

// JSONChunk returns a JSON chunk whose payload is text padded with
// spaces to a multiple of 4 bytes.
func JSONChunk(text string) ChunkSpec {
	return ChunkSpec{
		Type: [4]byte{'J', 'S', 'O', 'N'},
		Data: pad([]byte(text), ' '),
	}
}

// BINChunk returns a BIN chunk whose payload is data padded with zero
// bytes to a multiple of 4 bytes.
func BINChunk(data []byte) ChunkSpec {
	return ChunkSpec{
		Type: [4]byte{'B', 'I', 'N', 0},
		Data: pad(data, 0),
	}
}

// RawChunk returns a chunk with the given tag and payload, unpadded.
// tag must be exactly 4 bytes; shorter tags are NUL-padded.
func RawChunk(tag string, data []byte) ChunkSpec {
	var spec ChunkSpec
	copy(spec.Type[:], tag)
	spec.Data = data
	return spec
}

// GLB assembles a container with magic "glTF", the given version, and
// a declared length equal to the assembled size.
func GLB(version uint32, chunks ...ChunkSpec) []byte {
	size := 12
	for _, chunk := range chunks {
		size += 8 + len(chunk.Data)
	}
	return GLBWithLength(version, uint32(size), chunks...)
}

// GLBWithLength is [GLB] with an explicit declared length, for
// fixtures whose header disagrees with their contents.
func GLBWithLength(version, length uint32, chunks ...ChunkSpec) []byte {
	var buffer bytes.Buffer
	buffer.WriteString("glTF")
	writeUint32(&buffer, version)
	writeUint32(&buffer, length)
	for _, chunk := range chunks {
		writeUint32(&buffer, uint32(len(chunk.Data)))
		buffer.Write(chunk.Type[:])
		buffer.Write(chunk.Data)
	}
	return buffer.Bytes()
}

func writeUint32(buffer *bytes.Buffer, value uint32) {
	var scratch [4]byte
	binary.LittleEndian.PutUint32(scratch[:], value)
	buffer.Write(scratch[:])
}

func pad(data []byte, fill byte) []byte {
	padded := append([]byte(nil), data...)
	for len(padded)%4 != 0 {
		padded = append(padded, fill)
	}
	return padded
}
