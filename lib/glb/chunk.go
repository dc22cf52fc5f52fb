// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package glb

// ChunkHeaderSize is the size of the length and type fields that
// precede every chunk payload.
const ChunkHeaderSize = 8

// Chunk is one length-prefixed, type-tagged segment of the container
// body.
type Chunk struct {
	// Length is the payload size in bytes. len(Data) == Length.
	Length uint32

	// Type is the raw type tag. Use Type.Kind() to classify it.
	Type ChunkType

	// Data is the payload. It aliases the buffer passed to [Parse].
	Data []byte

	// Offset is the position of this chunk's length field within the
	// parsed buffer. Set by [Parse]; zero from [ParseChunk].
	Offset int
}

// Kind classifies the chunk by its type tag.
func (c Chunk) Kind() ChunkKind {
	return c.Type.Kind()
}

// Size returns the number of bytes the chunk occupies in the
// container: its 8-byte prefix plus the payload.
func (c Chunk) Size() int {
	return ChunkHeaderSize + int(c.Length)
}

// ParseChunk decodes one chunk from the front of data and returns it
// with the remainder positioned immediately after the payload. No
// padding between chunks is assumed.
func ParseChunk(data []byte) (Chunk, []byte, error) {
	var chunk Chunk

	rest, length, err := readUint32(data, "chunk length")
	if err != nil {
		return Chunk{}, data, err
	}

	rest, tag, err := takeTag(rest, "chunk type")
	if err != nil {
		return Chunk{}, data, err
	}

	// Compare as uint64: int(length) can overflow on 32-bit platforms.
	if uint64(length) > uint64(len(rest)) {
		return Chunk{}, data, &TruncatedError{Field: "chunk data", Need: int64(length), Have: len(rest)}
	}
	rest, payload, err := take(rest, int(length), "chunk data")
	if err != nil {
		return Chunk{}, data, err
	}

	chunk.Length = length
	chunk.Type = ChunkType(tag)
	chunk.Data = payload
	return chunk, rest, nil
}
