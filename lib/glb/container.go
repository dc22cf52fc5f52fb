// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package glb

// Container is a parsed GLB file: the header and its chunks in file
// order. A Container is built once by [Parse] and not modified after.
type Container struct {
	Header Header
	Chunks []Chunk
}

// parseState is the position of [Parse] in the container layout.
type parseState uint8

const (
	parsingHeader parseState = iota
	parsingChunks
	parseDone
)

// Parse decodes a complete container from data.
//
// After the header, chunks are parsed back to back until no bytes
// remain. The remaining length is checked before each chunk: zero
// bytes ends the sequence, any other amount must hold a complete chunk.
// A chunk failure is returned as a [*ParseError] and no container is
// produced. Header failures ([ErrBadMagic], [ErrTruncated]) are
// returned unwrapped.
//
// The header's declared Length is not compared with len(data); call
// [Validate] for that.
func Parse(data []byte) (*Container, error) {
	container := &Container{}
	remaining := data
	state := parsingHeader

	for state != parseDone {
		switch state {
		case parsingHeader:
			header, rest, err := ParseHeader(remaining)
			if err != nil {
				return nil, err
			}
			container.Header = header
			remaining = rest
			state = parsingChunks

		case parsingChunks:
			if len(remaining) == 0 {
				state = parseDone
				continue
			}
			offset := len(data) - len(remaining)
			chunk, rest, err := ParseChunk(remaining)
			if err != nil {
				return nil, &ParseError{Index: len(container.Chunks), Offset: offset, Err: err}
			}
			chunk.Offset = offset
			container.Chunks = append(container.Chunks, chunk)
			remaining = rest
		}
	}

	return container, nil
}

// Size returns the number of bytes the parsed container occupies:
// the header plus every chunk's prefix and payload. For a container
// returned by [Parse] this equals the length of the parsed buffer.
func (c *Container) Size() int {
	size := HeaderSize
	for _, chunk := range c.Chunks {
		size += chunk.Size()
	}
	return size
}

// JSON returns the first chunk classified as [KindJSON], or false if
// there is none.
func (c *Container) JSON() (Chunk, bool) {
	return c.find(KindJSON)
}

// Binary returns the first chunk classified as [KindBinary], or false
// if there is none.
func (c *Container) Binary() (Chunk, bool) {
	return c.find(KindBinary)
}

func (c *Container) find(kind ChunkKind) (Chunk, bool) {
	for _, chunk := range c.Chunks {
		if chunk.Kind() == kind {
			return chunk, true
		}
	}
	return Chunk{}, false
}
