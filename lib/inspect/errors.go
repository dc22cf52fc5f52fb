// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is reported for a JSON chunk whose payload is not
// valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// ChunkError is a content failure confined to one chunk.
type ChunkError struct {
	Index int
	Err   error
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("chunk %d: %v", e.Index, e.Err)
}

func (e *ChunkError) Unwrap() error {
	return e.Err
}

// ContentErrors lists every chunk that failed to render. errors.Is
// matches any of the underlying causes, such as [ErrInvalidUTF8] or
// jsonfmt.ErrMalformedJSON.
type ContentErrors struct {
	Chunks []*ChunkError
}

func (e *ContentErrors) Error() string {
	if len(e.Chunks) == 1 {
		return e.Chunks[0].Error()
	}
	messages := make([]string, len(e.Chunks))
	for i, chunk := range e.Chunks {
		messages[i] = chunk.Error()
	}
	return fmt.Sprintf("%d chunks failed to render: %s", len(e.Chunks), strings.Join(messages, "; "))
}

func (e *ContentErrors) Unwrap() []error {
	errs := make([]error, len(e.Chunks))
	for i, chunk := range e.Chunks {
		errs[i] = chunk
	}
	return errs
}

// collector accumulates chunk failures. err returns nil (untyped) when
// nothing failed.
type collector struct {
	chunks []*ChunkError
}

func (c *collector) add(index int, err error) {
	c.chunks = append(c.chunks, &ChunkError{Index: index, Err: err})
}

func (c *collector) err() error {
	if len(c.chunks) == 0 {
		return nil
	}
	return &ContentErrors{Chunks: c.chunks}
}

// checkUTF8 returns an error naming the first invalid byte offset.
func checkUTF8(data []byte) error {
	if utf8.Valid(data) {
		return nil
	}
	for offset := 0; offset < len(data); {
		r, size := utf8.DecodeRune(data[offset:])
		if r == utf8.RuneError && size == 1 {
			return fmt.Errorf("%w at byte %d", ErrInvalidUTF8, offset)
		}
		offset += size
	}
	return ErrInvalidUTF8
}
