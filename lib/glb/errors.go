// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package glb

import (
	"errors"
	"fmt"
)

var (
	// ErrBadMagic is returned when the header does not start with
	// [Magic].
	ErrBadMagic = errors.New("bad magic")

	// ErrTruncated is returned when fewer bytes remain than a field or
	// chunk payload requires.
	ErrTruncated = errors.New("truncated input")

	// ErrParseFailed is returned when a chunk in the chunk sequence
	// cannot be parsed. The whole container is rejected.
	ErrParseFailed = errors.New("parse failed")
)

// TruncatedError describes a read that ran past the end of the input.
// It matches [ErrTruncated] with errors.Is.
type TruncatedError struct {
	// Field names what was being read (e.g., "header version",
	// "chunk data").
	Field string

	// Need is the number of bytes the field requires.
	Need int64

	// Have is the number of bytes that remained.
	Have int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated input: %s needs %d bytes, %d remain", e.Field, e.Need, e.Have)
}

// Is reports whether target is [ErrTruncated].
func (e *TruncatedError) Is(target error) bool {
	return target == ErrTruncated
}

// MagicError reports the magic bytes found in place of [Magic]. It
// matches [ErrBadMagic] with errors.Is.
type MagicError struct {
	Got [4]byte
}

func (e *MagicError) Error() string {
	return fmt.Sprintf("bad magic: got %q, want %q", e.Got[:], Magic[:])
}

// Is reports whether target is [ErrBadMagic].
func (e *MagicError) Is(target error) bool {
	return target == ErrBadMagic
}

// ParseError wraps a failure that occurred while parsing the chunk
// sequence. errors.Is matches both [ErrParseFailed] and the underlying
// cause (typically [ErrTruncated]).
type ParseError struct {
	// Index is the zero-based position of the chunk that failed.
	Index int

	// Offset is the byte offset of the failing chunk's length field
	// within the input.
	Offset int

	// Err is the underlying failure.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse failed: chunk %d at byte %d: %v", e.Index, e.Offset, e.Err)
}

// Unwrap returns both the [ErrParseFailed] sentinel and the cause so
// that errors.Is and errors.As can reach either.
func (e *ParseError) Unwrap() []error {
	return []error{ErrParseFailed, e.Err}
}
