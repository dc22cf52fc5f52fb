// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package glb

import (
	"fmt"
	"strings"
)

// SupportedVersion is the container version defined by glTF 2.0.
const SupportedVersion = 2

// HeaderProblem is the Chunk index used by a [Problem] that concerns
// the header rather than a chunk.
const HeaderProblem = -1

// Problem is one conformance violation found by [Validate].
type Problem struct {
	// Chunk is the index of the offending chunk, or [HeaderProblem].
	Chunk int `json:"chunk"`

	// Message describes the violation.
	Message string `json:"message"`
}

func (p Problem) String() string {
	if p.Chunk == HeaderProblem {
		return "header: " + p.Message
	}
	return fmt.Sprintf("chunk %d: %s", p.Chunk, p.Message)
}

// ValidationError collects every [Problem] from a failed [Validate].
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	lines := make([]string, len(e.Problems))
	for i, problem := range e.Problems {
		lines[i] = problem.String()
	}
	return fmt.Sprintf("%d conformance problems: %s", len(e.Problems), strings.Join(lines, "; "))
}

// Validate checks a parsed container against the glTF 2.0 binary
// container rules. size is the number of bytes the container was parsed
// from (normally the file size). Returns nil when there are no
// problems, otherwise a [*ValidationError].
//
// Checked rules:
//   - the version is [SupportedVersion]
//   - the declared length equals size and the sum of header and chunks
//   - every chunk length is a multiple of 4
//   - the first chunk exists and is JSON
//   - at most one BIN chunk, and only immediately after the JSON chunk
//
// Payload contents are not examined.
func Validate(container *Container, size int) error {
	var problems []Problem
	add := func(chunk int, format string, args ...any) {
		problems = append(problems, Problem{Chunk: chunk, Message: fmt.Sprintf(format, args...)})
	}

	header := container.Header
	if header.Version != SupportedVersion {
		add(HeaderProblem, "version is %d, want %d", header.Version, SupportedVersion)
	}
	if int64(header.Length) != int64(size) {
		add(HeaderProblem, "declared length %d does not match input size %d", header.Length, size)
	}
	if computed := container.Size(); int64(header.Length) != int64(computed) {
		add(HeaderProblem, "declared length %d does not match header plus chunks (%d)", header.Length, computed)
	}

	if len(container.Chunks) == 0 {
		add(HeaderProblem, "container has no chunks, want a JSON chunk")
	}

	binaryCount := 0
	for index, chunk := range container.Chunks {
		if chunk.Length%4 != 0 {
			add(index, "length %d is not a multiple of 4", chunk.Length)
		}
		switch chunk.Kind() {
		case KindJSON:
			if index != 0 {
				add(index, "JSON chunk must be first")
			}
		case KindBinary:
			binaryCount++
			if binaryCount > 1 {
				add(index, "more than one BIN chunk")
			} else if index != 1 {
				add(index, "BIN chunk must immediately follow the JSON chunk")
			}
		}
		if index == 0 && chunk.Kind() != KindJSON {
			add(index, "first chunk has type %s, want JSON", chunk.Type)
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: problems}
}
