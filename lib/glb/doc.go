// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package glb parses GLB binary model containers (glTF 2.0 binary
// files, including VRM avatars).
//
// A GLB file is a 12-byte header followed by a sequence of chunks:
//
//	Header:           magic[4] | version:u32-le | length:u32-le
//	Chunk (repeated): length:u32-le | type[4] | data[length]
//
// There is no chunk count. [Parse] consumes chunks until the buffer is
// exhausted; a tail too short to hold another complete chunk is an
// error, never silently dropped. Parsing is all-or-nothing: on failure
// no partial [Container] is returned.
//
// Errors are classified so callers can branch with errors.Is:
//
//   - [ErrBadMagic]: the first four bytes are not "glTF".
//   - [ErrTruncated]: a field or chunk payload runs past the end of the
//     buffer. The concrete type is [*TruncatedError].
//   - [ErrParseFailed]: a chunk in the sequence could not be parsed.
//     The concrete type is [*ParseError], which also matches its cause.
//
// [Parse] does not compare the header's declared length against the
// buffer. [Validate] performs that check and the other glTF 2.0
// container rules (chunk alignment, JSON-first ordering) on request.
//
// Chunk payloads are views into the input buffer, not copies. Callers
// must treat the input as immutable once parsed.
package glb
