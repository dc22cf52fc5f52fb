// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package glb implements the vermilion commands that read a GLB
// container: dump, json, chunks, validate and extract.
//
// Every command takes an optional trailing file path. When it is
// absent, or is "-", the container is read from stdin. Input may be
// hex-encoded (--hex) and may be wrapped in a zstd or LZ4 frame, which
// is expanded in memory before parsing. Input handling is shared
// through [InputFlags], which each command embeds in its parameter
// struct.
//
// Structural parse failures are returned as errors and reported by
// main. Content failures (a JSON chunk that is not valid UTF-8 or not
// valid JSON) do not stop a dump: each one is logged at WARN, and the
// exit status is only affected under --strict.
package glb
