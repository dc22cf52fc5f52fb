// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package binhash computes content digests for container chunks.
//
// Digests are BLAKE3 keyed hashes with a fixed domain key, so a chunk
// digest never collides with a plain BLAKE3 hash of the same bytes
// computed by some other tool. Two chunks have the same digest exactly
// when their payloads are identical, regardless of their type tag or
// position; this makes digests useful for spotting a shared buffer
// across exported model variants.
//
// The API surface is three functions:
//
//   - [HashChunk] -- digests a chunk payload
//   - [FormatDigest] -- converts a [Digest] to its canonical
//     lowercase hex form, used in dumps, reports, and log output
//   - [ParseDigest] -- parses a hex digest back to a [Digest],
//     validating length and encoding
//
// This package has no dependencies on other vermilion packages.
package binhash
