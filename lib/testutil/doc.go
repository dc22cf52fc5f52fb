// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for vermilion packages.
//
// [GLB] assembles container bytes from [ChunkSpec] values so tests can
// describe a fixture by its chunks instead of hand-writing offsets.
// [JSONChunk] and [BINChunk] pad payloads the way conforming writers
// do (spaces for JSON, zero bytes for BIN); [RawChunk] writes a payload
// and tag verbatim for malformed fixtures.
//
// [WriteFile] places a fixture in the test's temporary directory and
// returns its path.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no vermilion-internal dependencies, so that lib/glb
// tests can use it without an import cycle.
package testutil
