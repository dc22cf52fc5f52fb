// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package inspect renders a parsed GLB container for people and for
// tools.
//
// [Printer] writes the text dump: source name and size, the header
// block, then one block per chunk. JSON chunks are pretty-printed via
// lib/jsonfmt; BIN chunks and unknown chunks are shown as fixed
// placeholders and their bytes are never interpreted.
//
// [BuildReport] produces the same information as a [Report] value for
// JSON, YAML or CBOR output, adding per-chunk BLAKE3 digests and a
// [Summary] of the glTF document (asset metadata, element counts, VRM
// detection).
//
// Content failures (a JSON chunk that is not UTF-8, or not valid JSON)
// are local to one chunk. Both entry points render every chunk and then
// report the failures together as [*ContentErrors].
package inspect
