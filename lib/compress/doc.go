// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package compress recognizes and expands compressed model files.
//
// Model archives are commonly shipped as .glb.zst or .vrm.lz4. Rather
// than trusting file extensions, [Detect] inspects the leading frame
// magic: zstd frames start with 28 b5 2f fd, LZ4 frames with
// 04 22 4d 18. A GLB file starts with "glTF" and matches neither.
//
// [Decompress] expands a whole frame into memory with an upper bound on
// the output size, so a small hostile input cannot exhaust memory.
package compress
