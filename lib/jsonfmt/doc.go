// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package jsonfmt pretty-prints JSON documents for terminal display.
//
// Formatting is structural: [Parse] decodes the text into a value tree
// and [Format] writes the tree back out, so the output is valid,
// canonically indented JSON regardless of the source whitespace. Object
// keys keep their source order (objects are
// *orderedmap.OrderedMap[string, any]); numbers keep their source
// spelling ([encoding/json.Number]).
//
// Layout rules:
//
//   - one key per line inside objects, indented by [Options.Indent]
//     spaces per nesting level (default 2)
//   - scalars, empty containers, and arrays whose elements are all
//     scalars render on one line: [1, 2, 3]
//   - arrays holding objects or arrays render one element per line
//
// [Options.Lenient] accepts JSONC input (comments and trailing commas)
// by converting it with tidwall/jsonc before decoding. [Highlight]
// colors formatted output for terminals using chroma.
package jsonfmt
