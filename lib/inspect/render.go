// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"github.com/netaka/vermilion/lib/glb"
	"github.com/netaka/vermilion/lib/jsonfmt"
)

const (
	// BinaryPlaceholder stands in for the payload of a BIN chunk.
	BinaryPlaceholder = "<binary data>"

	// UnknownPlaceholder stands in for the payload of a chunk whose
	// type tag is neither JSON nor BIN.
	UnknownPlaceholder = "<unknown chunk type>"
)

// Render returns the display form of a chunk's payload. Only JSON
// chunks are decoded; the returned error is a content error for that
// chunk alone.
func Render(chunk glb.Chunk, options jsonfmt.Options) (string, error) {
	switch chunk.Kind() {
	case glb.KindJSON:
		document, err := decodeJSON(chunk, options.Lenient)
		if err != nil {
			return "", err
		}
		return jsonfmt.Format(document, options), nil
	case glb.KindBinary:
		return BinaryPlaceholder, nil
	default:
		return UnknownPlaceholder, nil
	}
}

// decodeJSON checks that a JSON chunk is UTF-8 text and parses it into
// a jsonfmt value tree.
func decodeJSON(chunk glb.Chunk, lenient bool) (any, error) {
	if err := checkUTF8(chunk.Data); err != nil {
		return nil, err
	}
	return jsonfmt.Parse(chunk.Data, lenient)
}
