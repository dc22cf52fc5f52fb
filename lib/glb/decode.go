// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package glb

import "encoding/binary"

// readUint32 consumes a little-endian uint32 from the front of data.
// Returns the unconsumed remainder and the decoded value.
func readUint32(data []byte, field string) ([]byte, uint32, error) {
	if len(data) < 4 {
		return data, 0, &TruncatedError{Field: field, Need: 4, Have: len(data)}
	}
	return data[4:], binary.LittleEndian.Uint32(data), nil
}

// take consumes exactly n bytes from the front of data. The taken
// slice aliases data; its capacity is clipped so that an append by the
// caller cannot overwrite the bytes that follow it.
func take(data []byte, n int, field string) ([]byte, []byte, error) {
	if n < 0 || len(data) < n {
		return data, nil, &TruncatedError{Field: field, Need: int64(n), Have: len(data)}
	}
	return data[n:], data[:n:n], nil
}

// takeTag consumes a 4-byte tag.
func takeTag(data []byte, field string) ([]byte, [4]byte, error) {
	var tag [4]byte
	rest, taken, err := take(data, 4, field)
	if err != nil {
		return data, tag, err
	}
	copy(tag[:], taken)
	return rest, tag, nil
}
