// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binhash

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Digest is a 32-byte BLAKE3 digest.
type Digest [32]byte

// chunkDomainKey is the BLAKE3 key for chunk digests: the ASCII domain
// name zero-padded to 32 bytes. Changing it changes every digest.
var chunkDomainKey = [32]byte{
	'v', 'e', 'r', 'm', 'i', 'l', 'i', 'o', 'n', '.', 'g', 'l', 'b', '.',
	'c', 'h', 'u', 'n', 'k', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// HashChunk computes the chunk-domain digest of a payload.
func HashChunk(data []byte) Digest {
	// NewKeyed only fails for a key that is not 32 bytes.
	hasher, err := blake3.NewKeyed(chunkDomainKey[:])
	if err != nil {
		panic("binhash: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// FormatDigest returns the lowercase hex encoding of digest.
func FormatDigest(digest Digest) string {
	return hex.EncodeToString(digest[:])
}

// String implements fmt.Stringer using [FormatDigest].
func (d Digest) String() string {
	return FormatDigest(d)
}

// ParseDigest parses a hex-encoded digest. Returns an error if the
// string is not a valid 64-character hex encoding of 32 bytes.
func ParseDigest(hexString string) (Digest, error) {
	var digest Digest
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return digest, fmt.Errorf("parsing chunk digest: %w", err)
	}
	if len(decoded) != len(digest) {
		return digest, fmt.Errorf("chunk digest is %d bytes, want %d", len(decoded), len(digest))
	}
	copy(digest[:], decoded)
	return digest, nil
}
