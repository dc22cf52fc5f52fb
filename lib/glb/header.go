// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package glb

// Magic identifies a GLB container. It is the ASCII text "glTF".
var Magic = [4]byte{'g', 'l', 'T', 'F'}

// HeaderSize is the fixed size of the container header: magic,
// version, and declared length.
const HeaderSize = 12

// Header is the fixed-size structure at the start of every container.
type Header struct {
	// Magic is always [Magic] for a successfully parsed header.
	Magic [4]byte

	// Version is the container format version (2 for glTF 2.0).
	Version uint32

	// Length is the declared size of the whole container in bytes,
	// header included. [Parse] does not check it; see [Validate].
	Length uint32
}

// ParseHeader decodes the header at the start of data and returns it
// with the unconsumed remainder. The magic is checked before any other
// field is read, so a short buffer with the wrong magic reports
// [ErrBadMagic] rather than [ErrTruncated].
func ParseHeader(data []byte) (Header, []byte, error) {
	var header Header

	rest, magic, err := takeTag(data, "header magic")
	if err != nil {
		return Header{}, data, err
	}
	if magic != Magic {
		return Header{}, data, &MagicError{Got: magic}
	}
	header.Magic = magic

	rest, header.Version, err = readUint32(rest, "header version")
	if err != nil {
		return Header{}, data, err
	}

	rest, header.Length, err = readUint32(rest, "header length")
	if err != nil {
		return Header{}, data, err
	}

	return header, rest, nil
}
