// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides vermilion's CBOR encoding configuration for
// structured reports (dump --format cbor).
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. The
// same container always produces identical report bytes, so reports
// can be diffed or hashed.
//
//	data, err := codec.Marshal(report)
//	err = codec.NewEncoder(os.Stdout).Encode(report)
//
// Report types carry `json` struct tags only. fxamacker/cbor v2 reads
// `json` tags when `cbor` tags are absent, so one tag controls field
// naming for the JSON, YAML (via yaml tags) and CBOR renderings.
package codec
