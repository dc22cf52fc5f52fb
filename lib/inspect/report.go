// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"github.com/netaka/vermilion/lib/binhash"
	"github.com/netaka/vermilion/lib/glb"
	"github.com/netaka/vermilion/lib/jsonfmt"
)

// Report is the structured form of a dump, for --format json, yaml and
// cbor. Type tags and kinds are strings so that every format shows
// them the same way as the text dump.
type Report struct {
	Source      string        `json:"source" yaml:"source"`
	Size        int           `json:"size" yaml:"size"`
	Compression string        `json:"compression,omitempty" yaml:"compression,omitempty"`
	Header      HeaderReport  `json:"header" yaml:"header"`
	Chunks      []ChunkReport `json:"chunks" yaml:"chunks"`

	// Document summarizes the JSON chunk. Nil when there is no JSON
	// chunk or it does not decode.
	Document *Summary `json:"document,omitempty" yaml:"document,omitempty"`

	// Problems lists conformance violations. Only filled in when the
	// caller ran glb.Validate (--strict).
	Problems []glb.Problem `json:"problems,omitempty" yaml:"problems,omitempty"`
}

// HeaderReport is the decoded container header.
type HeaderReport struct {
	Magic   string `json:"magic" yaml:"magic"`
	Version uint32 `json:"version" yaml:"version"`
	Length  uint32 `json:"length" yaml:"length"`
}

// ChunkReport describes one chunk.
type ChunkReport struct {
	Index  int    `json:"index" yaml:"index"`
	Offset int    `json:"offset" yaml:"offset"`
	Length uint32 `json:"length" yaml:"length"`
	Type   string `json:"type" yaml:"type"`
	Kind   string `json:"kind" yaml:"kind"`

	// Digest is the hex BLAKE3 chunk digest of the payload.
	Digest string `json:"digest" yaml:"digest"`

	// Error is the content error for this chunk, if any.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// BuildReport describes container as a [Report]. Like [Printer.Print]
// it examines every chunk, recording content failures on the chunk's
// entry, and returns them together as [*ContentErrors] alongside the
// complete report.
func BuildReport(source Source, container *glb.Container, options jsonfmt.Options) (*Report, error) {
	report := &Report{
		Source:      source.Name,
		Size:        source.Size,
		Compression: source.Compression,
		Header: HeaderReport{
			Magic:   glb.ChunkType(container.Header.Magic).String(),
			Version: container.Header.Version,
			Length:  container.Header.Length,
		},
		Chunks: make([]ChunkReport, 0, len(container.Chunks)),
	}

	var failures collector
	for index, chunk := range container.Chunks {
		entry := ChunkReport{
			Index:  index,
			Offset: chunk.Offset,
			Length: chunk.Length,
			Type:   chunk.Type.String(),
			Kind:   chunk.Kind().String(),
			Digest: binhash.HashChunk(chunk.Data).String(),
		}
		if chunk.Kind() == glb.KindJSON {
			document, err := decodeJSON(chunk, options.Lenient)
			if err != nil {
				failures.add(index, err)
				entry.Error = err.Error()
			} else if report.Document == nil {
				report.Document = Summarize(document)
			}
		}
		report.Chunks = append(report.Chunks, entry)
	}

	return report, failures.err()
}
