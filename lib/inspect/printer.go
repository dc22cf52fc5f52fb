// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/netaka/vermilion/lib/binhash"
	"github.com/netaka/vermilion/lib/glb"
	"github.com/netaka/vermilion/lib/jsonfmt"
)

// Source describes where a container came from.
type Source struct {
	// Name is the file path, or "-" for standard input.
	Name string

	// Size is the byte count the container was parsed from (after
	// decompression).
	Size int

	// Compression names the wrapping the input was expanded from
	// ("zstd", "lz4"), or is empty for a plain file.
	Compression string
}

// Options controls rendering.
type Options struct {
	// JSON controls pretty-printing of the JSON chunk.
	JSON jsonfmt.Options

	// Color enables ANSI styling of labels and syntax highlighting of
	// the JSON chunk.
	Color bool

	// Style is the chroma style for JSON highlighting. Empty means
	// jsonfmt.DefaultStyle.
	Style string

	// Digest adds a BLAKE3 digest line to each chunk block.
	Digest bool
}

// Printer writes the text dump of a container.
type Printer struct {
	options Options
	palette palette
}

// NewPrinter returns a Printer configured by options.
func NewPrinter(options Options) *Printer {
	return &Printer{options: options, palette: newPalette(options.Color)}
}

// Print writes the dump of container to w. Every chunk is rendered
// even if an earlier one fails. It returns a write error if w fails,
// otherwise a [*ContentErrors] when any chunk could not be rendered,
// otherwise nil.
func (p *Printer) Print(w io.Writer, source Source, container *glb.Container) error {
	out := &stickyWriter{w: w}
	var failures collector

	p.field(out, 0, "filename", source.Name)
	p.field(out, 0, "size", fmt.Sprint(source.Size))
	if source.Compression != "" {
		p.field(out, 0, "compression", source.Compression)
	}

	p.section(out, "header")
	p.field(out, 1, "magic", glb.ChunkType(container.Header.Magic).String())
	p.field(out, 1, "version", fmt.Sprint(container.Header.Version))
	p.field(out, 1, "length", fmt.Sprint(container.Header.Length))

	for index, chunk := range container.Chunks {
		p.section(out, fmt.Sprintf("chunk[%d]", index))
		p.field(out, 1, "length", fmt.Sprint(chunk.Length))
		p.field(out, 1, "type", chunk.Type.String())
		if p.options.Digest {
			p.field(out, 1, "digest", binhash.HashChunk(chunk.Data).String())
		}

		rendered, err := Render(chunk, p.options.JSON)
		if err != nil {
			failures.add(index, err)
			p.line(out, 1, p.palette.paint(p.palette.failure, "error:")+" "+err.Error())
			continue
		}

		if chunk.Kind() != glb.KindJSON {
			p.line(out, 1, p.palette.paint(p.palette.key, "data:")+" "+p.palette.paint(p.palette.placeholder, rendered))
			continue
		}

		p.line(out, 1, p.palette.paint(p.palette.key, "data:"))
		p.document(out, rendered)
	}

	if out.err != nil {
		return out.err
	}
	return failures.err()
}

// document writes a pretty-printed JSON document starting at column 0.
func (p *Printer) document(out *stickyWriter, text string) {
	if !p.palette.enabled {
		out.WriteString(text)
		out.WriteString("\n")
		return
	}

	// Highlight the document with its trailing newline so the lexer
	// does not append one of its own.
	var highlighted bytes.Buffer
	if err := jsonfmt.Highlight(&highlighted, text+"\n", p.options.Style); err != nil {
		out.WriteString(text)
		out.WriteString("\n")
		return
	}
	out.Write(highlighted.Bytes())
}

func (p *Printer) section(out *stickyWriter, name string) {
	p.line(out, 0, p.palette.paint(p.palette.section, name+":"))
}

func (p *Printer) field(out *stickyWriter, depth int, key, value string) {
	p.line(out, depth, p.palette.paint(p.palette.key, key+":")+" "+value)
}

func (p *Printer) line(out *stickyWriter, depth int, text string) {
	out.WriteString(strings.Repeat("  ", depth))
	out.WriteString(text)
	out.WriteString("\n")
}

// stickyWriter remembers the first write error and discards all later
// writes.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) Write(data []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(data)
	s.err = err
	return n, err
}

func (s *stickyWriter) WriteString(text string) {
	s.Write([]byte(text))
}
