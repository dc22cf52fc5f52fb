// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package glb

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/netaka/vermilion/cmd/vermilion/cli"
	"github.com/netaka/vermilion/lib/binhash"
	glbfile "github.com/netaka/vermilion/lib/glb"
)

type extractParams struct {
	InputFlags
	Chunk  int    `json:"chunk"  flag:"chunk,n"  desc:"index of the chunk to extract" default:"-1"`
	Output string `json:"output" flag:"output,o" desc:"write the payload to this file instead of stdout"`
	Verify string `json:"verify" flag:"verify"   desc:"fail unless the payload's BLAKE3 digest equals this hex value"`
}

// ExtractCommand returns the "extract" command.
func ExtractCommand() *cli.Command {
	var params extractParams

	return &cli.Command{
		Name:    "extract",
		Summary: "Write one chunk's raw payload to a file or stdout",
		Description: `Write the payload of chunk N, exactly as stored, to the file named by
-o or to stdout. Chunk indices are those printed by "vermilion chunks".

With --verify, the payload's BLAKE3 digest must equal the given hex
value or nothing is written. Binary payloads are not written to a
terminal.`,
		Usage: "vermilion extract --chunk N [flags] [file]",
		Examples: []cli.Example{
			{
				Description: "Extract the glTF document",
				Command:     "vermilion extract -n 0 -o scene.gltf model.glb",
			},
			{
				Description: "Extract the binary buffer and check its digest",
				Command:     "vermilion extract -n 1 --verify 5f0e...c2 -o buffer.bin model.glb",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return runExtract(os.Stdout, &params, args, logger.With("command", "extract"))
		},
	}
}

func runExtract(w io.Writer, params *extractParams, args []string, logger *slog.Logger) error {
	if params.Chunk < 0 {
		return cli.Validation("extract requires --chunk").
			WithHint("Run 'vermilion chunks' to list chunk indices.")
	}

	var want binhash.Digest
	if params.Verify != "" {
		digest, err := binhash.ParseDigest(params.Verify)
		if err != nil {
			return cli.Validation("--verify: %w", err)
		}
		want = digest
	}

	in, err := params.load("extract", args, logger)
	if err != nil {
		return err
	}

	if params.Chunk >= len(in.container.Chunks) {
		return cli.NotFound("%s: chunk %d does not exist (container has %d chunks)",
			in.source.Name, params.Chunk, len(in.container.Chunks)).
			WithHint(fmt.Sprintf("Run 'vermilion chunks %s' to list chunk indices.", in.source.Name))
	}
	chunk := in.container.Chunks[params.Chunk]

	if params.Verify != "" {
		if got := binhash.HashChunk(chunk.Data); got != want {
			return fmt.Errorf("%s: chunk %d digest mismatch: got %s, want %s",
				in.source.Name, params.Chunk, got, want)
		}
	}

	if params.Output == "" || params.Output == "-" {
		if chunk.Kind() != glbfile.KindJSON && cli.IsTerminal(w) {
			return cli.Validation("refusing to write %s chunk to a terminal", chunk.Kind()).
				WithHint("Use -o to write it to a file.")
		}
		_, err := w.Write(chunk.Data)
		return err
	}

	if err := os.WriteFile(params.Output, chunk.Data, 0o644); err != nil {
		return cli.Internal("write %s: %w", params.Output, err)
	}
	in.logger.Info("extracted chunk", "source", in.source.Name, "chunk", params.Chunk,
		"type", chunk.Type.String(), "bytes", len(chunk.Data), "output", params.Output)
	return nil
}
