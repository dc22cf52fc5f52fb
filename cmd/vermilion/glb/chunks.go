// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package glb

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/netaka/vermilion/cmd/vermilion/cli"
	"github.com/netaka/vermilion/lib/config"
	"github.com/netaka/vermilion/lib/inspect"
	"github.com/netaka/vermilion/lib/jsonfmt"
)

type chunksParams struct {
	InputFlags
	Format string `json:"format" flag:"format,f" desc:"output format: text, json, yaml, cbor (default: output.format)"`
}

// ChunksCommand returns the "chunks" command.
func ChunksCommand() *cli.Command {
	var params chunksParams

	return &cli.Command{
		Name:    "chunks",
		Summary: "List a container's chunks with offsets and digests",
		Description: `Print one row per chunk: its index, the byte offset of its length
field, the payload length, the raw type tag, the classified kind (json,
binary, unknown), and the BLAKE3 digest of its payload.

The digest is the value "vermilion extract --verify" checks against.`,
		Usage: "vermilion chunks [flags] [file]",
		Examples: []cli.Example{
			{
				Description: "List chunks",
				Command:     "vermilion chunks model.glb",
			},
			{
				Description: "Chunk table as JSON",
				Command:     "vermilion chunks --format json model.glb",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return runChunks(os.Stdout, &params, args, logger.With("command", "chunks"))
		},
	}
}

func runChunks(w io.Writer, params *chunksParams, args []string, logger *slog.Logger) error {
	in, err := params.load("chunks", args, logger)
	if err != nil {
		return err
	}
	cfg := in.config
	if params.Format != "" {
		cfg.Output.Format = params.Format
		if err := cfg.Validate(); err != nil {
			return cli.Validation("%w", err)
		}
	}

	// The listing reports content failures per row rather than failing.
	report, _ := inspect.BuildReport(in.source, in.container, jsonfmt.Options{Lenient: cfg.Parse.Lenient})

	if cfg.Output.Format != config.FormatText {
		return writeStructured(w, cfg.Output.Format, report.Chunks)
	}

	table := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(table, "INDEX\tOFFSET\tLENGTH\tTYPE\tKIND\tDIGEST")
	for _, chunk := range report.Chunks {
		fmt.Fprintf(table, "%d\t%d\t%d\t%s\t%s\t%s\n",
			chunk.Index, chunk.Offset, chunk.Length, chunk.Type, chunk.Kind, chunk.Digest)
	}
	return table.Flush()
}
