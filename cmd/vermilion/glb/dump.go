// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package glb

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/netaka/vermilion/cmd/vermilion/cli"
	"github.com/netaka/vermilion/lib/config"
	glbfile "github.com/netaka/vermilion/lib/glb"
	"github.com/netaka/vermilion/lib/inspect"
	"github.com/netaka/vermilion/lib/jsonfmt"
)

// dumpParams holds the parameters for "vermilion dump". The root
// command shares it, so "vermilion model.glb" is a dump.
type dumpParams struct {
	InputFlags
	OutputFlags
	Digest  bool `json:"digest"  flag:"digest,d" desc:"add a BLAKE3 digest line to each chunk"`
	Lenient bool `json:"lenient" flag:"lenient"  desc:"accept comments and trailing commas in the JSON chunk"`
	Strict  bool `json:"strict"  flag:"strict"   desc:"check container conformance; exit 1 on problems, 2 when a chunk fails to render"`
}

// DumpCommand returns the "dump" command.
func DumpCommand() *cli.Command {
	var params dumpParams

	return &cli.Command{
		Name:    "dump",
		Summary: "Print a container's header, chunk table and JSON document",
		Description: `Parse a GLB container and print its header and each chunk in file
order. The JSON chunk is pretty-printed with keys in document order; BIN
chunks and chunks of unknown type are shown as placeholders.

A JSON chunk that is not valid UTF-8 or not valid JSON does not stop the
dump: the chunk shows an error line, the failure is logged, and the
remaining chunks are still printed. With --strict such failures exit 2,
and the container is also checked against the GLB layout rules
(version 2, declared length, 4-byte alignment, JSON then optional BIN);
any problem is logged and exits 1.

With --format json, yaml or cbor, a structured report is written
instead of the text dump. It includes per-chunk offsets and BLAKE3
digests and a summary of the glTF document (asset version, generator,
extensions, element counts, VRM metadata).

Defaults for every output flag come from the config file (--config or
$VERMILION_CONFIG) when one is given.`,
		Usage: "vermilion dump [flags] [file]",
		Examples: []cli.Example{
			{
				Description: "Dump a model",
				Command:     "vermilion dump avatar.vrm",
			},
			{
				Description: "Dump from stdin with chunk digests",
				Command:     "cat model.glb | vermilion dump --digest",
			},
			{
				Description: "Structured report as YAML",
				Command:     "vermilion dump --format yaml model.glb",
			},
			{
				Description: "Fail on any conformance problem",
				Command:     "vermilion dump --strict model.glb",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return runDump(os.Stdout, &params, args, logger.With("command", "dump"))
		},
	}
}

func runDump(w io.Writer, params *dumpParams, args []string, logger *slog.Logger) error {
	in, err := params.load("dump", args, logger)
	if err != nil {
		return err
	}
	cfg := in.config
	if err := params.OutputFlags.apply(cfg); err != nil {
		return err
	}
	lenient := params.Lenient || cfg.Parse.Lenient
	strict := params.Strict || cfg.Parse.Strict
	jsonOptions := jsonfmt.Options{
		Indent:          cfg.Output.Indent,
		MaxStringLength: cfg.Output.MaxString,
		Lenient:         lenient,
	}

	var problems []glbfile.Problem
	if strict {
		var validationErr *glbfile.ValidationError
		if errors.As(glbfile.Validate(in.container, in.source.Size), &validationErr) {
			problems = validationErr.Problems
		}
	}

	var renderErr error
	if cfg.Output.Format == config.FormatText {
		printer := inspect.NewPrinter(inspect.Options{
			JSON:   jsonOptions,
			Color:  colorEnabled(cfg.Output.Color, w),
			Style:  cfg.Output.Style,
			Digest: params.Digest,
		})
		renderErr = printer.Print(w, in.source, in.container)
	} else {
		report, err := inspect.BuildReport(in.source, in.container, jsonOptions)
		report.Problems = problems
		if writeErr := writeStructured(w, cfg.Output.Format, report); writeErr != nil {
			return writeErr
		}
		renderErr = err
	}

	var contentErrs *inspect.ContentErrors
	if renderErr != nil && !errors.As(renderErr, &contentErrs) {
		return cli.Internal("write output: %w", renderErr)
	}

	logger = in.logger.With("source", in.source.Name)
	if contentErrs != nil {
		for _, failure := range contentErrs.Chunks {
			logger.Warn("chunk failed to render", "chunk", failure.Index, "error", failure.Err)
		}
	}
	for _, problem := range problems {
		logger.Warn("conformance problem", "problem", problem.String())
	}

	switch {
	case len(problems) > 0:
		return &cli.ExitError{Code: cli.ExitFailure}
	case contentErrs != nil && strict:
		return &cli.ExitError{Code: cli.ExitContentError}
	}
	return nil
}
