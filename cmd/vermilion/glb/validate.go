// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package glb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/netaka/vermilion/cmd/vermilion/cli"
	glbfile "github.com/netaka/vermilion/lib/glb"
)

type validateParams struct {
	InputFlags
}

// ValidateCommand returns the "validate" command.
func ValidateCommand() *cli.Command {
	var params validateParams

	return &cli.Command{
		Name:    "validate",
		Summary: "Check a container against the GLB layout rules",
		Description: `Parse a container and check the layout rules a reader is entitled to
assume: version 2, a declared length equal to the file size, chunk
lengths that are multiples of 4, a JSON chunk first, and at most one
BIN chunk, immediately after it.

Exits 0 with "valid" if every rule holds. Otherwise prints one line per
problem and exits 1. Chunk payloads are not examined; use "vermilion
dump --strict" to also check that the JSON chunk renders.`,
		Usage: "vermilion validate [flags] [file]",
		Examples: []cli.Example{
			{
				Description: "Validate a file",
				Command:     "vermilion validate model.glb",
			},
			{
				Description: "Validate a compressed download",
				Command:     "curl -s https://example.com/model.glb.zst | vermilion validate",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return runValidate(os.Stdout, &params, args, logger.With("command", "validate"))
		},
	}
}

func runValidate(w io.Writer, params *validateParams, args []string, logger *slog.Logger) error {
	in, err := params.load("validate", args, logger)
	if err != nil {
		return err
	}

	err = glbfile.Validate(in.container, in.source.Size)
	if err == nil {
		_, err = fmt.Fprintln(w, "valid")
		return err
	}

	var validationErr *glbfile.ValidationError
	if !errors.As(err, &validationErr) {
		return err
	}
	for _, problem := range validationErr.Problems {
		fmt.Fprintln(w, problem.String())
	}
	return &cli.ExitError{Code: cli.ExitFailure}
}
