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
	"github.com/netaka/vermilion/lib/inspect"
	"github.com/netaka/vermilion/lib/jsonfmt"
)

type jsonParams struct {
	InputFlags
	Compact   bool `json:"compact"    flag:"compact,c"    desc:"compact output (no indentation)"`
	RawOutput bool `json:"raw_output" flag:"raw-output,r" desc:"raw string output (passed to jq)"`
	Lenient   bool `json:"lenient"    flag:"lenient"      desc:"accept comments and trailing commas in the JSON chunk"`
}

// JSONCommand returns the "json" command.
func JSONCommand() *cli.Command {
	var params jsonParams

	return &cli.Command{
		Name:    "json",
		Summary: "Print the JSON chunk, optionally through a jq filter",
		Description: `Print only the container's JSON chunk as pretty JSON with keys in
document order, or on one line with -c.

When an argument other than the file path is given, it is treated as a
jq filter expression: the document is passed to jq on stdin and jq's
output goes straight to stdout. -c and -r are passed through to jq.
jq's exit status is propagated.`,
		Usage: "vermilion json [flags] [filter] [file]",
		Examples: []cli.Example{
			{
				Description: "Pretty-print the glTF document",
				Command:     "vermilion json model.glb",
			},
			{
				Description: "List the node names",
				Command:     "vermilion json -r '.nodes[].name' model.glb",
			},
			{
				Description: "Compact JSON for another tool",
				Command:     "vermilion json -c model.glb > model.json",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return runJSON(os.Stdout, &params, args, logger.With("command", "json"))
		},
	}
}

func runJSON(w io.Writer, params *jsonParams, args []string, logger *slog.Logger) error {
	in, remainingArgs, err := params.loadWithArgs(args, logger)
	if err != nil {
		return err
	}
	cfg := in.config
	lenient := params.Lenient || cfg.Parse.Lenient

	chunk, ok := in.container.JSON()
	if !ok {
		return cli.NotFound("%s has no JSON chunk", in.source.Name).
			WithHint(fmt.Sprintf("Run 'vermilion chunks %s' to list its chunks.", in.source.Name))
	}

	if params.Compact || len(remainingArgs) > 0 {
		if _, err := inspect.Render(chunk, jsonfmt.Options{Lenient: lenient}); err != nil {
			return fmt.Errorf("%s: JSON chunk: %w", in.source.Name, err)
		}
		compact, err := jsonfmt.Compact(chunk.Data, lenient)
		if err != nil {
			return fmt.Errorf("%s: JSON chunk: %w", in.source.Name, err)
		}
		if len(remainingArgs) == 0 {
			_, err = fmt.Fprintln(w, compact)
			return err
		}

		var jqArgs []string
		if params.Compact {
			jqArgs = append(jqArgs, "-c")
		}
		if params.RawOutput {
			jqArgs = append(jqArgs, "-r")
		}
		jqArgs = append(jqArgs, remainingArgs...)
		in.logger.Debug("running jq", "args", jqArgs)
		return runJQ([]byte(compact), jqArgs, w)
	}

	text, err := inspect.Render(chunk, jsonfmt.Options{
		Indent:          cfg.Output.Indent,
		MaxStringLength: cfg.Output.MaxString,
		Lenient:         lenient,
	})
	if err != nil {
		return fmt.Errorf("%s: JSON chunk: %w", in.source.Name, err)
	}
	if colorEnabled(cfg.Output.Color, w) {
		return jsonfmt.Highlight(w, text+"\n", cfg.Output.Style)
	}
	_, err = fmt.Fprintln(w, text)
	return err
}
