// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/netaka/vermilion/cmd/vermilion/cli"
	"github.com/netaka/vermilion/cmd/vermilion/glb"
	"github.com/netaka/vermilion/lib/version"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own output (validate, dump
		// --strict) return an ExitError with the desired exit code.
		// Don't print a redundant "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(cli.ExitFailure)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := cli.NewCommandLogger(slog.LevelInfo)
	return rootCommand().Execute(ctx, os.Args[1:], logger)
}

// rootCommand builds the command tree. A first argument that is not a
// subcommand name is handled by dump, so "vermilion model.glb" prints
// the container.
func rootCommand() *cli.Command {
	commands := glb.Commands()
	dump := commands[0]

	return &cli.Command{
		Name:    "vermilion",
		Summary: "Inspect GLB (binary glTF and VRM) containers",
		Description: `vermilion parses GLB containers, the binary form of glTF 2.0 used for
3D models and VRM avatars, and prints their structure: the 12-byte
header, each chunk in file order, and the embedded JSON document
pretty-printed with its key order preserved.

With no subcommand, arguments are handled by "dump".`,
		Usage:       "vermilion [command] [flags] [file]",
		Subcommands: append(commands, versionCommand()),
		Params:      dump.Params,
		Run:         dump.Run,
		Examples: []cli.Example{
			{
				Description: "Dump a model",
				Command:     "vermilion model.glb",
			},
			{
				Description: "Read a model from stdin",
				Command:     "curl -s https://example.com/avatar.vrm | vermilion",
			},
			{
				Description: "List chunks with digests",
				Command:     "vermilion chunks model.glb",
			},
		},
	}
}

type versionParams struct {
	Short bool `json:"short" flag:"short,s" desc:"print only the version number"`
}

func versionCommand() *cli.Command {
	var params versionParams

	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Usage:   "vermilion version [--short]",
		Params:  func() any { return &params },
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("version takes no arguments")
			}
			return printVersion(os.Stdout, params.Short)
		},
	}
}

func printVersion(w io.Writer, short bool) error {
	text := version.Full()
	if short {
		text = version.Short()
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
