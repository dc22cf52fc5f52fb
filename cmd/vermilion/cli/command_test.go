// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func execute(command *Command, args ...string) error {
	return command.Execute(context.Background(), args, discardLogger())
}

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "vermilion",
		Subcommands: []*Command{
			{
				Name: "version",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					called = "version"
					return nil
				},
			},
			{
				Name: "chunks",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					called = "chunks"
					return nil
				},
			},
		},
	}

	if err := execute(root, "chunks"); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "chunks" {
		t.Errorf("dispatched to %q, want %q", called, "chunks")
	}
}

func TestCommand_Execute_RunFallback(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "vermilion",
		Subcommands: []*Command{
			{
				Name: "chunks",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					called = "chunks"
					return nil
				},
			},
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			called = "root"
			receivedArgs = args
			return nil
		},
	}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "no args", args: nil, want: nil},
		{name: "file argument", args: []string{"model.glb"}, want: []string{"model.glb"}},
		{name: "near-miss name is a file", args: []string{"chunk"}, want: []string{"chunk"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			called, receivedArgs = "", nil
			if err := execute(root, test.args...); err != nil {
				t.Fatalf("Execute() error: %v", err)
			}
			if called != "root" {
				t.Errorf("dispatched to %q, want root", called)
			}
			if strings.Join(receivedArgs, " ") != strings.Join(test.want, " ") {
				t.Errorf("args = %v, want %v", receivedArgs, test.want)
			}
		})
	}
}

func TestCommand_Execute_ParamsBinding(t *testing.T) {
	type params struct {
		Format string `flag:"format" desc:"output format" default:"text"`
		Chunk  int    `flag:"chunk" desc:"chunk index" default:"-1"`
	}
	var p params
	var target string

	command := &Command{
		Name:   "extract",
		Params: func() any { return &p },
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				target = args[0]
			}
			return nil
		},
	}

	if err := execute(command, "--chunk", "1", "model.glb"); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if p.Chunk != 1 {
		t.Errorf("Chunk = %d, want 1", p.Chunk)
	}
	if p.Format != "text" {
		t.Errorf("Format = %q, want default %q", p.Format, "text")
	}
	if target != "model.glb" {
		t.Errorf("target = %q, want %q", target, "model.glb")
	}
}

func TestCommand_Execute_ContextAndLoggerPassedThrough(t *testing.T) {
	type contextKey struct{}
	ctx := context.WithValue(context.Background(), contextKey{}, "marker")
	logger := discardLogger()

	var gotValue any
	var gotLogger *slog.Logger
	root := &Command{
		Name: "vermilion",
		Subcommands: []*Command{{
			Name: "validate",
			Run: func(ctx context.Context, _ []string, logger *slog.Logger) error {
				gotValue = ctx.Value(contextKey{})
				gotLogger = logger
				return nil
			},
		}},
	}

	if err := root.Execute(ctx, []string{"validate"}, logger); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if gotValue != "marker" {
		t.Errorf("context value = %v, want marker", gotValue)
	}
	if gotLogger != logger {
		t.Error("logger was not passed through to Run")
	}
}

func TestCommand_Execute_UnknownFlag(t *testing.T) {
	type params struct {
		Strict bool   `flag:"strict" desc:"strict mode"`
		Format string `flag:"format" desc:"output format"`
	}

	tests := []struct {
		name           string
		args           []string
		wantSuggestion string
	}{
		{name: "close typo", args: []string{"--stirct"}, wantSuggestion: "did you mean --strict"},
		{name: "distant", args: []string{"--zzzzzzzzz"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var p params
			command := &Command{
				Name:   "dump",
				Params: func() any { return &p },
				Run:    func(context.Context, []string, *slog.Logger) error { return nil },
			}

			err := execute(command, test.args...)
			if err == nil {
				t.Fatal("Execute() = nil, want error for unknown flag")
			}

			var toolErr *ToolError
			if !errors.As(err, &toolErr) || toolErr.Category != CategoryValidation {
				t.Errorf("error = %#v, want a validation ToolError", err)
			}

			errStr := err.Error()
			if test.wantSuggestion != "" && !strings.Contains(errStr, test.wantSuggestion) {
				t.Errorf("error = %q, want %q", errStr, test.wantSuggestion)
			}
			if test.wantSuggestion == "" && strings.Contains(errStr, "did you mean") {
				t.Errorf("error = %q, should not suggest for distant flag", errStr)
			}
			if !strings.Contains(errStr, "--help") {
				t.Errorf("error = %q, should point to --help", errStr)
			}
		})
	}
}

func TestCommand_Execute_UnknownSubcommand(t *testing.T) {
	root := &Command{
		Name: "vermilion",
		Subcommands: []*Command{
			{Name: "chunks"},
			{Name: "extract"},
			{Name: "version"},
		},
	}

	err := execute(root, "chunsk")
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if !strings.Contains(err.Error(), "did you mean \"chunks\"") {
		t.Errorf("error = %q, want suggestion for 'chunks'", err.Error())
	}

	err = execute(root, "zzzzzzz")
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not contain suggestion for distant input", err.Error())
	}
}

func TestCommand_Execute_HelpFlag(t *testing.T) {
	for _, helpArg := range []string{"-h", "--help", "help"} {
		t.Run(helpArg, func(t *testing.T) {
			root := &Command{
				Name:    "vermilion",
				Summary: "Inspect GLB containers",
				Subcommands: []*Command{
					{Name: "chunks", Summary: "List chunks"},
				},
			}

			if err := execute(root, helpArg); err != nil {
				t.Errorf("Execute(%q) error: %v", helpArg, err)
			}
		})
	}
}

func TestCommand_Execute_NoArgsShowsHelp(t *testing.T) {
	root := &Command{
		Name: "vermilion",
		Subcommands: []*Command{
			{Name: "chunks", Summary: "List chunks"},
		},
	}

	err := execute(root)
	if err == nil {
		t.Fatal("Execute() = nil, want error for missing subcommand")
	}
	if !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("error = %q, want 'subcommand required'", err.Error())
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	type params struct {
		Hex    bool   `flag:"hex,x" desc:"treat input as hex-encoded bytes"`
		Format string `flag:"format" desc:"output format" default:"text"`
	}
	var p params

	command := &Command{
		Name:        "vermilion",
		Description: "Inspect GLB and VRM containers.",
		Params:      func() any { return &p },
		Subcommands: []*Command{
			{Name: "chunks", Summary: "List the chunks of a container"},
			{Name: "version", Summary: "Print version information"},
		},
		Examples: []Example{
			{
				Description: "Dump a VRM avatar",
				Command:     "vermilion avatar.vrm",
			},
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	for _, want := range []string{
		"Inspect GLB and VRM containers.",
		"Usage:",
		"vermilion <command> [flags]",
		"Commands:",
		"chunks",
		"List the chunks of a container",
		"Flags:",
		"--hex",
		"treat input as hex-encoded bytes",
		"Examples:",
		"# Dump a VRM avatar",
		"vermilion avatar.vrm",
		"Run 'vermilion <command> --help'",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommand_FullName(t *testing.T) {
	root := &Command{Name: "vermilion"}
	chunks := &Command{Name: "chunks", parent: root}

	if got := root.fullName(); got != "vermilion" {
		t.Errorf("root.fullName() = %q, want %q", got, "vermilion")
	}
	if got := chunks.fullName(); got != "vermilion chunks" {
		t.Errorf("chunks.fullName() = %q, want %q", got, "vermilion chunks")
	}
}
