// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package glb

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/netaka/vermilion/cmd/vermilion/cli"
	"github.com/netaka/vermilion/lib/config"
)

// isolate clears the config environment variable so tests never pick
// up a developer's config file.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvVar, "")
	t.Setenv("NO_COLOR", "")
}

// withStdin replaces the command input reader for the duration of the
// test.
func withStdin(t *testing.T, data []byte) {
	t.Helper()
	previous := stdin
	stdin = bytes.NewReader(data)
	t.Cleanup(func() { stdin = previous })
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// exitCode returns the code carried by a cli.ExitError, or -1.
func exitCode(err error) int {
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return -1
}

// category returns the category of a cli.ToolError, or "".
func category(err error) cli.ErrorCategory {
	var toolErr *cli.ToolError
	if errors.As(err, &toolErr) {
		return toolErr.Category
	}
	return ""
}
