// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package glb

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/netaka/vermilion/cmd/vermilion/cli"
)

// runJQ executes jq with the given arguments, feeding jsonData to its
// stdin. jq's stdout goes to w and its stderr to the process stderr.
// A non-zero jq exit becomes an [cli.ExitError] with the same code so
// piped commands behave correctly (jq -e returns 1 for false/null).
func runJQ(jsonData []byte, jqArgs []string, w io.Writer) error {
	jqPath, err := exec.LookPath("jq")
	if err != nil {
		return cli.NotFound("jq not found in PATH").
			WithHint("Install jq, or run \"vermilion json\" without a filter for the raw document.")
	}

	cmd := exec.Command(jqPath, jqArgs...)
	cmd.Stdin = bytes.NewReader(jsonData)
	cmd.Stdout = w
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &cli.ExitError{Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("run jq: %w", err)
	}
	return nil
}
