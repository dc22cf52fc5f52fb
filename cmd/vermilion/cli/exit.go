// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// Exit codes used by vermilion commands.
const (
	// ExitFailure reports a structural failure (the input is not a
	// readable container) or a failed conformance check.
	ExitFailure = 1

	// ExitContentError reports that the dump completed but some chunk
	// could not be rendered, under --strict.
	ExitContentError = 2
)

// ExitError signals a non-zero exit code without printing an extra
// error message. When a command handler returns an ExitError, main
// exits with the specified code without printing the error string: the
// command is expected to have already written its own output.
//
// This is useful for commands where a non-zero exit is a valid outcome
// ("validate" finding problems) rather than an unexpected error.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code. main checks for this interface on
// returned errors to distinguish "handled non-zero exit" from
// "unexpected error to display".
func (e *ExitError) ExitCode() int {
	return e.Code
}
