// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestToolError_ErrorWithoutHint(t *testing.T) {
	err := Validation("extract requires --chunk")
	if err.Error() != "extract requires --chunk" {
		t.Errorf("Error() = %q, want %q", err.Error(), "extract requires --chunk")
	}
	if strings.Contains(err.Error(), "\n\n") {
		t.Error("empty hint should not add blank line to error message")
	}
}

func TestToolError_ErrorWithHint(t *testing.T) {
	err := NotFound("chunk 5 does not exist").
		WithHint("Run 'vermilion chunks model.glb' to list chunk indices.")

	want := "chunk 5 does not exist\n\nRun 'vermilion chunks model.glb' to list chunk indices."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Category != CategoryNotFound {
		t.Errorf("Category = %q, want %q", err.Category, CategoryNotFound)
	}
}

func TestToolError_WithHintReturnsReceiver(t *testing.T) {
	original := Validation("bad input")
	if chained := original.WithHint("fix it"); chained != original {
		t.Error("WithHint should return the same pointer")
	}
}

func TestToolError_UnwrapChain(t *testing.T) {
	inner := Internal("reading model.glb: %w", fs.ErrPermission).WithHint("check file permissions")
	wrapped := fmt.Errorf("dump: %w", inner)

	var toolErr *ToolError
	if !errors.As(wrapped, &toolErr) {
		t.Fatal("errors.As should find ToolError in wrapped chain")
	}
	if toolErr.Hint != "check file permissions" {
		t.Errorf("Hint = %q after unwrap, want %q", toolErr.Hint, "check file permissions")
	}
	if !errors.Is(wrapped, fs.ErrPermission) {
		t.Error("errors.Is should reach the error wrapped with %w")
	}
}

func TestToolError_AllCategories(t *testing.T) {
	tests := []struct {
		name     string
		err      *ToolError
		category ErrorCategory
	}{
		{"Validation", Validation("bad"), CategoryValidation},
		{"NotFound", NotFound("missing"), CategoryNotFound},
		{"Internal", Internal("bug"), CategoryInternal},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.err.Category != test.category {
				t.Errorf("Category = %q, want %q", test.err.Category, test.category)
			}
		})
	}
}

func TestExitError(t *testing.T) {
	var err error = &ExitError{Code: ExitContentError}

	coder, ok := err.(interface{ ExitCode() int })
	if !ok {
		t.Fatal("ExitError does not implement ExitCode()")
	}
	if coder.ExitCode() != 2 {
		t.Errorf("ExitCode() = %d, want 2", coder.ExitCode())
	}
	if err.Error() != "exit code 2" {
		t.Errorf("Error() = %q", err.Error())
	}
}
