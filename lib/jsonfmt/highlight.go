// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jsonfmt

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/quick"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "monokai"

// Highlight writes formatted JSON text to w with ANSI 256-color syntax
// highlighting. An unknown style name falls back to chroma's default
// style.
func Highlight(w io.Writer, text string, style string) error {
	if style == "" {
		style = DefaultStyle
	}
	if err := quick.Highlight(w, text, "json", "terminal256", style); err != nil {
		return fmt.Errorf("highlighting JSON: %w", err)
	}
	return nil
}
