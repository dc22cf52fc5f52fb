// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// palette holds the styles for the text dump. A zero palette (color
// disabled) renders every string unchanged.
type palette struct {
	enabled     bool
	section     lipgloss.Style
	key         lipgloss.Style
	placeholder lipgloss.Style
	failure     lipgloss.Style
}

func newPalette(enabled bool) palette {
	if !enabled {
		return palette{}
	}

	// The caller has already decided that color is wanted (flag or TTY
	// check), so pin the profile instead of letting lipgloss re-detect
	// it from the writer.
	renderer := lipgloss.NewRenderer(io.Discard, termenv.WithProfile(termenv.ANSI256))
	renderer.SetColorProfile(termenv.ANSI256)

	return palette{
		enabled:     true,
		section:     renderer.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		key:         renderer.NewStyle().Foreground(lipgloss.Color("75")),
		placeholder: renderer.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		failure:     renderer.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

func (p palette) paint(style lipgloss.Style, text string) string {
	if !p.enabled {
		return text
	}
	return style.Render(text)
}
