// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1}, // substitution
		{"abc", "ab", 1},  // deletion
		{"ab", "abc", 1},  // insertion
		{"abc", "bac", 2}, // transposition (counted as 2 edits)
		{"kitten", "sitting", 3},
		{"chunks", "chunsk", 2},
		{"extract", "extrat", 1},
		{"validate", "vaildate", 2},
	}

	for _, test := range tests {
		t.Run(test.a+"->"+test.b, func(t *testing.T) {
			got := editDistance(test.a, test.b)
			if got != test.want {
				t.Errorf("editDistance(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
			}
			if reverse := editDistance(test.b, test.a); reverse != got {
				t.Errorf("editDistance is not symmetric: %d vs %d", got, reverse)
			}
		})
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "dump"},
		{Name: "json"},
		{Name: "chunks"},
		{Name: "validate"},
		{Name: "extract"},
		{Name: "version"},
	}

	tests := []struct {
		input string
		want  string
	}{
		{"chunsk", "chunks"},      // transposition
		{"extrac", "extract"},     // missing letter
		{"validatee", "validate"}, // extra letter
		{"vrsion", "version"},     // missing letter
		{"jsno", "json"},          // transposition
		{"zzzzzzzzz", ""},         // nothing close
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got := suggestCommand(test.input, commands)
			if got != test.want {
				t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
			}
		})
	}
}

func TestSuggestFlag(t *testing.T) {
	makeFlagSet := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flagSet.String("format", "", "")
		flagSet.BoolP("hex", "x", false, "")
		flagSet.Bool("strict", false, "")
		flagSet.Bool("digest", false, "")
		flagSet.String("config", "", "")
		return flagSet
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "close typo with double dash",
			args: []string{"--fromat"},
			want: "--format",
		},
		{
			name: "close typo with single dash",
			args: []string{"-stirct"},
			want: "--strict",
		},
		{
			name: "defined flags are skipped",
			args: []string{"-x", "--strict", "--digset"},
			want: "--digest",
		},
		{
			name: "nothing close",
			args: []string{"--zzzzzzzzz"},
			want: "",
		},
		{
			name: "no flags",
			args: []string{"model.glb"},
			want: "",
		},
		{
			name: "stdin dash is not a flag",
			args: []string{"-"},
			want: "",
		},
		{
			name: "flag with equals",
			args: []string{"--confg=vermilion.yaml"},
			want: "--config",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := suggestFlag(test.args, makeFlagSet())
			if got != test.want {
				t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
			}
		})
	}
}

func TestClosest(t *testing.T) {
	tests := []struct {
		name       string
		typed      string
		candidates []string
		want       string
	}{
		{"exact match", "dump", []string{"json", "dump"}, "dump"},
		{"tie keeps first candidate", "hx", []string{"hex", "hax"}, "hex"},
		{"distance three is offered", "abc", []string{"xyz"}, "xyz"},
		{"distance four is not", "abcd", []string{"wxyz"}, ""},
		{"no candidates", "dump", nil, ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := closest(test.typed, test.candidates); got != test.want {
				t.Errorf("closest(%q, %v) = %q, want %q", test.typed, test.candidates, got, test.want)
			}
		})
	}
}
