// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// maxSuggestDistance is the largest edit distance still offered as a
// "did you mean" hint.
const maxSuggestDistance = 3

// closest returns the candidate nearest to typed, or "" when none is
// within maxSuggestDistance. Ties go to the earlier candidate.
func closest(typed string, candidates []string) string {
	best, bestDistance := "", maxSuggestDistance+1
	for _, candidate := range candidates {
		if distance := editDistance(typed, candidate); distance < bestDistance {
			best, bestDistance = candidate, distance
		}
	}
	return best
}

func suggestCommand(typed string, commands []*Command) string {
	names := make([]string, 0, len(commands))
	for _, command := range commands {
		names = append(names, command.Name)
	}
	return closest(typed, names)
}

// suggestFlag finds the first flag in args that flagSet does not define
// and returns the nearest defined flag as "--name".
func suggestFlag(args []string, flagSet *pflag.FlagSet) string {
	for _, arg := range args {
		name, ok := flagName(arg)
		if !ok || isDefined(flagSet, name) {
			continue
		}
		var names []string
		flagSet.VisitAll(func(flag *pflag.Flag) {
			names = append(names, flag.Name)
		})
		if match := closest(name, names); match != "" {
			return "--" + match
		}
		return ""
	}
	return ""
}

// flagName extracts the bare name from "--name", "-n" or "--name=value".
// A lone "-" names stdin and is not a flag.
func flagName(arg string) (string, bool) {
	if !strings.HasPrefix(arg, "-") {
		return "", false
	}
	name, _, _ := strings.Cut(strings.TrimLeft(arg, "-"), "=")
	return name, name != ""
}

func isDefined(flagSet *pflag.FlagSet, name string) bool {
	if flagSet.Lookup(name) != nil {
		return true
	}
	return len(name) == 1 && flagSet.ShorthandLookup(name) != nil
}

// editDistance is the Levenshtein distance between a and b, counted in
// bytes. Flag and command names are ASCII.
func editDistance(a, b string) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	above := make([]int, len(b)+1)
	row := make([]int, len(b)+1)
	for j := range above {
		above[j] = j
	}
	for i := 1; i <= len(a); i++ {
		row[0] = i
		for j := 1; j <= len(b); j++ {
			substitute := above[j-1]
			if a[i-1] != b[j-1] {
				substitute++
			}
			row[j] = min(substitute, above[j]+1, row[j-1]+1)
		}
		above, row = row, above
	}
	return above[len(b)]
}
