// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package glb

import "github.com/netaka/vermilion/cmd/vermilion/cli"

// Commands returns the container commands in help order. The first is
// dump, which the root command also uses as its Run fallback.
func Commands() []*cli.Command {
	return []*cli.Command{
		DumpCommand(),
		JSONCommand(),
		ChunksCommand(),
		ValidateCommand(),
		ExtractCommand(),
	}
}
