// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for vermilion.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a parameter struct whose tagged
// fields become flags, and a Run function. Commands are assembled into a
// tree in cmd/vermilion/main.go and dispatched via [Command.Execute],
// which handles flag parsing, subcommand routing, and structured help
// output with examples.
//
// A command may have both Subcommands and Run. When the first positional
// argument names a subcommand the framework routes there; otherwise Run
// receives the arguments. This is how "vermilion model.glb" dumps a file
// while "vermilion chunks model.glb" lists its chunks.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3).
//
// Errors returned from Run may be an [*ExitError] (output already
// written, exit with a code) or a [*ToolError] carrying a category and an
// optional hint.
package cli
