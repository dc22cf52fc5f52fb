// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for vermilion.
//
// Configuration is loaded from a single file named either by the
// --config flag (via [LoadFile]) or by the VERMILION_CONFIG environment
// variable (via [Load]). There is no ~/.config discovery and no
// automatic file search: with neither set, [Resolve] returns [Default].
//
// Unknown keys are rejected, so a misspelled option fails loudly
// instead of being ignored. Command-line flags override loaded values;
// that merge happens in the command layer, not here.
//
// Key exports:
//
//   - [Config] -- master struct with Output, Input, Parse sections
//   - [Default] -- returns a Config with built-in defaults
//   - [Resolve], [Load] and [LoadFile] -- the loading entry points
//
// This package depends on no other vermilion packages.
package config
