// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"slices"

	"github.com/netaka/vermilion/lib/jsonfmt"
)

// Summary is an overview of a glTF JSON document. It is descriptive
// only; nothing here is validated against the glTF schema.
type Summary struct {
	// Version is asset.version, the glTF version the document targets.
	Version    string `json:"version,omitempty" yaml:"version,omitempty"`
	MinVersion string `json:"minVersion,omitempty" yaml:"minVersion,omitempty"`
	Generator  string `json:"generator,omitempty" yaml:"generator,omitempty"`

	ExtensionsUsed     []string `json:"extensionsUsed,omitempty" yaml:"extensionsUsed,omitempty"`
	ExtensionsRequired []string `json:"extensionsRequired,omitempty" yaml:"extensionsRequired,omitempty"`

	// Counts maps each non-empty top-level array (meshes, nodes, ...)
	// to its length.
	Counts map[string]int `json:"counts,omitempty" yaml:"counts,omitempty"`

	// VRM is set when the document declares a VRM avatar extension.
	VRM *VRMSummary `json:"vrm,omitempty" yaml:"vrm,omitempty"`
}

// VRMSummary identifies a VRM avatar.
type VRMSummary struct {
	// Extension is the declaring extension: "VRM" (0.x) or "VRMC_vrm"
	// (1.0).
	Extension string `json:"extension" yaml:"extension"`

	// SpecVersion is the VRM specification version, when declared.
	SpecVersion string `json:"specVersion,omitempty" yaml:"specVersion,omitempty"`

	// Name is the avatar's display name from its meta block.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// VRM extension names.
const (
	extensionVRM0 = "VRM"
	extensionVRM1 = "VRMC_vrm"
)

// countedArrays are the top-level glTF arrays reported in
// Summary.Counts.
var countedArrays = []string{
	"accessors", "animations", "buffers", "bufferViews", "cameras",
	"images", "materials", "meshes", "nodes", "samplers", "scenes",
	"skins", "textures",
}

// Summarize extracts a [Summary] from a document tree produced by
// [jsonfmt.Parse]. It returns nil if the document is not an object.
// Members of the wrong JSON type are treated as absent.
func Summarize(document any) *Summary {
	root, ok := document.(*jsonfmt.Object)
	if !ok || root == nil {
		return nil
	}

	asset := member[*jsonfmt.Object](root, "asset")
	summary := &Summary{
		Version:            member[string](asset, "version"),
		MinVersion:         member[string](asset, "minVersion"),
		Generator:          member[string](asset, "generator"),
		ExtensionsUsed:     stringArray(root, "extensionsUsed"),
		ExtensionsRequired: stringArray(root, "extensionsRequired"),
	}

	for _, name := range countedArrays {
		elements := member[[]any](root, name)
		if len(elements) == 0 {
			continue
		}
		if summary.Counts == nil {
			summary.Counts = make(map[string]int)
		}
		summary.Counts[name] = len(elements)
	}

	summary.VRM = summarizeVRM(root, summary.ExtensionsUsed)
	return summary
}

// summarizeVRM prefers VRM 1.0 over 0.x when both are declared. VRM
// 0.x keeps the avatar name in meta.title, VRM 1.0 in meta.name.
func summarizeVRM(root *jsonfmt.Object, extensionsUsed []string) *VRMSummary {
	extensions := member[*jsonfmt.Object](root, "extensions")
	for _, name := range []string{extensionVRM1, extensionVRM0} {
		var declared bool
		if extensions != nil {
			_, declared = extensions.Get(name)
		}
		if !declared && !slices.Contains(extensionsUsed, name) {
			continue
		}

		extension := member[*jsonfmt.Object](extensions, name)
		meta := member[*jsonfmt.Object](extension, "meta")
		vrm := &VRMSummary{
			Extension:   name,
			SpecVersion: member[string](extension, "specVersion"),
			Name:        member[string](meta, "name"),
		}
		if vrm.Name == "" {
			vrm.Name = member[string](meta, "title")
		}
		return vrm
	}
	return nil
}

// member returns object[key] as a T, or the zero T when object is nil,
// the key is absent, or the value has another type.
func member[T any](object *jsonfmt.Object, key string) T {
	var zero T
	if object == nil {
		return zero
	}
	value, ok := object.Get(key)
	if !ok {
		return zero
	}
	typed, ok := value.(T)
	if !ok {
		return zero
	}
	return typed
}

// stringArray returns the string elements of the array object[key].
func stringArray(object *jsonfmt.Object, key string) []string {
	var values []string
	for _, element := range member[[]any](object, key) {
		if text, ok := element.(string); ok {
			values = append(values, text)
		}
	}
	return values
}
