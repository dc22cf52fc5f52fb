// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package glb

import "testing"

func TestChunkTypeKind(t *testing.T) {
	tests := []struct {
		tag  ChunkType
		want ChunkKind
	}{
		{tag: TypeJSON, want: KindJSON},
		{tag: TypeBIN, want: KindBinary},
		{tag: ChunkType{'B', 'I', 'N', ' '}, want: KindUnknown},
		{tag: ChunkType{'B', 'I', 'N', 'A'}, want: KindUnknown},
		{tag: ChunkType{'j', 's', 'o', 'n'}, want: KindUnknown},
		{tag: ChunkType{}, want: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			if got := tt.tag.Kind(); got != tt.want {
				t.Errorf("Kind() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestChunkTypeString(t *testing.T) {
	tests := []struct {
		tag  ChunkType
		want string
	}{
		{tag: TypeJSON, want: "JSON"},
		{tag: TypeBIN, want: `BIN\x00`},
		{tag: ChunkType{0xff, 'a', '\\', '\n'}, want: `\xffa\x5c\x0a`},
	}

	for _, tt := range tests {
		if got := tt.tag.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestChunkKindText(t *testing.T) {
	for kind, want := range map[ChunkKind]string{
		KindJSON:     "json",
		KindBinary:   "binary",
		KindUnknown:  "unknown",
		ChunkKind(9): "kind(9)",
	} {
		text, err := kind.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText: %v", err)
		}
		if string(text) != want {
			t.Errorf("MarshalText(%d) = %q, want %q", kind, text, want)
		}
	}
}
