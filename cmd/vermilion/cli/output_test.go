// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	type entry struct {
		Index int    `json:"index"`
		Type  string `json:"type"`
	}

	tests := []struct {
		name    string
		value   any
		compact bool
		want    string
	}{
		{
			name:  "indented",
			value: entry{Index: 1, Type: "BIN"},
			want:  "{\n  \"index\": 1,\n  \"type\": \"BIN\"\n}\n",
		},
		{
			name:    "compact",
			value:   entry{Index: 1, Type: "BIN"},
			compact: true,
			want:    "{\"index\":1,\"type\":\"BIN\"}\n",
		},
		{
			name:    "nil slice",
			value:   []entry(nil),
			compact: true,
			want:    "[]\n",
		},
		{
			name:    "no HTML escaping",
			value:   "<binary data>",
			compact: true,
			want:    "\"<binary data>\"\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buffer bytes.Buffer
			if err := WriteJSON(&buffer, test.value, test.compact); err != nil {
				t.Fatalf("WriteJSON: %v", err)
			}
			if buffer.String() != test.want {
				t.Errorf("WriteJSON = %q, want %q", buffer.String(), test.want)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name     string
		terminal bool
		want     string
	}{
		{name: "terminal uses text", terminal: true, want: "level=DEBUG msg=\"parsed header\" version=2"},
		{name: "pipe uses JSON", terminal: false, want: `"msg":"parsed header","version":2`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buffer bytes.Buffer
			logger := newLogger(&buffer, test.terminal, slog.LevelDebug)
			logger.Debug("parsed header", "version", 2)
			if !strings.Contains(buffer.String(), test.want) {
				t.Errorf("log output %q does not contain %q", buffer.String(), test.want)
			}
		})
	}
}

func TestNewLogger_Level(t *testing.T) {
	var buffer bytes.Buffer
	logger := newLogger(&buffer, false, slog.LevelInfo)
	logger.Debug("hidden")
	if buffer.Len() != 0 {
		t.Errorf("debug record written at info level: %q", buffer.String())
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
	file, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer file.Close()
	if IsTerminal(file) {
		t.Error("a regular file is not a terminal")
	}
}
