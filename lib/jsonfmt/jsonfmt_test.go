// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jsonfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestPretty(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		options Options
		want    string
	}{
		{
			name:  "flat object with scalar array",
			input: `{"a":1,"b":[1,2,3]}`,
			want: `{
  "a": 1,
  "b": [1, 2, 3]
}`,
		},
		{
			name:  "single key",
			input: `{"x":1}`,
			want: `{
  "x": 1
}`,
		},
		{
			name:  "array of objects expands",
			input: `{"nodes":[{"name":"root","children":[1,2]},{"mesh":0}],"empty":{},"list":[],"nested":[[1],[2,3]]}`,
			want: `{
  "nodes": [
    {
      "name": "root",
      "children": [1, 2]
    },
    {
      "mesh": 0
    }
  ],
  "empty": {},
  "list": [],
  "nested": [
    [1],
    [2, 3]
  ]
}`,
		},
		{
			name:  "scalars keep source spelling",
			input: `[true,false,null,"s",1.50,-2e10]`,
			want:  `[true, false, null, "s", 1.50, -2e10]`,
		},
		{
			name:  "top-level scalar",
			input: `  "hello"  `,
			want:  `"hello"`,
		},
		{
			name:  "string escapes",
			input: `{"k":"a<b>é\n\"q\""}`,
			want: `{
  "k": "a<b>é\n\"q\""
}`,
		},
		{
			name:    "custom indent",
			input:   `{"a":{"b":true}}`,
			options: Options{Indent: 4},
			want: `{
    "a": {
        "b": true
    }
}`,
		},
		{
			name:  "key order preserved",
			input: `{"z":1,"a":2,"m":3}`,
			want: `{
  "z": 1,
  "a": 2,
  "m": 3
}`,
		},
		{
			name:  "duplicate key keeps first position",
			input: `{"a":1,"b":2,"a":3}`,
			want: `{
  "a": 3,
  "b": 2
}`,
		},
		{
			name:    "lenient accepts comments and trailing commas",
			input:   "{\"a\":1, // comment\n\"b\":[1,2,],}",
			options: Options{Lenient: true},
			want: `{
  "a": 1,
  "b": [1, 2]
}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Pretty([]byte(tt.input), tt.options)
			if err != nil {
				t.Fatalf("Pretty: %v", err)
			}
			if got != tt.want {
				t.Errorf("Pretty output:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestPrettyMalformed(t *testing.T) {
	inputs := []string{
		``,
		`   `,
		`{`,
		`{"a":}`,
		`[1,]`,
		`{"a":1}}`,
		`{} {}`,
		`1 2`,
		`{"a":1,}`,
		`nul`,
	}

	for _, input := range inputs {
		_, err := Pretty([]byte(input), Options{})
		if !errors.Is(err, ErrMalformedJSON) {
			t.Errorf("Pretty(%q) error = %v, want ErrMalformedJSON", input, err)
		}
	}
}

// TestPrettyRoundTrip checks that formatted output parses back to the
// same structure with the same key order.
func TestPrettyRoundTrip(t *testing.T) {
	input := `{"a":1,"b":[1,2,3]}`
	pretty, err := Pretty([]byte(input), Options{})
	if err != nil {
		t.Fatalf("Pretty: %v", err)
	}

	compacted, err := Compact([]byte(pretty), false)
	if err != nil {
		t.Fatalf("Compact: %v", err)
	}
	if compacted != input {
		t.Errorf("round trip = %s, want %s", compacted, input)
	}

	value, err := Parse([]byte(pretty), false)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	object, ok := value.(*Object)
	if !ok {
		t.Fatalf("Parse returned %T, want *Object", value)
	}
	var keys []string
	for element := object.Front(); element != nil; element = element.Next() {
		keys = append(keys, element.Key)
	}
	if strings.Join(keys, ",") != "a,b" {
		t.Errorf("keys = %v, want [a b]", keys)
	}
	array, ok := object.Get("b")
	if !ok {
		t.Fatal("key b missing")
	}
	want := []any{json.Number("1"), json.Number("2"), json.Number("3")}
	got, ok := array.([]any)
	if !ok || len(got) != len(want) {
		t.Fatalf("b = %#v, want %#v", array, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("b[%d] = %#v, want %#v", i, got[i], want[i])
		}
	}
}

func TestPrettyTruncatesLongStrings(t *testing.T) {
	uri := "data:application/octet-stream;base64," + strings.Repeat("QUJD", 100)
	input := `{"uri":"` + uri + `","short":"ok"}`

	got, err := Pretty([]byte(input), Options{MaxStringLength: 24})
	if err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	if strings.Contains(got, uri) {
		t.Error("long string was not truncated")
	}
	if !strings.Contains(got, `"data:application`) || !strings.Contains(got, "…") {
		t.Errorf("truncated output missing prefix or ellipsis:\n%s", got)
	}
	if !strings.Contains(got, `"short": "ok"`) {
		t.Errorf("short string should be untouched:\n%s", got)
	}
}

func TestPrettyTruncationCountsEscapes(t *testing.T) {
	tests := []struct {
		name  string
		value string
		limit int
		want  string
	}{
		{
			name:  "escape sequence wider than the limit",
			value: `"\u001b[31mabcdef"`,
			limit: 3,
			want:  `"…"`,
		},
		{
			name:  "escape sequence inside the limit",
			value: `"ab\u001bcdefgh"`,
			limit: 10,
			want:  `"ab\u001bc…"`,
		},
		{
			name:  "escaped quotes",
			value: `"a\"b\"cdef"`,
			limit: 5,
			want:  `"a\"b…"`,
		},
		{
			name:  "wide characters",
			value: `"日本語テキスト"`,
			limit: 5,
			want:  `"日本…"`,
		},
		{
			name:  "fits exactly",
			value: `"a\tb"`,
			limit: 4,
			want:  `"a\tb"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Pretty([]byte(tt.value), Options{MaxStringLength: tt.limit})
			if err != nil {
				t.Fatalf("Pretty: %v", err)
			}
			if got != tt.want {
				t.Errorf("Pretty = %s, want %s", got, tt.want)
			}
			inner := strings.TrimSuffix(strings.TrimPrefix(got, `"`), `"`)
			if width := ansi.StringWidth(inner); width > tt.limit {
				t.Errorf("rendered width %d exceeds limit %d", width, tt.limit)
			}
		})
	}
}

func TestCompact(t *testing.T) {
	got, err := Compact([]byte("{ \"b\" : 1,\n \"a\": [1, 2] }"), false)
	if err != nil {
		t.Fatalf("Compact: %v", err)
	}
	if got != `{"b":1,"a":[1,2]}` {
		t.Errorf("Compact = %s", got)
	}

	if _, err := Compact([]byte(`{"b":`), false); !errors.Is(err, ErrMalformedJSON) {
		t.Errorf("Compact malformed error = %v, want ErrMalformedJSON", err)
	}
}

func TestHighlight(t *testing.T) {
	text := "{\n  \"x\": 1\n}"
	var buffer bytes.Buffer
	if err := Highlight(&buffer, text, ""); err != nil {
		t.Fatalf("Highlight: %v", err)
	}
	output := buffer.String()
	if !strings.Contains(output, "\x1b[") {
		t.Errorf("output has no ANSI escapes: %q", output)
	}
	if stripped := strings.TrimRight(ansi.Strip(output), "\n"); stripped != text {
		t.Errorf("stripped output = %q, want %q", stripped, text)
	}
}
