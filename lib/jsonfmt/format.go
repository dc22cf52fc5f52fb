// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jsonfmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
	"github.com/tidwall/jsonc"
)

// DefaultIndent is the number of spaces per nesting level when
// [Options.Indent] is zero.
const DefaultIndent = 2

// Options controls [Format] and [Pretty].
type Options struct {
	// Indent is the number of spaces per nesting level. Zero or
	// negative means [DefaultIndent].
	Indent int

	// MaxStringLength truncates string values wider than this many
	// terminal cells, marking the cut with an ellipsis. glTF documents
	// often embed base64 data URIs that would otherwise flood the
	// terminal. Zero disables truncation.
	MaxStringLength int

	// Lenient accepts JSONC input (comments, trailing commas).
	Lenient bool
}

func (o Options) indent() int {
	if o.Indent <= 0 {
		return DefaultIndent
	}
	return o.Indent
}

// Pretty parses text and returns its formatted rendering without a
// trailing newline. Malformed input returns [ErrMalformedJSON].
func Pretty(text []byte, options Options) (string, error) {
	value, err := Parse(text, options.Lenient)
	if err != nil {
		return "", err
	}
	return Format(value, options), nil
}

// Compact parses text and returns it on a single line with no
// insignificant whitespace, keys in source order.
func Compact(text []byte, lenient bool) (string, error) {
	if lenient {
		text = jsonc.ToJSON(text)
	}
	var buffer bytes.Buffer
	if err := json.Compact(&buffer, text); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return buffer.String(), nil
}

// Format renders a value tree produced by [Parse]. The result has no
// trailing newline.
func Format(value any, options Options) string {
	formatter := &formatter{
		unit:      strings.Repeat(" ", options.indent()),
		maxString: options.MaxStringLength,
	}
	formatter.value(value, 0)
	return formatter.output.String()
}

type formatter struct {
	output    strings.Builder
	unit      string
	maxString int
}

func (f *formatter) newline(depth int) {
	f.output.WriteByte('\n')
	for range depth {
		f.output.WriteString(f.unit)
	}
}

func (f *formatter) value(value any, depth int) {
	switch typed := value.(type) {
	case *Object:
		f.object(typed, depth)
	case []any:
		f.array(typed, depth)
	default:
		f.scalar(typed)
	}
}

func (f *formatter) object(object *Object, depth int) {
	if object.Len() == 0 {
		f.output.WriteString("{}")
		return
	}
	f.output.WriteByte('{')
	for element := object.Front(); element != nil; element = element.Next() {
		f.newline(depth + 1)
		f.output.WriteString(quote(element.Key))
		f.output.WriteString(": ")
		f.value(element.Value, depth+1)
		if element.Next() != nil {
			f.output.WriteByte(',')
		}
	}
	f.newline(depth)
	f.output.WriteByte('}')
}

func (f *formatter) array(array []any, depth int) {
	if len(array) == 0 {
		f.output.WriteString("[]")
		return
	}

	if allScalars(array) {
		f.output.WriteByte('[')
		for index, element := range array {
			if index > 0 {
				f.output.WriteString(", ")
			}
			f.scalar(element)
		}
		f.output.WriteByte(']')
		return
	}

	f.output.WriteByte('[')
	for index, element := range array {
		f.newline(depth + 1)
		f.value(element, depth+1)
		if index < len(array)-1 {
			f.output.WriteByte(',')
		}
	}
	f.newline(depth)
	f.output.WriteByte(']')
}

func (f *formatter) scalar(value any) {
	switch typed := value.(type) {
	case nil:
		f.output.WriteString("null")
	case bool:
		if typed {
			f.output.WriteString("true")
		} else {
			f.output.WriteString("false")
		}
	case json.Number:
		f.output.WriteString(typed.String())
	case string:
		f.output.WriteString(quote(truncate(typed, f.maxString)))
	default:
		// Only reachable with a tree not built by Parse.
		encoded, err := json.Marshal(typed)
		if err != nil {
			encoded = []byte(quote(fmt.Sprint(typed)))
		}
		f.output.Write(encoded)
	}
}

func allScalars(array []any) bool {
	for _, element := range array {
		switch element.(type) {
		case *Object, []any:
			return false
		}
	}
	return true
}

// ellipsis marks a truncated string value.
const ellipsis = "…"

// truncate shortens s so that its escaped form fits in limit terminal
// cells, ellipsis included. Escapes count at their printed width, so a
// control character costs six cells (\u001b). Cuts fall between
// grapheme clusters. A limit of zero or less disables truncation.
func truncate(s string, limit int) string {
	if limit <= 0 || escapedWidth(s) <= limit {
		return s
	}

	budget := limit - uniseg.StringWidth(ellipsis)
	var kept strings.Builder
	graphemes := uniseg.NewGraphemes(s)
	for graphemes.Next() {
		cluster := graphemes.Str()
		width := escapedWidth(cluster)
		if width > budget {
			break
		}
		budget -= width
		kept.WriteString(cluster)
	}
	return kept.String() + ellipsis
}

// escapedWidth is the display width of s as it appears between the
// quotes of its JSON literal.
func escapedWidth(s string) int {
	literal := quote(s)
	return uniseg.StringWidth(literal[1 : len(literal)-1])
}

// quote returns s as a JSON string literal. HTML characters are left
// unescaped; this output is for people, not browsers.
func quote(s string) string {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = encoder.Encode(s)
	return strings.TrimSuffix(buffer.String(), "\n")
}
