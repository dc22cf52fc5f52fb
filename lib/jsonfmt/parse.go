// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jsonfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/elliotchance/orderedmap/v3"
	"github.com/tidwall/jsonc"
)

// ErrMalformedJSON is returned when text is not a single valid JSON
// value.
var ErrMalformedJSON = errors.New("malformed JSON")

// Object is a decoded JSON object with keys in source order.
type Object = orderedmap.OrderedMap[string, any]

// Parse decodes text into a value tree: *[Object], []any,
// json.Number, string, bool, or nil. Exactly one JSON value must be
// present; anything after it other than whitespace is an error. A
// repeated object key keeps its first position and its last value.
//
// When lenient is true, comments and trailing commas are stripped
// first.
func Parse(text []byte, lenient bool) (any, error) {
	if lenient {
		text = jsonc.ToJSON(text)
	}

	decoder := json.NewDecoder(bytes.NewReader(text))
	decoder.UseNumber()

	value, err := parseValue(decoder)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	if token, err := decoder.Token(); err != io.EOF {
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
		}
		return nil, fmt.Errorf("%w: unexpected %v after top-level value at byte %d",
			ErrMalformedJSON, token, decoder.InputOffset())
	}

	return value, nil
}

func parseValue(decoder *json.Decoder) (any, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	delimiter, ok := token.(json.Delim)
	if !ok {
		return token, nil
	}

	switch delimiter {
	case '{':
		object := orderedmap.NewOrderedMap[string, any]()
		for decoder.More() {
			keyToken, err := decoder.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyToken.(string)
			if !ok {
				return nil, fmt.Errorf("object key is %v, want string", keyToken)
			}
			element, err := parseValue(decoder)
			if err != nil {
				return nil, err
			}
			object.Set(key, element)
		}
		if _, err := decoder.Token(); err != nil {
			return nil, err
		}
		return object, nil

	case '[':
		array := []any{}
		for decoder.More() {
			element, err := parseValue(decoder)
			if err != nil {
				return nil, err
			}
			array = append(array, element)
		}
		if _, err := decoder.Token(); err != nil {
			return nil, err
		}
		return array, nil

	default:
		return nil, fmt.Errorf("unexpected %q", rune(delimiter))
	}
}
