// Package jsonvalue decodes and normalizes JSON-compatible values on top of
// goccy/go-json. Decoded values are built from map[string]any, []any, string,
// json.Number, bool and nil only.
package jsonvalue

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	j "github.com/goccy/go-json"
)

// ErrTrailingData reports input that continues after the first JSON value.
var ErrTrailingData = errors.New("jsonvalue: unexpected data after top-level value")

// Decode reads exactly one JSON value from r. Numbers are kept as json.Number.
func Decode(r io.Reader) (any, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	var extra any
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return v, nil
	case err != nil:
		return nil, err
	default:
		return nil, ErrTrailingData
	}
}

// DecodeString is Decode over an in-memory document.
func DecodeString(s string) (any, error) { return Decode(strings.NewReader(s)) }

// DecodeBytes is Decode over a byte slice.
func DecodeBytes(b []byte) (any, error) { return Decode(bytes.NewReader(b)) }

// Marshal renders v as compact JSON without HTML escaping. Object keys are
// emitted in sorted order.
func Marshal(v any) ([]byte, error) {
	return j.MarshalWithOption(v, j.DisableHTMLEscape())
}

// Normalize converts v into a JSON-compatible value. Values that already are
// JSON-compatible are returned as is; anything else goes through a
// marshal/decode round trip. Maps with non-string keys (as produced by YAML
// decoders) get their keys rendered with fmt.Sprint.
func Normalize(v any) (any, error) {
	if IsJSONValue(v) {
		return v, nil
	}
	b, err := Marshal(stringKeys(v))
	if err != nil {
		return nil, err
	}
	return DecodeBytes(b)
}

// IsJSONValue reports whether v is made only of decoded-JSON types.
func IsJSONValue(v any) bool {
	switch t := v.(type) {
	case nil, bool, string, j.Number, float64:
		return true
	case map[string]any:
		for _, vv := range t {
			if !IsJSONValue(vv) {
				return false
			}
		}
		return true
	case []any:
		for _, vv := range t {
			if !IsJSONValue(vv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func stringKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = stringKeys(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				ks = fmt.Sprint(k)
			}
			out[ks] = stringKeys(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = stringKeys(t[i])
		}
		return arr
	default:
		return v
	}
}
