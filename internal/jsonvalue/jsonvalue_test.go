package jsonvalue

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestDecodeString_UsesNumber(t *testing.T) {
	v, err := DecodeString(`{"a": 1, "b": [true, null, "x", 2.5]}`)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := map[string]any{
		"a": json.Number("1"),
		"b": []any{true, nil, "x", json.Number("2.5")},
	}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("got %#v, want %#v", v, want)
	}
}

func TestDecodeString_RejectsTrailingData(t *testing.T) {
	_, err := DecodeString(`{"a":1} {"b":2}`)
	if !errors.Is(err, ErrTrailingData) {
		t.Fatalf("expected ErrTrailingData, got %v", err)
	}
	if _, err := DecodeString("1 \n\t "); err != nil {
		t.Fatalf("trailing whitespace must be accepted: %v", err)
	}
}

func TestDecodeString_Invalid(t *testing.T) {
	for _, in := range []string{"", "{not json", "[1,", `{"a":}`} {
		if _, err := DecodeString(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestNormalize_StructAndAnyKeys(t *testing.T) {
	type point struct {
		X int `json:"x"`
		Y int `json:"y"`
	}
	got, err := Normalize(map[any]any{"p": point{X: 1, Y: 2}, 3: "three"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := map[string]any{
		"p": map[string]any{"x": json.Number("1"), "y": json.Number("2")},
		"3": "three",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestNormalize_PassThrough(t *testing.T) {
	in := map[string]any{"a": []any{"b", json.Number("1")}}
	got, err := Normalize(in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("got %#v", got)
	}
}

func TestMarshal_SortedCompactNoEscape(t *testing.T) {
	b, err := Marshal(map[string]any{"b": "<x>", "a": json.Number("1")})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if string(b) != `{"a":1,"b":"<x>"}` {
		t.Fatalf("got %s", b)
	}
}
