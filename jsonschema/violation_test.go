package jsonschema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"testing"
)

func TestViolationString(t *testing.T) {
	root := Violation{Message: "missing properties: 'x'", Instance: map[string]any{}}
	if got, want := root.String(), "Error: missing properties: 'x'\nValue: {}"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	nested := Violation{
		Message:  "expected string, but got number",
		Path:     []string{"items", "1"},
		Instance: json.Number("3"),
	}
	if got, want := nested.String(), "Error: expected string, but got number\nPath: items.1\nValue: 3"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestViolationString_NonJSONValue(t *testing.T) {
	v := Violation{Message: "m", Instance: complex(1, 2)}
	if got, want := v.String(), "Error: m\nValue: (1+2i)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestViolationsError_JoinsWithBlankLine(t *testing.T) {
	vs := Violations{
		{Message: "a", Instance: nil},
		{Message: "b", Path: []string{"k"}, Instance: "v"},
	}
	want := "Error: a\nValue: null\n\nError: b\nPath: k\nValue: \"v\""
	if got := vs.Error(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestAsViolations_Wrapped(t *testing.T) {
	vs := Violations{{Message: "m"}}
	wrapped := fmt.Errorf("load config: %w", vs)
	got, ok := AsViolations(wrapped)
	if !ok || len(got) != 1 {
		t.Fatalf("expected to unwrap violations, got %v %v", got, ok)
	}
	if _, ok := AsViolations(nil); ok {
		t.Fatalf("nil must not yield violations")
	}
}

func TestSortViolations(t *testing.T) {
	vs := Violations{
		{Message: "b", Pointer: "/a"},
		{Message: "a", Pointer: "/z"},
		{Message: "a", Pointer: "/b"},
		{Message: "B", Pointer: ""},
	}
	sortViolations(vs)
	var got []string
	for _, v := range vs {
		got = append(got, v.Message+v.Pointer)
	}
	want := []string{"B", "a/b", "a/z", "b/a"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestPointer(t *testing.T) {
	if got := splitPointer(""); got != nil {
		t.Fatalf("root pointer: got %v", got)
	}
	got := splitPointer("/a~1b/~0c/1")
	if want := []string{"a/b", "~c", "1"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	doc := map[string]any{"a/b": map[string]any{"~c": []any{"x", "y"}}}
	v, ok := resolvePointer(doc, got)
	if !ok || v != "y" {
		t.Fatalf("resolve: got %v %v", v, ok)
	}
	if _, ok := resolvePointer(doc, []string{"a/b", "~c", "9"}); ok {
		t.Fatalf("out-of-range index must not resolve")
	}
	if _, ok := resolvePointer(doc, []string{"missing"}); ok {
		t.Fatalf("missing key must not resolve")
	}
}
