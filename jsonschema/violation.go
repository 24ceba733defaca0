package jsonschema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/dcosutil/internal/jsonvalue"
)

// Violation is a single schema constraint failure.
type Violation struct {
	Message string
	// Path locates the failure inside the instance, one entry per object key
	// or array index. Empty for the instance root.
	Path []string
	// Pointer is Path as an RFC 6901 JSON Pointer ("" for the root).
	Pointer string
	// Keyword is the schema keyword location that failed (for example:
	// /properties/port/type).
	Keyword  string
	Instance any
}

// String renders the report block for v:
//
//	Error: <message>
//	Path: <a.b.0>      (omitted for the root)
//	Value: <json>
//
// A value that cannot be rendered as JSON is printed with fmt.Sprint.
func (v Violation) String() string {
	b := &strings.Builder{}
	b.WriteString("Error: ")
	b.WriteString(v.Message)
	b.WriteByte('\n')
	if len(v.Path) > 0 {
		b.WriteString("Path: ")
		b.WriteString(strings.Join(v.Path, "."))
		b.WriteByte('\n')
	}
	b.WriteString("Value: ")
	if val, err := jsonvalue.Marshal(v.Instance); err == nil {
		b.Write(val)
	} else {
		b.WriteString(fmt.Sprint(v.Instance))
	}
	return b.String()
}

// Violations is a sorted collection of violations that implements error.
type Violations []Violation

// Error returns the full report, one block per violation separated by a
// blank line.
func (vs Violations) Error() string {
	blocks := make([]string, len(vs))
	for i, v := range vs {
		blocks[i] = v.String()
	}
	return strings.Join(blocks, "\n\n")
}

// AsViolations extracts Violations from an error using errors.As internally.
func AsViolations(err error) (Violations, bool) {
	if err == nil {
		return nil, false
	}
	var vs Violations
	if errors.As(err, &vs) {
		return vs, true
	}
	return nil, false
}
