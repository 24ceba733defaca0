package jsonschema

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	js "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/reoring/dcosutil/internal/jsonvalue"
)

// ErrInvalidSchema is returned (wrapped) when a schema document cannot be
// loaded or compiled.
var ErrInvalidSchema = errors.New("jsonschema: invalid schema")

const resourceURL = "schema.json"

// Validator validates instances against one compiled draft-4 schema.
type Validator struct {
	schema *js.Schema
}

// Compile compiles schema under draft-4 rules. schema may be a decoded JSON
// document or any value that marshals to one.
func Compile(schema any) (*Validator, error) {
	doc, err := jsonvalue.Normalize(schema)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	data, err := jsonvalue.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	c := js.NewCompiler()
	c.Draft = js.Draft4
	if err := c.AddResource(resourceURL, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: load schema: %w", ErrInvalidSchema, err)
	}
	s, err := c.Compile(resourceURL)
	if err != nil {
		return nil, fmt.Errorf("%w: compile schema: %w", ErrInvalidSchema, err)
	}
	return &Validator{schema: s}, nil
}

// MustCompile is like Compile but panics on an invalid schema. It is meant
// for schemas embedded in the program.
func MustCompile(schema any) *Validator {
	v, err := Compile(schema)
	if err != nil {
		panic(err)
	}
	return v
}

// Validate compiles schema and validates instance against it. It returns nil
// when instance is valid and Violations otherwise.
func Validate(instance, schema any) error {
	v, err := Compile(schema)
	if err != nil {
		return err
	}
	return v.Validate(instance)
}

// Validate returns nil when instance is valid and Violations otherwise. The
// Violations message is the formatted report.
func (v *Validator) Validate(instance any) error {
	vs, err := v.Violations(instance)
	if err != nil {
		return err
	}
	if len(vs) == 0 {
		return nil
	}
	return vs
}

// Violations returns every violation of instance, sorted. The error is
// reserved for failures other than violations, such as an instance that
// cannot be represented as JSON.
func (v *Validator) Violations(instance any) (Violations, error) {
	doc, err := jsonvalue.Normalize(instance)
	if err != nil {
		return nil, fmt.Errorf("jsonschema: instance is not JSON-compatible: %w", err)
	}
	err = v.schema.Validate(doc)
	if err == nil {
		return nil, nil
	}
	var ve *js.ValidationError
	if !errors.As(err, &ve) {
		return nil, err
	}
	var out Violations
	collect(ve, doc, &out)
	sortViolations(out)
	return out, nil
}

// collect flattens the engine's cause tree. Leaves are violations. anyOf,
// oneOf and not failures stay a single violation: their causes are the
// rejected alternatives.
func collect(ve *js.ValidationError, doc any, out *Violations) {
	if len(ve.Causes) == 0 || (ve.Message != "" && isAlternative(ve.KeywordLocation)) {
		*out = append(*out, newViolation(ve, doc))
		return
	}
	for _, c := range ve.Causes {
		collect(c, doc, out)
	}
}

func isAlternative(keywordLocation string) bool {
	kw := keywordLocation[strings.LastIndexByte(keywordLocation, '/')+1:]
	switch kw {
	case "anyOf", "oneOf", "not":
		return true
	}
	return false
}

func newViolation(ve *js.ValidationError, doc any) Violation {
	path := splitPointer(ve.InstanceLocation)
	inst, _ := resolvePointer(doc, path)
	return Violation{
		Message:  ve.Message,
		Path:     path,
		Pointer:  ve.InstanceLocation,
		Keyword:  ve.KeywordLocation,
		Instance: inst,
	}
}

// sortViolations orders by message. Pointer and keyword location break ties
// so the order never depends on the engine's traversal.
func sortViolations(vs Violations) {
	sort.SliceStable(vs, func(i, j int) bool {
		a, b := vs[i], vs[j]
		if a.Message != b.Message {
			return a.Message < b.Message
		}
		if a.Pointer != b.Pointer {
			return a.Pointer < b.Pointer
		}
		return a.Keyword < b.Keyword
	})
}
