// Package jsonschema validates JSON-compatible values against draft-4 JSON
// Schema documents and renders every violation as a deterministic,
// human-readable report.
//
// Validation is delegated to github.com/santhosh-tekuri/jsonschema/v5 with
// the draft pinned to 4. The engine's cause tree is flattened into a list of
// Violation values sorted by message, so the same input always produces the
// same report:
//
//	err := jsonschema.Validate(instance, schema)
//	if vs, ok := jsonschema.AsViolations(err); ok {
//		fmt.Println(vs) // Error: ... / Path: ... / Value: ...
//	}
//
// Schemas embedded in the program can be compiled once with MustCompile.
package jsonschema
