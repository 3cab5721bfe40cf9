// Package schema validates decoded interchange documents for double-safety.
//
// Decoders hand back untyped documents (map[string]any) whose integer fields
// may exceed the double-safe range without any error: the bytes decoded fine,
// they just will not survive the next trip through a double-precision format.
// This package audits such documents before they are re-encoded or handed to
// consumers that assume exact integers.
//
// # Schema Validation
//
// Declare the expected field types and validate a document against them:
//
//	s := schema.Schema{
//	    "count": schema.FieldTypeInt,
//	    "name":  schema.FieldTypeString,
//	}
//	err := s.Validate(doc)
//
// Int fields accept any integer shape the decoders produce, as long as the
// value satisfies the doubleint bound. Fields not named in the schema pass.
//
// # Schemaless Auditing
//
// Check walks an arbitrary decoded value and flags every integer that would
// lose precision in a double, reporting its path:
//
//	err := schema.Check(doc) // e.g. unsafe integer at "items[3].count": ...
//
// # Decoder Shapes
//
// The package understands the value shapes produced by encoding/json
// (float64, and json.Number under UseNumber), gopkg.in/yaml.v3 (the int
// family and uint64 for large positives) and github.com/BurntSushi/toml
// (int64).
package schema
