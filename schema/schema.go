package schema

import (
	"encoding/json"
	"fmt"
)

// FieldType defines the expected type of a document field.
type FieldType uint8

const (
	// FieldTypeAny accepts any value.
	FieldTypeAny FieldType = iota
	// FieldTypeInt accepts integer values inside the double-safe range.
	FieldTypeInt
	// FieldTypeFloat accepts any numeric value.
	FieldTypeFloat
	// FieldTypeString accepts string values.
	FieldTypeString
	// FieldTypeBool accepts boolean values.
	FieldTypeBool
	// FieldTypeArray accepts array values.
	FieldTypeArray
	// FieldTypeObject accepts nested object values.
	FieldTypeObject
)

// String returns the string representation of the FieldType.
func (t FieldType) String() string {
	switch t {
	case FieldTypeAny:
		return "Any"
	case FieldTypeInt:
		return "Int"
	case FieldTypeFloat:
		return "Float"
	case FieldTypeString:
		return "String"
	case FieldTypeBool:
		return "Bool"
	case FieldTypeArray:
		return "Array"
	case FieldTypeObject:
		return "Object"
	default:
		return "Unknown"
	}
}

// Schema defines the expected structure of a decoded document.
//
// Int fields are double-safe integers: any integer shape the decoders
// produce is accepted, provided the value satisfies the doubleint bound.
type Schema map[string]FieldType

// Validate checks if the given document conforms to the schema.
// Fields not named in the schema are ignored, as are nil values.
func (s Schema) Validate(doc map[string]any) error {
	if s == nil {
		return nil
	}

	for k, v := range doc {
		expected, ok := s[k]
		if !ok {
			continue
		}

		if err := checkField(k, v, expected); err != nil {
			return err
		}
	}

	return nil
}

func checkField(key string, v any, expected FieldType) error {
	if v == nil {
		return nil // Nullability is the caller's concern.
	}

	switch expected {
	case FieldTypeAny:
		return nil
	case FieldTypeInt:
		if _, err := FromAny(v); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}

		return nil
	case FieldTypeFloat:
		switch v.(type) {
		case float32, float64,
			int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			json.Number:
			return nil
		}
	case FieldTypeString:
		if _, ok := v.(string); ok {
			return nil
		}
	case FieldTypeBool:
		if _, ok := v.(bool); ok {
			return nil
		}
	case FieldTypeArray:
		switch v.(type) {
		case []any, []string, []int64, []float64, []bool:
			return nil
		}
	case FieldTypeObject:
		if _, ok := v.(map[string]any); ok {
			return nil
		}
	}

	return fmt.Errorf("field %q has invalid type %T, expected %s", key, v, expected)
}
