package schema

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/hupe1980/doubleint"
)

// Check walks a decoded document and reports the first integer that would
// lose precision in an IEEE 754 double. The offending value is identified
// by its path, e.g. "items[3].count".
//
// Fractional, NaN and infinite floats pass: they are ordinary doubles, not
// integers in disguise. Values of types the decoders never produce pass as
// well.
func Check(v any) error {
	return checkValue("", v)
}

func checkValue(path string, v any) error {
	switch x := v.(type) {
	case map[string]any:
		for k, vv := range x {
			if err := checkValue(childPath(path, k), vv); err != nil {
				return err
			}
		}

		return nil
	case []any:
		for i, vv := range x {
			if err := checkValue(fmt.Sprintf("%s[%d]", path, i), vv); err != nil {
				return err
			}
		}

		return nil
	case float64:
		return checkFloat(path, x)
	case json.Number:
		if _, err := x.Int64(); err == nil {
			return checkInteger(path, x)
		}

		f, err := x.Float64()
		if err != nil {
			return nil // Not a number at all; the decoder's problem.
		}

		return checkFloat(path, f)
	case doubleint.DoubleInt,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return checkInteger(path, x)
	default:
		return nil
	}
}

func checkInteger(path string, v any) error {
	if _, err := FromAny(v); err != nil {
		return unsafeErr(path, err)
	}

	return nil
}

func checkFloat(path string, f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil
	}

	if _, err := doubleint.FromFloat64(f); err != nil {
		return unsafeErr(path, err)
	}

	return nil
}

func unsafeErr(path string, err error) error {
	if path == "" {
		return fmt.Errorf("unsafe integer: %w", err)
	}

	return fmt.Errorf("unsafe integer at %q: %w", path, err)
}

func childPath(parent, key string) string {
	if parent == "" {
		return key
	}

	return parent + "." + key
}
