package schema

import (
	"encoding/json"
	"fmt"

	"github.com/hupe1980/doubleint"
)

// FromAny converts a decoded value into a DoubleInt.
//
// It exists as the adapter layer between untyped decoder output and the
// typed bound check: the int family and uint64 as produced by yaml.v3,
// int64 from BurntSushi/toml, float64 from encoding/json and json.Number
// from UseNumber decoders. A DoubleInt passes through after revalidation,
// so values smuggled in via Unchecked do not escape an audit.
func FromAny(v any) (doubleint.DoubleInt, error) {
	switch x := v.(type) {
	case doubleint.DoubleInt:
		return doubleint.New(x.Int64())
	case int:
		return doubleint.FromInteger(x)
	case int8:
		return doubleint.FromInteger(x)
	case int16:
		return doubleint.FromInteger(x)
	case int32:
		return doubleint.FromInteger(x)
	case int64:
		return doubleint.FromInteger(x)
	case uint:
		return doubleint.FromInteger(x)
	case uint8:
		return doubleint.FromInteger(x)
	case uint16:
		return doubleint.FromInteger(x)
	case uint32:
		return doubleint.FromInteger(x)
	case uint64:
		return doubleint.FromInteger(x)
	case float32:
		return doubleint.FromFloat64(float64(x))
	case float64:
		return doubleint.FromFloat64(x)
	case json.Number:
		return doubleint.FromNumber(x)
	default:
		return 0, fmt.Errorf("invalid type %T, expected a double-safe integer", v)
	}
}
