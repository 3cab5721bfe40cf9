package doubleint

import (
	"encoding/json"
	"fmt"
	"math"
)

// Integer matches any built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// FromInteger converts an integer of any built-in type to a DoubleInt.
//
// Non-negative values are compared in uint64 space, so a large unsigned value
// can never wrap around into the valid range. Values that do not fit in an
// int64 at all are reported with a plain descriptive error rather than
// *ErrOutOfRange, which carries the offending value as an int64.
func FromInteger[T Integer](v T) (DoubleInt, error) {
	if v < 0 {
		return New(int64(v))
	}
	u := uint64(v)
	if u > Max {
		if u > math.MaxInt64 {
			return 0, fmt.Errorf("double-int out of range: %d overflows int64", u)
		}
		return 0, &ErrOutOfRange{Value: int64(u)}
	}
	return DoubleInt(u), nil
}

// FromFloat64 converts f to a DoubleInt.
//
// It fails with *ErrNotInteger if f has a fractional part or is NaN or ±Inf,
// and with *ErrOutOfRange if the integral value lies outside [Min, Max].
func FromFloat64(f float64) (DoubleInt, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, &ErrNotInteger{Value: f}
	}
	if f >= Min && f <= Max {
		return DoubleInt(f), nil
	}
	if f >= 1<<63 || f < -(1<<63) {
		return 0, fmt.Errorf("double-int out of range: %g overflows int64", f)
	}
	return 0, &ErrOutOfRange{Value: int64(f)}
}

// FromNumber converts a json.Number, as produced by a json.Decoder with
// UseNumber set, to a DoubleInt. Fractional literals are rejected by the
// int64 parse, out-of-range integers by the bound check.
func FromNumber(n json.Number) (DoubleInt, error) {
	v, err := n.Int64()
	if err != nil {
		return 0, fmt.Errorf("double-int: %w", err)
	}
	return New(v)
}
