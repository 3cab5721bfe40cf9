package doubleint

import (
	"fmt"
	"strconv"
)

// Min and Max are the inclusive bounds of a DoubleInt. 2^53 is the largest
// magnitude at which consecutive integers remain distinguishable in an IEEE 754
// double; both endpoints are themselves exactly representable and therefore
// valid.
const (
	Min = -1 << 53 // -9007199254740992
	Max = 1 << 53  // 9007199254740992
)

// DoubleInt is an int64 whose value lies in the inclusive range [Min, Max],
// so it is exactly representable as an IEEE 754 double-precision number.
//
// It is an immutable value type: equality and ordering are the native integer
// operators, the zero value is a valid 0, and instances are safe to share
// across goroutines.
//
// Values obtained through New, Parse or any of the decoding hooks always
// satisfy the bound. A plain conversion DoubleInt(n) or Unchecked(n) bypasses
// validation; use Valid to audit such values.
type DoubleInt int64

// New returns v as a DoubleInt, or a *ErrOutOfRange if v lies outside
// [Min, Max]. It is the only fallible entry point of the core: out-of-range
// input is always reported to the caller, never clamped or truncated.
func New(v int64) (DoubleInt, error) {
	if v < Min || v > Max {
		return 0, &ErrOutOfRange{Value: v}
	}
	return DoubleInt(v), nil
}

// MustNew is like New but panics on out-of-range input.
// Intended for package-level values and tests.
func MustNew(v int64) DoubleInt {
	d, err := New(v)
	if err != nil {
		panic(err)
	}
	return d
}

// Unchecked returns v as a DoubleInt without validating the bound.
//
// This is a trust-boundary escape hatch: the caller must guarantee
// Min <= v <= Max, typically because the value's provenance already does
// (a loop counter, a length, a value previously validated). Misuse produces
// a DoubleInt that violates the documented invariant; such values report
// false from Valid. Untrusted input must go through New or a decoding hook.
func Unchecked(v int64) DoubleInt { return DoubleInt(v) }

// Parse converts a base-10 string to a DoubleInt, applying the same bound
// check as New.
func Parse(s string) (DoubleInt, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("double-int: %w", err)
	}
	return New(v)
}

// InRange reports whether v satisfies the DoubleInt bound. It allows callers
// to pre-validate without constructing a value.
func InRange(v int64) bool { return v >= Min && v <= Max }

// Int64 returns the underlying integer unchanged.
func (d DoubleInt) Int64() int64 { return int64(d) }

// Float64 returns the value as a double-precision float.
// The conversion is exact for every in-range value.
func (d DoubleInt) Float64() float64 { return float64(d) }

// Valid reports whether d is within [Min, Max]. Values built through New or
// the decoding hooks are always valid; Valid exists to audit values built
// through Unchecked or a plain conversion.
func (d DoubleInt) Valid() bool { return d >= Min && d <= Max }

// String returns the decimal representation of d.
func (d DoubleInt) String() string { return strconv.FormatInt(int64(d), 10) }
