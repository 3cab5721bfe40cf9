package doubleint

import "fmt"

// ErrOutOfRange indicates an integer whose magnitude exceeds 2^53.
//
// It is returned by New and surfaced by every decoding hook. Value holds the
// offending integer; the message states the value and both bounds. The error
// is always reported to the caller and never logged or suppressed by this
// package. Matched via errors.As.
type ErrOutOfRange struct {
	Value int64
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("double-int out of range: %d not in [%d, %d]", e.Value, int64(Min), int64(Max))
}

// ErrNotInteger indicates a float with a fractional part (or NaN/Inf) where
// an integral value was required.
//
// It is returned by FromFloat64 and by conversions that accept float input,
// such as Scan. Matched via errors.As.
type ErrNotInteger struct {
	Value float64
}

func (e *ErrNotInteger) Error() string {
	return fmt.Sprintf("double-int requires an integral value, got %v", e.Value)
}
