package doubleint

import (
	"encoding/json"
	"strconv"
)

// MarshalJSON implements json.Marshaler. The encoding is the bare decimal
// integer with no wrapper, so readers unaware of DoubleInt see an ordinary
// integer field.
func (d DoubleInt) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(d), 10), nil
}

// UnmarshalJSON implements json.Unmarshaler.
//
// The input must be a plain JSON integer that fits in an int64: fractional
// numbers, exponent notation, strings and literals beyond ±2^63 are rejected
// by the int64 decode, out-of-bound integers by the bound check with
// *ErrOutOfRange. A JSON null leaves the value untouched, matching the
// behavior of plain int64 fields.
func (d *DoubleInt) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	nd, err := New(v)
	if err != nil {
		return err
	}
	*d = nd
	return nil
}
