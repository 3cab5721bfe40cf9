package doubleint

import (
	"fmt"
	"strconv"
)

// MarshalTOML implements the Marshaler interface of github.com/BurntSushi/toml,
// emitting the bare decimal integer.
func (d DoubleInt) MarshalTOML() ([]byte, error) {
	return strconv.AppendInt(nil, int64(d), 10), nil
}

// UnmarshalTOML implements the Unmarshaler interface of
// github.com/BurntSushi/toml. TOML integers decode as int64; every other
// value shape is rejected.
func (d *DoubleInt) UnmarshalTOML(v any) error {
	i, ok := v.(int64)
	if !ok {
		return fmt.Errorf("double-int: cannot decode TOML %T value", v)
	}
	nd, err := New(i)
	if err != nil {
		return err
	}
	*d = nd
	return nil
}
