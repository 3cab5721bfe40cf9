package doubleint

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// Value implements driver.Valuer, storing the plain integer.
func (d DoubleInt) Value() (driver.Value, error) {
	return int64(d), nil
}

// Scan implements sql.Scanner. It accepts integer, float and textual column
// values; every path applies the usual bound check. NULL is rejected so the
// zero value stays unambiguous; wrap nullable columns in sql.Null[DoubleInt].
func (d *DoubleInt) Scan(src any) error {
	var (
		nd  DoubleInt
		err error
	)
	switch v := src.(type) {
	case int64:
		nd, err = New(v)
	case float64:
		nd, err = FromFloat64(v)
	case []byte:
		nd, err = Parse(string(v))
	case string:
		nd, err = Parse(v)
	case nil:
		return errors.New("double-int: cannot scan NULL, wrap the column in sql.Null")
	default:
		return fmt.Errorf("double-int: cannot scan %T", src)
	}
	if err != nil {
		return err
	}
	*d = nd
	return nil
}
