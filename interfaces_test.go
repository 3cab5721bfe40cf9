package doubleint_test

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/hupe1980/doubleint"
	"gopkg.in/yaml.v3"
)

// Compile-time checks for the marshaling contract.
var (
	_ json.Marshaler           = doubleint.DoubleInt(0)
	_ json.Unmarshaler         = (*doubleint.DoubleInt)(nil)
	_ encoding.TextMarshaler   = doubleint.DoubleInt(0)
	_ encoding.TextUnmarshaler = (*doubleint.DoubleInt)(nil)
	_ yaml.Marshaler           = doubleint.DoubleInt(0)
	_ yaml.Unmarshaler         = (*doubleint.DoubleInt)(nil)
	_ toml.Marshaler           = doubleint.DoubleInt(0)
	_ toml.Unmarshaler         = (*doubleint.DoubleInt)(nil)
	_ driver.Valuer            = doubleint.DoubleInt(0)
	_ sql.Scanner              = (*doubleint.DoubleInt)(nil)
	_ fmt.Stringer             = doubleint.DoubleInt(0)
)
