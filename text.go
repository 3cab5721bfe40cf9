package doubleint

// MarshalText implements encoding.TextMarshaler as the decimal string.
// It also makes DoubleInt usable as a JSON object key.
func (d DoubleInt) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse, so loaders
// that bind strings to struct fields (environment variables, flags, map keys)
// hit the same validation as New.
func (d *DoubleInt) UnmarshalText(text []byte) error {
	nd, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = nd
	return nil
}
