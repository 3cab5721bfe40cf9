package doubleint

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler for gopkg.in/yaml.v3.
// The node is a plain integer scalar.
func (d DoubleInt) MarshalYAML() (any, error) {
	return int64(d), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for gopkg.in/yaml.v3.
// The node must decode into an int64; the usual bound check follows.
func (d *DoubleInt) UnmarshalYAML(node *yaml.Node) error {
	var v int64
	if err := node.Decode(&v); err != nil {
		return err
	}
	nd, err := New(v)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = nd
	return nil
}
