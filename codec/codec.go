// Package codec centralizes document encoding for double-safe interchange.
//
// The double-int wire contract is codec-independent: whichever implementation
// a system selects, a DoubleInt field must encode to the bare integer and
// decoding must enforce the bound. Keeping the implementations behind one
// interface lets tests pin both to the same contract.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// This is used by systems that record the codec name in configuration or in a
// payload header and select the implementation at runtime.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
