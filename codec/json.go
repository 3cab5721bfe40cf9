package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Notes:
// - It honors the marshaling hooks of doubleint.DoubleInt, so integer fields
//   stay bare on the wire and the bound is enforced on decode.
// - For arbitrary user payloads, JSON works for typical structs/maps/slices.
// - Time, complex numbers, funcs, channels, etc may not be supported.
//
// If you need custom encoding (e.g. protobuf/msgpack), implement Codec; the
// double-int contract carries over as long as the format preserves int64
// fidelity or routes through the DoubleInt hooks.
//
// Performance note:
//   - If you need the most portable/lowest-dependency option, use JSON.
//   - The default codec may change over time; systems that persist payloads
//     should record the codec name and reselect it via ByName.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the default codec used by the library.
//
// NOTE: This affects newly-encoded payloads only. Consumers that pin a codec
// by name keep their selection regardless of the default.
var Default Codec = GoJSON{}
