// Package doubleint provides an int64 that survives IEEE 754 double precision.
//
// DoubleInt is a bounds-checked integer newtype for interchange safety: formats
// that carry numbers as double-precision floats (JSON and most JSON-adjacent
// schema languages) can only represent integers exactly up to a magnitude of
// 2^53. A DoubleInt is guaranteed to lie in the inclusive range
// [-9007199254740992, 9007199254740992], so an integer field declared as
// DoubleInt round-trips through such formats without rounding drift.
//
// # Quick Start
//
// Validating construction:
//
//	d, err := doubleint.New(42)        // fails with *ErrOutOfRange beyond ±2^53
//	d = doubleint.MustNew(42)          // panics instead of failing
//	d = doubleint.Unchecked(n)         // trusted, skips the bound check
//	v := d.Int64()                     // plain accessor
//	f := d.Float64()                   // exact for every in-range value
//
// Drop-in field type:
//
//	type Config struct {
//	    Count doubleint.DoubleInt `json:"count" yaml:"count" toml:"count"`
//	}
//
// The wire form is a bare integer in every supported format. Decoding performs
// the bound check; a document like `count = 36028797018963968` (2^55) is
// rejected at decode time instead of silently losing precision later.
//
// # Validation Model
//
// New is the only fallible entry point of the core. Every decoding hook
// (JSON, YAML, TOML, text, SQL) funnels through the same inclusive range
// comparison and reports *ErrOutOfRange with the offending value. Unchecked
// bypasses validation for call sites where the bound is already known to hold;
// Valid audits such values after the fact.
//
// # Representational Transparency
//
// Serialization emits the underlying integer with no wrapper object, keys or
// type tag. Consumers unaware of this package see an ordinary integer field.
//
// # Subpackages
//
//   - codec: pluggable JSON codecs (encoding/json and goccy/go-json) that
//     agree on the double-int wire contract
//   - schema: validation of already-decoded documents, flagging integer
//     values that would lose precision in a double
package doubleint
