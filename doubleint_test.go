package doubleint

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		v       int64
		wantErr bool
	}{
		{"Zero", 0, false},
		{"Positive", 42, false},
		{"Negative", -42, false},
		{"Max", Max, false},
		{"Min", Min, false},
		{"AboveMax", Max + 1, true},
		{"BelowMin", Min - 1, true},
		{"MaxInt64", math.MaxInt64, true},
		{"MinInt64", math.MinInt64, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(tt.v)
			if tt.wantErr {
				require.Error(t, err)

				var oor *ErrOutOfRange
				require.ErrorAs(t, err, &oor)
				assert.Equal(t, tt.v, oor.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.v, d.Int64())
		})
	}
}

func TestBoundInclusivity(t *testing.T) {
	// Both endpoints are exactly representable in a double and accepted.
	for _, v := range []int64{9007199254740992, -9007199254740992} {
		d, err := New(v)
		require.NoError(t, err, "endpoint %d", v)
		assert.Equal(t, v, d.Int64())
	}
	for _, v := range []int64{9007199254740993, -9007199254740993} {
		_, err := New(v)
		assert.Error(t, err, "past endpoint %d", v)
	}
}

func TestMustNew(t *testing.T) {
	assert.Equal(t, DoubleInt(42), MustNew(42))
	assert.Panics(t, func() { MustNew(Max + 1) })
	assert.Panics(t, func() { MustNew(math.MinInt64) })
}

func TestUnchecked(t *testing.T) {
	assert.Equal(t, int64(7), Unchecked(7).Int64())
	assert.True(t, Unchecked(Max).Valid())

	// Unchecked does not validate; Valid flags the violation after the fact.
	bad := Unchecked(Max + 1)
	assert.Equal(t, int64(Max+1), bad.Int64())
	assert.False(t, bad.Valid())
	assert.False(t, Unchecked(math.MinInt64).Valid())
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange(0))
	assert.True(t, InRange(Max))
	assert.True(t, InRange(Min))
	assert.False(t, InRange(Max+1))
	assert.False(t, InRange(Min-1))
}

func TestFloat64Exact(t *testing.T) {
	// Every in-range value converts to a double and back without drift.
	values := []int64{
		0, 1, -1, 42, -42,
		1<<52 - 1, 1 << 52, 1<<52 + 1,
		Max - 1, Max, Min + 1, Min,
	}

	for _, v := range values {
		d := MustNew(v)
		f := d.Float64()
		assert.Equal(t, math.Trunc(f), f, "value %d", v)
		assert.Equal(t, v, int64(f), "value %d", v)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "42", MustNew(42).String())
	assert.Equal(t, "-42", MustNew(-42).String())
	assert.Equal(t, "9007199254740992", MustNew(Max).String())
	assert.Equal(t, "0", DoubleInt(0).String())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int64
		wantErr bool
	}{
		{"Positive", "42", 42, false},
		{"Negative", "-42", -42, false},
		{"Plus", "+7", 7, false},
		{"MaxEndpoint", "9007199254740992", Max, false},
		{"PastMax", "9007199254740993", 0, true},
		{"Empty", "", 0, true},
		{"NotANumber", "forty-two", 0, true},
		{"Fraction", "4.2", 0, true},
		{"Int64Overflow", "99999999999999999999", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Int64())
		})
	}

	// The bound violation keeps its typed error through Parse. Inputs that do
	// not even fit an int64 surface the parser's error instead.
	var oor *ErrOutOfRange
	_, err := Parse("9007199254740993")
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, int64(9007199254740993), oor.Value)

	_, err = Parse("99999999999999999999")
	require.Error(t, err)
	oor = nil
	assert.False(t, errors.As(err, &oor))
}

func TestOrdering(t *testing.T) {
	a := MustNew(-42)
	b := MustNew(42)

	assert.True(t, a < b)
	assert.True(t, b > a)
	assert.True(t, a == MustNew(-42))
	assert.True(t, a != b)
}

func TestErrorMessages(t *testing.T) {
	err := &ErrOutOfRange{Value: 1 << 54}
	assert.Equal(t, "double-int out of range: 18014398509481984 not in [-9007199254740992, 9007199254740992]", err.Error())

	nerr := &ErrNotInteger{Value: 4.2}
	assert.Equal(t, "double-int requires an integral value, got 4.2", nerr.Error())
}
