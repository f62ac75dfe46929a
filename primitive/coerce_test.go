package primitive

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"forecaster/options"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		flags    options.CoercionEnum
		expected int
	}{
		{"numeric string", "10", options.CoercionDefault, 10},
		{"padded string", " 42 ", options.CoercionDefault, 42},
		{"float string truncates", "11.9", options.CoercionNone, 11},
		{"exponent string", "1e3", options.CoercionDefault, 1000},
		{"leading number", "12abc", options.CoercionDefault, 12},
		{"leading number disabled", "12abc", options.CoercionNone, 0},
		{"not a number", "abc", options.CoercionDefault, 0},
		{"hex is not parsed", "0x1A", options.CoercionDefault, 0},
		{"float truncates toward zero", -11.9, options.CoercionDefault, -11},
		{"true", true, options.CoercionDefault, 1},
		{"false", false, options.CoercionDefault, 0},
		{"nil", nil, options.CoercionDefault, 0},
		{"int8", int8(5), options.CoercionDefault, 5},
		{"uint", uint(7), options.CoercionDefault, 7},
		{"uint beyond int range", uint64(1 << 63), options.CoercionDefault, math.MaxInt},
		{"max uint", uint64(math.MaxUint64), options.CoercionDefault, math.MaxInt},
		{"non-empty slice", []any{"x"}, options.CoercionDefault, 1},
		{"empty map", map[string]any{}, options.CoercionDefault, 0},
		{"nan", math.NaN(), options.CoercionDefault, 0},
		{"huge", "1e300", options.CoercionDefault, math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToInt(tt.value, tt.flags))
		})
	}
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		flags    options.CoercionEnum
		expected float64
	}{
		{"decimal string", "11.1", options.CoercionDefault, 11.1},
		{"leading dot", ".5", options.CoercionDefault, 0.5},
		{"unit suffix", "3.5kg", options.CoercionDefault, 3.5},
		{"unit suffix without leading numbers", "3.5kg", options.CoercionNone, 0},
		{"int", 3, options.CoercionDefault, 3},
		{"float32", float32(0.5), options.CoercionDefault, 0.5},
		{"bool", true, options.CoercionDefault, 1},
		{"nil", nil, options.CoercionDefault, 0},
		{"inf spelling is not a number", "inf", options.CoercionDefault, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ToFloat(tt.value, tt.flags), 1e-9)
		})
	}
}

func TestToString(t *testing.T) {
	assert.Equal(t, "1", ToString(true))
	assert.Equal(t, "", ToString(false))
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "10", ToString(10))
	assert.Equal(t, "11.1", ToString(11.1))
	assert.Equal(t, "1", ToString(1.0))
	assert.Equal(t, "abc", ToString([]byte("abc")))

	str := "ptr"
	assert.Equal(t, "ptr", ToString(&str))
}

func TestToString_Floats(t *testing.T) {
	tests := []struct {
		value    any
		expected string
	}{
		{11.1, "11.1"},
		{-0.5, "-0.5"},
		{0.0, "0"},
		{0.0001, "0.0001"},
		{0.00001, "1.0E-5"},
		{1.5e-7, "1.5E-7"},
		{1e14, "100000000000000"},
		{1e15, "1.0E+15"},
		{1e25, "1.0E+25"},
		{-2.5e20, "-2.5E+20"},
		{float32(1.5), "1.5"},
		{float32(3e20), "3.0E+20"},
		{math.Inf(1), "+Inf"},
		{math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToString(tt.value))
		})
	}
}

func TestToBool(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		flags    options.CoercionEnum
		expected bool
	}{
		{"true literal", "true", options.CoercionDefault, true},
		// truthiness: any non-empty string other than "0" is true
		{"false literal is truthy", "false", options.CoercionDefault, true},
		{"false literal parsed", "false", options.CoercionTextualBool, false},
		{"off parsed", " OFF ", options.CoercionTextualBool, false},
		{"yes parsed", "yes", options.CoercionTextualBool, true},
		{"unknown word falls back to truthiness", "maybe", options.CoercionTextualBool, true},
		{"zero string", "0", options.CoercionDefault, false},
		{"empty string", "", options.CoercionDefault, false},
		{"zero float", 0.0, options.CoercionDefault, false},
		{"non-zero int", -3, options.CoercionDefault, true},
		{"empty slice", []int{}, options.CoercionDefault, false},
		{"non-empty map", map[string]int{"a": 1}, options.CoercionDefault, true},
		{"nil", nil, options.CoercionDefault, false},
		{"struct", struct{}{}, options.CoercionDefault, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToBool(tt.value, tt.flags))
		})
	}
}

func TestCoerce(t *testing.T) {
	assert.Equal(t, 10, Coerce(KindInt, "10", options.CoercionDefault))
	assert.Equal(t, 11.1, Coerce(KindFloat, "11.1", options.CoercionDefault))
	assert.Equal(t, "10", Coerce(KindString, 10, options.CoercionDefault))
	assert.Equal(t, true, Coerce(KindBool, "true", options.CoercionDefault))
	assert.Equal(t, "raw", Coerce(KindEnum(0), "raw", options.CoercionDefault))
}

func TestTruthyPointers(t *testing.T) {
	var nilPtr *int
	zero, one := 0, 1

	assert.False(t, Truthy(nilPtr))
	assert.False(t, Truthy(&zero))
	assert.True(t, Truthy(&one))
}
