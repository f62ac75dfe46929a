package transformer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type celsius float64

func TestAdapt_FastPaths(t *testing.T) {
	f, err := Adapt(func(v any) any { return v.(string) + "!" })
	require.NoError(t, err)

	v, err := f("hi")
	require.NoError(t, err)
	assert.Equal(t, "hi!", v)

	boom := errors.New("boom")
	f, err = Adapt(func(any) (any, error) { return nil, boom })
	require.NoError(t, err)

	_, err = f("hi")
	assert.ErrorIs(t, err, boom)

	var nilFunc Func
	_, err = Adapt(nilFunc)
	assert.ErrorIs(t, err, ErrIsNotACaster)

	_, err = Adapt(nil)
	assert.ErrorIs(t, err, ErrCasterIsNotAFunction)
}

func TestSignature_Call(t *testing.T) {
	tests := []struct {
		name     string
		fn       any
		value    any
		expected any
		err      error
	}{
		{
			name:     "plain",
			fn:       strings.ToUpper,
			value:    "abc",
			expected: "ABC",
		},
		{
			name:     "nil becomes zero value",
			fn:       func(s string) int { return len(s) },
			value:    nil,
			expected: 0,
		},
		{
			name:     "numbers convert",
			fn:       func(c celsius) float64 { return float64(c)*9/5 + 32 },
			value:    100,
			expected: 212.0,
		},
		{
			name:     "ok false yields nil",
			fn:       func(s string) (string, bool) { return s, s != "" },
			value:    "",
			expected: nil,
		},
		{
			name:     "ok true yields value",
			fn:       func(s string) (string, bool) { return s, s != "" },
			value:    "x",
			expected: "x",
		},
		{
			name:  "mismatched argument",
			fn:    func(s string) string { return s },
			value: []string{"a"},
			err:   ErrArgumentType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, err := Parse(tt.fn)
			require.NoError(t, err)

			got, err := sig.Call(tt.value)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParse_Rejects(t *testing.T) {
	_, err := Parse(func(**int) int { return 0 })
	assert.ErrorIs(t, err, ErrDoublePointer)

	_, err = Parse(func(int) **int { return nil })
	assert.ErrorIs(t, err, ErrDoublePointer)

	_, err = Parse(func(...int) int { return 0 })
	assert.ErrorIs(t, err, ErrIsNotACaster)

	_, err = Parse(func(int, int) int { return 0 })
	assert.ErrorIs(t, err, ErrIsNotACaster)

	var nilFn func(int) int
	_, err = Parse(nilFn)
	assert.ErrorIs(t, err, ErrIsNotACaster)
}
