package numeric

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		text string
		want Number
	}{
		{"10", OfInt(10)},
		{"-5", OfInt(-5)},
		{"10L", OfLong(10)},
		{"10l", OfLong(10)},
		{"0x1F", OfInt(31)},
		{"  0x1f  ", OfInt(31)},
		{"0x1D", OfInt(29)},
		{"0x1FL", OfLong(31)},
		{"99999999999L", OfLong(99999999999)},
		{"1.5", OfDouble(1.5)},
		{"1.5F", OfFloat(1.5)},
		{"1.5d", OfDouble(1.5)},
		{"1.5E3", OfDouble(1500)},
		{"10f", OfFloat(10)},
		{"2D", OfDouble(2)},
		{".5", OfDouble(0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Kind(), got.Kind())
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseOutOfRangeFloat(t *testing.T) {
	got, err := Parse("1e50f")
	require.NoError(t, err)
	assert.Equal(t, Float, got.Kind())
	assert.True(t, math.IsInf(got.Float64(), 1))
}

func TestParseErrors(t *testing.T) {
	for _, text := range []string{"", "   ", "abc", "0x", "1e5", "99999999999", "0xFFFFFFFF", "1.2.3", "-0x1F", "L"} {
		t.Run(text, func(t *testing.T) {
			_, err := Parse(text)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, text, pe.Text)
		})
	}

	_, err := Parse("99999999999")
	assert.ErrorIs(t, err, strconv.ErrRange)
}

func TestMustParse(t *testing.T) {
	assert.True(t, MustParse("7L").Equal(OfLong(7)))
	assert.Panics(t, func() { MustParse("seven") })
}
