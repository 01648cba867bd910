package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromotion(t *testing.T) {
	tests := []struct {
		name string
		got  Number
		want Number
	}{
		{"int plus double", Add(OfInt(1), OfDouble(2)), OfDouble(3)},
		{"int plus long", Add(OfInt(1), OfLong(2)), OfLong(3)},
		{"float times int", Mul(OfFloat(2), OfInt(3)), OfFloat(6)},
		{"byte plus short", Add(OfByte(1), OfShort(2)), OfInt(3)},
		{"long minus float", Sub(OfLong(5), OfFloat(0.5)), OfFloat(4.5)},
		{"float plus double", Add(OfFloat(1), OfDouble(1)), OfDouble(2)},
		{"int overflow wraps", Add(OfInt(math.MaxInt32), OfInt(1)), OfInt(math.MinInt32)},
		{"byte operands do not wrap at 8 bits", Add(OfByte(127), OfByte(1)), OfInt(128)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want.Kind(), tt.got.Kind())
			assert.True(t, tt.want.Equal(tt.got), "got %v, want %v", tt.got, tt.want)
		})
	}
}

func TestDivRem(t *testing.T) {
	q, err := Div(OfInt(7), OfInt(2))
	require.NoError(t, err)
	assert.True(t, q.Equal(OfInt(3)))

	q, err = Div(OfInt(-7), OfInt(2))
	require.NoError(t, err)
	assert.True(t, q.Equal(OfInt(-3)), "integer division truncates toward zero")

	_, err = Div(OfInt(1), OfInt(0))
	assert.ErrorIs(t, err, ErrDivideByZero)

	_, err = Rem(OfLong(1), OfByte(0))
	assert.ErrorIs(t, err, ErrDivideByZero)

	q, err = Div(OfDouble(1), OfInt(0))
	require.NoError(t, err)
	assert.True(t, math.IsInf(q.Float64(), 1))

	r, err := Rem(OfInt(-7), OfInt(2))
	require.NoError(t, err)
	assert.True(t, r.Equal(OfInt(-1)))

	r, err = Rem(OfDouble(-7.5), OfDouble(2))
	require.NoError(t, err)
	assert.True(t, r.Equal(OfDouble(-1.5)))

	r, err = Rem(OfFloat(5.5), OfInt(2))
	require.NoError(t, err)
	assert.True(t, r.Equal(OfFloat(1.5)))

	q, err = Div(OfInt(math.MinInt32), OfInt(-1))
	require.NoError(t, err)
	assert.True(t, q.Equal(OfInt(math.MinInt32)))
}

func TestBitwise(t *testing.T) {
	assert.True(t, And(OfInt(0b1100), OfInt(0b1010)).Equal(OfInt(0b1000)))
	assert.True(t, Or(OfByte(1), OfShort(2)).Equal(OfInt(3)))
	assert.True(t, Xor(OfLong(5), OfInt(1)).Equal(OfLong(4)))
	assert.Equal(t, Int, And(OfDouble(7.9), OfInt(3)).Kind(), "floating operands are truncated to int")
	assert.True(t, And(OfDouble(7.9), OfInt(3)).Equal(OfInt(3)))
}

func TestShifts(t *testing.T) {
	tests := []struct {
		name string
		got  Number
		want Number
	}{
		{"int left", ShiftLeft(OfInt(1), OfInt(4)), OfInt(16)},
		{"int distance masked", ShiftLeft(OfInt(1), OfInt(33)), OfInt(2)},
		{"long distance masked", ShiftLeft(OfLong(1), OfInt(65)), OfLong(2)},
		{"byte promotes to int", ShiftLeft(OfByte(1), OfInt(3)), OfInt(8)},
		{"long amount on int", ShiftLeft(OfInt(1), OfLong(2)), OfInt(4)},
		{"arithmetic right", ShiftRight(OfInt(-16), OfInt(2)), OfInt(-4)},
		{"unsigned right int", ShiftRightUnsigned(OfInt(-1), OfInt(28)), OfInt(15)},
		{"unsigned right long", ShiftRightUnsigned(OfLong(-1), OfInt(60)), OfLong(15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(tt.got), "got %v (%s), want %v (%s)", tt.got, tt.got.Kind(), tt.want, tt.want.Kind())
		})
	}
}

func TestCompare(t *testing.T) {
	negZero := math.Copysign(0, -1)
	nan := math.NaN()

	tests := []struct {
		name string
		a, b Number
		want int32
	}{
		{"less int", OfInt(1), OfInt(2), -1},
		{"equal mixed", OfInt(2), OfDouble(2), 0},
		{"greater long", OfLong(3), OfShort(2), 1},
		{"negative zero below zero", OfDouble(negZero), OfDouble(0), -1},
		{"nan above infinity", OfDouble(nan), OfDouble(math.Inf(1)), 1},
		{"nan equals nan", OfDouble(nan), OfFloat(float32(nan)), 0},
		{"long rounds to float", OfLong(16777217), OfFloat(16777216), 0},
		{"int rounds to float", OfInt(16777217), OfFloat(16777216), 0},
		{"int below float", OfInt(16777215), OfFloat(16777216), -1},
		{"double keeps precision", OfLong(16777217), OfDouble(16777216), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.a, tt.b)
			assert.Equal(t, Int, got.Kind())
			assert.Equal(t, tt.want, got.Int32())
		})
	}
}

func TestNegate(t *testing.T) {
	assert.True(t, Negate(OfByte(5)).Equal(OfInt(-5)))
	assert.True(t, Negate(OfLong(5)).Equal(OfLong(-5)))
	assert.True(t, Negate(OfFloat(1.5)).Equal(OfFloat(-1.5)))
	assert.True(t, Negate(OfDouble(0)).Equal(OfDouble(math.Copysign(0, -1))))
}

func TestOperator(t *testing.T) {
	fn, ok := Operator(">>>")
	require.True(t, ok)
	got, err := fn(OfInt(-8), OfInt(1))
	require.NoError(t, err)
	assert.True(t, got.Equal(OfInt(math.MaxInt32-3)))

	fn, ok = Operator("/")
	require.True(t, ok)
	_, err = fn(OfInt(1), OfInt(0))
	assert.ErrorIs(t, err, ErrDivideByZero)

	_, ok = Operator("**")
	assert.False(t, ok)
}
