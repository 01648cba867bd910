package cell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/cells/pkg/numeric"
)

func TestNewNumberCellPicksKind(t *testing.T) {
	g := newTestGraph()

	for _, k := range numeric.Kinds {
		t.Run(k.String(), func(t *testing.T) {
			c, err := NewNumberCell(g, numeric.Convert(numeric.OfInt(3), k))
			require.NoError(t, err)
			assert.Equal(t, k, c.Kind())
			assert.Equal(t, int64(3), c.Long())
		})
	}

	_, err := NewNumberCell(g, numeric.Number{})
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestNewNumberCellOf(t *testing.T) {
	g := newTestGraph()

	assert.Equal(t, numeric.Int, NewNumberCellOf(g, 7).Kind())
	assert.Equal(t, numeric.Long, NewNumberCellOf(g, int64(7)).Kind())
	assert.Equal(t, numeric.Short, NewNumberCellOf(g, uint8(7)).Kind())
	assert.Equal(t, numeric.Double, NewNumberCellOf(g, 7.5).Kind())
}

func TestNumberCellCoercesToItsKind(t *testing.T) {
	g := newTestGraph()
	c := NewByteCell(g, 1)

	require.NoError(t, c.Set(numeric.OfDouble(300.7)))
	assert.Equal(t, numeric.Byte, c.Value().Kind())
	assert.Equal(t, int8(44), c.Byte(), "300 narrowed through int32 to int8")

	assert.ErrorIs(t, c.Set(numeric.Number{}), ErrInvalidValue)
	assert.Equal(t, int8(44), c.Byte())
}

func TestNumberCellGetters(t *testing.T) {
	g := newTestGraph()
	c := NewDoubleCell(g, 2.75)

	assert.Equal(t, int8(2), c.Byte())
	assert.Equal(t, int16(2), c.Short())
	assert.Equal(t, int32(2), c.Int())
	assert.Equal(t, int64(2), c.Long())
	assert.Equal(t, float32(2.75), c.Float())
	assert.Equal(t, 2.75, c.Double())
}

func TestOperatorDerivations(t *testing.T) {
	g := newTestGraph()
	a := NewIntCell(g, 12)

	tests := []struct {
		name   string
		derive func() (*NumberCell, error)
		kind   numeric.Kind
		want   string
		after  string // after a is set to 5
	}{
		{"add", func() (*NumberCell, error) { return a.MapAdd(numeric.OfLong(1)) }, numeric.Long, "13", "6"},
		{"subtract", func() (*NumberCell, error) { return a.MapSubtract(numeric.OfInt(2)) }, numeric.Int, "10", "3"},
		{"multiply", func() (*NumberCell, error) { return a.MapMultiply(numeric.OfDouble(0.5)) }, numeric.Double, "6.0", "2.5"},
		{"divide", func() (*NumberCell, error) { return a.MapDivide(numeric.OfInt(5)) }, numeric.Int, "2", "1"},
		{"remainder", func() (*NumberCell, error) { return a.MapRemainder(numeric.OfInt(5)) }, numeric.Int, "2", "0"},
		{"and", func() (*NumberCell, error) { return a.MapAnd(numeric.OfInt(4)) }, numeric.Int, "4", "4"},
		{"or", func() (*NumberCell, error) { return a.MapOr(numeric.OfInt(1)) }, numeric.Int, "13", "5"},
		{"xor", func() (*NumberCell, error) { return a.MapXor(numeric.OfInt(15)) }, numeric.Int, "3", "10"},
		{"shift left", func() (*NumberCell, error) { return a.MapShiftLeft(numeric.OfInt(2)) }, numeric.Int, "48", "20"},
		{"shift right", func() (*NumberCell, error) { return a.MapShiftRight(numeric.OfInt(2)) }, numeric.Int, "3", "1"},
		{"shift right unsigned", func() (*NumberCell, error) { return a.MapShiftRightUnsigned(numeric.OfInt(1)) }, numeric.Int, "6", "2"},
		{"compare", func() (*NumberCell, error) { return a.MapCompare(numeric.OfInt(10)) }, numeric.Int, "1", "-1"},
		{"negate", a.MapNegate, numeric.Int, "-12", "-5"},
		{"as double", a.MapAsDouble, numeric.Double, "12.0", "5.0"},
		{"as byte", a.MapAsByte, numeric.Byte, "12", "5"},
	}

	derived := make([]*NumberCell, len(tests))
	for i, tt := range tests {
		c, err := tt.derive()
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.kind, c.Kind(), tt.name)
		assert.Equal(t, tt.want, c.Value().String(), tt.name)
		derived[i] = c
	}

	require.NoError(t, a.Set(numeric.OfInt(5)))
	for i, tt := range tests {
		assert.Equal(t, tt.kind, derived[i].Kind(), tt.name)
		assert.Equal(t, tt.after, derived[i].Value().String(), tt.name)
	}
}

func TestResultKindIsFixedAtCreation(t *testing.T) {
	g := newTestGraph()
	a := NewIntCell(g, 2)
	scaled := Must(a.MapMultiply(numeric.OfFloat(1.5)))
	assert.Equal(t, numeric.Float, scaled.Kind())
	sum := Must(a.MapAdd(numeric.OfInt(1)))
	assert.Equal(t, numeric.Int, sum.Kind())

	require.NoError(t, a.Set(numeric.OfInt(40)))
	assert.Equal(t, numeric.Int, sum.Value().Kind())
	assert.Equal(t, int32(41), sum.Int())
	assert.Equal(t, numeric.Float, scaled.Value().Kind())
	assert.Equal(t, float32(60), scaled.Float())
}

func TestDivideDerivations(t *testing.T) {
	g := newTestGraph()
	a := NewIntCell(g, 10)
	b := NewIntCell(g, 1)
	_, err := b.Cell.BindTo(a)
	require.NoError(t, err)

	q := Must(b.MapDivide(numeric.OfInt(2)))
	_, err = a.MapDivide(numeric.OfInt(0))
	assert.ErrorIs(t, err, numeric.ErrDivideByZero)

	r := Must(a.MapRemainder(numeric.OfInt(3)))
	require.NoError(t, a.Set(numeric.OfInt(7)))
	assert.Equal(t, int32(3), q.Int())
	assert.Equal(t, int32(1), r.Int())
}

func TestInPlaceOperators(t *testing.T) {
	g := newTestGraph()
	c := NewIntCell(g, 10)

	steps := []struct {
		name string
		op   func() error
		want int32
	}{
		{"add", func() error { return c.Add(numeric.OfInt(5)) }, 15},
		{"subtract", func() error { return c.Subtract(numeric.OfInt(3)) }, 12},
		{"multiply", func() error { return c.Multiply(numeric.OfDouble(2.5)) }, 30},
		{"divide", func() error { return c.Divide(numeric.OfInt(4)) }, 7},
		{"remainder", func() error { return c.Remainder(numeric.OfInt(4)) }, 3},
		{"shift left", func() error { return c.ShiftLeft(numeric.OfInt(3)) }, 24},
		{"shift right", func() error { return c.ShiftRight(numeric.OfInt(1)) }, 12},
		{"and", func() error { return c.And(numeric.OfInt(8)) }, 8},
		{"or", func() error { return c.Or(numeric.OfInt(3)) }, 11},
		{"xor", func() error { return c.Xor(numeric.OfInt(1)) }, 10},
		{"negate", c.Negate, -10},
		{"shift right unsigned", func() error { return c.ShiftRightUnsigned(numeric.OfInt(28)) }, 15},
		{"increment", c.Increment, 16},
		{"decrement", c.Decrement, 15},
	}

	for _, s := range steps {
		require.NoError(t, s.op(), s.name)
		assert.Equal(t, s.want, c.Int(), s.name)
		assert.Equal(t, numeric.Int, c.Value().Kind(), s.name)
	}

	assert.ErrorIs(t, c.Divide(numeric.OfInt(0)), numeric.ErrDivideByZero)
	assert.Equal(t, int32(15), c.Int())
}

func TestInPlaceOperatorOnBoundCellFails(t *testing.T) {
	g := newTestGraph()
	a := NewLongCell(g, 1)
	b := Must(a.MapAsLong())

	assert.ErrorIs(t, b.Add(numeric.OfInt(1)), ErrBoundValueSet)
	assert.ErrorIs(t, b.Negate(), ErrBoundValueSet)
	assert.ErrorIs(t, b.Increment(), ErrBoundValueSet)
	assert.Equal(t, int64(1), b.Long())
}

func TestNumberCellIgnoresEqualValues(t *testing.T) {
	g := newTestGraph()
	c := NewIntCell(g, 3)

	calls := 0
	c.AddChangeListener(func(*Cell[numeric.Number], numeric.Number, numeric.Number) { calls++ })

	require.NoError(t, c.Set(numeric.OfLong(3)))
	require.NoError(t, c.Set(numeric.OfDouble(3.2)))
	assert.Equal(t, 0, calls, "both convert to Int 3")

	require.NoError(t, c.Set(numeric.OfInt(4)))
	assert.Equal(t, 1, calls)
}
