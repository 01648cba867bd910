package cell

import (
	"fmt"

	"github.com/vango-dev/cells/pkg/numeric"
)

// NumberCell is a cell holding a number of one fixed kind. Values assigned
// to it are converted to that kind, and an invalid (absent) number is
// rejected with ErrInvalidValue.
//
//	a := cell.NewIntCell(g, 1)
//	b := cell.Must(a.MapMultiply(numeric.OfInt(5))) // 5
//	a.Set(numeric.OfInt(10))                        // b is 50
type NumberCell struct {
	*Cell[numeric.Number]
	kind numeric.Kind
}

// NewNumberCell creates a cell of n's kind holding n.
func NewNumberCell(g *Graph, n numeric.Number) (*NumberCell, error) {
	switch n.Kind() {
	case numeric.Byte:
		return NewByteCell(g, n.Int8()), nil
	case numeric.Short:
		return NewShortCell(g, n.Int16()), nil
	case numeric.Int:
		return NewIntCell(g, n.Int32()), nil
	case numeric.Long:
		return NewLongCell(g, n.Int64()), nil
	case numeric.Float:
		return NewFloatCell(g, n.Float32()), nil
	case numeric.Double:
		return NewDoubleCell(g, n.Float64()), nil
	default:
		return nil, invalidValue("absent number")
	}
}

// NewByteCell creates a Byte cell.
func NewByteCell(g *Graph, v int8) *NumberCell { return mustNumber(g, numeric.OfByte(v)) }

// NewShortCell creates a Short cell.
func NewShortCell(g *Graph, v int16) *NumberCell { return mustNumber(g, numeric.OfShort(v)) }

// NewIntCell creates an Int cell.
func NewIntCell(g *Graph, v int32) *NumberCell { return mustNumber(g, numeric.OfInt(v)) }

// NewLongCell creates a Long cell.
func NewLongCell(g *Graph, v int64) *NumberCell { return mustNumber(g, numeric.OfLong(v)) }

// NewFloatCell creates a Float cell.
func NewFloatCell(g *Graph, v float32) *NumberCell { return mustNumber(g, numeric.OfFloat(v)) }

// NewDoubleCell creates a Double cell.
func NewDoubleCell(g *Graph, v float64) *NumberCell { return mustNumber(g, numeric.OfDouble(v)) }

// NewNumberCellOf creates a cell holding v. The kind is the one numeric.From
// picks for T.
func NewNumberCellOf[T numeric.Real](g *Graph, v T) *NumberCell {
	return mustNumber(g, numeric.From(v))
}

func mustNumber(g *Graph, n numeric.Number) *NumberCell {
	c, err := newNumber(g, n)
	if err != nil {
		panic(err)
	}
	return &NumberCell{Cell: c, kind: n.Kind()}
}

// newNumber creates the underlying cell of a number cell of n's kind.
func newNumber(g *Graph, n numeric.Number) (*Cell[numeric.Number], error) {
	if !n.IsValid() {
		return nil, invalidValue("absent number")
	}
	kind := n.Kind()
	return NewWith(g, n,
		WithEqual(numeric.Number.Equal),
		withCoerce(func(v numeric.Number) numeric.Number {
			if !v.IsValid() {
				return v
			}
			return numeric.Convert(v, kind)
		}),
		WithValidator(func(v numeric.Number) error {
			if !v.IsValid() {
				return invalidValue("absent %s value", kind)
			}
			return nil
		}),
	)
}

// Kind returns the fixed kind of the cell.
func (c *NumberCell) Kind() numeric.Kind { return c.kind }

// Byte returns the value as int8.
func (c *NumberCell) Byte() int8 { return c.Value().Int8() }

// Short returns the value as int16.
func (c *NumberCell) Short() int16 { return c.Value().Int16() }

// Int returns the value as int32.
func (c *NumberCell) Int() int32 { return c.Value().Int32() }

// Long returns the value as int64.
func (c *NumberCell) Long() int64 { return c.Value().Int64() }

// Float returns the value as float32.
func (c *NumberCell) Float() float32 { return c.Value().Float32() }

// Double returns the value as float64.
func (c *NumberCell) Double() float64 { return c.Value().Float64() }

// MapAs derives a cell holding the value converted to kind k.
func (c *NumberCell) MapAs(k numeric.Kind) (*NumberCell, error) {
	if !k.Valid() {
		return nil, invalidValue("kind %s", k)
	}
	return c.deriveOp(func(n numeric.Number) (numeric.Number, error) {
		return numeric.Convert(n, k), nil
	})
}

// MapAsByte derives a Byte cell holding the converted value.
func (c *NumberCell) MapAsByte() (*NumberCell, error) { return c.MapAs(numeric.Byte) }

// MapAsShort derives a Short cell holding the converted value.
func (c *NumberCell) MapAsShort() (*NumberCell, error) { return c.MapAs(numeric.Short) }

// MapAsInt derives an Int cell holding the converted value.
func (c *NumberCell) MapAsInt() (*NumberCell, error) { return c.MapAs(numeric.Int) }

// MapAsLong derives a Long cell holding the converted value.
func (c *NumberCell) MapAsLong() (*NumberCell, error) { return c.MapAs(numeric.Long) }

// MapAsFloat derives a Float cell holding the converted value.
func (c *NumberCell) MapAsFloat() (*NumberCell, error) { return c.MapAs(numeric.Float) }

// MapAsDouble derives a Double cell holding the converted value.
func (c *NumberCell) MapAsDouble() (*NumberCell, error) { return c.MapAs(numeric.Double) }

// The operator-derived cells below apply one operation against a fixed
// operand. The kind of the result is decided once, from the promotion of the
// current value and the operand, and kept for every later update.

// MapAdd derives a cell holding value + operand.
func (c *NumberCell) MapAdd(operand numeric.Number) (*NumberCell, error) {
	return c.deriveBinary(operand, numeric.Add)
}

// MapSubtract derives a cell holding value - operand.
func (c *NumberCell) MapSubtract(operand numeric.Number) (*NumberCell, error) {
	return c.deriveBinary(operand, numeric.Sub)
}

// MapMultiply derives a cell holding value * operand.
func (c *NumberCell) MapMultiply(operand numeric.Number) (*NumberCell, error) {
	return c.deriveBinary(operand, numeric.Mul)
}

// MapDivide derives a cell holding value / operand. Integer division by
// zero fails with numeric.ErrDivideByZero.
func (c *NumberCell) MapDivide(operand numeric.Number) (*NumberCell, error) {
	return c.deriveOp(func(n numeric.Number) (numeric.Number, error) {
		return numeric.Div(n, operand)
	})
}

// MapRemainder derives a cell holding value % operand.
func (c *NumberCell) MapRemainder(operand numeric.Number) (*NumberCell, error) {
	return c.deriveOp(func(n numeric.Number) (numeric.Number, error) {
		return numeric.Rem(n, operand)
	})
}

// MapAnd derives a cell holding value & operand.
func (c *NumberCell) MapAnd(operand numeric.Number) (*NumberCell, error) {
	return c.deriveBinary(operand, numeric.And)
}

// MapOr derives a cell holding value | operand.
func (c *NumberCell) MapOr(operand numeric.Number) (*NumberCell, error) {
	return c.deriveBinary(operand, numeric.Or)
}

// MapXor derives a cell holding value ^ operand.
func (c *NumberCell) MapXor(operand numeric.Number) (*NumberCell, error) {
	return c.deriveBinary(operand, numeric.Xor)
}

// MapShiftLeft derives a cell holding value << distance.
func (c *NumberCell) MapShiftLeft(distance numeric.Number) (*NumberCell, error) {
	return c.deriveBinary(distance, numeric.ShiftLeft)
}

// MapShiftRight derives a cell holding value >> distance.
func (c *NumberCell) MapShiftRight(distance numeric.Number) (*NumberCell, error) {
	return c.deriveBinary(distance, numeric.ShiftRight)
}

// MapShiftRightUnsigned derives a cell holding value >>> distance.
func (c *NumberCell) MapShiftRightUnsigned(distance numeric.Number) (*NumberCell, error) {
	return c.deriveBinary(distance, numeric.ShiftRightUnsigned)
}

// MapCompare derives an Int cell holding the comparison of value with
// operand: -1, 0 or 1.
func (c *NumberCell) MapCompare(operand numeric.Number) (*NumberCell, error) {
	return c.deriveBinary(operand, numeric.Compare)
}

// MapNegate derives a cell holding -value.
func (c *NumberCell) MapNegate() (*NumberCell, error) {
	return c.deriveOp(func(n numeric.Number) (numeric.Number, error) {
		return numeric.Negate(n), nil
	})
}

func (c *NumberCell) deriveBinary(operand numeric.Number, op func(a, b numeric.Number) numeric.Number) (*NumberCell, error) {
	if !operand.IsValid() {
		return nil, invalidValue("absent operand")
	}
	return c.deriveOp(func(n numeric.Number) (numeric.Number, error) {
		return op(n, operand), nil
	})
}

func (c *NumberCell) deriveOp(op func(numeric.Number) (numeric.Number, error)) (*NumberCell, error) {
	return deriveNumber(c.Cell, op)
}

// The in-place operators below compute from the current value and assign
// the result, converted to the cell's kind. They fail with ErrBoundValueSet
// on a bound cell.

// Add adds operand to the value.
func (c *NumberCell) Add(operand numeric.Number) error {
	return c.apply(operand, infallible(numeric.Add))
}

// Subtract subtracts operand from the value.
func (c *NumberCell) Subtract(operand numeric.Number) error {
	return c.apply(operand, infallible(numeric.Sub))
}

// Multiply multiplies the value by operand.
func (c *NumberCell) Multiply(operand numeric.Number) error {
	return c.apply(operand, infallible(numeric.Mul))
}

// Divide divides the value by operand.
func (c *NumberCell) Divide(operand numeric.Number) error {
	return c.apply(operand, numeric.Div)
}

// Remainder replaces the value with value % operand.
func (c *NumberCell) Remainder(operand numeric.Number) error {
	return c.apply(operand, numeric.Rem)
}

// And replaces the value with value & operand.
func (c *NumberCell) And(operand numeric.Number) error {
	return c.apply(operand, infallible(numeric.And))
}

// Or replaces the value with value | operand.
func (c *NumberCell) Or(operand numeric.Number) error {
	return c.apply(operand, infallible(numeric.Or))
}

// Xor replaces the value with value ^ operand.
func (c *NumberCell) Xor(operand numeric.Number) error {
	return c.apply(operand, infallible(numeric.Xor))
}

// ShiftLeft replaces the value with value << distance.
func (c *NumberCell) ShiftLeft(distance numeric.Number) error {
	return c.apply(distance, infallible(numeric.ShiftLeft))
}

// ShiftRight replaces the value with value >> distance.
func (c *NumberCell) ShiftRight(distance numeric.Number) error {
	return c.apply(distance, infallible(numeric.ShiftRight))
}

// ShiftRightUnsigned replaces the value with value >>> distance.
func (c *NumberCell) ShiftRightUnsigned(distance numeric.Number) error {
	return c.apply(distance, infallible(numeric.ShiftRightUnsigned))
}

// Negate replaces the value with -value.
func (c *NumberCell) Negate() error {
	return c.Update(numeric.Negate)
}

// Increment adds one to the value.
func (c *NumberCell) Increment() error {
	return c.Add(numeric.OfInt(1))
}

// Decrement subtracts one from the value.
func (c *NumberCell) Decrement() error {
	return c.Subtract(numeric.OfInt(1))
}

func (c *NumberCell) apply(operand numeric.Number, op numeric.BinaryFunc) error {
	if err := c.writable(); err != nil {
		return err
	}
	if !operand.IsValid() {
		return invalidValue("absent operand")
	}
	result, err := op(c.Value(), operand)
	if err != nil {
		return fmt.Errorf("%s: %w", c.handle, err)
	}
	return c.Set(result)
}

func infallible(op func(a, b numeric.Number) numeric.Number) numeric.BinaryFunc {
	return func(a, b numeric.Number) (numeric.Number, error) {
		return op(a, b), nil
	}
}
