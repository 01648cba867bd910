package numeric

import (
	"errors"
	"math"
)

// ErrDivideByZero is returned by Div and Rem for an integer zero divisor.
var ErrDivideByZero = errors.New("numeric: integer divide by zero")

// BinaryFunc is the shape shared by every binary operation.
type BinaryFunc func(a, b Number) (Number, error)

// Add returns a + b.
func Add(a, b Number) Number {
	switch Promote(a.kind, b.kind) {
	case Double:
		return OfDouble(a.Float64() + b.Float64())
	case Float:
		return OfFloat(a.Float32() + b.Float32())
	case Long:
		return OfLong(a.Int64() + b.Int64())
	default:
		return OfInt(a.Int32() + b.Int32())
	}
}

// Sub returns a - b.
func Sub(a, b Number) Number {
	switch Promote(a.kind, b.kind) {
	case Double:
		return OfDouble(a.Float64() - b.Float64())
	case Float:
		return OfFloat(a.Float32() - b.Float32())
	case Long:
		return OfLong(a.Int64() - b.Int64())
	default:
		return OfInt(a.Int32() - b.Int32())
	}
}

// Mul returns a * b.
func Mul(a, b Number) Number {
	switch Promote(a.kind, b.kind) {
	case Double:
		return OfDouble(a.Float64() * b.Float64())
	case Float:
		return OfFloat(a.Float32() * b.Float32())
	case Long:
		return OfLong(a.Int64() * b.Int64())
	default:
		return OfInt(a.Int32() * b.Int32())
	}
}

// Div returns a / b. Integer division truncates toward zero and fails with
// ErrDivideByZero when b is zero; floating division follows IEEE 754.
func Div(a, b Number) (Number, error) {
	switch Promote(a.kind, b.kind) {
	case Double:
		return OfDouble(a.Float64() / b.Float64()), nil
	case Float:
		return OfFloat(a.Float32() / b.Float32()), nil
	case Long:
		if b.Int64() == 0 {
			return Number{}, ErrDivideByZero
		}
		return OfLong(a.Int64() / b.Int64()), nil
	default:
		if b.Int32() == 0 {
			return Number{}, ErrDivideByZero
		}
		return OfInt(a.Int32() / b.Int32()), nil
	}
}

// Rem returns the remainder of a / b. The result takes the sign of a.
func Rem(a, b Number) (Number, error) {
	switch Promote(a.kind, b.kind) {
	case Double:
		return OfDouble(math.Mod(a.Float64(), b.Float64())), nil
	case Float:
		return OfFloat(float32(math.Mod(float64(a.Float32()), float64(b.Float32())))), nil
	case Long:
		if b.Int64() == 0 {
			return Number{}, ErrDivideByZero
		}
		return OfLong(a.Int64() % b.Int64()), nil
	default:
		if b.Int32() == 0 {
			return Number{}, ErrDivideByZero
		}
		return OfInt(a.Int32() % b.Int32()), nil
	}
}

// And returns the bitwise and of a and b. Floating operands are truncated.
func And(a, b Number) Number {
	if bitwiseKind(a.kind, b.kind) == Long {
		return OfLong(a.Int64() & b.Int64())
	}
	return OfInt(a.Int32() & b.Int32())
}

// Or returns the bitwise or of a and b.
func Or(a, b Number) Number {
	if bitwiseKind(a.kind, b.kind) == Long {
		return OfLong(a.Int64() | b.Int64())
	}
	return OfInt(a.Int32() | b.Int32())
}

// Xor returns the bitwise exclusive or of a and b.
func Xor(a, b Number) Number {
	if bitwiseKind(a.kind, b.kind) == Long {
		return OfLong(a.Int64() ^ b.Int64())
	}
	return OfInt(a.Int32() ^ b.Int32())
}

// ShiftLeft returns a << b. The result has the kind of a (Long, or Int for
// every other kind) and the shift distance is masked to that width.
func ShiftLeft(a, b Number) Number {
	if shiftKind(a.kind) == Long {
		return OfLong(a.Int64() << (uint64(b.Int64()) & 63))
	}
	return OfInt(a.Int32() << (uint32(b.Int32()) & 31))
}

// ShiftRight returns the arithmetic shift a >> b.
func ShiftRight(a, b Number) Number {
	if shiftKind(a.kind) == Long {
		return OfLong(a.Int64() >> (uint64(b.Int64()) & 63))
	}
	return OfInt(a.Int32() >> (uint32(b.Int32()) & 31))
}

// ShiftRightUnsigned returns the logical shift a >>> b.
func ShiftRightUnsigned(a, b Number) Number {
	if shiftKind(a.kind) == Long {
		return OfLong(int64(uint64(a.Int64()) >> (uint64(b.Int64()) & 63)))
	}
	return OfInt(int32(uint32(a.Int32()) >> (uint32(b.Int32()) & 31)))
}

// Compare returns an Int of -1, 0 or 1. Floating comparisons order -0 below
// +0 and NaN above every other value, NaN being equal to itself.
func Compare(a, b Number) Number {
	var c int
	switch Promote(a.kind, b.kind) {
	case Double:
		c = compareFloat(a.Float64(), b.Float64())
	case Float:
		c = compareFloat(float64(a.Float32()), float64(b.Float32()))
	case Long:
		c = compareInt(a.Int64(), b.Int64())
	default:
		c = compareInt(int64(a.Int32()), int64(b.Int32()))
	}
	return OfInt(int32(c))
}

// Negate returns -a. Byte and Short are promoted to Int.
func Negate(a Number) Number {
	switch unaryKind(a.kind) {
	case Double:
		return OfDouble(-a.Float64())
	case Float:
		return OfFloat(-a.Float32())
	case Long:
		return OfLong(-a.Int64())
	default:
		return OfInt(-a.Int32())
	}
}

func compareInt(x, y int64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func compareFloat(x, y float64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return compareInt(canonicalBits(x), canonicalBits(y))
}

func infallible(fn func(a, b Number) Number) BinaryFunc {
	return func(a, b Number) (Number, error) {
		return fn(a, b), nil
	}
}

var operators = map[string]BinaryFunc{
	"+":   infallible(Add),
	"-":   infallible(Sub),
	"*":   infallible(Mul),
	"/":   Div,
	"%":   Rem,
	"&":   infallible(And),
	"|":   infallible(Or),
	"^":   infallible(Xor),
	"<<":  infallible(ShiftLeft),
	">>":  infallible(ShiftRight),
	">>>": infallible(ShiftRightUnsigned),
	"cmp": infallible(Compare),
}

// Operator returns the binary operation with the given symbol:
// + - * / % & | ^ << >> >>> cmp.
func Operator(symbol string) (BinaryFunc, bool) {
	fn, ok := operators[symbol]
	return fn, ok
}
