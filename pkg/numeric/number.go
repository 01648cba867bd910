package numeric

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number is an immutable numeric value tagged with its Kind.
// The zero Number is invalid and represents an absent value.
type Number struct {
	kind Kind

	// i holds the payload of integer kinds, already narrowed to the kind.
	i int64

	// f holds the payload of Float and Double. Float payloads are exactly
	// representable as float32.
	f float64
}

// OfByte returns a Byte number.
func OfByte(v int8) Number { return Number{kind: Byte, i: int64(v)} }

// OfShort returns a Short number.
func OfShort(v int16) Number { return Number{kind: Short, i: int64(v)} }

// OfInt returns an Int number.
func OfInt(v int32) Number { return Number{kind: Int, i: int64(v)} }

// OfLong returns a Long number.
func OfLong(v int64) Number { return Number{kind: Long, i: v} }

// OfFloat returns a Float number.
func OfFloat(v float32) Number { return Number{kind: Float, f: float64(v)} }

// OfDouble returns a Double number.
func OfDouble(v float64) Number { return Number{kind: Double, f: v} }

// Real is the set of Go types From accepts.
type Real interface {
	constraints.Integer | constraints.Float
}

// From converts a Go number to the closest kind:
//
//	int8 -> Byte, int16 -> Short, int32 -> Int, int64 -> Long,
//	float32 -> Float, float64 -> Double
//
// int is Int when it fits in 32 bits and Long otherwise. Unsigned types use
// the narrowest signed kind that holds them; uint and uint64 wrap into Long.
func From[T Real](v T) Number {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int8:
		return OfByte(int8(rv.Int()))
	case reflect.Int16:
		return OfShort(int16(rv.Int()))
	case reflect.Int32:
		return OfInt(int32(rv.Int()))
	case reflect.Int64:
		return OfLong(rv.Int())
	case reflect.Int:
		n := rv.Int()
		if n >= math.MinInt32 && n <= math.MaxInt32 {
			return OfInt(int32(n))
		}
		return OfLong(n)
	case reflect.Uint8:
		return OfShort(int16(rv.Uint()))
	case reflect.Uint16:
		return OfInt(int32(rv.Uint()))
	case reflect.Uint32:
		return OfLong(int64(rv.Uint()))
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return OfLong(int64(rv.Uint()))
	case reflect.Float32:
		return OfFloat(float32(rv.Float()))
	default:
		return OfDouble(rv.Float())
	}
}

// Zero returns the zero value of kind k.
func Zero(k Kind) Number {
	return Convert(OfInt(0), k)
}

// Kind returns the kind of n.
func (n Number) Kind() Kind { return n.kind }

// IsValid reports whether n holds a value.
func (n Number) IsValid() bool { return n.kind.Valid() }

// Int8 returns n narrowed to int8.
func (n Number) Int8() int8 { return int8(n.Int32()) }

// Int16 returns n narrowed to int16.
func (n Number) Int16() int16 { return int16(n.Int32()) }

// Int32 returns n narrowed to int32. Floating payloads saturate at the int32
// bounds and NaN becomes 0.
func (n Number) Int32() int32 {
	if n.kind.IsFloating() {
		return floatToInt32(n.f)
	}
	return int32(n.i)
}

// Int64 returns n as int64. Floating payloads saturate at the int64 bounds
// and NaN becomes 0.
func (n Number) Int64() int64 {
	if n.kind.IsFloating() {
		return floatToInt64(n.f)
	}
	return n.i
}

// Float32 returns n as float32.
func (n Number) Float32() float32 {
	if n.kind.IsFloating() {
		return float32(n.f)
	}
	return float32(n.i)
}

// Float64 returns n as float64.
func (n Number) Float64() float64 {
	if n.kind.IsFloating() {
		return n.f
	}
	return float64(n.i)
}

// Equal reports whether n and o have the same kind and value. Floating
// values compare by bit pattern, so NaN equals NaN and -0 differs from +0.
func (n Number) Equal(o Number) bool {
	if n.kind != o.kind {
		return false
	}
	if n.kind.IsFloating() {
		return canonicalBits(n.f) == canonicalBits(o.f)
	}
	return n.i == o.i
}

// Convert returns n re-expressed as kind k using narrowing or widening
// conversion. Converting an invalid number yields an invalid number.
func Convert(n Number, k Kind) Number {
	if !n.IsValid() {
		return Number{}
	}
	switch k {
	case Byte:
		return OfByte(n.Int8())
	case Short:
		return OfShort(n.Int16())
	case Int:
		return OfInt(n.Int32())
	case Long:
		return OfLong(n.Int64())
	case Float:
		return OfFloat(n.Float32())
	case Double:
		return OfDouble(n.Float64())
	default:
		return Number{}
	}
}

func floatToInt32(f float64) int32 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	default:
		return int32(f)
	}
}

func floatToInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}

// canonicalBits returns the bits of f with every NaN collapsed to one pattern.
func canonicalBits(f float64) int64 {
	if math.IsNaN(f) {
		return 0x7ff8000000000000
	}
	return int64(math.Float64bits(f))
}
