package cell

import (
	"math"
	"reflect"
)

// identical is the default change test. Scalars compare by value; slices,
// maps, pointers, channels and funcs compare by identity, so two distinct
// containers with the same contents are different values. Floats compare by
// bit pattern (NaN equals NaN, -0 differs from +0). Values of
// non-comparable types that are not references always count as changed.
func identical[T any](a, b T) bool {
	return sameValue(any(a), any(b))
}

func sameValue(a, b any) (same bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Float32, reflect.Float64:
		return floatBits(va.Float()) == floatBits(vb.Float())
	}

	if !ta.Comparable() {
		return false
	}

	// Structs and arrays with interface fields can still panic on ==.
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}

func floatBits(f float64) uint64 {
	if math.IsNaN(f) {
		return 0x7ff8000000000000
	}
	return math.Float64bits(f)
}

// isNil reports whether v is nil or a nil reference.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
