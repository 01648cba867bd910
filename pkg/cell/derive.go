package cell

import (
	"fmt"

	"github.com/vango-dev/cells/pkg/numeric"
)

// Map derives a cell whose value is fn applied to src's value. The new cell
// starts with fn(src.Value()) and is bound to src.
func Map[S, T any](src *Cell[S], fn func(S) T) (*Cell[T], error) {
	return MapErr(src, func(s S) (T, error) { return fn(s), nil })
}

// MapErr is like Map for mappings that can fail. A failure while deriving
// the initial value is returned here; a later failure is returned from the
// Set that triggered it.
func MapErr[S, T any](src *Cell[S], fn func(S) (T, error)) (*Cell[T], error) {
	return derive(src, fn, func(g *Graph, v T) (*Cell[T], error) {
		return New(g, v), nil
	})
}

// Apply returns fn applied to src's current value. Unlike Map it creates
// no cell and no binding.
func Apply[S, T any](src *Cell[S], fn func(S) T) T {
	return fn(src.value)
}

// Must returns c or panics if err is not nil.
func Must[C any](c C, err error) C {
	if err != nil {
		panic(err)
	}
	return c
}

// derive computes the initial value, builds the cell and binds it to src.
func derive[S, T any](src *Cell[S], fn func(S) (T, error), build func(*Graph, T) (*Cell[T], error)) (*Cell[T], error) {
	initial, err := fn(src.value)
	if err != nil {
		return nil, fmt.Errorf("derive from %s: %w", src.handle, err)
	}
	dst, err := build(src.graph, initial)
	if err != nil {
		return nil, err
	}

	dst.mapper = func(upstream any) (T, error) {
		s, err := assertAs[S](upstream)
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(s)
	}
	if _, err := dst.bind(src); err != nil {
		src.graph.Release(dst)
		return nil, err
	}
	dst.derived = true
	return dst, nil
}

func assertAs[T any](v any) (T, error) {
	var zero T
	if v == nil && any(zero) == nil {
		// T is an interface type; nil is a valid value.
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		return zero, invalidValue("got %T, want %T", v, zero)
	}
	return t, nil
}

func deriveNumber[S any](src *Cell[S], fn func(S) (numeric.Number, error)) (*NumberCell, error) {
	var kind numeric.Kind
	c, err := derive(src, fn, func(g *Graph, v numeric.Number) (*Cell[numeric.Number], error) {
		kind = v.Kind()
		return newNumber(g, v)
	})
	if err != nil {
		return nil, err
	}
	return &NumberCell{Cell: c, kind: kind}, nil
}

// MapObject derives a cell holding the same value as c.
func (c *Cell[T]) MapObject() (*Cell[T], error) {
	return Map(c, func(v T) T { return v })
}

// MapString derives a cell holding the canonical text of c's value, as
// printed by fmt.Sprint.
func (c *Cell[T]) MapString() (*StringCell, error) {
	return c.MapStringWith(func(v T) string { return fmt.Sprint(v) })
}

// MapFormattedString derives a cell holding fmt.Sprintf(format, value).
func (c *Cell[T]) MapFormattedString(format string) (*StringCell, error) {
	return c.MapStringWith(func(v T) string { return fmt.Sprintf(format, v) })
}

// MapStringWith derives a string cell using fn.
func (c *Cell[T]) MapStringWith(fn func(T) string) (*StringCell, error) {
	s, err := Map(c, fn)
	if err != nil {
		return nil, err
	}
	return &StringCell{Cell: s}, nil
}

// MapBoolean derives a boolean cell using fn.
func (c *Cell[T]) MapBoolean(fn func(T) bool) (*BoolCell, error) {
	b, err := Map(c, fn)
	if err != nil {
		return nil, err
	}
	return &BoolCell{Cell: b}, nil
}

// MapCharacter derives a character cell using fn.
func (c *Cell[T]) MapCharacter(fn func(T) rune) (*CharCell, error) {
	r, err := Map(c, fn)
	if err != nil {
		return nil, err
	}
	return &CharCell{Cell: r}, nil
}

// MapByte derives a Byte cell using fn.
func (c *Cell[T]) MapByte(fn func(T) int8) (*NumberCell, error) {
	return deriveNumber(c, func(v T) (numeric.Number, error) { return numeric.OfByte(fn(v)), nil })
}

// MapShort derives a Short cell using fn.
func (c *Cell[T]) MapShort(fn func(T) int16) (*NumberCell, error) {
	return deriveNumber(c, func(v T) (numeric.Number, error) { return numeric.OfShort(fn(v)), nil })
}

// MapInt derives an Int cell using fn.
func (c *Cell[T]) MapInt(fn func(T) int32) (*NumberCell, error) {
	return deriveNumber(c, func(v T) (numeric.Number, error) { return numeric.OfInt(fn(v)), nil })
}

// MapLong derives a Long cell using fn.
func (c *Cell[T]) MapLong(fn func(T) int64) (*NumberCell, error) {
	return deriveNumber(c, func(v T) (numeric.Number, error) { return numeric.OfLong(fn(v)), nil })
}

// MapFloat derives a Float cell using fn.
func (c *Cell[T]) MapFloat(fn func(T) float32) (*NumberCell, error) {
	return deriveNumber(c, func(v T) (numeric.Number, error) { return numeric.OfFloat(fn(v)), nil })
}

// MapDouble derives a Double cell using fn.
func (c *Cell[T]) MapDouble(fn func(T) float64) (*NumberCell, error) {
	return deriveNumber(c, func(v T) (numeric.Number, error) { return numeric.OfDouble(fn(v)), nil })
}

// MapNumberWith derives a number cell using fn. The kind of the new cell is
// the kind of the first value fn returns; later values are converted to it.
func (c *Cell[T]) MapNumberWith(fn func(T) (numeric.Number, error)) (*NumberCell, error) {
	return deriveNumber(c, fn)
}
