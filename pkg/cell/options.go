package cell

// CellOption configures a cell created with NewWith.
type CellOption[T any] func(*Cell[T])

// WithEqual replaces the change test. fn must report whether two values are
// the same; Set with a value equal to the current one notifies nobody.
func WithEqual[T any](fn func(a, b T) bool) CellOption[T] {
	return func(c *Cell[T]) {
		if fn != nil {
			c.equal = fn
		}
	}
}

// WithValidator rejects values for which fn returns an error. The error is
// returned from Set and from propagation; wrap ErrInvalidValue in it so
// callers can match it.
func WithValidator[T any](fn func(T) error) CellOption[T] {
	return func(c *Cell[T]) {
		c.validate = fn
	}
}

// NonNil rejects nil values with ErrInvalidValue.
func NonNil[T any]() CellOption[T] {
	return WithValidator(func(v T) error {
		if isNil(any(v)) {
			return invalidValue("nil value")
		}
		return nil
	})
}

func withCoerce[T any](fn func(T) T) CellOption[T] {
	return func(c *Cell[T]) {
		c.coerce = fn
	}
}
