package cell

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by cell operations. Callers match them with
// errors.Is; the returned errors carry the handles involved.
var (
	// ErrBoundValueSet is returned when Set (or any mutation built on it)
	// is called on a cell that is bound to a source.
	ErrBoundValueSet = errors.New("cell: cannot set the value of a bound cell")

	// ErrBoundTargetSet is returned when BindTo is called on a cell that is
	// already bound to a different source.
	ErrBoundTargetSet = errors.New("cell: cell is already bound to another source")

	// ErrInvalidValue is returned when a value fails the cell's validation,
	// such as an absent number or a nil container.
	ErrInvalidValue = errors.New("cell: invalid value")

	// ErrUnsupportedReceiver is returned when propagation reaches a
	// dependent handle that no longer resolves to a cell.
	ErrUnsupportedReceiver = errors.New("cell: dependent cannot receive propagated values")

	// ErrReleased is returned by write and bind operations on a cell that
	// has been released from its graph.
	ErrReleased = errors.New("cell: cell has been released")

	// ErrForeignCell is returned when binding cells of different graphs.
	ErrForeignCell = errors.New("cell: cells belong to different graphs")

	// ErrIndexOutOfRange is returned by indexed list operations.
	ErrIndexOutOfRange = errors.New("cell: index out of range")
)

func invalidValue(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidValue, fmt.Sprintf(format, args...))
}

func indexOutOfRange(i, n int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, n)
}
