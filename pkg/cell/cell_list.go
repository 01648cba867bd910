package cell

import (
	"iter"

	"github.com/vango-dev/cells/pkg/container"
)

// ListCell is a cell holding a list. Every mutation copies the current list
// into a fresh one from the factory, applies the change to the copy and
// assigns it, so listeners always see distinct old and new lists. Reads go
// to the current list directly.
//
// The list returned by Value must be treated as read-only.
type ListCell[E comparable] struct {
	*Cell[container.List[E]]
	factory func() container.List[E]
}

// NewListCell creates a list cell holding items. A nil factory uses
// container.SliceListFactory. It panics if the factory returns nil.
func NewListCell[E comparable](g *Graph, factory func() container.List[E], items ...E) *ListCell[E] {
	if factory == nil {
		factory = container.SliceListFactory[E]()
	}
	initial := factory()
	if initial != nil {
		for _, e := range items {
			initial.Append(e)
		}
	}
	c, err := NewWith(g, initial, NonNil[container.List[E]]())
	if err != nil {
		panic(err)
	}
	return &ListCell[E]{Cell: c, factory: factory}
}

// Len returns the number of elements.
func (l *ListCell[E]) Len() int { return l.value.Len() }

// IsEmpty reports whether the list has no elements.
func (l *ListCell[E]) IsEmpty() bool { return l.value.Len() == 0 }

// Contains reports whether e is in the list.
func (l *ListCell[E]) Contains(e E) bool { return l.value.Contains(e) }

// ContainsAll reports whether every element of es is in the list.
func (l *ListCell[E]) ContainsAll(es ...E) bool {
	for _, e := range es {
		if !l.value.Contains(e) {
			return false
		}
	}
	return true
}

// At returns the element at index i.
func (l *ListCell[E]) At(i int) (E, error) {
	if i < 0 || i >= l.value.Len() {
		var zero E
		return zero, indexOutOfRange(i, l.value.Len())
	}
	return l.value.At(i), nil
}

// IndexOf returns the index of the first e, or -1.
func (l *ListCell[E]) IndexOf(e E) int { return l.value.IndexOf(e) }

// LastIndexOf returns the index of the last e, or -1.
func (l *ListCell[E]) LastIndexOf(e E) int {
	for i := l.value.Len() - 1; i >= 0; i-- {
		if l.value.At(i) == e {
			return i
		}
	}
	return -1
}

// All iterates over the current list.
func (l *ListCell[E]) All() iter.Seq[E] { return l.value.All() }

// Values returns the elements in a new slice.
func (l *ListCell[E]) Values() []E { return container.Values[E](l.value) }

// Add appends e.
func (l *ListCell[E]) Add(e E) error {
	return l.mutate(func(list container.List[E]) error {
		list.Append(e)
		return nil
	})
}

// AddAll appends every element of es.
func (l *ListCell[E]) AddAll(es ...E) error {
	return l.mutate(func(list container.List[E]) error {
		for _, e := range es {
			list.Append(e)
		}
		return nil
	})
}

// Insert adds e at index i, shifting later elements.
func (l *ListCell[E]) Insert(i int, e E) error {
	return l.mutate(func(list container.List[E]) error {
		if i < 0 || i > list.Len() {
			return indexOutOfRange(i, list.Len())
		}
		list.Insert(i, e)
		return nil
	})
}

// InsertAll adds es at index i in order, shifting later elements.
func (l *ListCell[E]) InsertAll(i int, es ...E) error {
	return l.mutate(func(list container.List[E]) error {
		if i < 0 || i > list.Len() {
			return indexOutOfRange(i, list.Len())
		}
		for j, e := range es {
			list.Insert(i+j, e)
		}
		return nil
	})
}

// SetAt replaces the element at index i and returns the previous one.
func (l *ListCell[E]) SetAt(i int, e E) (E, error) {
	var prev E
	err := l.mutate(func(list container.List[E]) error {
		if i < 0 || i >= list.Len() {
			return indexOutOfRange(i, list.Len())
		}
		prev = list.Set(i, e)
		return nil
	})
	return prev, err
}

// RemoveAt removes and returns the element at index i.
func (l *ListCell[E]) RemoveAt(i int) (E, error) {
	var removed E
	err := l.mutate(func(list container.List[E]) error {
		if i < 0 || i >= list.Len() {
			return indexOutOfRange(i, list.Len())
		}
		removed = list.RemoveAt(i)
		return nil
	})
	return removed, err
}

// Remove removes the first e and reports whether it was present. The list is
// reassigned either way.
func (l *ListCell[E]) Remove(e E) (bool, error) {
	var found bool
	err := l.mutate(func(list container.List[E]) error {
		found = list.Remove(e)
		return nil
	})
	return found, err
}

// RemoveAll removes every occurrence of each element of es.
func (l *ListCell[E]) RemoveAll(es ...E) error {
	drop := toSet(es)
	return l.mutate(func(list container.List[E]) error {
		list.RemoveFunc(func(e E) bool {
			_, ok := drop[e]
			return ok
		})
		return nil
	})
}

// RetainAll removes every element not in es.
func (l *ListCell[E]) RetainAll(es ...E) error {
	keep := toSet(es)
	return l.mutate(func(list container.List[E]) error {
		list.RemoveFunc(func(e E) bool {
			_, ok := keep[e]
			return !ok
		})
		return nil
	})
}

// Clear removes every element.
func (l *ListCell[E]) Clear() error {
	return l.mutate(func(list container.List[E]) error {
		list.Clear()
		return nil
	})
}

// RemoveIf removes, from the current list, every element for which pred
// returns true. If anything was removed the list is copied and reassigned
// once, so listeners see a single change for the whole pass. It returns the
// number of removed elements.
func (l *ListCell[E]) RemoveIf(pred func(E) bool) (int, error) {
	if err := l.writable(); err != nil {
		return 0, err
	}
	n := l.value.RemoveFunc(pred)
	if n == 0 {
		return 0, nil
	}
	return n, l.Set(container.Copy(l.factory(), l.value))
}

// MapSize derives an Int cell holding the length of the list.
func (l *ListCell[E]) MapSize() (*NumberCell, error) {
	return l.MapInt(func(list container.List[E]) int32 { return int32(list.Len()) })
}

func (l *ListCell[E]) mutate(fn func(container.List[E]) error) error {
	if err := l.writable(); err != nil {
		return err
	}
	next := container.Copy(l.factory(), l.value)
	if err := fn(next); err != nil {
		return err
	}
	return l.Set(next)
}

func toSet[E comparable](es []E) map[E]struct{} {
	m := make(map[E]struct{}, len(es))
	for _, e := range es {
		m[e] = struct{}{}
	}
	return m
}
