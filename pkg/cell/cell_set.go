package cell

import (
	"iter"

	"github.com/vango-dev/cells/pkg/container"
)

// SetCell is a cell holding a set. Mutations follow the same copy, change
// and assign pattern as ListCell.
type SetCell[E comparable] struct {
	*Cell[container.Set[E]]
	factory func() container.Set[E]
}

// NewSetCell creates a set cell holding items. A nil factory uses
// container.HashSetFactory. It panics if the factory returns nil.
func NewSetCell[E comparable](g *Graph, factory func() container.Set[E], items ...E) *SetCell[E] {
	if factory == nil {
		factory = container.HashSetFactory[E]()
	}
	initial := factory()
	if initial != nil {
		for _, e := range items {
			initial.Add(e)
		}
	}
	c, err := NewWith(g, initial, NonNil[container.Set[E]]())
	if err != nil {
		panic(err)
	}
	return &SetCell[E]{Cell: c, factory: factory}
}

// Len returns the number of elements.
func (s *SetCell[E]) Len() int { return s.value.Len() }

// IsEmpty reports whether the set has no elements.
func (s *SetCell[E]) IsEmpty() bool { return s.value.Len() == 0 }

// Contains reports whether e is in the set.
func (s *SetCell[E]) Contains(e E) bool { return s.value.Contains(e) }

// ContainsAll reports whether every element of es is in the set.
func (s *SetCell[E]) ContainsAll(es ...E) bool {
	for _, e := range es {
		if !s.value.Contains(e) {
			return false
		}
	}
	return true
}

// All iterates over the current set.
func (s *SetCell[E]) All() iter.Seq[E] { return s.value.All() }

// Values returns the elements in a new slice.
func (s *SetCell[E]) Values() []E { return container.Values[E](s.value) }

// Add adds e and reports whether it was absent. The set is reassigned
// either way.
func (s *SetCell[E]) Add(e E) (bool, error) {
	var added bool
	err := s.mutate(func(set container.Set[E]) { added = set.Add(e) })
	return added, err
}

// AddAll adds every element of es.
func (s *SetCell[E]) AddAll(es ...E) error {
	return s.mutate(func(set container.Set[E]) {
		for _, e := range es {
			set.Add(e)
		}
	})
}

// Remove removes e and reports whether it was present.
func (s *SetCell[E]) Remove(e E) (bool, error) {
	var found bool
	err := s.mutate(func(set container.Set[E]) { found = set.Remove(e) })
	return found, err
}

// RemoveAll removes every element of es.
func (s *SetCell[E]) RemoveAll(es ...E) error {
	return s.mutate(func(set container.Set[E]) {
		for _, e := range es {
			set.Remove(e)
		}
	})
}

// RetainAll removes every element not in es.
func (s *SetCell[E]) RetainAll(es ...E) error {
	keep := toSet(es)
	return s.mutate(func(set container.Set[E]) {
		set.RemoveFunc(func(e E) bool {
			_, ok := keep[e]
			return !ok
		})
	})
}

// Clear removes every element.
func (s *SetCell[E]) Clear() error {
	return s.mutate(func(set container.Set[E]) { set.Clear() })
}

// RemoveIf removes, from the current set, every element for which pred
// returns true, then reassigns a copy once if anything was removed.
func (s *SetCell[E]) RemoveIf(pred func(E) bool) (int, error) {
	if err := s.writable(); err != nil {
		return 0, err
	}
	n := s.value.RemoveFunc(pred)
	if n == 0 {
		return 0, nil
	}
	return n, s.Set(container.CopySet(s.factory(), s.value))
}

// MapSize derives an Int cell holding the size of the set.
func (s *SetCell[E]) MapSize() (*NumberCell, error) {
	return s.MapInt(func(set container.Set[E]) int32 { return int32(set.Len()) })
}

func (s *SetCell[E]) mutate(fn func(container.Set[E])) error {
	if err := s.writable(); err != nil {
		return err
	}
	next := container.CopySet(s.factory(), s.value)
	fn(next)
	return s.Set(next)
}
