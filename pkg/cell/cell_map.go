package cell

import (
	"iter"

	"github.com/vango-dev/cells/pkg/container"
)

// MapCell is a cell holding a map. Mutations follow the same copy, change
// and assign pattern as ListCell.
type MapCell[K comparable, V any] struct {
	*Cell[container.Map[K, V]]
	factory func() container.Map[K, V]
}

// NewMapCell creates a map cell holding entries. A nil factory uses
// container.HashMapFactory. It panics if the factory returns nil.
func NewMapCell[K comparable, V any](g *Graph, factory func() container.Map[K, V], entries map[K]V) *MapCell[K, V] {
	if factory == nil {
		factory = container.HashMapFactory[K, V]()
	}
	initial := factory()
	if initial != nil {
		for k, v := range entries {
			initial.Put(k, v)
		}
	}
	c, err := NewWith(g, initial, NonNil[container.Map[K, V]]())
	if err != nil {
		panic(err)
	}
	return &MapCell[K, V]{Cell: c, factory: factory}
}

// Len returns the number of entries.
func (m *MapCell[K, V]) Len() int { return m.value.Len() }

// IsEmpty reports whether the map has no entries.
func (m *MapCell[K, V]) IsEmpty() bool { return m.value.Len() == 0 }

// Get returns the value stored under k.
func (m *MapCell[K, V]) Get(k K) (V, bool) { return m.value.Get(k) }

// ContainsKey reports whether k is present.
func (m *MapCell[K, V]) ContainsKey(k K) bool {
	_, ok := m.value.Get(k)
	return ok
}

// ContainsValueFunc reports whether any value satisfies fn.
func (m *MapCell[K, V]) ContainsValueFunc(fn func(V) bool) bool {
	for _, v := range m.value.All() {
		if fn(v) {
			return true
		}
	}
	return false
}

// All iterates over the current entries.
func (m *MapCell[K, V]) All() iter.Seq2[K, V] { return m.value.All() }

// Keys returns the keys in a new slice.
func (m *MapCell[K, V]) Keys() []K { return container.Keys(m.value) }

// Values returns the values in a new slice.
func (m *MapCell[K, V]) Values() []V {
	out := make([]V, 0, m.value.Len())
	for _, v := range m.value.All() {
		out = append(out, v)
	}
	return out
}

// Put stores v under k and returns the previous value, if any.
func (m *MapCell[K, V]) Put(k K, v V) (V, bool, error) {
	var (
		prev V
		had  bool
	)
	err := m.mutate(func(mm container.Map[K, V]) { prev, had = mm.Put(k, v) })
	return prev, had, err
}

// PutAll stores every entry of entries.
func (m *MapCell[K, V]) PutAll(entries map[K]V) error {
	return m.mutate(func(mm container.Map[K, V]) {
		for k, v := range entries {
			mm.Put(k, v)
		}
	})
}

// Delete removes k and returns its value, if any. The map is reassigned
// either way.
func (m *MapCell[K, V]) Delete(k K) (V, bool, error) {
	var (
		prev V
		had  bool
	)
	err := m.mutate(func(mm container.Map[K, V]) { prev, had = mm.Delete(k) })
	return prev, had, err
}

// Clear removes every entry.
func (m *MapCell[K, V]) Clear() error {
	return m.mutate(func(mm container.Map[K, V]) { mm.Clear() })
}

// RemoveIf removes, from the current map, every entry for which pred
// returns true, then reassigns a copy once if anything was removed.
func (m *MapCell[K, V]) RemoveIf(pred func(K, V) bool) (int, error) {
	if err := m.writable(); err != nil {
		return 0, err
	}
	n := m.value.RemoveFunc(pred)
	if n == 0 {
		return 0, nil
	}
	return n, m.Set(container.CopyMap(m.factory(), m.value))
}

// MapSize derives an Int cell holding the number of entries.
func (m *MapCell[K, V]) MapSize() (*NumberCell, error) {
	return m.MapInt(func(mm container.Map[K, V]) int32 { return int32(mm.Len()) })
}

func (m *MapCell[K, V]) mutate(fn func(container.Map[K, V])) error {
	if err := m.writable(); err != nil {
		return err
	}
	next := container.CopyMap(m.factory(), m.value)
	fn(next)
	return m.Set(next)
}
