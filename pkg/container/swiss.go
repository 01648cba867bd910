package container

import (
	"iter"

	"github.com/dolthub/swiss"
)

// SwissSet is a Set backed by a SwissTable hash map.
type SwissSet[E comparable] struct {
	m *swiss.Map[E, struct{}]
}

// NewSwissSet returns a set holding items.
func NewSwissSet[E comparable](items ...E) *SwissSet[E] {
	s := &SwissSet[E]{m: swiss.NewMap[E, struct{}](uint32(len(items)))}
	for _, e := range items {
		s.m.Put(e, struct{}{})
	}
	return s
}

// SwissSetFactory returns a factory of empty swiss sets.
func SwissSetFactory[E comparable]() func() Set[E] {
	return func() Set[E] { return NewSwissSet[E]() }
}

func (s *SwissSet[E]) Len() int { return s.m.Count() }

func (s *SwissSet[E]) Contains(e E) bool { return s.m.Has(e) }

func (s *SwissSet[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		s.m.Iter(func(e E, _ struct{}) bool {
			return !yield(e)
		})
	}
}

func (s *SwissSet[E]) Add(e E) bool {
	if s.m.Has(e) {
		return false
	}
	s.m.Put(e, struct{}{})
	return true
}

func (s *SwissSet[E]) Remove(e E) bool { return s.m.Delete(e) }

func (s *SwissSet[E]) RemoveFunc(fn func(E) bool) int {
	var doomed []E
	s.m.Iter(func(e E, _ struct{}) bool {
		if fn(e) {
			doomed = append(doomed, e)
		}
		return false
	})
	for _, e := range doomed {
		s.m.Delete(e)
	}
	return len(doomed)
}

func (s *SwissSet[E]) Clear() { s.m.Clear() }

func (s *SwissSet[E]) String() string { return formatElements(s.All()) }

// SwissMap is a Map backed by a SwissTable hash map.
type SwissMap[K comparable, V any] struct {
	m *swiss.Map[K, V]
}

// NewSwissMap returns an empty map with room for at least size entries.
func NewSwissMap[K comparable, V any](size int) *SwissMap[K, V] {
	return &SwissMap[K, V]{m: swiss.NewMap[K, V](uint32(size))}
}

// SwissMapFactory returns a factory of empty swiss maps.
func SwissMapFactory[K comparable, V any]() func() Map[K, V] {
	return func() Map[K, V] { return NewSwissMap[K, V](0) }
}

func (m *SwissMap[K, V]) Len() int { return m.m.Count() }

func (m *SwissMap[K, V]) Get(k K) (V, bool) { return m.m.Get(k) }

func (m *SwissMap[K, V]) Put(k K, v V) (V, bool) {
	old, ok := m.m.Get(k)
	m.m.Put(k, v)
	return old, ok
}

func (m *SwissMap[K, V]) Delete(k K) (V, bool) {
	old, ok := m.m.Get(k)
	if ok {
		m.m.Delete(k)
	}
	return old, ok
}

func (m *SwissMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.m.Iter(func(k K, v V) bool {
			return !yield(k, v)
		})
	}
}

func (m *SwissMap[K, V]) RemoveFunc(fn func(K, V) bool) int {
	var doomed []K
	m.m.Iter(func(k K, v V) bool {
		if fn(k, v) {
			doomed = append(doomed, k)
		}
		return false
	})
	for _, k := range doomed {
		m.m.Delete(k)
	}
	return len(doomed)
}

func (m *SwissMap[K, V]) Clear() { m.m.Clear() }

func (m *SwissMap[K, V]) String() string { return formatEntries(m.All()) }
