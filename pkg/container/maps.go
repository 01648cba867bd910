package container

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// HashMap is a Map backed by a Go map.
type HashMap[K comparable, V any] struct {
	m map[K]V
}

// NewHashMap returns a map holding a copy of entries.
func NewHashMap[K comparable, V any](entries map[K]V) *HashMap[K, V] {
	m := &HashMap[K, V]{m: make(map[K]V, len(entries))}
	for k, v := range entries {
		m.m[k] = v
	}
	return m
}

// HashMapFactory returns a factory of empty hash maps.
func HashMapFactory[K comparable, V any]() func() Map[K, V] {
	return func() Map[K, V] { return NewHashMap[K, V](nil) }
}

func (m *HashMap[K, V]) Len() int { return len(m.m) }

func (m *HashMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.m[k]
	return v, ok
}

func (m *HashMap[K, V]) Put(k K, v V) (V, bool) {
	old, ok := m.m[k]
	m.m[k] = v
	return old, ok
}

func (m *HashMap[K, V]) Delete(k K) (V, bool) {
	old, ok := m.m[k]
	if ok {
		delete(m.m, k)
	}
	return old, ok
}

func (m *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range m.m {
			if !yield(k, v) {
				return
			}
		}
	}
}

func (m *HashMap[K, V]) RemoveFunc(fn func(K, V) bool) int {
	removed := 0
	for k, v := range m.m {
		if fn(k, v) {
			delete(m.m, k)
			removed++
		}
	}
	return removed
}

func (m *HashMap[K, V]) Clear() { clear(m.m) }

func (m *HashMap[K, V]) String() string { return formatEntries(m.All()) }

// OrderedMap is a Map that iterates in key insertion order. Replacing the
// value of an existing key keeps its position.
type OrderedMap[K comparable, V any] struct {
	values map[K]V
	order  []K
}

// NewOrderedMap returns an empty ordered map.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{values: make(map[K]V)}
}

// OrderedMapFactory returns a factory of empty ordered maps.
func OrderedMapFactory[K comparable, V any]() func() Map[K, V] {
	return func() Map[K, V] { return NewOrderedMap[K, V]() }
}

func (m *OrderedMap[K, V]) Len() int { return len(m.order) }

func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.values[k]
	return v, ok
}

func (m *OrderedMap[K, V]) Put(k K, v V) (V, bool) {
	old, ok := m.values[k]
	if !ok {
		m.order = append(m.order, k)
	}
	m.values[k] = v
	return old, ok
}

func (m *OrderedMap[K, V]) Delete(k K) (V, bool) {
	old, ok := m.values[k]
	if !ok {
		return old, false
	}
	delete(m.values, k)
	m.order = slices.DeleteFunc(m.order, func(x K) bool { return x == k })
	return old, true
}

func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.order {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

func (m *OrderedMap[K, V]) RemoveFunc(fn func(K, V) bool) int {
	n := len(m.order)
	m.order = slices.DeleteFunc(m.order, func(k K) bool {
		if fn(k, m.values[k]) {
			delete(m.values, k)
			return true
		}
		return false
	})
	return n - len(m.order)
}

func (m *OrderedMap[K, V]) Clear() {
	clear(m.values)
	clear(m.order)
	m.order = m.order[:0]
}

func (m *OrderedMap[K, V]) String() string { return formatEntries(m.All()) }

func formatEntries[K comparable, V any](seq iter.Seq2[K, V]) string {
	var b strings.Builder
	b.WriteString("map[")
	first := true
	for k, v := range seq {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v:%v", k, v)
	}
	b.WriteByte(']')
	return b.String()
}
