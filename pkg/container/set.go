package container

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// HashSet is a Set backed by a Go map.
type HashSet[E comparable] struct {
	m map[E]struct{}
}

// NewHashSet returns a set holding items.
func NewHashSet[E comparable](items ...E) *HashSet[E] {
	s := &HashSet[E]{m: make(map[E]struct{}, len(items))}
	for _, e := range items {
		s.m[e] = struct{}{}
	}
	return s
}

// HashSetFactory returns a factory of empty hash sets.
func HashSetFactory[E comparable]() func() Set[E] {
	return func() Set[E] { return NewHashSet[E]() }
}

func (s *HashSet[E]) Len() int { return len(s.m) }

func (s *HashSet[E]) Contains(e E) bool {
	_, ok := s.m[e]
	return ok
}

func (s *HashSet[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := range s.m {
			if !yield(e) {
				return
			}
		}
	}
}

func (s *HashSet[E]) Add(e E) bool {
	if _, ok := s.m[e]; ok {
		return false
	}
	s.m[e] = struct{}{}
	return true
}

func (s *HashSet[E]) Remove(e E) bool {
	if _, ok := s.m[e]; !ok {
		return false
	}
	delete(s.m, e)
	return true
}

func (s *HashSet[E]) RemoveFunc(fn func(E) bool) int {
	removed := 0
	for e := range s.m {
		if fn(e) {
			delete(s.m, e)
			removed++
		}
	}
	return removed
}

func (s *HashSet[E]) Clear() { clear(s.m) }

func (s *HashSet[E]) String() string { return formatElements(s.All()) }

// OrderedSet is a Set that iterates in insertion order.
type OrderedSet[E comparable] struct {
	index map[E]int
	order []E
}

// NewOrderedSet returns a set holding items in first-seen order.
func NewOrderedSet[E comparable](items ...E) *OrderedSet[E] {
	s := &OrderedSet[E]{index: make(map[E]int, len(items))}
	for _, e := range items {
		s.Add(e)
	}
	return s
}

// OrderedSetFactory returns a factory of empty ordered sets.
func OrderedSetFactory[E comparable]() func() Set[E] {
	return func() Set[E] { return NewOrderedSet[E]() }
}

func (s *OrderedSet[E]) Len() int { return len(s.order) }

func (s *OrderedSet[E]) Contains(e E) bool {
	_, ok := s.index[e]
	return ok
}

func (s *OrderedSet[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range s.order {
			if !yield(e) {
				return
			}
		}
	}
}

func (s *OrderedSet[E]) Add(e E) bool {
	if _, ok := s.index[e]; ok {
		return false
	}
	s.index[e] = len(s.order)
	s.order = append(s.order, e)
	return true
}

func (s *OrderedSet[E]) Remove(e E) bool {
	i, ok := s.index[e]
	if !ok {
		return false
	}
	delete(s.index, e)
	s.order = slices.Delete(s.order, i, i+1)
	s.reindex(i)
	return true
}

func (s *OrderedSet[E]) RemoveFunc(fn func(E) bool) int {
	n := len(s.order)
	s.order = slices.DeleteFunc(s.order, func(e E) bool {
		if fn(e) {
			delete(s.index, e)
			return true
		}
		return false
	})
	if removed := n - len(s.order); removed > 0 {
		s.reindex(0)
		return removed
	}
	return 0
}

func (s *OrderedSet[E]) Clear() {
	clear(s.index)
	clear(s.order)
	s.order = s.order[:0]
}

func (s *OrderedSet[E]) String() string { return formatElements(s.All()) }

// reindex refreshes the positions of every element from index from on.
func (s *OrderedSet[E]) reindex(from int) {
	for i := from; i < len(s.order); i++ {
		s.index[s.order[i]] = i
	}
}

func formatElements[E any](seq iter.Seq[E]) string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for e := range seq {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&b, e)
	}
	b.WriteByte(']')
	return b.String()
}
