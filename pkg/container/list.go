package container

import (
	"fmt"
	"iter"
	"slices"
)

// SliceList is a List backed by a Go slice.
type SliceList[E comparable] struct {
	items []E
}

// NewSliceList returns a list holding items, in order.
func NewSliceList[E comparable](items ...E) *SliceList[E] {
	return &SliceList[E]{items: slices.Clone(items)}
}

// SliceListFactory returns a factory of empty slice lists.
func SliceListFactory[E comparable]() func() List[E] {
	return func() List[E] { return &SliceList[E]{} }
}

func (l *SliceList[E]) Len() int { return len(l.items) }

func (l *SliceList[E]) Contains(e E) bool { return slices.Contains(l.items, e) }

func (l *SliceList[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range l.items {
			if !yield(e) {
				return
			}
		}
	}
}

func (l *SliceList[E]) At(i int) E { return l.items[i] }

func (l *SliceList[E]) IndexOf(e E) int { return slices.Index(l.items, e) }

func (l *SliceList[E]) Append(e E) { l.items = append(l.items, e) }

func (l *SliceList[E]) Insert(i int, e E) { l.items = slices.Insert(l.items, i, e) }

func (l *SliceList[E]) Set(i int, e E) E {
	old := l.items[i]
	l.items[i] = e
	return old
}

func (l *SliceList[E]) RemoveAt(i int) E {
	old := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	return old
}

func (l *SliceList[E]) Remove(e E) bool {
	i := slices.Index(l.items, e)
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true
}

func (l *SliceList[E]) RemoveFunc(fn func(E) bool) int {
	n := len(l.items)
	l.items = slices.DeleteFunc(l.items, fn)
	return n - len(l.items)
}

func (l *SliceList[E]) Clear() {
	clear(l.items)
	l.items = l.items[:0]
}

// String formats the list like a slice.
func (l *SliceList[E]) String() string {
	return fmt.Sprint(l.items)
}
