package container

import "iter"

// Collection is the read side shared by lists and sets.
type Collection[E comparable] interface {
	// Len returns the number of elements.
	Len() int

	// Contains reports whether e is present.
	Contains(e E) bool

	// All iterates over the elements.
	All() iter.Seq[E]
}

// List is an indexed sequence of elements.
type List[E comparable] interface {
	Collection[E]

	// At returns the element at index i. It panics if i is out of range.
	At(i int) E

	// IndexOf returns the index of the first e, or -1.
	IndexOf(e E) int

	// Append adds e at the end.
	Append(e E)

	// Insert adds e at index i, shifting later elements.
	// It panics unless 0 <= i <= Len().
	Insert(i int, e E)

	// Set replaces the element at index i and returns the previous one.
	Set(i int, e E) E

	// RemoveAt removes and returns the element at index i.
	RemoveAt(i int) E

	// Remove removes the first e and reports whether it was present.
	Remove(e E) bool

	// RemoveFunc removes every element for which fn returns true, in place,
	// and returns how many were removed.
	RemoveFunc(fn func(E) bool) int

	// Clear removes every element.
	Clear()
}

// Set is a collection without duplicates.
type Set[E comparable] interface {
	Collection[E]

	// Add adds e and reports whether it was absent.
	Add(e E) bool

	// Remove removes e and reports whether it was present.
	Remove(e E) bool

	// RemoveFunc removes every element for which fn returns true, in place,
	// and returns how many were removed.
	RemoveFunc(fn func(E) bool) int

	// Clear removes every element.
	Clear()
}

// Map associates keys with values.
type Map[K comparable, V any] interface {
	// Len returns the number of entries.
	Len() int

	// Get returns the value stored under k.
	Get(k K) (V, bool)

	// Put stores v under k and returns the previous value, if any.
	Put(k K, v V) (V, bool)

	// Delete removes k and returns its value, if any.
	Delete(k K) (V, bool)

	// All iterates over the entries.
	All() iter.Seq2[K, V]

	// RemoveFunc removes every entry for which fn returns true, in place,
	// and returns how many were removed.
	RemoveFunc(fn func(K, V) bool) int

	// Clear removes every entry.
	Clear()
}

// Copy appends every element of src to the empty list dst and returns dst.
func Copy[E comparable](dst, src List[E]) List[E] {
	for e := range src.All() {
		dst.Append(e)
	}
	return dst
}

// CopySet adds every element of src to dst and returns dst.
func CopySet[E comparable](dst, src Set[E]) Set[E] {
	for e := range src.All() {
		dst.Add(e)
	}
	return dst
}

// CopyMap puts every entry of src into dst and returns dst.
func CopyMap[K comparable, V any](dst, src Map[K, V]) Map[K, V] {
	for k, v := range src.All() {
		dst.Put(k, v)
	}
	return dst
}

// Values collects the elements of c into a new slice.
func Values[E comparable](c Collection[E]) []E {
	out := make([]E, 0, c.Len())
	for e := range c.All() {
		out = append(out, e)
	}
	return out
}

// Keys collects the keys of m into a new slice.
func Keys[K comparable, V any](m Map[K, V]) []K {
	out := make([]K, 0, m.Len())
	for k := range m.All() {
		out = append(out, k)
	}
	return out
}
