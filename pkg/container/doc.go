// Package container defines the mutable collections held by container cells.
//
// The cell package never mutates a container a cell has published; it asks a
// factory for a fresh, empty container of the same concrete kind, copies the
// current contents in and mutates the copy. Every implementation here is a
// pointer type, so two containers are the same value only when they are the
// same instance.
//
// Kinds:
//
//   - SliceList: a slice-backed List.
//   - HashSet, OrderedSet, SwissSet: Sets backed by a Go map, by a map plus
//     insertion order, and by a github.com/dolthub/swiss table.
//   - HashMap, OrderedMap, SwissMap: the matching Map kinds.
//
// Iteration order is unspecified for the hash and swiss kinds and follows
// insertion order for the ordered kinds.
package container
