// Package cell provides observable value cells that push changes through a
// graph of derived cells.
//
// A Cell holds one value. Setting a value that differs from the current one
// runs the cell's synchronous listeners in registration order, submits its
// asynchronous listeners to an Executor, and then pushes the value to every
// dependent cell, depth first. Scalars are compared by value; pointers,
// maps, slices and containers by identity.
//
//	g := cell.NewGraph()
//	a := cell.NewIntCell(g, 1)
//	b := cell.Must(a.MapMultiply(numeric.OfInt(5)))
//	a.Set(numeric.OfInt(10)) // b is now 50
//
// # Binding
//
// A cell bound to a source is derivation-only. Set on it fails with
// ErrBoundValueSet, and binding it to a second source fails with
// ErrBoundTargetSet. Unbind makes it writable again.
//
// Cells live in a Graph, which stores the bind edges by Handle. A cell stays
// registered until Graph.Release, which also detaches it from its source and
// its dependents.
//
// # Typed Cells
//
// NumberCell holds a numeric.Number of one fixed kind and offers operator
// derivations (MapAdd, MapShiftLeft, MapCompare, ...) and in-place operators.
// StringCell, BoolCell and CharCell add the conversions specific to their
// type. ListCell, SetCell and MapCell wrap a container and assign a fresh
// copy on every mutation so that listeners observe the change.
//
// # Concurrency
//
// Writes to the cells of one graph must be serialized by the caller. Only
// asynchronous listeners run on other goroutines, with the old and new
// values of the change that triggered them.
package cell
