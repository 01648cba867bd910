package cell

import "slices"

// ListenerID identifies one listener registration. Registering the same
// function twice yields two IDs and two invocations per change.
type ListenerID uint64

// ChangeListener is called with the cell, its previous value and its new
// value after every change.
type ChangeListener[T any] func(c *Cell[T], oldValue, newValue T)

type registration[T any] struct {
	id ListenerID
	fn ChangeListener[T]

	// async registrations run on exec; nil exec means the graph default.
	async bool
	exec  Executor
}

// notifier is the ordered listener registry of one cell.
type notifier[T any] struct {
	regs []registration[T]
}

func (n *notifier[T]) add(id uint64, fn ChangeListener[T], async bool, exec Executor) ListenerID {
	if fn == nil {
		return 0
	}
	n.regs = append(n.regs, registration[T]{id: ListenerID(id), fn: fn, async: async, exec: exec})
	return ListenerID(id)
}

func (n *notifier[T]) remove(id ListenerID) bool {
	i := slices.IndexFunc(n.regs, func(r registration[T]) bool { return r.id == id })
	if i < 0 {
		return false
	}
	n.regs = slices.Delete(n.regs, i, i+1)
	return true
}

func (n *notifier[T]) len() int {
	return len(n.regs)
}

// snapshot copies the registrations so listeners may add or remove
// listeners while a notification pass is running.
func (n *notifier[T]) snapshot() []registration[T] {
	return slices.Clone(n.regs)
}
