package cell

import (
	"context"
	"fmt"
)

// Cell is an observable value. Assigning a different value notifies the
// cell's listeners and then pushes the value to every cell bound to it.
//
// A cell bound to a source is derivation-only: its value is a function of
// the source's value and Set fails with ErrBoundValueSet until Unbind.
//
//	count := cell.New(g, 1)
//	label := cell.Must(cell.Map(count, func(n int) string {
//	    return fmt.Sprintf("%d items", n)
//	}))
//	count.Set(3) // label is now "3 items"
type Cell[T any] struct {
	graph  *Graph
	handle Handle
	value  T

	// equal decides whether an assignment is a change.
	equal func(a, b T) bool

	// coerce normalizes a value before validation, e.g. to a fixed
	// numeric kind.
	coerce func(T) T

	// validate rejects values the cell must never hold.
	validate func(T) error

	// mapper turns a source value into this cell's value. Only used while
	// the cell is bound.
	mapper func(any) (T, error)

	// derived marks cells created by a derivation; their mapper is not the
	// identity.
	derived bool

	listeners notifier[T]
}

// New creates a cell holding initial. Scalars are compared by value and
// references (pointers, maps, slices, containers) by identity.
func New[T any](g *Graph, initial T) *Cell[T] {
	c := &Cell[T]{
		graph:  g,
		handle: Handle(g.nextID()),
		value:  initial,
		equal:  identical[T],
	}
	g.register(c)
	return c
}

// NewWith creates a cell configured by opts. The initial value goes through
// the configured coercion and validation.
func NewWith[T any](g *Graph, initial T, opts ...CellOption[T]) (*Cell[T], error) {
	c := &Cell[T]{
		graph:  g,
		handle: Handle(g.nextID()),
		equal:  identical[T],
	}
	for _, opt := range opts {
		opt(c)
	}

	v, err := c.check(initial)
	if err != nil {
		return nil, err
	}
	c.value = v
	g.register(c)
	return c, nil
}

// Handle returns the cell's address in its graph.
func (c *Cell[T]) Handle() Handle { return c.handle }

// Graph returns the graph that owns the cell.
func (c *Cell[T]) Graph() *Graph { return c.graph }

// Value returns the current value.
func (c *Cell[T]) Value() T { return c.value }

// HasValue reports whether the cell holds a non-nil value.
func (c *Cell[T]) HasValue() bool { return !isNil(any(c.value)) }

// IsBound reports whether the cell currently has a source.
func (c *Cell[T]) IsBound() bool {
	_, ok := c.graph.sourceOf(c.handle)
	return ok
}

// Source returns the handle of the cell's source, if bound.
func (c *Cell[T]) Source() (Handle, bool) {
	return c.graph.sourceOf(c.handle)
}

// Dependents returns the handles of the cells bound to c, in bind order.
func (c *Cell[T]) Dependents() []Handle {
	return c.graph.dependentsOf(c.handle)
}

// Set assigns v. It fails with ErrBoundValueSet if the cell is bound,
// ErrReleased if it was released and ErrInvalidValue if v is rejected.
// An error from a dependent during propagation is returned as is; cells
// updated before the failure keep their new values.
func (c *Cell[T]) Set(v T) error {
	if err := c.writable(); err != nil {
		return err
	}
	v, err := c.check(v)
	if err != nil {
		return err
	}

	ctx, end := c.graph.startSet(c.handle)
	err = c.assign(ctx, v)
	end(err)
	return err
}

// Update sets the cell to fn applied to its current value.
func (c *Cell[T]) Update(fn func(T) T) error {
	if err := c.writable(); err != nil {
		return err
	}
	return c.Set(fn(c.value))
}

// BindTo makes c a dependent of src and returns c. Binding again to the same
// source does nothing; binding to another source while bound fails with
// ErrBoundTargetSet. The value is not recomputed until src changes.
//
// A cell created by a derivation (Map, MapString, MapMultiply, ...) is bound
// through its mapping; an explicit BindTo on it fails with ErrBoundTargetSet
// until it is unbound.
//
// A cell without a mapper takes the source value as is; a source value that
// is not a T fails propagation with ErrInvalidValue.
func (c *Cell[T]) BindTo(src Source) (*Cell[T], error) {
	if c.derived {
		if current, ok := c.graph.sourceOf(c.handle); ok {
			return nil, fmt.Errorf("%w: %s is derived from %s", ErrBoundTargetSet, c.handle, current)
		}
	}
	return c.bind(src)
}

func (c *Cell[T]) bind(src Source) (*Cell[T], error) {
	if src.Graph() != c.graph {
		return nil, fmt.Errorf("%w: %s and %s", ErrForeignCell, c.handle, src.Handle())
	}
	if err := c.graph.link(c.handle, src.Handle()); err != nil {
		return nil, err
	}
	if c.mapper == nil {
		c.mapper = c.identityMapper
	}
	return c, nil
}

// Unbind removes the edge from src to c, making c writable again. It reports
// whether c was bound to src.
func (c *Cell[T]) Unbind(src Source) bool {
	return c.graph.unlink(c.handle, src.Handle())
}

// AddChangeListener registers fn to run synchronously, in registration
// order, on every change.
func (c *Cell[T]) AddChangeListener(fn ChangeListener[T]) ListenerID {
	return c.listeners.add(c.graph.nextID(), fn, false, nil)
}

// AddAsyncChangeListener registers fn to run on exec after every change.
// A nil exec uses the graph's executor. The triggering Set does not wait
// for fn, and fn receives the old and new values of its own change even if
// the cell has moved on since.
func (c *Cell[T]) AddAsyncChangeListener(fn ChangeListener[T], exec Executor) ListenerID {
	return c.listeners.add(c.graph.nextID(), fn, true, exec)
}

// RemoveChangeListener unregisters a listener. It reports whether id was
// registered; removing the same id twice returns false the second time.
// An asynchronous call already submitted still runs.
func (c *Cell[T]) RemoveChangeListener(id ListenerID) bool {
	return c.listeners.remove(id)
}

// ListenerCount returns the number of registered listeners.
func (c *Cell[T]) ListenerCount() int {
	return c.listeners.len()
}

// String formats the cell as "cell#N(value)".
func (c *Cell[T]) String() string {
	return fmt.Sprintf("%s(%v)", c.handle, c.value)
}

func (c *Cell[T]) writable() error {
	if !c.graph.Contains(c.handle) {
		c.graph.metrics.rejected(rejectReleased)
		return fmt.Errorf("%w: %s", ErrReleased, c.handle)
	}
	if src, ok := c.graph.sourceOf(c.handle); ok {
		c.graph.metrics.rejected(rejectBound)
		return fmt.Errorf("%w: %s is bound to %s", ErrBoundValueSet, c.handle, src)
	}
	return nil
}

// check coerces and validates v.
func (c *Cell[T]) check(v T) (T, error) {
	if c.coerce != nil {
		v = c.coerce(v)
	}
	if c.validate != nil {
		if err := c.validate(v); err != nil {
			c.graph.metrics.rejected(rejectInvalid)
			return v, fmt.Errorf("%s: %w", c.handle, err)
		}
	}
	return v, nil
}

// assign stores v and, if it differs from the previous value, notifies
// synchronous listeners, submits asynchronous ones and then propagates to
// every dependent, depth first.
func (c *Cell[T]) assign(ctx context.Context, v T) error {
	old := c.value
	c.value = v
	if c.equal(old, v) {
		return nil
	}
	c.graph.metrics.assigned()

	regs := c.listeners.snapshot()
	for _, r := range regs {
		if !r.async {
			c.graph.metrics.listenerCalled(listenerModeSync)
			r.fn(c, old, v)
		}
	}
	for _, r := range regs {
		if r.async {
			fn := r.fn
			c.graph.dispatch(ctx, r.exec, c.handle, func() { fn(c, old, v) })
		}
	}

	return c.propagate(ctx, v)
}

func (c *Cell[T]) propagate(ctx context.Context, v T) error {
	for _, h := range c.graph.dependentsOf(c.handle) {
		n, ok := c.graph.lookup(h)
		if !ok {
			return fmt.Errorf("%w: %s (dependent of %s)", ErrUnsupportedReceiver, h, c.handle)
		}
		c.graph.metrics.propagated()
		if err := n.receive(ctx, v); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cell[T]) receive(ctx context.Context, upstream any) error {
	mapper := c.mapper
	if mapper == nil {
		mapper = c.identityMapper
	}
	v, err := mapper(upstream)
	if err != nil {
		return fmt.Errorf("%s: %w", c.handle, err)
	}
	v, err = c.check(v)
	if err != nil {
		return err
	}
	return c.assign(ctx, v)
}

func (c *Cell[T]) identityMapper(upstream any) (T, error) {
	return assertAs[T](upstream)
}
