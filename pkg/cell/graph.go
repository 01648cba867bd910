package cell

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/cells/pkg/executor"
)

// Handle is the stable address of a cell inside its graph.
// Handles are never reused within a graph; cells of different graphs may
// share a handle.
type Handle uint64

// String returns the handle in the form "cell#N".
func (h Handle) String() string {
	return "cell#" + strconv.FormatUint(uint64(h), 10)
}

// Executor runs tasks off the caller's goroutine. It is the only contract
// asynchronous listeners depend on.
type Executor interface {
	Submit(task func())
}

// Source is anything a cell can be bound to: every cell type in this package.
type Source interface {
	Handle() Handle
	Graph() *Graph
}

// node is the type-erased view the graph keeps of each cell.
type node interface {
	Handle() Handle

	// receive pushes an upstream value through the cell's mapper and runs
	// the assignment algorithm without the bind guard.
	receive(ctx context.Context, upstream any) error
}

// Graph is the arena that owns cells and the bind edges between them.
//
// A source lists its dependents by handle and a dependent records the handle
// of its source; neither holds the other directly. A cell lives until it is
// released with Release, regardless of which edges point at it.
//
// The graph guards its own tables, but cell values are not synchronized:
// writes to cells of one graph must be serialized by the caller.
type Graph struct {
	// ids numbers both cell handles and listener IDs.
	ids atomic.Uint64

	mu         sync.RWMutex
	nodes      map[Handle]node
	source     map[Handle]Handle
	dependents map[Handle][]Handle

	logger   *slog.Logger
	metrics  *Metrics
	tracer   trace.Tracer
	executor Executor
}

// Option configures a Graph.
type Option func(*Graph)

// WithLogger sets the graph logger. Bind, unbind and release are logged at
// debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Graph) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithMetrics records graph activity in m.
func WithMetrics(m *Metrics) Option {
	return func(g *Graph) {
		g.metrics = m
	}
}

// WithTracer traces Set passes and asynchronous listener tasks.
func WithTracer(tracer trace.Tracer) Option {
	return func(g *Graph) {
		g.tracer = tracer
	}
}

// WithExecutor sets the executor used by asynchronous listeners registered
// without one. The default starts a goroutine per task.
func WithExecutor(exec Executor) Option {
	return func(g *Graph) {
		if exec != nil {
			g.executor = exec
		}
	}
}

// NewGraph returns an empty graph.
func NewGraph(opts ...Option) *Graph {
	g := &Graph{
		nodes:      make(map[Handle]node),
		source:     make(map[Handle]Handle),
		dependents: make(map[Handle][]Handle),
		logger:     slog.Default().With("component", "cells"),
		executor:   executor.Go(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Graph) nextID() uint64 {
	return g.ids.Add(1)
}

// Len returns the number of live cells.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// Contains reports whether h addresses a live cell.
func (g *Graph) Contains(h Handle) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[h]
	return ok
}

// Release removes c from the graph. Its source edge is removed, and every
// dependent becomes unbound and writable again. It reports whether c was
// live.
func (g *Graph) Release(c Source) bool {
	h := c.Handle()

	g.mu.Lock()
	if _, ok := g.nodes[h]; !ok {
		g.mu.Unlock()
		return false
	}
	delete(g.nodes, h)
	if src, ok := g.source[h]; ok {
		g.dropDependent(src, h)
		delete(g.source, h)
	}
	orphans := g.dependents[h]
	for _, d := range orphans {
		delete(g.source, d)
	}
	delete(g.dependents, h)
	g.mu.Unlock()

	g.metrics.cellReleased()
	g.logger.Debug("cell released", "cell", h, "orphaned", len(orphans))
	return true
}

func (g *Graph) register(n node) {
	g.mu.Lock()
	g.nodes[n.Handle()] = n
	g.mu.Unlock()

	g.metrics.cellCreated()
}

func (g *Graph) lookup(h Handle) (node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[h]
	return n, ok
}

func (g *Graph) sourceOf(h Handle) (Handle, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	src, ok := g.source[h]
	return src, ok
}

// dependentsOf returns a snapshot of h's dependents in registration order.
func (g *Graph) dependentsOf(h Handle) []Handle {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return slices.Clone(g.dependents[h])
}

// link makes child a dependent of parent.
func (g *Graph) link(child, parent Handle) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[child]; !ok {
		return fmt.Errorf("%w: %s", ErrReleased, child)
	}
	if _, ok := g.nodes[parent]; !ok {
		return fmt.Errorf("%w: source %s", ErrReleased, parent)
	}
	if current, ok := g.source[child]; ok {
		if current == parent {
			return nil
		}
		return fmt.Errorf("%w: %s is bound to %s, not %s", ErrBoundTargetSet, child, current, parent)
	}

	g.source[child] = parent
	g.dependents[parent] = append(g.dependents[parent], child)
	g.logger.Debug("cell bound", "cell", child, "source", parent)
	return nil
}

// unlink removes the edge from parent to child if it exists.
func (g *Graph) unlink(child, parent Handle) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if current, ok := g.source[child]; !ok || current != parent {
		return false
	}
	delete(g.source, child)
	removed := g.dropDependent(parent, child)
	g.logger.Debug("cell unbound", "cell", child, "source", parent)
	return removed
}

// dropDependent removes child from parent's dependents. g.mu must be held.
func (g *Graph) dropDependent(parent, child Handle) bool {
	deps := g.dependents[parent]
	i := slices.Index(deps, child)
	if i < 0 {
		return false
	}
	deps = slices.Delete(deps, i, i+1)
	if len(deps) == 0 {
		delete(g.dependents, parent)
	} else {
		g.dependents[parent] = deps
	}
	return true
}

// startSet opens the span of one Set pass. The returned function ends it.
func (g *Graph) startSet(h Handle) (context.Context, func(error)) {
	ctx := context.Background()
	if g.tracer == nil {
		return ctx, func(error) {}
	}

	ctx, span := g.tracer.Start(ctx, "cells.set",
		trace.WithAttributes(attribute.String("cells.cell", h.String())),
	)
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}

// dispatch submits an asynchronous listener call.
func (g *Graph) dispatch(ctx context.Context, exec Executor, h Handle, call func()) {
	if exec == nil {
		exec = g.executor
	}
	g.metrics.listenerCalled(listenerModeAsync)

	if g.tracer == nil {
		exec.Submit(call)
		return
	}
	tracer := g.tracer
	exec.Submit(func() {
		_, span := tracer.Start(ctx, "cells.async_listener",
			trace.WithAttributes(attribute.String("cells.cell", h.String())),
		)
		defer span.End()
		call()
	})
}
