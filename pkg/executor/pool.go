package executor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrPoolClosed is returned by TrySubmit after Close.
	ErrPoolClosed = errors.New("executor: pool closed")
	// ErrQueueFull is returned by TrySubmit when no queue slot is free.
	ErrQueueFull = errors.New("executor: queue full")
)

// PanicHandler receives the value and stack of a recovered task panic.
type PanicHandler func(recovered any, stack []byte)

// Option configures a Pool.
type Option func(*Pool)

// WithLogger sets the logger used for rejected tasks and recovered panics.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pool) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithPanicHandler installs a handler for recovered task panics.
func WithPanicHandler(fn PanicHandler) Option {
	return func(p *Pool) {
		p.onPanic = fn
	}
}

// WithRegistry registers the pool metrics with reg.
// Without it the pool still counts, but nothing is exported.
func WithRegistry(reg prometheus.Registerer) Option {
	return func(p *Pool) {
		p.registry = reg
	}
}

// WithName sets the "pool" label of the pool metrics.
func WithName(name string) Option {
	return func(p *Pool) {
		p.name = name
	}
}

type poolMetrics struct {
	submitted prometheus.Counter
	completed prometheus.Counter
	panics    prometheus.Counter
	rejected  prometheus.Counter
	overflow  prometheus.Counter
}

func newPoolMetrics(reg prometheus.Registerer, name string, depth func() float64) *poolMetrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"pool": name}

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace:   "cells",
		Subsystem:   "executor",
		Name:        "queue_depth",
		Help:        "Number of tasks waiting for a worker",
		ConstLabels: labels,
	}, depth)

	return &poolMetrics{
		submitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   "cells",
			Subsystem:   "executor",
			Name:        "tasks_submitted_total",
			Help:        "Total number of tasks accepted by the pool",
			ConstLabels: labels,
		}),
		completed: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   "cells",
			Subsystem:   "executor",
			Name:        "tasks_completed_total",
			Help:        "Total number of tasks that returned normally",
			ConstLabels: labels,
		}),
		panics: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   "cells",
			Subsystem:   "executor",
			Name:        "task_panics_total",
			Help:        "Total number of tasks that panicked",
			ConstLabels: labels,
		}),
		rejected: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   "cells",
			Subsystem:   "executor",
			Name:        "tasks_rejected_total",
			Help:        "Total number of tasks submitted after Close",
			ConstLabels: labels,
		}),
		overflow: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   "cells",
			Subsystem:   "executor",
			Name:        "tasks_overflowed_total",
			Help:        "Total number of tasks run outside the workers because the queue was full",
			ConstLabels: labels,
		}),
	}
}

// Pool runs tasks on a fixed set of worker goroutines fed by a buffered
// queue. Submit never blocks: when the queue is full the task runs on a
// goroutine of its own, so tasks may submit back into their own pool.
type Pool struct {
	tasks    chan func()
	group    errgroup.Group
	overflow sync.WaitGroup

	// mu orders sends and overflow spawns against Close. It is never held
	// across a blocking operation.
	mu     sync.RWMutex
	closed bool

	name     string
	logger   *slog.Logger
	onPanic  PanicHandler
	registry prometheus.Registerer
	metrics  *poolMetrics
}

// NewPool starts a pool with the given number of workers and queue
// capacity. A non-positive worker count uses GOMAXPROCS; a negative queue
// capacity is treated as zero (unbuffered).
func NewPool(workers, queue int, opts ...Option) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if queue < 0 {
		queue = 0
	}

	p := &Pool{
		tasks:  make(chan func(), queue),
		name:   "default",
		logger: slog.Default().With("component", "executor"),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.metrics = newPoolMetrics(p.registry, p.name, func() float64 {
		return float64(len(p.tasks))
	})

	for i := 0; i < workers; i++ {
		p.group.Go(p.work)
	}
	return p
}

// Submit queues task for execution. When the queue is full the task is
// started on its own goroutine instead. Tasks submitted after Close are
// logged and dropped.
func (p *Pool) Submit(task func()) {
	err := p.TrySubmit(task)
	if errors.Is(err, ErrQueueFull) {
		err = p.spill(task)
	}
	if err != nil {
		p.logger.Warn("task rejected", "pool", p.name, "error", err)
	}
}

// TrySubmit queues task without blocking. It returns ErrQueueFull when no
// slot is free and ErrPoolClosed after Close.
func (p *Pool) TrySubmit(task func()) error {
	if task == nil {
		return nil
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		p.metrics.rejected.Inc()
		return ErrPoolClosed
	}
	select {
	case p.tasks <- task:
		p.metrics.submitted.Inc()
		return nil
	default:
		return ErrQueueFull
	}
}

// spill runs task on a dedicated goroutine that Close also waits for.
func (p *Pool) spill(task func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		p.metrics.rejected.Inc()
		return ErrPoolClosed
	}
	p.metrics.submitted.Inc()
	p.metrics.overflow.Inc()
	p.overflow.Add(1)
	go func() {
		defer p.overflow.Done()
		p.run(task)
	}()
	return nil
}

// Close stops accepting tasks and waits for the queued ones to finish or
// for ctx to be done, whichever comes first.
func (p *Pool) Close(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.tasks)
	}
	p.mu.Unlock()

	done := make(chan error, 1)
	go func() {
		err := p.group.Wait()
		p.overflow.Wait()
		done <- err
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("executor: close: %w", ctx.Err())
	}
}

func (p *Pool) work() error {
	for task := range p.tasks {
		p.run(task)
	}
	return nil
}

func (p *Pool) run(task func()) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			p.metrics.panics.Inc()
			p.logger.Error("task panicked",
				"pool", p.name,
				"panic", r,
				"stack", string(stack),
			)
			if p.onPanic != nil {
				p.onPanic(r, stack)
			}
		}
	}()

	task()
	p.metrics.completed.Inc()
}
