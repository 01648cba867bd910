package cell

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	listenerModeSync  = "sync"
	listenerModeAsync = "async"

	rejectBound    = "bound"
	rejectReleased = "released"
	rejectInvalid  = "invalid"
)

// MetricsConfig configures the Prometheus collectors of a graph.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "cells").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures MetricsConfig.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// Metrics holds the Prometheus collectors updated by a graph. A nil
// *Metrics records nothing.
type Metrics struct {
	assignments    prometheus.Counter
	propagations   prometheus.Counter
	listenerCalls  *prometheus.CounterVec
	rejectedWrites *prometheus.CounterVec
	liveCells      prometheus.Gauge
}

// NewMetrics creates and registers the graph collectors:
//   - cells_assignments_total: value changes, direct or propagated
//   - cells_propagations_total: values pushed to a dependent
//   - cells_listener_calls_total: listener invocations by mode (sync, async)
//   - cells_rejected_writes_total: refused writes by reason (bound, released, invalid)
//   - cells_live: cells registered and not yet released
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := MetricsConfig{
		Namespace: "cells",
		Registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		assignments: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "assignments_total",
			Help:        "Total number of cell value changes",
			ConstLabels: config.ConstLabels,
		}),

		propagations: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "propagations_total",
			Help:        "Total number of values pushed from a source to a dependent",
			ConstLabels: config.ConstLabels,
		}),

		listenerCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "listener_calls_total",
			Help:        "Total number of change listener invocations",
			ConstLabels: config.ConstLabels,
		}, []string{"mode"}),

		rejectedWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "rejected_writes_total",
			Help:        "Total number of refused writes by reason",
			ConstLabels: config.ConstLabels,
		}, []string{"reason"}),

		liveCells: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "live",
			Help:        "Number of cells registered and not released",
			ConstLabels: config.ConstLabels,
		}),
	}
}

func (m *Metrics) assigned() {
	if m != nil {
		m.assignments.Inc()
	}
}

func (m *Metrics) propagated() {
	if m != nil {
		m.propagations.Inc()
	}
}

func (m *Metrics) listenerCalled(mode string) {
	if m != nil {
		m.listenerCalls.WithLabelValues(mode).Inc()
	}
}

func (m *Metrics) rejected(reason string) {
	if m != nil {
		m.rejectedWrites.WithLabelValues(reason).Inc()
	}
}

func (m *Metrics) cellCreated() {
	if m != nil {
		m.liveCells.Inc()
	}
}

func (m *Metrics) cellReleased() {
	if m != nil {
		m.liveCells.Dec()
	}
}
