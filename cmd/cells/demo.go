package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/vango-dev/cells/internal/config"
	"github.com/vango-dev/cells/pkg/cell"
	"github.com/vango-dev/cells/pkg/executor"
	"github.com/vango-dev/cells/pkg/numeric"
)

func demoCmd() *cobra.Command {
	var (
		configPath string
		updates    int
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a demo graph",
		Long: `Build a small graph of cells, drive it through a few scenarios and
print the resulting metrics.

Settings are read from --config, or from cells.json in the working
directory if it exists.

Examples:
  cells demo
  cells demo --config cells.json --updates 500`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return runDemo(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, updates)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to cells.json")
	cmd.Flags().IntVar(&updates, "updates", 100, "Number of updates in the async scenario")

	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	if config.Exists(".") {
		return config.Load(".")
	}
	return config.New(), nil
}

// demoEnv holds what the scenarios share.
type demoEnv struct {
	out      io.Writer
	graph    *cell.Graph
	registry *prometheus.Registry
}

func runDemo(ctx context.Context, out, logOut io.Writer, cfg *config.Config, updates int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := cfg.Logger(logOut).With("component", "cells")
	registry := prometheus.NewRegistry()

	exec, closeExec := newExecutor(cfg, logger, registry)

	opts := []cell.Option{
		cell.WithLogger(logger),
		cell.WithExecutor(exec),
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, cell.WithMetrics(cell.NewMetrics(
			cell.WithRegistry(registry),
			cell.WithNamespace(cfg.Metrics.Namespace),
			cell.WithSubsystem(cfg.Metrics.Subsystem),
		)))
	}
	if cfg.Tracing.Enabled {
		opts = append(opts, cell.WithTracer(otel.Tracer("github.com/vango-dev/cells")))
	}

	env := &demoEnv{out: out, graph: cell.NewGraph(opts...), registry: registry}
	logger.Debug("demo starting", "executor", cfg.Executor.Kind, "updates", updates)

	scenarios := []struct {
		name string
		run  func(*demoEnv) error
	}{
		{"integer derivations", integerScenario},
		{"boolean negation", booleanScenario},
		{"collection size", collectionScenario},
		{"string round trip", stringScenario},
		{"async listener", func(env *demoEnv) error { return asyncScenario(env, updates) }},
	}

	var runErr error
	for _, s := range scenarios {
		fmt.Fprintf(out, "\n%s\n", s.name)
		if err := s.run(env); err != nil {
			runErr = fmt.Errorf("%s: %w", s.name, err)
			break
		}
	}

	closeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := closeExec(closeCtx); err != nil {
		runErr = stderrors.Join(runErr, err)
	}
	if runErr != nil {
		return runErr
	}

	if cfg.Metrics.Enabled {
		families, err := registry.Gather()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nmetrics\n")
		printMetrics(out, families)
	}
	return nil
}

// newExecutor builds the configured executor and the function that stops it.
func newExecutor(cfg *config.Config, logger *slog.Logger, registry prometheus.Registerer) (cell.Executor, func(context.Context) error) {
	switch cfg.Executor.Kind {
	case config.ExecutorInline:
		return executor.Inline(), func(context.Context) error { return nil }
	case config.ExecutorGo:
		return executor.Go(), func(context.Context) error { return nil }
	default:
		poolOpts := []executor.Option{executor.WithLogger(logger), executor.WithName("listeners")}
		if cfg.Metrics.Enabled {
			poolOpts = append(poolOpts, executor.WithRegistry(registry))
		}
		pool := executor.NewPool(cfg.Executor.Workers, cfg.Executor.Queue, poolOpts...)
		return pool, pool.Close
	}
}

func integerScenario(env *demoEnv) error {
	a := cell.NewIntCell(env.graph, 1)
	b, err := a.MapMultiply(numeric.OfInt(5))
	if err != nil {
		return err
	}
	info(env.out, "a = %s, b = a * 5 = %s", a.Value(), b.Value())

	if err := a.Set(numeric.OfInt(10)); err != nil {
		return err
	}
	info(env.out, "a = %s, b = %s", a.Value(), b.Value())

	_, err = b.BindTo(a)
	if !stderrors.Is(err, cell.ErrBoundTargetSet) {
		return fmt.Errorf("rebinding a derived cell: got %v", err)
	}
	success(env.out, "rebinding b is refused: %v", err)
	return nil
}

func booleanScenario(env *demoEnv) error {
	a := cell.NewBoolCell(env.graph, true)
	b, err := a.Negated()
	if err != nil {
		return err
	}
	if err := a.Toggle(); err != nil {
		return err
	}
	info(env.out, "a = %t, b = !a = %t", a.Value(), b.Value())

	err = b.Toggle()
	if !stderrors.Is(err, cell.ErrBoundValueSet) {
		return fmt.Errorf("toggling a bound cell: got %v", err)
	}
	success(env.out, "toggling b is refused while bound")

	b.Unbind(a)
	if err := b.Toggle(); err != nil {
		return err
	}
	success(env.out, "after unbind, b toggles to %t", b.Value())
	return nil
}

func collectionScenario(env *demoEnv) error {
	list := cell.NewListCell[string](env.graph, nil)
	size, err := list.MapSize()
	if err != nil {
		return err
	}
	if err := list.Add("one"); err != nil {
		return err
	}
	info(env.out, "list = %v, size = %s", list.Value(), size.Value())

	if _, err := list.Remove("one"); err != nil {
		return err
	}
	info(env.out, "list = %v, size = %s", list.Value(), size.Value())
	return nil
}

func stringScenario(env *demoEnv) error {
	a := cell.NewIntCell(env.graph, 10)
	s, err := a.MapString()
	if err != nil {
		return err
	}
	if err := a.Set(numeric.OfInt(20)); err != nil {
		return err
	}
	n, err := s.MapNumber()
	if err != nil {
		return err
	}
	info(env.out, "a = %s, text = %q, parsed = %s (%s)", a.Value(), s.Value(), n.Value(), n.Kind())
	return nil
}

func asyncScenario(env *demoEnv, updates int) error {
	c := cell.NewNumberCellOf(env.graph, int64(0))

	var handled atomic.Int64
	c.AddAsyncChangeListener(func(*cell.Cell[numeric.Number], numeric.Number, numeric.Number) {
		time.Sleep(time.Millisecond)
		handled.Add(1)
	}, nil)

	for i := 0; i < updates; i++ {
		if err := c.Increment(); err != nil {
			return err
		}
	}
	info(env.out, "%d updates, %d listener calls finished when the loop returned", updates, handled.Load())
	return nil
}

// printMetrics prints every counter and gauge sample, sorted by name.
func printMetrics(w io.Writer, families []*dto.MetricFamily) {
	sort.Slice(families, func(i, j int) bool { return families[i].GetName() < families[j].GetName() })
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var value float64
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				value = m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				value = m.GetGauge().GetValue()
			default:
				continue
			}
			info(w, "%s%s %g", mf.GetName(), formatLabels(m.GetLabel()), value)
		}
	}
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", p.GetName(), p.GetValue()))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
