package executor

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInlineRunsBeforeReturn(t *testing.T) {
	ran := false
	Inline().Submit(func() { ran = true })
	assert.True(t, ran)
}

func TestGoRunsConcurrently(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	release := make(chan struct{})

	Go().Submit(func() {
		<-release
		wg.Done()
	})

	// Submit returned while the task is still blocked.
	close(release)
	wg.Wait()
}

func TestPoolRunsEveryTask(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPool(4, 16, WithRegistry(reg), WithLogger(quietLogger()), WithName("test"))

	var count atomic.Int64
	for i := 0; i < 100; i++ {
		p.Submit(func() { count.Add(1) })
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, p.Close(ctx))

	assert.Equal(t, int64(100), count.Load())
	assert.Equal(t, float64(100), testutil.ToFloat64(p.metrics.submitted))
	assert.Equal(t, float64(100), testutil.ToFloat64(p.metrics.completed))
}

func TestPoolRecoversPanics(t *testing.T) {
	var (
		mu        sync.Mutex
		recovered []any
	)
	p := NewPool(1, 4,
		WithLogger(quietLogger()),
		WithPanicHandler(func(r any, stack []byte) {
			mu.Lock()
			defer mu.Unlock()
			recovered = append(recovered, r)
			assert.NotEmpty(t, stack)
		}),
	)

	var after atomic.Bool
	p.Submit(func() { panic("listener failed") })
	p.Submit(func() { after.Store(true) })

	require.NoError(t, p.Close(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []any{"listener failed"}, recovered)
	assert.True(t, after.Load(), "worker must survive a panicking task")
	assert.Equal(t, float64(1), testutil.ToFloat64(p.metrics.panics))
}

func TestPoolRejectsAfterClose(t *testing.T) {
	p := NewPool(1, 1, WithLogger(quietLogger()))
	require.NoError(t, p.Close(context.Background()))
	require.NoError(t, p.Close(context.Background()), "close is idempotent")

	assert.ErrorIs(t, p.TrySubmit(func() {}), ErrPoolClosed)
	p.Submit(func() { t.Error("task must not run after close") })
	assert.Equal(t, float64(2), testutil.ToFloat64(p.metrics.rejected))
}

func TestPoolCloseHonoursContext(t *testing.T) {
	p := NewPool(1, 1, WithLogger(quietLogger()))
	block := make(chan struct{})
	p.Submit(func() { <-block })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := p.Close(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(block)
	require.NoError(t, p.Close(context.Background()))
}

func TestPoolTaskCanSubmitIntoFullPool(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPool(1, 1, WithRegistry(reg), WithLogger(quietLogger()))

	var count atomic.Int64
	var wg sync.WaitGroup
	wg.Add(1 + 5*3)
	p.Submit(func() {
		defer wg.Done()
		for i := 0; i < 5; i++ {
			p.Submit(func() {
				defer wg.Done()
				count.Add(1)
				for j := 0; j < 2; j++ {
					p.Submit(func() {
						defer wg.Done()
						count.Add(1)
					})
				}
			})
		}
	})

	finished := make(chan struct{})
	go func() {
		wg.Wait()
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("nested submits did not finish")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, p.Close(ctx))
	assert.Equal(t, int64(15), count.Load())
	assert.Equal(t, float64(16), testutil.ToFloat64(p.metrics.completed))
	assert.Positive(t, testutil.ToFloat64(p.metrics.overflow))
}

func TestPoolTrySubmitReportsFullQueue(t *testing.T) {
	p := NewPool(1, 1, WithLogger(quietLogger()))
	started := make(chan struct{})
	block := make(chan struct{})
	require.NoError(t, p.TrySubmit(func() {
		close(started)
		<-block
	}))
	<-started
	require.NoError(t, p.TrySubmit(func() {}))

	assert.ErrorIs(t, p.TrySubmit(func() {}), ErrQueueFull)

	close(block)
	require.NoError(t, p.Close(context.Background()))
}

func TestPoolCloseDoesNotWaitOnBlockedSubmitters(t *testing.T) {
	p := NewPool(1, 0, WithLogger(quietLogger()))
	block := make(chan struct{})
	for i := 0; i < 4; i++ {
		p.Submit(func() { <-block })
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	start := time.Now()
	err := p.Close(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)

	close(block)
	require.NoError(t, p.Close(context.Background()))
}
