package pool

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

var (
	ErrPoolClosed  = errors.New("worker pool closed")
	ErrJobPanicked = errors.New("worker job panicked")
)

// Pool runs blocking jobs on at most `workers` goroutines at a time.
type Pool struct {
	logs    *zap.SugaredLogger
	sem     *semaphore.Weighted
	workers int

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func New(workers int, logger *zap.SugaredLogger) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		logs:    logger,
		sem:     semaphore.NewWeighted(int64(workers)),
		workers: workers,
	}
}

func (p *Pool) Workers() int {
	return p.workers
}

// Submit hands fn to the pool and returns immediately. The returned future
// resolves with fn's result, with ctx.Err() if no worker became free before
// ctx was done, or with ErrPoolClosed. Once fn has started it runs to
// completion: it receives ctx's values but not its cancellation.
func Submit[T any](ctx context.Context, p *Pool, fn func(context.Context) (T, error)) *Future[T] {
	f := newFuture[T]()

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		var zero T
		f.resolve(zero, ErrPoolClosed)
		return f
	}
	p.wg.Add(1)
	p.mu.RUnlock()

	go func() {
		defer p.wg.Done()

		var zero T
		if err := p.sem.Acquire(ctx, 1); err != nil {
			f.resolve(zero, fmt.Errorf("acquire worker: %w", err))
			return
		}
		defer p.sem.Release(1)

		defer func() {
			if r := recover(); r != nil {
				p.logs.Errorw("worker job panicked", "panic", r)
				f.resolve(zero, fmt.Errorf("%w: %v", ErrJobPanicked, r))
			}
		}()

		v, err := fn(context.WithoutCancel(ctx))
		f.resolve(v, err)
	}()

	return f
}

// Close rejects new jobs and waits for the ones already submitted.
func (p *Pool) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	p.wg.Wait()
}
