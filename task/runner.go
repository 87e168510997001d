package task

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// PoolRunner is an engine.TaskRunner that executes work callbacks on
// goroutines bounded by a semaphore and queues completions for the VM
// thread to pump.
type PoolRunner struct {
	sem         *semaphore.Weighted
	completions chan func()
	ctx         context.Context
	cancel      context.CancelFunc
	closeOnce   sync.Once
}

// NewPoolRunner builds a runner allowing at most maxWorkers concurrent work
// callbacks and buffering up to queueDepth completions.
func NewPoolRunner(maxWorkers int64, queueDepth int) *PoolRunner {
	ctx, cancel := context.WithCancel(context.Background())
	return &PoolRunner{
		sem:         semaphore.NewWeighted(maxWorkers),
		completions: make(chan func(), queueDepth),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Post schedules work on a worker goroutine. The done callback is queued in
// work completion order and runs when the VM thread pumps completions.
func (r *PoolRunner) Post(work func(), done func()) {
	go func() {
		if err := r.sem.Acquire(r.ctx, 1); err != nil {
			// Runner closed before the work started; completion is
			// intentionally dropped.
			return
		}
		work()
		r.sem.Release(1)

		select {
		case r.completions <- done:
		case <-r.ctx.Done():
		}
	}()
}

// Pump runs every queued completion without blocking and reports how many
// ran. Must be called on the VM thread.
func (r *PoolRunner) Pump() int {
	n := 0
	for {
		select {
		case done := <-r.completions:
			done()
			n++
		default:
			return n
		}
	}
}

// PumpOne blocks for a single completion and runs it. Returns false once
// the runner is closed. Must be called on the VM thread.
func (r *PoolRunner) PumpOne() bool {
	select {
	case done := <-r.completions:
		done()
		return true
	case <-r.ctx.Done():
		return false
	}
}

// Close stops accepting completions. Outstanding work may still run, but
// its completions no longer reach the VM thread.
func (r *PoolRunner) Close() {
	r.closeOnce.Do(r.cancel)
}
