package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/itemforge/internal/logger"
	"github.com/osse101/itemforge/internal/worker"
)

// Scheduler enqueues jobs on a worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule enqueues job every interval until Stop is called or ctx is done.
// With runNow set the job is also enqueued immediately.
func (s *Scheduler) Schedule(ctx context.Context, interval time.Duration, job worker.Job, runNow bool) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		if runNow {
			s.enqueue(ctx, job)
		}
		for {
			select {
			case <-ticker.C:
				s.enqueue(ctx, job)
			case <-s.quit:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// enqueue drops the tick when the pool is saturated; the next tick retries
func (s *Scheduler) enqueue(ctx context.Context, job worker.Job) {
	if !s.workerPool.Enqueue(job) {
		logger.FromContext(ctx).Warn(worker.LogMsgJobQueueFull, "job", fmt.Sprintf("%T", job))
	}
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
