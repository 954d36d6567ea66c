package worker

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/itemforge/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to Job
type JobFunc func(ctx context.Context) error

// Process calls f(ctx)
func (f JobFunc) Process(ctx context.Context) error { return f(ctx) }

// Pool runs queued jobs on a fixed set of goroutines. Jobs receive the
// context passed to Start, so cancelling it reaches in-flight jobs.
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
	stopOnce sync.Once
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	return &Pool{
		workers:  max(workers, 1),
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
	}
}

// Start starts the workers
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(logger.WithNewRequestID(ctx), job)
		case <-p.quit:
			return
		case <-ctx.Done():
			return
		}
	}
}

// run processes one job; a panicking job is logged and does not kill the worker
func (p *Pool) run(ctx context.Context, job Job) {
	log := logger.FromContext(ctx)
	defer func() {
		if r := recover(); r != nil {
			log.Error(LogMsgWorkerJobPanic, "job", fmt.Sprintf("%T", job), "panic", r)
		}
	}()
	if err := job.Process(ctx); err != nil {
		log.Error(LogMsgWorkerJobFailed, "job", fmt.Sprintf("%T", job), "error", err)
	}
}

// Enqueue adds a job without blocking. It reports false when the queue is full.
func (p *Pool) Enqueue(job Job) bool {
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// Stop stops the workers and waits for in-flight jobs to finish
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.quit) })
	p.wg.Wait()
}
