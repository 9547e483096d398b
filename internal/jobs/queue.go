// Package jobs runs fire-and-forget background work on a small worker
// pool. The directory provider uses it to recompute expensive listing
// aggregates off the interactive call path.
package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/openpvr/pvrfs/internal/log"
)

// Job is a deferred unit of work. Once submitted it runs to completion;
// there is no cancellation and no result beyond the job's side effects.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Queue dispatches submitted jobs to a fixed set of workers.
type Queue struct {
	mu     sync.Mutex
	jobs   chan Job
	closed bool
	wg     sync.WaitGroup
}

// NewQueue starts a queue with the given worker count and backlog size.
func NewQueue(workers, backlog int) *Queue {
	if workers <= 0 {
		workers = 1
	}
	if backlog <= 0 {
		backlog = 16
	}
	q := &Queue{jobs: make(chan Job, backlog)}
	q.wg.Add(workers)
	for range workers {
		go q.worker()
	}
	return q
}

// Submit enqueues a job. Submission never blocks; when the backlog is full
// or the queue is closed the job is dropped with a warning, matching the
// best-effort nature of the deferred work.
func (q *Queue) Submit(job Job) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		logger := log.WithComponent("jobs")
		logger.Warn().Str("job", job.Name()).Msg("queue closed, dropping job")
		return
	}
	select {
	case q.jobs <- job:
	default:
		logger := log.WithComponent("jobs")
		logger.Warn().Str("job", job.Name()).Msg("backlog full, dropping job")
	}
}

// Close stops accepting jobs and waits for queued work to finish.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()

	q.wg.Wait()
}

func (q *Queue) worker() {
	defer q.wg.Done()
	for job := range q.jobs {
		q.run(job)
	}
}

func (q *Queue) run(job Job) {
	id := uuid.NewString()
	ctx := log.ContextWithJobID(context.Background(), id)
	logger := log.WithComponentFromContext(ctx, "jobs")

	start := time.Now()
	logger.Debug().Str("job", job.Name()).Msg("job started")
	if err := job.Run(ctx); err != nil {
		logger.Error().
			Err(err).
			Str("job", job.Name()).
			Dur("elapsed", time.Since(start)).
			Msg("job failed")
		return
	}
	logger.Debug().
		Str("job", job.Name()).
		Dur("elapsed", time.Since(start)).
		Msg("job finished")
}
