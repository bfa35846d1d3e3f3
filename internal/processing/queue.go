package processing

import (
	"context"
	"sync"

	"github.com/streamhive/streamhive/internal/models"
	"github.com/streamhive/streamhive/pkg/logger"
)

// Queue serializes transcode jobs: strict FIFO, at most one job in flight.
// A single drain goroutine owns execution; Enqueue never blocks and never
// reports job outcomes back to the caller.
type Queue struct {
	mu       sync.Mutex
	cond     *sync.Cond
	jobs     []*models.ProcessingJob
	draining bool
	closed   bool
	started  bool
	done     chan struct{}

	processor Processor
	logger    logger.Logger
}

func NewQueue(processor Processor, logger logger.Logger) *Queue {
	q := &Queue{
		processor: processor,
		logger:    logger,
		done:      make(chan struct{}),
	}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Start launches the drain goroutine. Jobs enqueued before Start are kept
// and drained once it runs.
func (q *Queue) Start(ctx context.Context) {
	q.mu.Lock()
	if q.started || q.closed {
		q.mu.Unlock()
		return
	}
	q.started = true
	q.mu.Unlock()
	go q.run(ctx)
}

// Enqueue appends a job and wakes the drain goroutine. No dedup, no
// capacity bound, no waiting.
func (q *Queue) Enqueue(job *models.ProcessingJob) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		q.logger.Warnf("queue stopped, dropping job for video %s", job.VideoID)
		return
	}
	q.jobs = append(q.jobs, job)
	size := len(q.jobs)
	q.mu.Unlock()
	q.cond.Signal()
	q.logger.Infof("enqueued video %s for processing, queue size: %d", job.VideoID, size)
}

// Stop shuts the queue down. The in-flight job, if any, runs to its
// terminal state; jobs not yet started are dropped.
func (q *Queue) Stop() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	dropped := len(q.jobs)
	started := q.started
	q.mu.Unlock()
	q.cond.Broadcast()
	if dropped > 0 {
		q.logger.Warnf("queue stopped with %d pending jobs dropped", dropped)
	}
	if started {
		<-q.done
	}
}

// Size returns the number of jobs not yet started.
func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.jobs)
}

// IsDraining reports whether a job is currently being executed.
func (q *Queue) IsDraining() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.draining
}

func (q *Queue) run(ctx context.Context) {
	defer close(q.done)
	for {
		q.mu.Lock()
		for len(q.jobs) == 0 && !q.closed {
			q.draining = false
			q.cond.Wait()
		}
		if q.closed {
			q.draining = false
			q.mu.Unlock()
			return
		}
		job := q.jobs[0]
		q.jobs = q.jobs[1:]
		q.draining = true
		q.mu.Unlock()

		q.safeProcess(ctx, job)
	}
}

// safeProcess isolates one job's failure so a bad job can never stop the
// drain loop.
func (q *Queue) safeProcess(ctx context.Context, job *models.ProcessingJob) {
	defer func() {
		if r := recover(); r != nil {
			q.logger.Errorf("panic while processing video %s: %v", job.VideoID, r)
		}
	}()
	if err := q.processor.Process(ctx, job); err != nil {
		q.logger.Errorf("failed to process video %s: %v", job.VideoID, err)
	}
}
