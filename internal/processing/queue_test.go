package processing

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/streamhive/streamhive/internal/models"
)

type nopLogger struct{}

func (nopLogger) InitLogger()                                  {}
func (nopLogger) Debug(args ...interface{})                    {}
func (nopLogger) Debugf(template string, args ...interface{})  {}
func (nopLogger) Info(args ...interface{})                     {}
func (nopLogger) Infof(template string, args ...interface{})   {}
func (nopLogger) Warn(args ...interface{})                     {}
func (nopLogger) Warnf(template string, args ...interface{})   {}
func (nopLogger) Error(args ...interface{})                    {}
func (nopLogger) Errorf(template string, args ...interface{})  {}
func (nopLogger) Panic(args ...interface{})                    {}
func (nopLogger) Panicf(template string, args ...interface{})  {}
func (nopLogger) Fatal(args ...interface{})                    {}
func (nopLogger) Fatalf(template string, args ...interface{})  {}

// recordingProcessor tracks the order jobs were handed to it and how many
// were in flight at once.
type recordingProcessor struct {
	mu        sync.Mutex
	order     []uuid.UUID
	inFlight  int
	maxSeen   int
	processed chan uuid.UUID
	fn        func(job *models.ProcessingJob) error
}

func newRecordingProcessor(buffer int) *recordingProcessor {
	return &recordingProcessor{processed: make(chan uuid.UUID, buffer)}
}

func (p *recordingProcessor) Process(ctx context.Context, job *models.ProcessingJob) error {
	p.mu.Lock()
	p.inFlight++
	if p.inFlight > p.maxSeen {
		p.maxSeen = p.inFlight
	}
	p.order = append(p.order, job.VideoID)
	p.mu.Unlock()

	// Record the job even if fn panics, so tests can still wait on it;
	// the panic itself propagates to the queue unchanged.
	defer func() {
		p.mu.Lock()
		p.inFlight--
		p.mu.Unlock()
		p.processed <- job.VideoID
	}()

	if p.fn != nil {
		return p.fn(job)
	}
	return nil
}

func waitForJobs(t *testing.T, p *recordingProcessor, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-p.processed:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for job %d of %d", i+1, n)
		}
	}
}

func TestQueueProcessesJobsInOrder(t *testing.T) {
	proc := newRecordingProcessor(10)
	q := NewQueue(proc, nopLogger{})

	jobs := []*models.ProcessingJob{
		{VideoID: uuid.New()},
		{VideoID: uuid.New()},
		{VideoID: uuid.New()},
	}
	for _, j := range jobs {
		q.Enqueue(j)
	}
	q.Start(context.Background())
	defer q.Stop()

	waitForJobs(t, proc, len(jobs))

	proc.mu.Lock()
	defer proc.mu.Unlock()
	if len(proc.order) != len(jobs) {
		t.Fatalf("processed %d jobs, want %d", len(proc.order), len(jobs))
	}
	for i, j := range jobs {
		if proc.order[i] != j.VideoID {
			t.Errorf("job %d processed as %s, want %s", i, proc.order[i], j.VideoID)
		}
	}
}

func TestQueueRunsOneJobAtATime(t *testing.T) {
	proc := newRecordingProcessor(10)
	proc.fn = func(job *models.ProcessingJob) error {
		time.Sleep(10 * time.Millisecond)
		return nil
	}
	q := NewQueue(proc, nopLogger{})
	q.Start(context.Background())
	defer q.Stop()

	for i := 0; i < 5; i++ {
		q.Enqueue(&models.ProcessingJob{VideoID: uuid.New()})
	}
	waitForJobs(t, proc, 5)

	proc.mu.Lock()
	defer proc.mu.Unlock()
	if proc.maxSeen != 1 {
		t.Errorf("max concurrent jobs = %d, want 1", proc.maxSeen)
	}
}

func TestQueueSurvivesFailingJobs(t *testing.T) {
	bad := uuid.New()
	good := uuid.New()

	proc := newRecordingProcessor(10)
	proc.fn = func(job *models.ProcessingJob) error {
		if job.VideoID == bad {
			panic("boom")
		}
		return nil
	}
	q := NewQueue(proc, nopLogger{})
	q.Start(context.Background())
	defer q.Stop()

	q.Enqueue(&models.ProcessingJob{VideoID: bad})
	q.Enqueue(&models.ProcessingJob{VideoID: good})
	waitForJobs(t, proc, 2)

	proc.mu.Lock()
	defer proc.mu.Unlock()
	if len(proc.order) != 2 || proc.order[1] != good {
		t.Errorf("job after a panicking one was not processed: order = %v", proc.order)
	}
}

func TestQueueEnqueueAfterStopIsDropped(t *testing.T) {
	proc := newRecordingProcessor(1)
	q := NewQueue(proc, nopLogger{})
	q.Start(context.Background())
	q.Stop()

	q.Enqueue(&models.ProcessingJob{VideoID: uuid.New()})
	if size := q.Size(); size != 0 {
		t.Errorf("queue size after enqueue on stopped queue = %d, want 0", size)
	}
}

func TestQueueStopWaitsForInFlightJob(t *testing.T) {
	release := make(chan struct{})
	finished := make(chan struct{})

	proc := newRecordingProcessor(1)
	proc.fn = func(job *models.ProcessingJob) error {
		<-release
		close(finished)
		return nil
	}
	q := NewQueue(proc, nopLogger{})
	q.Start(context.Background())
	q.Enqueue(&models.ProcessingJob{VideoID: uuid.New()})

	// Let the drain loop pick the job up before stopping.
	deadline := time.After(2 * time.Second)
	for !q.IsDraining() {
		select {
		case <-deadline:
			t.Fatal("job never started")
		case <-time.After(time.Millisecond):
		}
	}

	stopped := make(chan struct{})
	go func() {
		q.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("Stop returned while a job was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return after the in-flight job finished")
	}
	select {
	case <-finished:
	default:
		t.Error("in-flight job did not run to completion")
	}
}

func TestQueueSizeReflectsPendingJobs(t *testing.T) {
	proc := newRecordingProcessor(1)
	q := NewQueue(proc, nopLogger{})

	for i := 0; i < 3; i++ {
		q.Enqueue(&models.ProcessingJob{VideoID: uuid.New()})
	}
	if size := q.Size(); size != 3 {
		t.Errorf("queue size = %d, want 3", size)
	}
}
