package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sjperalta/hotel-analytics-api/internal/metrics"
	"github.com/sjperalta/hotel-analytics-api/pkg/logger"
)

// Job represents a background task
type Job func(ctx context.Context) error

// Worker runs queued report jobs and the periodic data-quality checks
type Worker struct {
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
	processors    sync.WaitGroup
	queue         chan namedJob
	queueMu       sync.RWMutex
	closed        bool
	maxConcurrent int
	stats         WorkerStats
	statsMu       sync.RWMutex
}

type namedJob struct {
	name string
	run  Job
}

// WorkerStats holds statistics about the worker.
// CompletedJobs counts every finished run; FailedJobs is the failing subset.
type WorkerStats struct {
	ActiveJobs    int   `json:"active_jobs"`
	CompletedJobs int64 `json:"completed_jobs"`
	FailedJobs    int64 `json:"failed_jobs"`
	QueueLength   int   `json:"queue_length"`
	MaxConcurrent int   `json:"max_concurrent"`
}

// NewWorker creates a worker with N concurrent processors
func NewWorker(numWorkers int) *Worker {
	if numWorkers < 1 {
		numWorkers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())

	w := &Worker{
		ctx:           ctx,
		cancel:        cancel,
		queue:         make(chan namedJob, 100),
		maxConcurrent: numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		w.processors.Add(1)
		go w.process(i)
	}

	return w
}

// Enqueue adds a job to the pool. When the queue is full or the worker is
// shutting down the job runs on the caller's goroutine.
func (w *Worker) Enqueue(name string, job Job) {
	nj := namedJob{name: name, run: job}

	w.queueMu.RLock()
	if w.closed {
		w.queueMu.RUnlock()
		logger.Warn("worker stopped, running job synchronously", "job", name)
		w.run("inline", nj)
		return
	}
	select {
	case w.queue <- nj:
		w.queueMu.RUnlock()
	default:
		w.queueMu.RUnlock()
		logger.Warn("worker queue full, running job synchronously", "job", name)
		w.run("inline", nj)
	}
}

// process runs queued jobs until the queue is closed and drained
func (w *Worker) process(workerID int) {
	defer w.processors.Done()
	source := fmt.Sprintf("worker-%d", workerID)
	for job := range w.queue {
		w.run(source, job)
	}
}

// ScheduleEvery runs a job at fixed intervals. The first run happens after the interval.
func (w *Worker) ScheduleEvery(name string, interval time.Duration, job Job) {
	w.schedule(namedJob{name: name, run: job}, interval, false)
}

// ScheduleEveryImmediate runs a job once at startup, then at fixed intervals
func (w *Worker) ScheduleEveryImmediate(name string, interval time.Duration, job Job) {
	w.schedule(namedJob{name: name, run: job}, interval, true)
}

func (w *Worker) schedule(job namedJob, interval time.Duration, immediate bool) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		if immediate {
			w.run("scheduler", job)
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.ctx.Done():
				return
			case <-ticker.C:
				w.run("scheduler", job)
			}
		}
	}()
}

// run executes one job, recovering panics and recording stats
func (w *Worker) run(source string, job namedJob) {
	w.trackJobStart()
	start := time.Now()
	result := "ok"

	defer func() {
		if r := recover(); r != nil {
			logger.Error("job panic", "job", job.name, "source", source, "panic", fmt.Sprint(r))
			result = "panic"
			w.trackJobFailure()
		}
		metrics.JobRunsTotal.WithLabelValues(job.name, result).Inc()
		w.trackJobEnd()
	}()

	if err := job.run(w.ctx); err != nil {
		logger.Error("job failed", "job", job.name, "source", source, "error", err)
		result = "error"
		w.trackJobFailure()
		return
	}
	logger.Info("job completed", "job", job.name, "source", source, "elapsed", time.Since(start))
}

// Shutdown stops accepting queued jobs, runs everything already queued, then
// stops the schedulers and waits for them. Safe to call more than once.
func (w *Worker) Shutdown() {
	w.queueMu.Lock()
	if !w.closed {
		w.closed = true
		close(w.queue)
	}
	w.queueMu.Unlock()

	w.processors.Wait()
	w.cancel()
	w.wg.Wait()
}

// Context returns the worker's context for checking cancellation
func (w *Worker) Context() context.Context {
	return w.ctx
}

// GetStats returns the current worker statistics
func (w *Worker) GetStats() WorkerStats {
	w.statsMu.RLock()
	defer w.statsMu.RUnlock()
	stats := w.stats
	stats.QueueLength = len(w.queue)
	stats.MaxConcurrent = w.maxConcurrent
	return stats
}

func (w *Worker) trackJobStart() {
	w.statsMu.Lock()
	defer w.statsMu.Unlock()
	w.stats.ActiveJobs++
}

func (w *Worker) trackJobEnd() {
	w.statsMu.Lock()
	defer w.statsMu.Unlock()
	w.stats.ActiveJobs--
	w.stats.CompletedJobs++
}

func (w *Worker) trackJobFailure() {
	w.statsMu.Lock()
	defer w.statsMu.Unlock()
	w.stats.FailedJobs++
}
