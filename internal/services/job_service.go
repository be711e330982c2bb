package services

import (
	"github.com/sjperalta/hotel-analytics-api/internal/jobs"
)

// JobStatus is the background processing snapshot served to admins
type JobStatus struct {
	jobs.WorkerStats
	SucceededJobs int64       `json:"succeeded_jobs"`
	Monitor       *MonitorRun `json:"overbooking_monitor"`
}

// JobService reports on the worker that archives exports and runs the overbooking check
type JobService struct {
	worker  *jobs.Worker
	monitor *MonitorService
}

func NewJobService(worker *jobs.Worker, monitor *MonitorService) *JobService {
	return &JobService{worker: worker, monitor: monitor}
}

// Status returns the worker counters and the last overbooking run, if any
func (s *JobService) Status() JobStatus {
	stats := s.worker.GetStats()
	return JobStatus{
		WorkerStats:   stats,
		SucceededJobs: stats.CompletedJobs - stats.FailedJobs,
		Monitor:       s.monitor.LastRun(),
	}
}
