package jobs

import (
	"fmt"
)

// Job is a scheduled background task.
type Job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []Job
	started []Job
}

// NewJobManager creates a manager for jobs. Nil jobs are skipped so that a
// disabled job can be passed as is.
func NewJobManager(jobs ...Job) *JobManager {
	jm := &JobManager{}
	for _, j := range jobs {
		if j == nil {
			continue
		}
		jm.jobs = append(jm.jobs, j)
	}
	return jm
}

// StartAll starts all scheduled jobs. When one fails to start, the jobs
// already started are stopped again.
func (jm *JobManager) StartAll() error {
	for _, j := range jm.jobs {
		if err := j.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %T: %w", j, err)
		}
		jm.started = append(jm.started, j)
	}
	return nil
}

// StopAll stops the started jobs in reverse order.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}
