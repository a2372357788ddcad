package jobs

import (
	"library-circulation/internal/config"
	"library-circulation/internal/logger"
	"library-circulation/internal/service"
)

// JobRunner coordinates all scheduled jobs. Jobs only read library
// state; nothing here mutates books or borrowers.
type JobRunner struct {
	library *service.Library
	config  *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(library *service.Library, cfg *config.Config) *JobRunner {
	return &JobRunner{
		library: library,
		config:  cfg,
	}
}

// Config returns the runner's configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllJobs runs every job once (for manual execution)
func (jr *JobRunner) RunAllJobs() {
	jr.CirculationReport()
	jr.FineSummary()
}
