// Package jobs provides scheduled background tasks, implemented with
// github.com/robfig/cron/v3. The only job today is the dispatch review
// sweep; JobManager keeps the start/stop plumbing in one place so further
// jobs slot in without touching main.
package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dispatchReviewJob *DispatchReviewJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	dispatchReadyHandler queries.ListDispatchReadyOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dispatchReviewJob: NewDispatchReviewJob(dispatchReadyHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatchReviewJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispatch review job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dispatchReviewJob.Stop()
}
