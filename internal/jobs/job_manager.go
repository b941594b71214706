package jobs

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Config holds the schedules of all jobs.
type Config struct {
	DeadlineReminderSpec string
	DeadlineReminderDays int
	// Now is shared with the due-orders query; nil means time.Now.
	Now func() time.Time
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	deadlineReminderJob *DeadlineReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(cfg Config, dueOrders DueOrdersFinder, logger *zap.Logger) (*JobManager, error) {
	reminder, err := NewDeadlineReminderJob(dueOrders, cfg.DeadlineReminderSpec, cfg.DeadlineReminderDays, cfg.Now, logger)
	if err != nil {
		return nil, err
	}

	return &JobManager{deadlineReminderJob: reminder}, nil
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deadlineReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start deadline reminder job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deadlineReminderJob.Stop()
}
