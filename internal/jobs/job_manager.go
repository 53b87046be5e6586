package jobs

import (
	"fmt"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	settlementJob   *SettlementJob
	overdueSweepJob *OverdueSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	processSettlementsHandler commands.ProcessSettlementsCommandHandler,
	markOverdueHandler commands.MarkOverdueSettlementsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		settlementJob:   NewSettlementJob(processSettlementsHandler, logger),
		overdueSweepJob: NewOverdueSweepJob(markOverdueHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.settlementJob.Start(); err != nil {
		return fmt.Errorf("failed to start settlement job: %w", err)
	}

	if err := jm.overdueSweepJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.settlementJob.Stop()
		return fmt.Errorf("failed to start overdue sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.settlementJob.Stop()
	jm.overdueSweepJob.Stop()
}
