package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OverdueSweepJob manages the scheduled sweep of unpaid settlements.
// Runs daily after the settlement pass and flips every pending settlement
// past its due date to overdue.
type OverdueSweepJob struct {
	handler commands.MarkOverdueSettlementsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueSweepJob creates a new job for marking overdue settlements.
func NewOverdueSweepJob(handler commands.MarkOverdueSettlementsCommandHandler, logger *slog.Logger) *OverdueSweepJob {
	return &OverdueSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_sweep_job"),
	}
}

// Start begins the overdue sweep job, running daily at 03:00.
func (j *OverdueSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 0 3 * * *", func() {
		ctx := context.Background()
		cmd := commands.NewMarkOverdueSettlementsCommand()

		marked, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue sweep job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Overdue sweep completed", "marked", marked)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue sweep job started (running daily at 03:00)")
	return nil
}

// Stop stops the overdue sweep job.
func (j *OverdueSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue sweep job stopped")
}
