package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SettlementJob manages the scheduled weekly settlement pass.
// Runs daily in the early morning; which agencies actually settle on a
// given day is decided by each agency's configured settlement weekday.
type SettlementJob struct {
	handler commands.ProcessSettlementsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSettlementJob creates a new job for processing agency settlements.
func NewSettlementJob(handler commands.ProcessSettlementsCommandHandler, logger *slog.Logger) *SettlementJob {
	return &SettlementJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "settlement_job"),
	}
}

// Start begins the settlement job, running daily at 02:00.
func (j *SettlementJob) Start() error {
	_, err := j.cron.AddFunc("0 0 2 * * *", func() {
		ctx := context.Background()
		cmd := commands.NewProcessSettlementsCommand()

		settlements, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Settlement job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Settlement job completed", "settlements", len(settlements))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Settlement job started (running daily at 02:00)")
	return nil
}

// Stop stops the settlement job.
func (j *SettlementJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Settlement job stopped")
}
