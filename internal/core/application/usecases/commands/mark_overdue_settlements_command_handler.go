package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// MarkOverdueSettlementsCommandHandler sweeps pending settlements and flips
// the ones past their due date to overdue.
type MarkOverdueSettlementsCommandHandler struct {
	uowFactory SettlementSweepUoWFactory
	clock      ports.Clock
}

// NewMarkOverdueSettlementsCommandHandler creates a handler for the overdue sweep.
func NewMarkOverdueSettlementsCommandHandler(uowFactory SettlementSweepUoWFactory, clock ports.Clock) MarkOverdueSettlementsCommandHandler {
	return MarkOverdueSettlementsCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle runs the sweep and returns how many settlements were flipped.
func (h MarkOverdueSettlementsCommandHandler) Handle(ctx context.Context, cmd MarkOverdueSettlementsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	settlementRepo := uow.SettlementRepository()
	pending, err := settlementRepo.GetAllPending(ctx)
	if err != nil {
		return 0, err
	}

	now := h.clock.Now()
	flipped := 0
	for _, s := range pending {
		if !s.MarkOverdueIfDue(now) {
			continue
		}
		if err = settlementRepo.Update(ctx, s); err != nil {
			return 0, err
		}
		flipped++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return flipped, nil
}
