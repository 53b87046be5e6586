package commands

import (
	"context"

	"logistics/internal/core/domain/model/settlement"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// ProcessSettlementsCommandHandler runs the weekly settlement sweep over all
// agencies. An agency is skipped when it was already settled during the
// current calendar week, anchored on Sunday; agencies that do get settled
// have their last-settlement timestamp stamped.
type ProcessSettlementsCommandHandler struct {
	uowFactory SettlementUoWFactory
	clock      ports.Clock
	calculator services.SettlementCalculator
}

// NewProcessSettlementsCommandHandler creates a handler for the weekly sweep.
func NewProcessSettlementsCommandHandler(uowFactory SettlementUoWFactory, clock ports.Clock) ProcessSettlementsCommandHandler {
	return ProcessSettlementsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		calculator: services.NewSettlementCalculator(),
	}
}

// Handle settles every due agency and returns the generated settlements.
func (h ProcessSettlementsCommandHandler) Handle(ctx context.Context, cmd ProcessSettlementsCommand) ([]*settlement.Settlement, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	agencies, err := uow.AgencyRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	var generated []*settlement.Settlement
	for _, ag := range agencies {
		if h.calculator.SettledThisWeek(ag, now) {
			continue
		}

		orders, err := uow.OrderRepository().GetAllByAgency(ctx, ag.ID())
		if err != nil {
			return nil, err
		}
		count, err := uow.SettlementRepository().CountByAgency(ctx, ag.ID())
		if err != nil {
			return nil, err
		}

		s, err := h.calculator.Generate(ag, orders, count+1, now)
		if err != nil {
			return nil, err
		}
		if s == nil {
			continue
		}

		if err = uow.SettlementRepository().Add(ctx, s); err != nil {
			return nil, err
		}
		ag.MarkSettled(now)
		if err = uow.AgencyRepository().Update(ctx, ag); err != nil {
			return nil, err
		}
		generated = append(generated, s)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return generated, nil
}
