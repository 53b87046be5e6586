package commands

import (
	"context"

	"logistics/internal/core/domain/model/settlement"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// GenerateSettlementCommandHandler settles one agency's trailing weekly
// window. An empty window is not an error: the handler returns nil and
// persists nothing.
type GenerateSettlementCommandHandler struct {
	uowFactory SettlementUoWFactory
	clock      ports.Clock
	calculator services.SettlementCalculator
}

// NewGenerateSettlementCommandHandler creates a handler for settlement generation.
func NewGenerateSettlementCommandHandler(uowFactory SettlementUoWFactory, clock ports.Clock) GenerateSettlementCommandHandler {
	return GenerateSettlementCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		calculator: services.NewSettlementCalculator(),
	}
}

// Handle generates and persists the settlement for the agency, or returns
// nil when no orders fall inside the window.
func (h GenerateSettlementCommandHandler) Handle(ctx context.Context, cmd GenerateSettlementCommand) (*settlement.Settlement, error) {
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

	ag, err := uow.AgencyRepository().Get(ctx, cmd.AgencyID())
	if err != nil {
		return nil, err
	}
	orders, err := uow.OrderRepository().GetAllByAgency(ctx, ag.ID())
	if err != nil {
		return nil, err
	}
	count, err := uow.SettlementRepository().CountByAgency(ctx, ag.ID())
	if err != nil {
		return nil, err
	}

	s, err := h.calculator.Generate(ag, orders, count+1, h.clock.Now())
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}

	if err = uow.SettlementRepository().Add(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return s, nil
}
