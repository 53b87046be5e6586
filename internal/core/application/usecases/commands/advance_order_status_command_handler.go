package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// AdvanceOrderStatusCommandHandler moves an order through its lifecycle.
// The status machine lives on the aggregate; this handler only loads,
// transitions and persists.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

// NewAdvanceOrderStatusCommandHandler creates a handler for status transitions.
func NewAdvanceOrderStatusCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle processes the status transition, appending exactly one history
// entry on success. Illegal transitions surface the aggregate's error.
func (h AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Transition(cmd.Next(), h.clock.Now(), cmd.Location(), cmd.Description()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
