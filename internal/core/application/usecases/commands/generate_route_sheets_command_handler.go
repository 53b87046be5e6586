package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/routesheet"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// GenerateRouteSheetsCommandHandler batches an agency's pending orders into
// route sheets and persists both the new sheets and the orders dispatched
// onto them. Calling it again without new orders creates nothing, because
// active sheets block their destination zones.
type GenerateRouteSheetsCommandHandler struct {
	uowFactory DispatchUoWFactory
	clock      ports.Clock
	planner    services.RouteSheetPlanner
}

// NewGenerateRouteSheetsCommandHandler creates a handler for sheet generation.
func NewGenerateRouteSheetsCommandHandler(uowFactory DispatchUoWFactory, clock ports.Clock) GenerateRouteSheetsCommandHandler {
	return GenerateRouteSheetsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		planner:    services.NewRouteSheetPlanner(),
	}
}

// Handle plans and persists the sheets, returning only the newly created
// ones; callers must not read the result as total sheet state.
func (h GenerateRouteSheetsCommandHandler) Handle(ctx context.Context, cmd GenerateRouteSheetsCommand) ([]*routesheet.RouteSheet, error) {
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
	orders, err := uow.OrderRepository().GetAllPendingDispatch(ctx)
	if err != nil {
		return nil, err
	}
	sheets, err := uow.RouteSheetRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	carriers, err := uow.CarrierRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	created, err := h.planner.Plan(ag, orders, sheets, carriers, h.clock.Now())
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]*order.Order, len(orders))
	for _, o := range orders {
		byID[o.ID()] = o
	}

	for _, sheet := range created {
		if err = uow.RouteSheetRepository().Add(ctx, sheet); err != nil {
			return nil, err
		}
		if sheet.Carrier() == nil {
			continue
		}
		for _, id := range sheet.Orders() {
			if err = uow.OrderRepository().Update(ctx, byID[id]); err != nil {
				return nil, err
			}
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return created, nil
}
