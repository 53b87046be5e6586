package commands

import (
	"context"

	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// BuildRoutesCommandHandler synthesizes carrier routes from the pending
// orders in the carrier's zones. Routes are persisted but the batched orders
// are not touched: their status only moves once pickup is confirmed, unlike
// route-sheet dispatch.
type BuildRoutesCommandHandler struct {
	uowFactory RoutingUoWFactory
	clock      ports.Clock
	builder    services.RouteBuilder
}

// NewBuildRoutesCommandHandler creates a handler for route building.
func NewBuildRoutesCommandHandler(uowFactory RoutingUoWFactory, clock ports.Clock) BuildRoutesCommandHandler {
	return BuildRoutesCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		builder:    services.NewRouteBuilder(),
	}
}

// Handle builds and persists the routes, returning the newly created ones.
func (h BuildRoutesCommandHandler) Handle(ctx context.Context, cmd BuildRoutesCommand) ([]*route.Route, error) {
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

	c, err := uow.CarrierRepository().Get(ctx, cmd.CarrierID())
	if err != nil {
		return nil, err
	}
	orders, err := uow.OrderRepository().GetAllPendingDispatch(ctx)
	if err != nil {
		return nil, err
	}
	agencies, err := uow.AgencyRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	count, err := uow.RouteRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	routes, err := h.builder.Build(c, orders, agencies, count, h.clock.Now())
	if err != nil {
		return nil, err
	}

	for _, r := range routes {
		if err = uow.RouteRepository().Add(ctx, r); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return routes, nil
}
