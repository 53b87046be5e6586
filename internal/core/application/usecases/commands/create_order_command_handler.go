package commands

import (
	"context"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation:
// pricing against the tariff table, the thermoseal cap policy and matching
// the nearest agency for the recipient's place.
type CreateOrderCommandHandler struct {
	uowFactory PricingUoWFactory
	clock      ports.Clock
	calculator services.CostCalculator
	matcher    services.ZoneMatcher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory PricingUoWFactory, clock ports.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		calculator: services.NewCostCalculator(),
		matcher:    services.NewZoneMatcher(),
	}
}

// Handle processes the order creation command. The thermoseal charge may not
// exceed 10% of the resolved freight; no matching agency is not an error,
// the order simply stays unassigned.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	table, err := uow.TariffRepository().GetTable(ctx)
	if err != nil {
		return err
	}

	costs, err := h.calculator.Compute(table,
		cmd.Package().Weight, cmd.Recipient().Province, cmd.Package().DeclaredValue, cmd.Thermoseal())
	if err != nil {
		return err
	}
	if cmd.Thermoseal() > costs.Freight()*0.1 {
		return errs.NewValueIsOutOfRangeError("thermoseal", cmd.Thermoseal(), 0, costs.Freight()*0.1)
	}

	sender, err := toParty(cmd.Sender())
	if err != nil {
		return err
	}
	recipient, err := toParty(cmd.Recipient())
	if err != nil {
		return err
	}
	pack, err := order.NewPackage(cmd.Package().Weight, cmd.Package().Quantity,
		cmd.Package().DeclaredValue, cmd.Package().ServiceType, cmd.Package().Description)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), trackingCodeFor(cmd.OrderID()),
		sender, recipient, pack, costs, h.clock.Now())
	if err != nil {
		return err
	}

	agencies, err := uow.AgencyRepository().GetAll(ctx)
	if err != nil {
		return err
	}
	if a := h.matcher.FindAgency(recipient.Place(), agencies); a != nil {
		if err = newOrder.AssignAgency(a.ID()); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func toParty(input PartyInput) (order.Party, error) {
	place, err := kernel.NewPlace(input.City, input.Province)
	if err != nil {
		return order.Party{}, err
	}
	return order.NewParty(input.Name, input.Document, input.Phone, input.Address, place)
}

// trackingCodeFor derives the public tracking code from the order ID.
func trackingCodeFor(id kernel.UUID) string {
	return "ENV-" + strings.ToUpper(strings.SplitN(id.String(), "-", 2)[0])
}
