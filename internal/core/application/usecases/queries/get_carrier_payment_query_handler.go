package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// GetCarrierPaymentQueryHandler loads the carrier's completed route sheets,
// gathers their orders and prices them against the carrier's pay table.
// The math lives in the domain, so this handler reads through the
// repositories instead of raw SQL.
type GetCarrierPaymentQueryHandler struct {
	carrierRepo    ports.CarrierRepository
	orderRepo      ports.OrderRepository
	routeSheetRepo ports.RouteSheetRepository
	calculator     services.PaymentCalculator
}

// NewGetCarrierPaymentQueryHandler creates a handler for carrier payment queries.
func NewGetCarrierPaymentQueryHandler(
	carrierRepo ports.CarrierRepository,
	orderRepo ports.OrderRepository,
	routeSheetRepo ports.RouteSheetRepository,
) GetCarrierPaymentQueryHandler {
	return GetCarrierPaymentQueryHandler{
		carrierRepo:    carrierRepo,
		orderRepo:      orderRepo,
		routeSheetRepo: routeSheetRepo,
		calculator:     services.NewPaymentCalculator(),
	}
}

// Handle computes the carrier's payment over all completed route sheets.
func (h GetCarrierPaymentQueryHandler) Handle(
	ctx context.Context,
	query GetCarrierPaymentQuery,
) (GetCarrierPaymentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCarrierPaymentQueryResponse{}, err
	}

	c, err := h.carrierRepo.Get(ctx, query.CarrierID())
	if err != nil {
		return GetCarrierPaymentQueryResponse{}, err
	}

	sheets, err := h.routeSheetRepo.GetAllCompletedByCarrier(ctx, c.ID())
	if err != nil {
		return GetCarrierPaymentQueryResponse{}, err
	}

	var orderIDs []kernel.UUID
	for _, sheet := range sheets {
		orderIDs = append(orderIDs, sheet.Orders()...)
	}

	summary := services.PaymentSummary{Lines: []services.PaymentLine{}}
	if len(orderIDs) > 0 {
		orders, ordersErr := h.orderRepo.GetAllByIDs(ctx, orderIDs)
		if ordersErr != nil {
			return GetCarrierPaymentQueryResponse{}, ordersErr
		}
		summary = h.calculator.Summarize(c, orders)
	}

	return GetCarrierPaymentQueryResponse{
		CarrierID:   c.ID(),
		CarrierName: c.Name(),
		Lines:       summary.Lines,
		Bonus:       summary.Bonus,
		Total:       summary.Total,
	}, nil
}
