package queries

import (
	"context"

	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// GetPaymentHistoryQueryHandler builds one payment record per completed
// route sheet, pricing each sheet's orders separately.
type GetPaymentHistoryQueryHandler struct {
	carrierRepo    ports.CarrierRepository
	orderRepo      ports.OrderRepository
	routeSheetRepo ports.RouteSheetRepository
	calculator     services.PaymentCalculator
}

// NewGetPaymentHistoryQueryHandler creates a handler for payment history queries.
func NewGetPaymentHistoryQueryHandler(
	carrierRepo ports.CarrierRepository,
	orderRepo ports.OrderRepository,
	routeSheetRepo ports.RouteSheetRepository,
) GetPaymentHistoryQueryHandler {
	return GetPaymentHistoryQueryHandler{
		carrierRepo:    carrierRepo,
		orderRepo:      orderRepo,
		routeSheetRepo: routeSheetRepo,
		calculator:     services.NewPaymentCalculator(),
	}
}

// Handle prices every completed route sheet of the carrier.
func (h GetPaymentHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentHistoryQuery,
) (GetPaymentHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPaymentHistoryQueryResponse{}, err
	}

	c, err := h.carrierRepo.Get(ctx, query.CarrierID())
	if err != nil {
		return GetPaymentHistoryQueryResponse{}, err
	}

	sheets, err := h.routeSheetRepo.GetAllCompletedByCarrier(ctx, c.ID())
	if err != nil {
		return GetPaymentHistoryQueryResponse{}, err
	}

	response := GetPaymentHistoryQueryResponse{
		CarrierID: c.ID(),
		Records:   make([]PaymentRecord, 0, len(sheets)),
	}
	for _, sheet := range sheets {
		orders, ordersErr := h.orderRepo.GetAllByIDs(ctx, sheet.Orders())
		if ordersErr != nil {
			return GetPaymentHistoryQueryResponse{}, ordersErr
		}
		summary := h.calculator.Summarize(c, orders)
		response.Records = append(response.Records, PaymentRecord{
			RouteSheetCode: sheet.Code(),
			Destination:    sheet.Destination().String(),
			CompletedAt:    sheet.CompletedAt(),
			Orders:         len(orders),
			Lines:          summary.Lines,
			Bonus:          summary.Bonus,
			Amount:         summary.Total,
		})
		response.Total += summary.Total
	}
	return response, nil
}
