package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/guard"
)

var ErrGetCarrierPaymentQueryIsNotConstructed = errors.New(
	"GetCarrierPaymentQuery must be created via NewGetCarrierPaymentQuery constructor",
)

// GetCarrierPaymentQuery computes what a carrier is owed for the orders on
// its completed route sheets, broken down by weight scale.
type GetCarrierPaymentQuery struct {
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCarrierPaymentQuery creates a query for a carrier's payment total.
func NewGetCarrierPaymentQuery(carrierID kernel.UUID) (GetCarrierPaymentQuery, error) {
	if err := carrierID.Validate(); err != nil {
		return GetCarrierPaymentQuery{}, err
	}
	return GetCarrierPaymentQuery{
		carrierID: carrierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCarrierPaymentQuery) Validate() error {
	return q.guard.Validate(ErrGetCarrierPaymentQueryIsNotConstructed)
}

// CarrierID returns the carrier whose payment is requested.
func (q GetCarrierPaymentQuery) CarrierID() kernel.UUID {
	return q.carrierID
}

// GetCarrierPaymentQueryResponse carries the payment breakdown and total.
// Lines and total come from the same allocation pass, so they always agree.
type GetCarrierPaymentQueryResponse struct {
	CarrierID   kernel.UUID
	CarrierName string
	Lines       []services.PaymentLine
	Bonus       float64
	Total       float64
}
