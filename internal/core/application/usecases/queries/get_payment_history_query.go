package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/guard"
)

var ErrGetPaymentHistoryQueryIsNotConstructed = errors.New(
	"GetPaymentHistoryQuery must be created via NewGetPaymentHistoryQuery constructor",
)

// GetPaymentHistoryQuery lists a carrier's completed route sheets with the
// amount earned on each, newest-first is left to the repository's stored
// order.
type GetPaymentHistoryQuery struct {
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPaymentHistoryQuery creates a query for a carrier's payment history.
func NewGetPaymentHistoryQuery(carrierID kernel.UUID) (GetPaymentHistoryQuery, error) {
	if err := carrierID.Validate(); err != nil {
		return GetPaymentHistoryQuery{}, err
	}
	return GetPaymentHistoryQuery{
		carrierID: carrierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentHistoryQueryIsNotConstructed)
}

// CarrierID returns the carrier whose history is requested.
func (q GetPaymentHistoryQuery) CarrierID() kernel.UUID {
	return q.carrierID
}

// PaymentRecord is one completed route sheet priced against the carrier's
// pay table.
type PaymentRecord struct {
	RouteSheetCode string
	Destination    string
	CompletedAt    *time.Time
	Orders         int
	Lines          []services.PaymentLine
	Bonus          float64
	Amount         float64
}

// GetPaymentHistoryQueryResponse carries the per-sheet records and their
// sum. The sum is accumulated from the records, so it agrees with the
// breakdown by construction.
type GetPaymentHistoryQueryResponse struct {
	CarrierID kernel.UUID
	Records   []PaymentRecord
	Total     float64
}
