package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByTrackingCode retrieves an order by its public tracking code.
	GetByTrackingCode(ctx context.Context, trackingCode string) (*order.Order, error)

	// GetAllPendingDispatch retrieves orders still pending pickup with no
	// carrier and no route assigned. Used by route-sheet and route planning.
	GetAllPendingDispatch(ctx context.Context) ([]*order.Order, error)

	// GetAllByAgency retrieves every order assigned to the agency.
	GetAllByAgency(ctx context.Context, agencyID kernel.UUID) ([]*order.Order, error)

	// GetAllByIDs retrieves the orders with the given identifiers.
	// Missing identifiers are skipped, not reported.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)
}
