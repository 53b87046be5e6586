package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for route aggregates.
type RouteRepository interface {
	// Add persists a new route aggregate to storage.
	Add(ctx context.Context, aggregate *route.Route) error

	// Update persists changes to an existing route aggregate.
	Update(ctx context.Context, aggregate *route.Route) error

	// Get retrieves a route aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// GetAllByCarrier retrieves every route assigned to the carrier.
	GetAllByCarrier(ctx context.Context, carrierID kernel.UUID) ([]*route.Route, error)

	// Count returns the number of stored routes, driving sequential codes.
	Count(ctx context.Context) (int, error)
}
