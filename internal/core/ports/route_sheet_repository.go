package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/routesheet"
)

// RouteSheetRepository defines the persistence contract for route sheets.
type RouteSheetRepository interface {
	// Add persists a new route sheet to storage.
	Add(ctx context.Context, aggregate *routesheet.RouteSheet) error

	// Update persists changes to an existing route sheet.
	Update(ctx context.Context, aggregate *routesheet.RouteSheet) error

	// Get retrieves a route sheet by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*routesheet.RouteSheet, error)

	// GetAll retrieves every route sheet in stored order. The planner needs
	// them all for its active-sheet guard and sequential codes.
	GetAll(ctx context.Context) ([]*routesheet.RouteSheet, error)

	// GetAllCompletedByCarrier retrieves the carrier's completed sheets,
	// used for payment-history reporting.
	GetAllCompletedByCarrier(ctx context.Context, carrierID kernel.UUID) ([]*routesheet.RouteSheet, error)
}
