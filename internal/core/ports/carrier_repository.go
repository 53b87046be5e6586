package ports

import (
	"context"

	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"
)

// CarrierRepository defines the persistence contract for carrier aggregates.
type CarrierRepository interface {
	// Add persists a new carrier aggregate to storage.
	Add(ctx context.Context, aggregate *carrier.Carrier) error

	// Update persists changes to an existing carrier aggregate.
	Update(ctx context.Context, aggregate *carrier.Carrier) error

	// Get retrieves a carrier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error)

	// GetAll retrieves every carrier in stored order.
	GetAll(ctx context.Context) ([]*carrier.Carrier, error)
}
