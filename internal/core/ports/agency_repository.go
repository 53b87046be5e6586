package ports

import (
	"context"

	"logistics/internal/core/domain/model/agency"
	"logistics/internal/core/domain/model/kernel"
)

// AgencyRepository defines the persistence contract for agency aggregates.
type AgencyRepository interface {
	// Add persists a new agency aggregate to storage.
	Add(ctx context.Context, aggregate *agency.Agency) error

	// Update persists changes to an existing agency aggregate.
	Update(ctx context.Context, aggregate *agency.Agency) error

	// Get retrieves an agency aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*agency.Agency, error)

	// GetAll retrieves every agency in stored order. Zone matching depends
	// on that order for its first-match fallbacks.
	GetAll(ctx context.Context) ([]*agency.Agency, error)
}
