package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/settlement"
)

// SettlementRepository defines the persistence contract for settlements.
type SettlementRepository interface {
	// Add persists a new settlement to storage.
	Add(ctx context.Context, aggregate *settlement.Settlement) error

	// Update persists changes to an existing settlement.
	Update(ctx context.Context, aggregate *settlement.Settlement) error

	// Get retrieves a settlement by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*settlement.Settlement, error)

	// GetAllByAgency retrieves every settlement owned by the agency.
	GetAllByAgency(ctx context.Context, agencyID kernel.UUID) ([]*settlement.Settlement, error)

	// GetAllPending retrieves settlements still waiting for payment,
	// the input of the overdue sweep.
	GetAllPending(ctx context.Context) ([]*settlement.Settlement, error)

	// CountByAgency returns how many settlements the agency already has,
	// driving the per-agency sequential numbers.
	CountByAgency(ctx context.Context, agencyID kernel.UUID) (int, error)
}
