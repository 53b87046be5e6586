package ports

import (
	"context"

	"logistics/internal/core/domain/model/tariff"
)

// TariffRepository defines the persistence contract for tariff entries.
type TariffRepository interface {
	// Add persists a new tariff entry.
	Add(ctx context.Context, entry tariff.Entry) error

	// GetTable retrieves the whole tariff table in stored order. Resolution
	// is first-match, so the order matters.
	GetTable(ctx context.Context) (tariff.Table, error)
}
