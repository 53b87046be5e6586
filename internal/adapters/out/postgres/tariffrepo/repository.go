package tariffrepo

import (
	"context"

	"logistics/internal/core/domain/model/tariff"

	"gorm.io/gorm"
)

// GormTariffRepository implements TariffRepository using GORM. Tariff
// entries are plain values, not tracked aggregates.
type GormTariffRepository struct {
	db *gorm.DB
}

// NewGormTariffRepository creates a new GORM tariff repository.
func NewGormTariffRepository(db *gorm.DB) *GormTariffRepository {
	return &GormTariffRepository{db: db}
}

// Add appends a new entry to the tariff table.
func (r *GormTariffRepository) Add(ctx context.Context, entry tariff.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetTable retrieves the whole tariff table in stored order.
func (r *GormTariffRepository) GetTable(ctx context.Context) (tariff.Table, error) {
	var dtos []TariffEntryDTO
	if err := r.db.WithContext(ctx).Order("seq").Find(&dtos).Error; err != nil {
		return tariff.Table{}, err
	}

	entries := make([]tariff.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return tariff.Table{}, err
		}
		entries = append(entries, entry)
	}

	return tariff.NewTable(entries)
}
