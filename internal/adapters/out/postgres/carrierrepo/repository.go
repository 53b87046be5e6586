package carrierrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCarrierRepository implements CarrierRepository using GORM.
type GormCarrierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCarrierRepository creates a new GORM carrier repository.
func NewGormCarrierRepository(db *gorm.DB, tracker aggregateTracker) *GormCarrierRepository {
	return &GormCarrierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new carrier and its pay scales to the database.
func (r *GormCarrierRepository) Add(ctx context.Context, aggregate *carrier.Carrier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing carrier, replacing its pay scale rows.
func (r *GormCarrierRepository) Update(ctx context.Context, aggregate *carrier.Carrier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CarrierDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "PayScales").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).
		Where("carrier_id = ?", dto.ID).
		Delete(&PayScaleDTO{}).Error; err != nil {
		return err
	}
	if len(dto.PayScales) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.PayScales).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a carrier by ID, pay table included.
func (r *GormCarrierRepository) Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CarrierDTO
	if err := r.withScales(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carrier", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every carrier in registration order.
func (r *GormCarrierRepository) GetAll(ctx context.Context) ([]*carrier.Carrier, error) {
	var dtos []CarrierDTO
	if err := r.withScales(ctx).Order("code").Find(&dtos).Error; err != nil {
		return nil, err
	}

	carriers := make([]*carrier.Carrier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		carriers = append(carriers, c)
	}

	return carriers, nil
}

func (r *GormCarrierRepository) withScales(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("PayScales", func(db *gorm.DB) *gorm.DB {
		return db.Order("from_kg")
	})
}
