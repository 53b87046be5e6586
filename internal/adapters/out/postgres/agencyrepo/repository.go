package agencyrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/agency"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAgencyRepository implements AgencyRepository using GORM.
type GormAgencyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAgencyRepository creates a new GORM agency repository.
func NewGormAgencyRepository(db *gorm.DB, tracker aggregateTracker) *GormAgencyRepository {
	return &GormAgencyRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new agency to the database.
func (r *GormAgencyRepository) Add(ctx context.Context, aggregate *agency.Agency) error {
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

// Update saves an existing agency to the database.
func (r *GormAgencyRepository) Update(ctx context.Context, aggregate *agency.Agency) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AgencyDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "seq").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an agency by ID.
func (r *GormAgencyRepository) Get(ctx context.Context, id kernel.UUID) (*agency.Agency, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AgencyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("agency", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every agency in registration order.
func (r *GormAgencyRepository) GetAll(ctx context.Context) ([]*agency.Agency, error) {
	var dtos []AgencyDTO
	if err := r.db.WithContext(ctx).Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	agencies := make([]*agency.Agency, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		agencies = append(agencies, a)
	}

	return agencies, nil
}
