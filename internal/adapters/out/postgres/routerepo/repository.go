package routerepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRouteRepository implements RouteRepository using GORM.
type GormRouteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRouteRepository creates a new GORM route repository.
func NewGormRouteRepository(db *gorm.DB, tracker aggregateTracker) *GormRouteRepository {
	return &GormRouteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new route to the database.
func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
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

// Update saves an existing route to the database.
func (r *GormRouteRepository) Update(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RouteDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
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

// Get retrieves a route by ID.
func (r *GormRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByCarrier retrieves every route assigned to the carrier.
func (r *GormRouteRepository) GetAllByCarrier(ctx context.Context, carrierID kernel.UUID) ([]*route.Route, error) {
	if err := carrierID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RouteDTO
	err := r.db.WithContext(ctx).
		Where("carrier_id = ?", carrierID.Bytes()).
		Order("code").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	routes := make([]*route.Route, 0, len(dtos))
	for _, dto := range dtos {
		rt, rtErr := toDomain(dto)
		if rtErr != nil {
			return nil, rtErr
		}
		routes = append(routes, rt)
	}

	return routes, nil
}

// Count returns the number of stored routes.
func (r *GormRouteRepository) Count(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&RouteDTO{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}
