package routesheetrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/routesheet"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRouteSheetRepository implements RouteSheetRepository using GORM.
type GormRouteSheetRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRouteSheetRepository creates a new GORM route sheet repository.
func NewGormRouteSheetRepository(db *gorm.DB, tracker aggregateTracker) *GormRouteSheetRepository {
	return &GormRouteSheetRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new route sheet to the database.
func (r *GormRouteSheetRepository) Add(ctx context.Context, aggregate *routesheet.RouteSheet) error {
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

// Update saves an existing route sheet to the database.
func (r *GormRouteSheetRepository) Update(ctx context.Context, aggregate *routesheet.RouteSheet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RouteSheetDTO{}).
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

// Get retrieves a route sheet by ID.
func (r *GormRouteSheetRepository) Get(ctx context.Context, id kernel.UUID) (*routesheet.RouteSheet, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteSheetDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("routeSheet", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every route sheet in creation order.
func (r *GormRouteSheetRepository) GetAll(ctx context.Context) ([]*routesheet.RouteSheet, error) {
	var dtos []RouteSheetDTO
	if err := r.db.WithContext(ctx).Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllCompletedByCarrier retrieves the carrier's completed sheets.
func (r *GormRouteSheetRepository) GetAllCompletedByCarrier(ctx context.Context, carrierID kernel.UUID) ([]*routesheet.RouteSheet, error) {
	if err := carrierID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RouteSheetDTO
	err := r.db.WithContext(ctx).
		Where("carrier_id = ? AND status = ?", carrierID.Bytes(), routesheet.StatusCompleted).
		Order("seq").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []RouteSheetDTO) ([]*routesheet.RouteSheet, error) {
	sheets := make([]*routesheet.RouteSheet, 0, len(dtos))
	for _, dto := range dtos {
		sheet, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}
