package orderrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its history to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order. History rows are replaced wholesale since
// transitions only ever prepend.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "History").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Delete(&HistoryEntryDTO{}).Error; err != nil {
		return err
	}
	if len(dto.History) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.History).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, history included.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withHistory(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingCode retrieves an order by its public tracking code.
func (r *GormOrderRepository) GetByTrackingCode(ctx context.Context, trackingCode string) (*order.Order, error) {
	if trackingCode == "" {
		return nil, errs.NewValueIsRequiredError("trackingCode")
	}

	var dto OrderDTO
	if err := r.withHistory(ctx).First(&dto, "tracking_code = ?", trackingCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", trackingCode)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPendingDispatch retrieves orders still waiting for batching: pending
// pickup with neither a carrier nor a route.
func (r *GormOrderRepository) GetAllPendingDispatch(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.withHistory(ctx).
		Where("status = ? AND carrier_id IS NULL AND route_id IS NULL", order.PendingPickup).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllByAgency retrieves every order assigned to the agency.
func (r *GormOrderRepository) GetAllByAgency(ctx context.Context, agencyID kernel.UUID) ([]*order.Order, error) {
	if err := agencyID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.withHistory(ctx).
		Where("agency_id = ?", agencyID.Bytes()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllByIDs retrieves the orders with the given identifiers.
func (r *GormOrderRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	if len(ids) == 0 {
		return []*order.Order{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []OrderDTO
	err := r.withHistory(ctx).
		Where("id IN ?", raw).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func (r *GormOrderRepository) withHistory(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("History", func(db *gorm.DB) *gorm.DB {
		return db.Order("seq")
	})
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
