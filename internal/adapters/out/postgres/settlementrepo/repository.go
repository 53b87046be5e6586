package settlementrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/settlement"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSettlementRepository implements SettlementRepository using GORM.
type GormSettlementRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSettlementRepository creates a new GORM settlement repository.
func NewGormSettlementRepository(db *gorm.DB, tracker aggregateTracker) *GormSettlementRepository {
	return &GormSettlementRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new settlement to the database.
func (r *GormSettlementRepository) Add(ctx context.Context, aggregate *settlement.Settlement) error {
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

// Update saves an existing settlement to the database.
func (r *GormSettlementRepository) Update(ctx context.Context, aggregate *settlement.Settlement) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&SettlementDTO{}).
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

// Get retrieves a settlement by ID.
func (r *GormSettlementRepository) Get(ctx context.Context, id kernel.UUID) (*settlement.Settlement, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SettlementDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("settlement", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByAgency retrieves every settlement owned by the agency, oldest first.
func (r *GormSettlementRepository) GetAllByAgency(ctx context.Context, agencyID kernel.UUID) ([]*settlement.Settlement, error) {
	if err := agencyID.Validate(); err != nil {
		return nil, err
	}

	var dtos []SettlementDTO
	err := r.db.WithContext(ctx).
		Where("agency_id = ?", agencyID.Bytes()).
		Order("generated_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllPending retrieves settlements still waiting for payment.
func (r *GormSettlementRepository) GetAllPending(ctx context.Context) ([]*settlement.Settlement, error) {
	var dtos []SettlementDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", settlement.StatusPending).
		Order("generated_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// CountByAgency returns how many settlements the agency already has.
func (r *GormSettlementRepository) CountByAgency(ctx context.Context, agencyID kernel.UUID) (int, error) {
	if err := agencyID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&SettlementDTO{}).
		Where("agency_id = ?", agencyID.Bytes()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func toDomainAll(dtos []SettlementDTO) ([]*settlement.Settlement, error) {
	settlements := make([]*settlement.Settlement, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		settlements = append(settlements, s)
	}
	return settlements, nil
}
