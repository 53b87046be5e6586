// Package carrierrepo provides data transfer objects and mapping functions
// for carrier persistence. Zones are stored as a Postgres text array; pay
// scales live in their own table, ordered by weight.
package carrierrepo

import (
	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CarrierDTO represents the database structure for persisting carrier
// aggregates.
type CarrierDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Code          string         `gorm:"uniqueIndex"`
	Name          string
	Document      string
	Phone         string
	Vehicle       string
	Plate         string
	CompanyName   string
	Type          int
	Zones         pq.StringArray `gorm:"type:text[]"`
	PayScales     []PayScaleDTO  `gorm:"foreignKey:CarrierID;references:ID;constraint:OnDelete:CASCADE"`
	DeliveryBonus float64
}

// TableName overrides GORM's default naming convention to use "carriers".
func (CarrierDTO) TableName() string {
	return "carriers"
}

// PayScaleDTO represents one weight bracket of a carrier's pay table.
type PayScaleDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	CarrierID uuid.UUID `gorm:"type:uuid;index"`
	FromKg    float64
	ToKg      float64
	UnitPrice float64
}

// TableName overrides GORM's default naming convention to use "carrier_pay_scales".
func (PayScaleDTO) TableName() string {
	return "carrier_pay_scales"
}

// fromDomain converts a carrier domain aggregate to its database representation.
func fromDomain(aggregate *carrier.Carrier) CarrierDTO {
	scales := make([]PayScaleDTO, 0, len(aggregate.PayTable().Scales()))
	for _, scale := range aggregate.PayTable().Scales() {
		scales = append(scales, PayScaleDTO{
			CarrierID: aggregate.ID().Bytes(),
			FromKg:    scale.FromKg(),
			ToKg:      scale.ToKg(),
			UnitPrice: scale.UnitPrice(),
		})
	}

	return CarrierDTO{
		ID:            aggregate.ID().Bytes(),
		Code:          aggregate.Code(),
		Name:          aggregate.Name(),
		Document:      aggregate.Document(),
		Phone:         aggregate.Phone(),
		Vehicle:       aggregate.Vehicle(),
		Plate:         aggregate.Plate(),
		CompanyName:   aggregate.CompanyName(),
		Type:          int(aggregate.CarrierType()),
		Zones:         pq.StringArray(aggregate.Zones()),
		PayScales:     scales,
		DeliveryBonus: aggregate.DeliveryBonus(),
	}
}

// toDomain converts a database DTO to a carrier domain aggregate. Pay scale
// rows must already be sorted by weight.
func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	scales := make([]carrier.PayScale, 0, len(dto.PayScales))
	for _, row := range dto.PayScales {
		scale, scaleErr := carrier.NewPayScale(row.FromKg, row.ToKg, row.UnitPrice)
		if scaleErr != nil {
			return nil, scaleErr
		}
		scales = append(scales, scale)
	}
	table, err := carrier.NewPayTable(scales)
	if err != nil {
		return nil, err
	}

	return carrier.NewCarrier(id, dto.Code, dto.Name, dto.Document, dto.Phone,
		dto.Vehicle, dto.Plate, dto.CompanyName, carrier.Type(dto.Type),
		[]string(dto.Zones), table, dto.DeliveryBonus)
}
