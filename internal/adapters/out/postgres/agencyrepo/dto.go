// Package agencyrepo provides data transfer objects and mapping functions
// for agency persistence.
package agencyrepo

import (
	"time"

	"logistics/internal/core/domain/model/agency"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AgencyDTO represents the database structure for persisting agency
// aggregates. Seq preserves registration order: zone matching falls back to
// the first stored agency, so stable ordering is load-bearing.
type AgencyDTO struct {
	ID                uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Seq               int64              `gorm:"autoIncrement;uniqueIndex"`
	Code              string             `gorm:"uniqueIndex"`
	Name              string
	City              string
	Province          string
	Address           string
	Phone             string
	Schedule          string
	Manager           string
	ZoneLabel         string
	Username          string             `gorm:"uniqueIndex"`
	Password          string
	Rates             CommissionRatesDTO `gorm:"embedded;embeddedPrefix:commission_"`
	CreditLimit       float64
	CurrentCredit     float64
	SettlementWeekday int
	LastSettlementAt  *time.Time
	Active            bool
}

// TableName overrides GORM's default naming convention to use "agencies".
func (AgencyDTO) TableName() string {
	return "agencies"
}

// CommissionRatesDTO represents the embedded commission percentages within
// the agency table.
type CommissionRatesDTO struct {
	OriginPercent      float64
	DestinationPercent float64
	EcommerceReceived  float64
	EcommerceDelivered float64
	ThermosealPercent  float64
}

// fromDomain converts an agency domain aggregate to its database representation.
func fromDomain(aggregate *agency.Agency) AgencyDTO {
	return AgencyDTO{
		ID:        aggregate.ID().Bytes(),
		Code:      aggregate.Code(),
		Name:      aggregate.Name(),
		City:      aggregate.Place().City(),
		Province:  aggregate.Place().Province(),
		Address:   aggregate.Address(),
		Phone:     aggregate.Phone(),
		Schedule:  aggregate.Schedule(),
		Manager:   aggregate.Manager(),
		ZoneLabel: aggregate.ZoneLabel(),
		Username:  aggregate.Username(),
		Password:  aggregate.Password(),
		Rates: CommissionRatesDTO{
			OriginPercent:      aggregate.Rates().OriginPercent(),
			DestinationPercent: aggregate.Rates().DestinationPercent(),
			EcommerceReceived:  aggregate.Rates().EcommerceReceived(),
			EcommerceDelivered: aggregate.Rates().EcommerceDelivered(),
			ThermosealPercent:  aggregate.Rates().ThermosealPercent(),
		},
		CreditLimit:       aggregate.CreditLimit(),
		CurrentCredit:     aggregate.CurrentCredit(),
		SettlementWeekday: int(aggregate.SettlementWeekday()),
		LastSettlementAt:  aggregate.LastSettlementAt(),
		Active:            aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to an agency domain aggregate using
// RestoreAgency.
func toDomain(dto AgencyDTO) (*agency.Agency, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	place, err := kernel.NewPlace(dto.City, dto.Province)
	if err != nil {
		return nil, err
	}

	rates, err := agency.NewCommissionRates(
		dto.Rates.OriginPercent,
		dto.Rates.DestinationPercent,
		dto.Rates.EcommerceReceived,
		dto.Rates.EcommerceDelivered,
		dto.Rates.ThermosealPercent,
	)
	if err != nil {
		return nil, err
	}

	return agency.RestoreAgency(id, dto.Code, dto.Name, place,
		dto.Address, dto.Phone, dto.Schedule, dto.Manager, dto.ZoneLabel,
		dto.Username, dto.Password, rates,
		dto.CreditLimit, dto.CurrentCredit,
		time.Weekday(dto.SettlementWeekday), dto.LastSettlementAt, dto.Active)
}
