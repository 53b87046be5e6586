// Package tariffrepo provides data transfer objects and mapping functions
// for tariff persistence. Entries form one global table; Seq preserves the
// stored order because resolution is first-match.
package tariffrepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tariff"

	"github.com/google/uuid"
)

// TariffEntryDTO represents one pricing row of the tariff table.
type TariffEntryDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq           int64     `gorm:"autoIncrement;uniqueIndex"`
	FromKg        float64
	ToKg          float64
	Province      string `gorm:"index"`
	BasePrice     float64
	InsuranceRate float64
	AdminFeeRate  float64
	IVARate       float64
}

// TableName overrides GORM's default naming convention to use "tariff_entries".
func (TariffEntryDTO) TableName() string {
	return "tariff_entries"
}

// fromDomain converts a tariff entry to its database representation.
func fromDomain(entry tariff.Entry) TariffEntryDTO {
	return TariffEntryDTO{
		ID:            entry.ID().Bytes(),
		FromKg:        entry.FromKg(),
		ToKg:          entry.ToKg(),
		Province:      entry.Province(),
		BasePrice:     entry.BasePrice(),
		InsuranceRate: entry.InsuranceRate(),
		AdminFeeRate:  entry.AdminFeeRate(),
		IVARate:       entry.IVARate(),
	}
}

// toDomain converts a database DTO to a tariff entry.
func toDomain(dto TariffEntryDTO) (tariff.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return tariff.Entry{}, err
	}

	return tariff.NewEntry(id, dto.FromKg, dto.ToKg, dto.Province,
		dto.BasePrice, dto.InsuranceRate, dto.AdminFeeRate, dto.IVARate)
}
