// Package settlementrepo provides data transfer objects and mapping
// functions for settlement persistence. The optional payment proof is stored
// denormalized in the settlement row.
package settlementrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/settlement"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SettlementDTO represents the database structure for persisting settlement
// aggregates.
type SettlementDTO struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey"`
	AgencyID         uuid.UUID      `gorm:"type:uuid;index"`
	Number           string         `gorm:"uniqueIndex"`
	PeriodStart      time.Time
	PeriodEnd        time.Time
	TotalSales       float64
	TotalCommissions float64
	NetAmount        float64
	Status           int            `gorm:"index"`
	GeneratedAt      time.Time
	DueDate          time.Time
	ProofFilename    *string
	ProofUploadedAt  *time.Time
	ProofLocator     *string
	OrderIDs         pq.StringArray `gorm:"type:text[]"`
}

// TableName overrides GORM's default naming convention to use "settlements".
func (SettlementDTO) TableName() string {
	return "settlements"
}

// fromDomain converts a settlement domain aggregate to its database
// representation.
func fromDomain(aggregate *settlement.Settlement) SettlementDTO {
	dto := SettlementDTO{
		ID:               aggregate.ID().Bytes(),
		AgencyID:         aggregate.Agency().Bytes(),
		Number:           aggregate.Number(),
		PeriodStart:      aggregate.PeriodStart(),
		PeriodEnd:        aggregate.PeriodEnd(),
		TotalSales:       aggregate.TotalSales(),
		TotalCommissions: aggregate.TotalCommissions(),
		NetAmount:        aggregate.NetAmount(),
		Status:           int(aggregate.Status()),
		GeneratedAt:      aggregate.GeneratedAt(),
		DueDate:          aggregate.DueDate(),
	}

	if proof := aggregate.Proof(); proof != nil {
		filename := proof.Filename()
		uploadedAt := proof.UploadedAt()
		locator := proof.Locator()
		dto.ProofFilename = &filename
		dto.ProofUploadedAt = &uploadedAt
		dto.ProofLocator = &locator
	}

	dto.OrderIDs = make(pq.StringArray, 0, len(aggregate.Orders()))
	for _, id := range aggregate.Orders() {
		dto.OrderIDs = append(dto.OrderIDs, id.String())
	}

	return dto
}

// toDomain converts a database DTO to a settlement domain aggregate using
// RestoreSettlement.
func toDomain(dto SettlementDTO) (*settlement.Settlement, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	agencyID, err := kernel.UUIDFromBytes(dto.AgencyID[:])
	if err != nil {
		return nil, err
	}

	var proof *settlement.PaymentProof
	if dto.ProofFilename != nil && dto.ProofUploadedAt != nil && dto.ProofLocator != nil {
		p, proofErr := settlement.NewPaymentProof(*dto.ProofFilename, *dto.ProofUploadedAt, *dto.ProofLocator)
		if proofErr != nil {
			return nil, proofErr
		}
		proof = &p
	}

	orderIDs := make([]kernel.UUID, 0, len(dto.OrderIDs))
	for _, s := range dto.OrderIDs {
		orderID, orderErr := kernel.UUIDFromString(s)
		if orderErr != nil {
			return nil, orderErr
		}
		orderIDs = append(orderIDs, orderID)
	}

	return settlement.RestoreSettlement(id, agencyID, dto.Number,
		dto.PeriodStart, dto.PeriodEnd, dto.TotalSales, dto.TotalCommissions,
		settlement.Status(dto.Status), dto.GeneratedAt, dto.DueDate,
		proof, orderIDs)
}
