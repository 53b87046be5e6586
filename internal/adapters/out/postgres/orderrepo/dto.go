// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders are stored in two tables: the aggregate itself
// and its tracking history, one row per entry.
package orderrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingCode string     `gorm:"uniqueIndex"`
	Sender       PartyDTO   `gorm:"embedded;embeddedPrefix:sender_"`
	Recipient    PartyDTO   `gorm:"embedded;embeddedPrefix:recipient_"`
	Package      PackageDTO `gorm:"embedded;embeddedPrefix:package_"`
	Cost         CostDTO    `gorm:"embedded;embeddedPrefix:cost_"`
	Status       int        `gorm:"index"`
	AgencyID     *uuid.UUID `gorm:"type:uuid;index"`
	CarrierID    *uuid.UUID `gorm:"type:uuid;index"`
	RouteID      *uuid.UUID `gorm:"type:uuid;index"`
	RouteSheetID *uuid.UUID `gorm:"type:uuid;index"`
	History      []HistoryEntryDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// PartyDTO represents an embedded sender or recipient within the order table.
type PartyDTO struct {
	Name     string
	Document string
	Phone    string
	Address  string
	City     string
	Province string
}

// PackageDTO represents the embedded package details within the order table.
type PackageDTO struct {
	WeightKg      float64
	Quantity      int
	DeclaredValue float64
	ServiceType   string
	Description   string
}

// CostDTO represents the embedded cost breakdown within the order table.
// The total is derived in the domain and stored denormalized for reporting.
type CostDTO struct {
	Freight    float64
	Insurance  float64
	AdminFees  float64
	Thermoseal float64
	IVA        float64
	Total      float64
}

// HistoryEntryDTO represents one tracking history row. Seq preserves the
// domain's newest-first ordering across reloads.
type HistoryEntryDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	Seq         int
	At          time.Time
	Status      int
	Location    string
	Description string
}

// TableName overrides GORM's default naming convention to use "order_history".
func (HistoryEntryDTO) TableName() string {
	return "order_history"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	history := make([]HistoryEntryDTO, 0, len(aggregate.History()))
	for i, entry := range aggregate.History() {
		history = append(history, HistoryEntryDTO{
			OrderID:     aggregate.ID().Bytes(),
			Seq:         i,
			At:          entry.At(),
			Status:      int(entry.Status()),
			Location:    entry.Location(),
			Description: entry.Description(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		TrackingCode: aggregate.TrackingCode(),
		Sender:       partyFromDomain(aggregate.Sender()),
		Recipient:    partyFromDomain(aggregate.Recipient()),
		Package: PackageDTO{
			WeightKg:      aggregate.Package().Weight(),
			Quantity:      aggregate.Package().Quantity(),
			DeclaredValue: aggregate.Package().DeclaredValue(),
			ServiceType:   aggregate.Package().ServiceType(),
			Description:   aggregate.Package().Description(),
		},
		Cost: CostDTO{
			Freight:    aggregate.Costs().Freight(),
			Insurance:  aggregate.Costs().Insurance(),
			AdminFees:  aggregate.Costs().AdminFees(),
			Thermoseal: aggregate.Costs().Thermoseal(),
			IVA:        aggregate.Costs().IVA(),
			Total:      aggregate.Costs().Total(),
		},
		Status:       int(aggregate.Status()),
		AgencyID:     refFromDomain(aggregate.Agency()),
		CarrierID:    refFromDomain(aggregate.Carrier()),
		RouteID:      refFromDomain(aggregate.Route()),
		RouteSheetID: refFromDomain(aggregate.RouteSheet()),
		History:      history,
		CreatedAt:    aggregate.CreatedAt(),
	}
}

func partyFromDomain(p order.Party) PartyDTO {
	return PartyDTO{
		Name:     p.Name(),
		Document: p.Document(),
		Phone:    p.Phone(),
		Address:  p.Address(),
		City:     p.Place().City(),
		Province: p.Place().Province(),
	}
}

func refFromDomain(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder. History rows must already be sorted by Seq.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sender, err := partyToDomain(dto.Sender)
	if err != nil {
		return nil, err
	}
	recipient, err := partyToDomain(dto.Recipient)
	if err != nil {
		return nil, err
	}

	pack, err := order.NewPackage(dto.Package.WeightKg, dto.Package.Quantity,
		dto.Package.DeclaredValue, dto.Package.ServiceType, dto.Package.Description)
	if err != nil {
		return nil, err
	}

	costs, err := order.NewCost(dto.Cost.Freight, dto.Cost.Insurance,
		dto.Cost.AdminFees, dto.Cost.Thermoseal, dto.Cost.IVA)
	if err != nil {
		return nil, err
	}

	agencyID, err := refToDomain(dto.AgencyID)
	if err != nil {
		return nil, err
	}
	carrierID, err := refToDomain(dto.CarrierID)
	if err != nil {
		return nil, err
	}
	routeID, err := refToDomain(dto.RouteID)
	if err != nil {
		return nil, err
	}
	routeSheetID, err := refToDomain(dto.RouteSheetID)
	if err != nil {
		return nil, err
	}

	history := make([]order.HistoryEntry, 0, len(dto.History))
	for _, row := range dto.History {
		entry, entryErr := order.NewHistoryEntry(row.At, order.Status(row.Status), row.Location, row.Description)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, entry)
	}

	return order.RestoreOrder(id, dto.TrackingCode, sender, recipient, pack, costs,
		order.Status(dto.Status), agencyID, carrierID, routeID, routeSheetID,
		history, dto.CreatedAt)
}

func partyToDomain(dto PartyDTO) (order.Party, error) {
	place, err := kernel.NewPlace(dto.City, dto.Province)
	if err != nil {
		return order.Party{}, err
	}
	return order.NewParty(dto.Name, dto.Document, dto.Phone, dto.Address, place)
}

func refToDomain(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
