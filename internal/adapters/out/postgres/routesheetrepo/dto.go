// Package routesheetrepo provides data transfer objects and mapping
// functions for route sheet persistence.
package routesheetrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/routesheet"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RouteSheetDTO represents the database structure for persisting route sheet
// aggregates. Seq preserves creation order for the planner's sequential
// codes.
type RouteSheetDTO struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Seq                 int64          `gorm:"autoIncrement;uniqueIndex"`
	Code                string         `gorm:"uniqueIndex"`
	DestinationCity     string
	DestinationProvince string
	AgencyID            uuid.UUID      `gorm:"type:uuid;index"`
	CarrierID           *uuid.UUID     `gorm:"type:uuid;index"`
	OrderIDs            pq.StringArray `gorm:"type:text[]"`
	Status              int            `gorm:"index"`
	CreatedAt           time.Time
	AssignedAt          *time.Time
	CompletedAt         *time.Time
}

// TableName overrides GORM's default naming convention to use "route_sheets".
func (RouteSheetDTO) TableName() string {
	return "route_sheets"
}

// fromDomain converts a route sheet domain aggregate to its database
// representation.
func fromDomain(aggregate *routesheet.RouteSheet) RouteSheetDTO {
	var carrierID *uuid.UUID
	if id := aggregate.Carrier(); id != nil {
		raw := id.Bytes()
		carrierID = &raw
	}

	orderIDs := make(pq.StringArray, 0, len(aggregate.Orders()))
	for _, id := range aggregate.Orders() {
		orderIDs = append(orderIDs, id.String())
	}

	return RouteSheetDTO{
		ID:                  aggregate.ID().Bytes(),
		Code:                aggregate.Code(),
		DestinationCity:     aggregate.Destination().City(),
		DestinationProvince: aggregate.Destination().Province(),
		AgencyID:            aggregate.Agency().Bytes(),
		CarrierID:           carrierID,
		OrderIDs:            orderIDs,
		Status:              int(aggregate.Status()),
		CreatedAt:           aggregate.CreatedAt(),
		AssignedAt:          aggregate.AssignedAt(),
		CompletedAt:         aggregate.CompletedAt(),
	}
}

// toDomain converts a database DTO to a route sheet domain aggregate using
// RestoreRouteSheet.
func toDomain(dto RouteSheetDTO) (*routesheet.RouteSheet, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	agencyID, err := kernel.UUIDFromBytes(dto.AgencyID[:])
	if err != nil {
		return nil, err
	}

	var carrierID *kernel.UUID
	if dto.CarrierID != nil {
		cID, carrierErr := kernel.UUIDFromBytes((*dto.CarrierID)[:])
		if carrierErr != nil {
			return nil, carrierErr
		}
		carrierID = &cID
	}

	destination, err := kernel.NewPlace(dto.DestinationCity, dto.DestinationProvince)
	if err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.UUID, 0, len(dto.OrderIDs))
	for _, s := range dto.OrderIDs {
		orderID, orderErr := kernel.UUIDFromString(s)
		if orderErr != nil {
			return nil, orderErr
		}
		orderIDs = append(orderIDs, orderID)
	}

	return routesheet.RestoreRouteSheet(id, dto.Code, destination, agencyID,
		carrierID, orderIDs, routesheet.Status(dto.Status),
		dto.CreatedAt, dto.AssignedAt, dto.CompletedAt)
}
