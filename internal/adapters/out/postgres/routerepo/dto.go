// Package routerepo provides data transfer objects and mapping functions for
// route persistence. Stops and the batched identifiers are stored as
// Postgres arrays; a route is written once and its membership never changes.
package routerepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RouteDTO represents the database structure for persisting route aggregates.
type RouteDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Code        string         `gorm:"uniqueIndex"`
	Name        string
	Origin      string
	Destination string
	Stops       pq.StringArray `gorm:"type:text[]"`
	CarrierID   uuid.UUID      `gorm:"type:uuid;index"`
	AgencyIDs   pq.StringArray `gorm:"type:text[]"`
	OrderIDs    pq.StringArray `gorm:"type:text[]"`
	Status      int
	CreatedAt   time.Time
}

// TableName overrides GORM's default naming convention to use "routes".
func (RouteDTO) TableName() string {
	return "routes"
}

// fromDomain converts a route domain aggregate to its database representation.
func fromDomain(aggregate *route.Route) RouteDTO {
	return RouteDTO{
		ID:          aggregate.ID().Bytes(),
		Code:        aggregate.Code(),
		Name:        aggregate.Name(),
		Origin:      aggregate.Origin(),
		Destination: aggregate.Destination(),
		Stops:       pq.StringArray(aggregate.Stops()),
		CarrierID:   aggregate.Carrier().Bytes(),
		AgencyIDs:   idsToStrings(aggregate.Agencies()),
		OrderIDs:    idsToStrings(aggregate.Orders()),
		Status:      int(aggregate.Status()),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a route domain aggregate using
// RestoreRoute.
func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	carrierID, err := kernel.UUIDFromBytes(dto.CarrierID[:])
	if err != nil {
		return nil, err
	}
	agencyIDs, err := stringsToIDs(dto.AgencyIDs)
	if err != nil {
		return nil, err
	}
	orderIDs, err := stringsToIDs(dto.OrderIDs)
	if err != nil {
		return nil, err
	}

	return route.RestoreRoute(id, dto.Code, dto.Name, dto.Origin, dto.Destination,
		[]string(dto.Stops), carrierID, agencyIDs, orderIDs,
		route.Status(dto.Status), dto.CreatedAt)
}

func idsToStrings(ids []kernel.UUID) pq.StringArray {
	out := make(pq.StringArray, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func stringsToIDs(raw pq.StringArray) ([]kernel.UUID, error) {
	out := make([]kernel.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
