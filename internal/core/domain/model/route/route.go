// Package route provides the Route aggregate: a carrier-scoped multi-stop
// plan. Long-distance routes span an origin/destination province pair with up
// to five intermediate stops; local routes cover a delivery area with up to
// three address-derived stops. Building a route never mutates the orders on
// it; order status changes belong to the pickup-confirmation flow.
package route

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// MaxStops caps the intermediate stops collected onto a long-distance route.
const MaxStops = 5

// Status represents the lifecycle state of a route.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPlanned: the route is synthesized but not yet running.
	StatusPlanned

	// StatusInProgress: the carrier is driving the route.
	StatusInProgress

	// StatusCompleted: the route finished. Final.
	StatusCompleted
)

// String returns the human-readable name of the status.
func (s Status) String() string {
	switch s {
	case StatusPlanned:
		return "Planned"
	case StatusInProgress:
		return "InProgress"
	case StatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Validate checks if the Status is one of the defined states.
func (s Status) Validate() error {
	if s < StatusPlanned || s > StatusCompleted {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid route status", s))
	}
	return nil
}

// ErrRouteIsNotConstructed is returned when a Route instance was not created
// through NewRoute or RestoreRoute.
var ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")

// CodeFor renders the sequential route code, e.g. CodeFor(3) == "R0003".
func CodeFor(sequence int) string {
	return fmt.Sprintf("R%04d", sequence)
}

// Route is the aggregate root for one carrier route.
type Route struct {
	id          kernel.UUID
	code        string
	name        string
	origin      string
	destination string
	stops       []string
	carrierID   kernel.UUID
	agencyIDs   []kernel.UUID
	orderIDs    []kernel.UUID
	status      Status
	createdAt   time.Time
}

// NewRoute creates a planned Route. Stops are capped at MaxStops; anything
// beyond the cap is an input error of the builder, not silently truncated here.
func NewRoute(
	id kernel.UUID,
	code, name, origin, destination string,
	stops []string,
	carrierID kernel.UUID,
	agencyIDs, orderIDs []kernel.UUID,
	createdAt time.Time,
) (*Route, error) {
	if err := errors.Join(
		id.Validate(),
		carrierID.Validate(),
	); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}
	if origin == "" {
		return nil, errs.NewValueIsRequiredError("origin")
	}
	if destination == "" {
		return nil, errs.NewValueIsRequiredError("destination")
	}
	if len(orderIDs) == 0 {
		return nil, errs.NewValueIsRequiredError("orderIDs")
	}
	if len(stops) > MaxStops {
		return nil, errs.NewValueIsOutOfRangeError("stops", len(stops), 0, MaxStops)
	}

	return &Route{
		id:          id,
		code:        code,
		name:        name,
		origin:      origin,
		destination: destination,
		stops:       stops,
		carrierID:   carrierID,
		agencyIDs:   agencyIDs,
		orderIDs:    orderIDs,
		status:      StatusPlanned,
		createdAt:   createdAt,
	}, nil
}

// RestoreRoute reconstructs a Route from persistence.
func RestoreRoute(
	id kernel.UUID,
	code, name, origin, destination string,
	stops []string,
	carrierID kernel.UUID,
	agencyIDs, orderIDs []kernel.UUID,
	status Status,
	createdAt time.Time,
) (*Route, error) {
	r, err := NewRoute(id, code, name, origin, destination, stops, carrierID, agencyIDs, orderIDs, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	r.status = status
	return r, nil
}

// Validate ensures the Route was created through a factory function.
func (r *Route) Validate() error {
	if r == nil || r.code == "" {
		return ErrRouteIsNotConstructed
	}
	return nil
}

// ID returns the route's unique identifier.
func (r *Route) ID() kernel.UUID {
	return r.id
}

// Code returns the sequential route code (R%04d).
func (r *Route) Code() string {
	return r.code
}

// Name returns the human-readable route name.
func (r *Route) Name() string {
	return r.name
}

// Origin returns the origin province (long distance) or zone (local).
func (r *Route) Origin() string {
	return r.origin
}

// Destination returns the destination province or city.
func (r *Route) Destination() string {
	return r.destination
}

// Stops returns the ordered intermediate stop names.
func (r *Route) Stops() []string {
	return r.stops
}

// Carrier returns the carrier driving the route.
func (r *Route) Carrier() kernel.UUID {
	return r.carrierID
}

// Agencies returns the IDs of agencies covering the route.
func (r *Route) Agencies() []kernel.UUID {
	return r.agencyIDs
}

// Orders returns the IDs of the orders traveling on the route.
func (r *Route) Orders() []kernel.UUID {
	return r.orderIDs
}

// Status returns the current route status.
func (r *Route) Status() Status {
	return r.status
}

// CreatedAt returns when the route was synthesized.
func (r *Route) CreatedAt() time.Time {
	return r.createdAt
}

// Start moves a planned route to InProgress.
func (r *Route) Start() error {
	if r.status != StatusPlanned {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to start", r.status))
	}
	r.status = StatusInProgress
	return nil
}

// Complete finishes an in-progress route.
func (r *Route) Complete() error {
	if r.status != StatusInProgress {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to complete", r.status))
	}
	r.status = StatusCompleted
	return nil
}
