// Package routesheet provides the RouteSheet aggregate: a zone-scoped batch
// of orders dispatched from one agency toward one destination. At most one
// active sheet may exist per (agency, destination city, destination province)
// at a time; the dispatcher enforces this before creating a new one.
package routesheet

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a route sheet.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending: the sheet is created but no carrier qualified yet.
	StatusPending

	// StatusAssigned: a carrier was assigned and the batch is dispatched.
	StatusAssigned

	// StatusInProgress: the carrier is working the sheet.
	StatusInProgress

	// StatusCompleted: every order on the sheet was handled. Final.
	StatusCompleted
)

// String returns the human-readable name of the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusAssigned:
		return "Assigned"
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
	if s < StatusPending || s > StatusCompleted {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid sheet status", s))
	}
	return nil
}

// IsActive reports whether a sheet in this status still blocks creation of a
// new sheet for the same destination. Everything short of Completed is active.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusAssigned || s == StatusInProgress
}

// ErrRouteSheetIsNotConstructed is returned when a RouteSheet instance was
// not created through NewRouteSheet or RestoreRouteSheet.
var ErrRouteSheetIsNotConstructed = errors.New("RouteSheet must be created via NewRouteSheet constructor")

// CodeFor renders the sequential sheet code, e.g. CodeFor(7) == "HR0007".
func CodeFor(sequence int) string {
	return fmt.Sprintf("HR%04d", sequence)
}

// RouteSheet is the aggregate root for one dispatched batch.
type RouteSheet struct {
	id          kernel.UUID
	code        string
	destination kernel.Place
	agencyID    kernel.UUID
	carrierID   *kernel.UUID
	orderIDs    []kernel.UUID
	status      Status
	createdAt   time.Time
	assignedAt  *time.Time
	completedAt *time.Time
}

// NewRouteSheet creates a pending sheet batching the given orders toward one
// destination. At least one order is required.
func NewRouteSheet(
	id kernel.UUID,
	code string,
	destination kernel.Place,
	agencyID kernel.UUID,
	orderIDs []kernel.UUID,
	createdAt time.Time,
) (*RouteSheet, error) {
	if err := errors.Join(
		id.Validate(),
		destination.Validate(),
		agencyID.Validate(),
	); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}
	if len(orderIDs) == 0 {
		return nil, errs.NewValueIsRequiredError("orderIDs")
	}

	return &RouteSheet{
		id:          id,
		code:        code,
		destination: destination,
		agencyID:    agencyID,
		orderIDs:    orderIDs,
		status:      StatusPending,
		createdAt:   createdAt,
	}, nil
}

// RestoreRouteSheet reconstructs a RouteSheet from persistence.
func RestoreRouteSheet(
	id kernel.UUID,
	code string,
	destination kernel.Place,
	agencyID kernel.UUID,
	carrierID *kernel.UUID,
	orderIDs []kernel.UUID,
	status Status,
	createdAt time.Time,
	assignedAt, completedAt *time.Time,
) (*RouteSheet, error) {
	sheet, err := NewRouteSheet(id, code, destination, agencyID, orderIDs, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if carrierID != nil {
		if err = carrierID.Validate(); err != nil {
			return nil, err
		}
	}

	sheet.carrierID = carrierID
	sheet.status = status
	sheet.assignedAt = assignedAt
	sheet.completedAt = completedAt
	return sheet, nil
}

// Validate ensures the RouteSheet was created through a factory function.
func (r *RouteSheet) Validate() error {
	if r == nil || r.code == "" {
		return ErrRouteSheetIsNotConstructed
	}
	return nil
}

// ID returns the sheet's unique identifier.
func (r *RouteSheet) ID() kernel.UUID {
	return r.id
}

// Code returns the sequential sheet code (HR%04d).
func (r *RouteSheet) Code() string {
	return r.code
}

// Destination returns the destination city/province of the batch.
func (r *RouteSheet) Destination() kernel.Place {
	return r.destination
}

// Agency returns the owning agency's ID.
func (r *RouteSheet) Agency() kernel.UUID {
	return r.agencyID
}

// Carrier returns the assigned carrier's ID, or nil while pending.
func (r *RouteSheet) Carrier() *kernel.UUID {
	return r.carrierID
}

// Orders returns the IDs of the batched orders.
func (r *RouteSheet) Orders() []kernel.UUID {
	return r.orderIDs
}

// Status returns the current sheet status.
func (r *RouteSheet) Status() Status {
	return r.status
}

// CreatedAt returns when the sheet was generated.
func (r *RouteSheet) CreatedAt() time.Time {
	return r.createdAt
}

// AssignedAt returns when a carrier was assigned, or nil.
func (r *RouteSheet) AssignedAt() *time.Time {
	return r.assignedAt
}

// CompletedAt returns when the sheet was completed, or nil.
func (r *RouteSheet) CompletedAt() *time.Time {
	return r.completedAt
}

// IsActive reports whether the sheet still blocks a new sheet for the same
// (agency, destination) pair.
func (r *RouteSheet) IsActive() bool {
	return r.status.IsActive()
}

// BlocksDestination reports whether this sheet is the active sheet for the
// given agency and destination, i.e. whether the dispatcher must skip that
// zone group.
func (r *RouteSheet) BlocksDestination(agencyID kernel.UUID, destination kernel.Place) bool {
	return r.IsActive() && r.agencyID.IsEqual(agencyID) && r.destination.IsEqual(destination)
}

// AssignCarrier sets the carrier and moves the sheet to Assigned.
// Only pending sheets can be assigned.
func (r *RouteSheet) AssignCarrier(carrierID kernel.UUID, at time.Time) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}
	if r.status != StatusPending {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to assign a carrier", r.status))
	}

	r.carrierID = &carrierID
	r.status = StatusAssigned
	r.assignedAt = &at
	return nil
}

// Start moves an assigned sheet to InProgress.
func (r *RouteSheet) Start() error {
	if r.status != StatusAssigned {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to start", r.status))
	}
	r.status = StatusInProgress
	return nil
}

// Complete finishes the sheet. Assigned and in-progress sheets can complete.
func (r *RouteSheet) Complete(at time.Time) error {
	if r.status != StatusAssigned && r.status != StatusInProgress {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to complete", r.status))
	}
	r.status = StatusCompleted
	r.completedAt = &at
	return nil
}
